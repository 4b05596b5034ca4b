package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"booking-assistant/internal/model"
)

func newChatCommand(opts *options) *cobra.Command {
	var contextFile string

	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Send one message and print the reply",
		Long: `Send one message to the assistant server and print its reply.

With --context-file the data returned by the previous turn is read from the
file, sent as context and replaced by the new data.

Examples:
  assistantctl chat "Book a meeting tomorrow at 3pm"
  assistantctl chat --context-file .assistant.json "what's on my calendar?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			conv, err := readContext(contextFile)
			if err != nil {
				return err
			}

			out, err := newAPIClient(opts.server).chat(ctx, strings.Join(args, " "), conv)
			if err != nil {
				return err
			}

			err = printResult(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) {
				fmt.Fprintln(w, out.Reply)
			})
			if err != nil {
				return err
			}
			return writeContext(contextFile, out.Data)
		},
	}

	cmd.Flags().StringVar(&contextFile, "context-file", "", "file holding the conversation context between turns")
	return cmd
}

// readContext returns the stored context, or nil when path is empty or missing.
func readContext(path string) (model.ConversationContext, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}
	var conv model.ConversationContext
	if err := json.Unmarshal(raw, &conv); err != nil {
		return nil, fmt.Errorf("decode context %s: %w", path, err)
	}
	return conv, nil
}

func writeContext(path string, data map[string]any) error {
	if path == "" {
		return nil
	}
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode context: %w", err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("write context: %w", err)
	}
	return nil
}
