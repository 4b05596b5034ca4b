package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const scheduleQuestion = "What's my schedule?"

func newScheduleCommand(opts *options) *cobra.Command {
	var (
		days int
		ics  bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show upcoming events",
		Long: `Ask the assistant for the upcoming schedule, or download it as iCalendar.

Examples:
  assistantctl schedule
  assistantctl schedule --ics --days 7 > week.ics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := newAPIClient(opts.server)

			if ics {
				return client.scheduleICS(ctx, days, cmd.OutOrStdout())
			}

			out, err := client.chat(ctx, scheduleQuestion, nil)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) {
				fmt.Fprintln(w, out.Reply)
			})
		},
	}

	cmd.Flags().BoolVar(&ics, "ics", false, "download an iCalendar feed instead of asking in chat")
	cmd.Flags().IntVar(&days, "days", 0, "days ahead for --ics (1-14, default from server config)")
	return cmd
}
