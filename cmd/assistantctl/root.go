package main

import (
	"github.com/spf13/cobra"
)

type options struct {
	server string
	output string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "assistantctl",
		Short:         "Talk to the booking assistant from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "assistant server base URL")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")

	root.AddCommand(
		newChatCommand(opts),
		newScheduleCommand(opts),
		newGcalAuthCommand(),
		newParseTimeCommand(opts),
	)
	return root
}
