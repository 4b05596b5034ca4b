package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"booking-assistant/internal/model"
	"booking-assistant/internal/timeslot"
	"booking-assistant/pkg/datemath"
	"booking-assistant/pkg/log"
)

const parseLayout = "Mon 2006-01-02 15:04 MST"

type window struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

func newParseTimeCommand(opts *options) *cobra.Command {
	var (
		timezone string
		end      string
		now      string
	)

	cmd := &cobra.Command{
		Use:   "parse-time <start phrase>",
		Short: "Resolve a time phrase the way the assistant does",
		Long: `Resolve a start phrase (and optional end phrase) into a meeting window.
No calendar or language model is contacted.

Examples:
  assistantctl parse-time "tomorrow 3pm"
  assistantctl parse-time "next friday at 10:30" --end "next friday at 11"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := datemath.NewParser(timezone)
			if err != nil {
				return err
			}
			loc := parser.Location()

			ref := time.Now().In(loc)
			if now != "" {
				if ref, err = time.ParseInLocation(time.RFC3339, now, loc); err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				ref = ref.In(loc)
			}

			slots := model.RawSlots{Start: &args[0]}
			if end != "" {
				slots.End = &end
			}

			w := timeslot.New(log.NewNop(), parser, loc, timeslot.DefaultMeetingDuration).Extract(cmd.Context(), slots, ref)
			if !w.Resolved() {
				return fmt.Errorf("could not resolve %q", args[0])
			}
			return printResult(cmd.OutOrStdout(), opts.output, window{Start: w.Start, End: w.End}, func(out io.Writer) {
				fmt.Fprintf(out, "start: %s\nend:   %s\n", w.Start.Format(parseLayout), w.End.Format(parseLayout))
			})
		},
	}

	cmd.Flags().StringVar(&timezone, "tz", "Asia/Kolkata", "IANA timezone for parsing")
	cmd.Flags().StringVar(&end, "end", "", "optional end phrase")
	cmd.Flags().StringVar(&now, "now", "", "reference time in RFC3339, default the current time")
	return cmd
}
