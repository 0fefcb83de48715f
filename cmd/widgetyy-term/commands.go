package main

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/term"
	"github.com/danielhkuo/widgetyy/widget"
)

// runFunc displays a target; tests swap it out
type runFunc func(ctx context.Context, target term.Target) error

func newRootCmd(clock progress.Clock, run runFunc) *cobra.Command {
	root := &cobra.Command{
		Use:          "widgetyy-term",
		Short:        "Progress widgets in the terminal",
		Long:         `Shows the day, month and year trackers or a deadline countdown as a diamond grid that refreshes itself.`,
		SilenceUsage: true,
	}

	root.AddCommand(newDeadlineCmd(clock, run))
	root.AddCommand(newPeriodCmd(progress.PeriodDay, "How much of today has passed", run))
	root.AddCommand(newPeriodCmd(progress.PeriodMonth, "Progress through the current month", run))
	root.AddCommand(newPeriodCmd(progress.PeriodYear, "Progress through the current year", run))
	return root
}

func newDeadlineCmd(clock progress.Clock, run runFunc) *cobra.Command {
	var title, date, clockTime, tz string

	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Count down to a date and time",
		Long: `Count down to a deadline. The grid switches scale as it nears:
  hour   within the last hour
  day    within 48 hours
  month  within 60 days
  year   beyond that`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIfPresent(q, "title", title)
			setIfPresent(q, "date", date)
			setIfPresent(q, "time", clockTime)
			setIfPresent(q, "tz", tz)

			// Strict here: a typo should not silently count down to a default
			d, err := widget.ParseDeadline(q, clock.Now(), widget.Defaults{})
			if err != nil {
				return err
			}
			return run(cmd.Context(), term.DeadlineTarget{Deadline: d})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", `Deadline title (default "My Deadline")`)
	cmd.Flags().StringVar(&date, "date", "", "Deadline date YYYY-MM-DD (default tomorrow)")
	cmd.Flags().StringVar(&clockTime, "time", "", "Deadline time HH:MM (default 12:00)")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone (default local)")
	return cmd
}

func newPeriodCmd(p progress.Period, short string, run runFunc) *cobra.Command {
	var tz string

	cmd := &cobra.Command{
		Use:   string(p),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := widget.LoadLocation(tz)
			if err != nil {
				return err
			}
			return run(cmd.Context(), term.PeriodTarget{Period: p, Location: loc})
		},
	}

	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone (default local)")
	return cmd
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
