// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package term

import (
	"time"

	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/widget"
)

// Snapshot is everything one frame shows.
type Snapshot struct {
	Heading    string
	Subheading string
	Footer     string

	Percent int
	Expired bool
	Grid    progress.Grid
	Filled  int
}

// Target is a widget the terminal can display.
type Target interface {
	Snapshot(now time.Time) Snapshot
	// Interval is how often the frame is recomputed.
	Interval() time.Duration
}

// DeadlineTarget counts down to a deadline.
type DeadlineTarget struct {
	Deadline widget.Deadline
}

func (t DeadlineTarget) Snapshot(now time.Time) Snapshot {
	res := progress.Compute(now.In(t.Deadline.Location), t.Deadline.At)
	grid := progress.TemplateGrid(res.Template)
	return Snapshot{
		Heading:    t.Deadline.Title,
		Subheading: t.Deadline.DisplayDate() + " " + t.Deadline.DisplayTime(),
		Footer:     widget.Describe(res) + " · " + widget.TemplateLabel(res.Template),
		Percent:    res.Percent,
		Expired:    res.Expired,
		Grid:       grid,
		Filled:     grid.Filled(res.Percent),
	}
}

func (DeadlineTarget) Interval() time.Duration { return time.Second }

// PeriodTarget tracks the current day, month or year.
type PeriodTarget struct {
	Period   progress.Period
	Location *time.Location
}

func (t PeriodTarget) Snapshot(now time.Time) Snapshot {
	if t.Location != nil {
		now = now.In(t.Location)
	}
	res, err := progress.Track(t.Period, now)
	if err != nil {
		return Snapshot{Heading: err.Error()}
	}

	grid := progress.PeriodGrid(t.Period)
	caps := widget.PeriodCaptions(res, now)
	return Snapshot{
		Heading:    caps.Heading,
		Subheading: caps.Subheading,
		Footer:     caps.Footer,
		Percent:    res.Percent,
		Grid:       grid,
		Filled:     grid.Filled(res.Percent),
	}
}

func (PeriodTarget) Interval() time.Duration { return time.Minute }
