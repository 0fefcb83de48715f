// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"math"
	"time"
)

// Template selection thresholds, inclusive.
const (
	HourThreshold  = time.Hour
	DayThreshold   = 2 * 24 * time.Hour
	MonthThreshold = 60 * 24 * time.Hour
)

// Compute returns the deadline progress for the given instant.
// It is pure: identical inputs always produce identical output.
func Compute(now, deadline time.Time) Result {
	left := deadline.Sub(now)
	if left <= 0 {
		return Result{
			Percent:  100,
			Template: TemplateDay,
			Expired:  true,
			Window:   Window{Start: deadline, End: deadline},
		}
	}

	var (
		tmpl   Template
		window Window
	)

	switch {
	case left <= HourThreshold:
		tmpl = TemplateHour
		window = Window{Start: deadline.Add(-time.Hour), End: deadline}

	case left <= DayThreshold:
		tmpl = TemplateDay
		start := startOfDay(now)
		window = Window{Start: start, End: earliest(deadline, start.AddDate(0, 0, 1))}

	case left <= MonthThreshold:
		tmpl = TemplateMonth
		start := startOfMonth(now)
		// Last second of the month after the current one.
		spanEnd := time.Date(start.Year(), start.Month()+2, 0, 23, 59, 59, 0, start.Location())
		window = Window{Start: start, End: earliest(deadline, spanEnd)}

	default:
		tmpl = TemplateYear
		window = Window{Start: yearWindowStart(now, deadline), End: deadline}
	}

	return Result{
		Percent:   window.Percent(now),
		Template:  tmpl,
		Remaining: Breakdown(left),
		Window:    window,
	}
}

// yearWindowStart is Jan 1 of the current year when the deadline falls in it,
// otherwise the deadline's month and day one year earlier.
func yearWindowStart(now, deadline time.Time) time.Time {
	d := deadline.In(now.Location())
	if d.Year() == now.Year() {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Date(d.Year()-1, d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// Percent returns the rounded share of the window elapsed at now, in [0,100].
func (w Window) Percent(now time.Time) int {
	elapsed := now.Sub(w.Start)
	if elapsed <= 0 {
		return 0
	}
	total := w.End.Sub(w.Start)
	if total <= 0 {
		return 100
	}
	return clampPercent(math.Round(100 * float64(elapsed) / float64(total)))
}

func clampPercent(p float64) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return int(p)
}

// Breakdown splits a duration into whole days, hours, minutes and seconds.
// Negative durations yield zero.
func Breakdown(d time.Duration) Remaining {
	if d <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d/time.Hour) % 24,
		Minutes: int(d/time.Minute) % 60,
		Seconds: int(d/time.Second) % 60,
	}
}

func earliest(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
