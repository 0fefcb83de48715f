// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownPeriod = errors.New("unknown period")

// ParsePeriod converts a path segment like "month" into a Period.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDay, PeriodMonth, PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Track dispatches to Day, Month or Year.
func Track(p Period, now time.Time) (PeriodResult, error) {
	switch p {
	case PeriodDay:
		return Day(now), nil
	case PeriodMonth:
		return Month(now), nil
	case PeriodYear:
		return Year(now), nil
	}
	return PeriodResult{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
}

// Day tracks today from 00:00:00 to 23:59:59.
func Day(now time.Time) PeriodResult {
	start := startOfDay(now)
	return periodResult(PeriodDay, now, Window{Start: start, End: lastSecond(start.AddDate(0, 0, 1))}, 1, 1)
}

// Month tracks the current month from the 1st 00:00:00 to its last day 23:59:59.
func Month(now time.Time) PeriodResult {
	start := startOfMonth(now)
	days := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return periodResult(PeriodMonth, now, Window{Start: start, End: lastSecond(start.AddDate(0, 1, 0))}, now.Day(), days)
}

// Year tracks the current year from Jan 1 00:00:00 to Dec 31 23:59:59.
func Year(now time.Time) PeriodResult {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	days := 365
	if IsLeapYear(now.Year()) {
		days = 366
	}
	res := periodResult(PeriodYear, now, Window{Start: start, End: lastSecond(start.AddDate(1, 0, 0))}, now.YearDay(), days)
	res.WeekOfYear = res.DayOfPeriod / 7
	res.LeapYear = IsLeapYear(now.Year())
	return res
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Day counts are calendar days, not elapsed/24h, so DST days stay one day.
func periodResult(p Period, now time.Time, w Window, dayOf, daysIn int) PeriodResult {
	return PeriodResult{
		Period:       p,
		Percent:      w.Percent(now),
		Window:       w,
		DayOfPeriod:  dayOf,
		DaysInPeriod: daysIn,
	}
}

// lastSecond is one second before the given boundary.
func lastSecond(boundary time.Time) time.Time {
	return boundary.Add(-time.Second)
}
