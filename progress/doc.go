// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package progress computes widget progress from pure date arithmetic.

# Deadline Countdown

Compute picks a display template from the time left until the deadline and
returns the elapsed share of that template's window:

	res := progress.Compute(time.Now(), deadline)
	// res.Percent, res.Template, res.Remaining, res.Expired

Templates are chosen in order, first match wins:

  - hour:  at most 1h left; window is the final hour
  - day:   at most 2 days left; window is today, cut at the deadline
  - month: at most 60 days left; window starts on the 1st of this month and
    ends at the deadline or the end of next month, whichever is first
  - year:  anything longer; window starts Jan 1 (deadline this year) or one
    year before the deadline

A deadline at or before now is expired: Percent is 100 and Remaining is zero.

# Period Trackers

Day, Month and Year track the current calendar period with no deadline:

	res := progress.Month(now)
	// res.Percent, res.DayOfPeriod, res.DaysInPeriod

# Cells

Widgets draw progress as a grid of diamonds. TemplateGrid and PeriodGrid
return the grid for each widget; Grid.Filled maps a percentage to cells.

# Time

All calendar boundaries are computed in now's location. Hosts own the timer
and pass a fresh now on every tick, usually from a Clock.
*/
package progress
