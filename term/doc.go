// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package term shows a widget in the terminal.

A Model recomputes its Target on every tick: once a second for deadlines,
once a minute for the day, month and year trackers. Each tick reads the
clock and hands that instant to the progress calculator, so the calculator
itself stays free of timers.

	target := term.PeriodTarget{Period: progress.PeriodYear, Location: time.Local}
	err := term.Run(ctx, target, progress.RealClock{})

Press q, esc or ctrl+c to quit.
*/
package term
