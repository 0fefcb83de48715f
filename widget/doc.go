// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package widget turns embed URLs into calculator inputs and results into text.

# Deadline Parameters

Deadline widgets are configured entirely through the query string:

	/deadline_tracker?title=Finals&date=2026-12-14&time=09:00&tz=Europe/Berlin

ParseDeadline normalizes them. Missing values fall back to defaults
(title "My Deadline", tomorrow's date, 12:00, the server's zone). Invalid
values also fall back, and are reported through the returned error:

	d, err := widget.ParseDeadline(widget.UnescapeTitle(r.URL.Query()), now, defaults)
	if errors.Is(err, widget.ErrInvalidDate) {
		// d.Date is tomorrow
	}

# Display Text

	widget.Describe(res)         // "3 days 4h remaining"
	widget.TemplateLabel(tmpl)   // "Daily Template"
	widget.PeriodCaptions(p, now)
*/
package widget
