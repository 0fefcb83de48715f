// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Widgetyy widgets.

# Handler Types

Each handler is a struct with config and clock dependencies:

  - WidgetHandler: Embeddable HTML pages and SVG grids
  - APIHandler: JSON progress and deadline data
  - SiteHandler: Index page, robots.txt and sitemap.xml

Handlers are created via constructor functions that accept Config and a Clock:

	widgetHandler := handlers.NewWidgetHandler(cfg, progress.RealClock{})

Every request reads the clock once and derives everything from that instant,
so tests pin the output with progress.FixedClock.

# Widget Pages

	GET /day_tracker      → DayTracker
	GET /month_tracker    → MonthTracker
	GET /year_tracker     → YearTracker
	GET /deadline_tracker → DeadlineTracker (title, date, time, tz)

Pages never fail on bad input. Unusable parameters are replaced by the
configured defaults and listed under the grid.

# JSON API

	GET /api/progress/{period} → GetProgress (day, month, year)
	GET /api/deadline          → GetDeadline

The API is strict: any invalid date, time or tz returns 400.

# Images

	GET /widgets/{kind}.svg → SVG
*/
package handlers
