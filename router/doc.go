// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Widgetyy server.

# Route Registration

NewRouter creates the configured handler tree:

	handler := router.NewRouter(cfg, progress.RealClock{})

The mux is wrapped in request IDs, iframe-friendly headers and CORS, in that
order from the outside in.

# Endpoints

Health:

	GET /health

Widget pages (query: title, date, time, tz):

	GET /day_tracker
	GET /month_tracker
	GET /year_tracker
	GET /deadline_tracker

Images:

	GET /widgets/{kind}.svg - day, month, year or deadline

JSON API:

	GET /api/progress/{period} - day, month or year
	GET /api/deadline          - countdown for title, date, time, tz

Site:

	GET /            - Index of widgets
	GET /robots.txt
	GET /sitemap.xml

# Handler Initialization

	widgetHandler := handlers.NewWidgetHandler(cfg, clock)
	apiHandler := handlers.NewAPIHandler(cfg, clock)
	siteHandler := handlers.NewSiteHandler(cfg, clock)

All handlers share the configuration and the clock.
*/
package router
