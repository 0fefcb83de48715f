// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Widgetyy server.

Widgetyy serves embeddable progress widgets: day, month and year trackers
and a deadline countdown that switches between hour, day, month and year
scales as the deadline approaches. Pages are meant to be dropped into an
iframe (Notion, dashboards) and refresh themselves.

# Starting the Server

	go run . -p 3318 -tz Europe/Paris

# Configuration

Settings are read from flags, then environment (a .env file is loaded first),
then an optional YAML file, then built-in defaults:

  - PORT (-p): Server port (default: 3318)
  - BASE_URL (-b): Public URL used in share links and sitemap.xml
  - WIDGETYY_TZ (-tz): IANA timezone for calendar boundaries (default: local)
  - WIDGETYY_CONFIG (-c): YAML config file
  - WIDGETYY_DEFAULT_TITLE (-title), WIDGETYY_DEFAULT_TIME (-time): deadline defaults

# Architecture

  - progress: Pure calculator for deadlines and calendar periods
  - widget: Query parameters and display text
  - render: HTML pages, SVG grids, robots.txt and sitemap.xml
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request IDs, embedding headers, CORS, logging, JSON helpers
  - models: Response types
  - server: Listener lifecycle with graceful shutdown
  - cliparse: Configuration parsing
  - term: Terminal countdown (cmd/widgetyy-term)

See package documentation for each component.
*/
package main
