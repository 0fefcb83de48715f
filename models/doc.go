// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response types for the JSON API.

# Response Types

  - DeadlineResponse: deadline, computed result, remaining text, grid, share_url
  - PeriodResponse: tracker result, grid, caption
  - ErrorResponse: error, message

The calculator's own types (progress.Result, progress.PeriodResult,
progress.Grid) are embedded as-is and carry their own JSON tags.

# Constants

Widget kinds:

	KindDay      = "day"
	KindMonth    = "month"
	KindYear     = "year"
	KindDeadline = "deadline"
*/
package models
