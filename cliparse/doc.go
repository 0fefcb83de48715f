// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - BaseURL: Public URL used for sitemap and embed links
  - Timezone: IANA zone for day/month/year boundaries (default: local)
  - DefaultTitle, DefaultTime: Fallbacks for deadline widgets
  - DeadlineRefresh, PeriodRefresh: Page refresh intervals (1s / 60s)

# CLI Flags

	-p      Server port
	-b      Base URL
	-tz     Timezone
	-c      YAML config file
	-env    dotenv file (default .env, ignored if missing)
	-title  Default deadline title
	-time   Default deadline time

# Environment Variables

Flags fall back to environment variables, which may come from a .env file:

	PORT                   → -p
	BASE_URL               → -b
	WIDGETYY_TZ            → -tz
	WIDGETYY_CONFIG        → -c
	WIDGETYY_DEFAULT_TITLE → -title
	WIDGETYY_DEFAULT_TIME  → -time

# Config File

Anything still unset is read from the YAML file:

	port: 3318
	base_url: https://widgets.example.com
	timezone: America/New_York
	widgets:
	  default_title: My Deadline
	  default_time: "12:00"
	  deadline_refresh_seconds: 1
	  period_refresh_seconds: 60

Precedence is flags, then environment, then file, then built-in defaults.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is out of range
  - the timezone cannot be loaded
  - the default time is not HH:MM
  - the config file cannot be read or parsed
*/
package cliparse
