// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/widgetyy/middleware"
	"github.com/danielhkuo/widgetyy/models"
	"github.com/danielhkuo/widgetyy/widget"
)

// WidgetPage describes one embeddable page for the index and sitemap
type WidgetPage struct {
	Kind        string
	Path        string
	Name        string
	Description string
}

// WidgetPages lists every embeddable page in display order
var WidgetPages = []WidgetPage{
	{models.KindDay, "/day_tracker", "Day Tracker", "How much of today has passed, one diamond per hour."},
	{models.KindMonth, "/month_tracker", "Month Tracker", "Progress through the current month."},
	{models.KindYear, "/year_tracker", "Year Tracker", "Progress through the year with day and week counters."},
	{models.KindDeadline, "/deadline_tracker", "Deadline Tracker", "Countdown to any date that adapts its scale as the deadline nears."},
}

func pageFor(kind string) WidgetPage {
	for _, p := range WidgetPages {
		if p.Kind == kind {
			return p
		}
	}
	return WidgetPage{Kind: kind}
}

// resolveLocation honors the tz query parameter, falling back to def
func resolveLocation(q url.Values, def *time.Location) (*time.Location, error) {
	tz := strings.TrimSpace(q.Get("tz"))
	if tz == "" {
		return def, nil
	}
	return widget.LoadLocation(tz)
}

// warningList splits a joined parameter error into one line per problem
func warningList(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func refreshSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	if d < time.Second {
		return 1
	}
	return int(d / time.Second)
}

func shareURL(baseURL string, d widget.Deadline) string {
	return strings.TrimRight(baseURL, "/") + "/deadline_tracker?" + d.Query().Encode()
}

// writeBody renders into a buffer first so a template failure can still
// produce a clean 500
func writeBody(w http.ResponseWriter, r *http.Request, contentType string, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("failed to render response",
			"path", r.URL.Path,
			"error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render widget")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
