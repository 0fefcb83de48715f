// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/widgetyy/cliparse"
	"github.com/danielhkuo/widgetyy/handlers"
	"github.com/danielhkuo/widgetyy/middleware"
	"github.com/danielhkuo/widgetyy/progress"
)

// NewRouter registers every route and wraps the mux in the shared middleware
func NewRouter(cfg cliparse.Config, clock progress.Clock) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	widgetHandler := handlers.NewWidgetHandler(cfg, clock)
	apiHandler := handlers.NewAPIHandler(cfg, clock)
	siteHandler := handlers.NewSiteHandler(cfg, clock)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Embeddable widget pages
	mux.HandleFunc("GET /day_tracker", middleware.WithLogging(widgetHandler.DayTracker))
	mux.HandleFunc("GET /month_tracker", middleware.WithLogging(widgetHandler.MonthTracker))
	mux.HandleFunc("GET /year_tracker", middleware.WithLogging(widgetHandler.YearTracker))
	mux.HandleFunc("GET /deadline_tracker", middleware.WithLogging(widgetHandler.DeadlineTracker))
	mux.HandleFunc("GET /widgets/{file}", middleware.WithLogging(widgetHandler.SVG))

	// JSON API
	mux.HandleFunc("GET /api/progress/{period}", middleware.WithLogging(apiHandler.GetProgress))
	mux.HandleFunc("GET /api/deadline", middleware.WithLogging(apiHandler.GetDeadline))

	// Site files
	mux.HandleFunc("GET /robots.txt", middleware.WithLogging(siteHandler.Robots))
	mux.HandleFunc("GET /sitemap.xml", middleware.WithLogging(siteHandler.Sitemap))
	mux.HandleFunc("GET /", middleware.WithLogging(siteHandler.Index))

	return middleware.WithRequestID(middleware.Embeddable(middleware.CORS(mux)))
}
