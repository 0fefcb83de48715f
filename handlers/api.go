// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/widgetyy/cliparse"
	"github.com/danielhkuo/widgetyy/middleware"
	"github.com/danielhkuo/widgetyy/models"
	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/widget"
)

type APIHandler struct {
	cfg   cliparse.Config
	clock progress.Clock
}

func NewAPIHandler(cfg cliparse.Config, clock progress.Clock) *APIHandler {
	return &APIHandler{cfg: cfg, clock: clock}
}

// GetProgress handles GET /api/progress/{period}
func (h *APIHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := progress.ParsePeriod(r.PathValue("period"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	loc, err := resolveLocation(r.URL.Query(), h.cfg.Location)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	now := h.clock.Now().In(loc)
	res, err := progress.Track(p, now)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	grid := progress.PeriodGrid(p)
	middleware.JSONResponse(w, http.StatusOK, models.PeriodResponse{
		Now:     now,
		Result:  res,
		Grid:    grid,
		Filled:  grid.Filled(res.Percent),
		Caption: widget.PeriodCaptions(res, now).Footer,
	})
}

// GetDeadline handles GET /api/deadline
// Query: title, date (YYYY-MM-DD), time (HH:MM), tz
func (h *APIHandler) GetDeadline(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	d, err := widget.ParseDeadline(widget.UnescapeTitle(r.URL.Query()), now, h.cfg.WidgetDefaults())
	if err != nil {
		slog.Info("rejected deadline query", "error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res := progress.Compute(now.In(d.Location), d.At)
	grid := progress.TemplateGrid(res.Template)

	middleware.JSONResponse(w, http.StatusOK, models.DeadlineResponse{
		Title:       d.Title,
		Deadline:    d.At,
		Timezone:    d.Location.String(),
		Now:         now.In(d.Location),
		Result:      res,
		Description: widget.Describe(res),
		Label:       widget.TemplateLabel(res.Template),
		Grid:        grid,
		Filled:      grid.Filled(res.Percent),
		ShareURL:    shareURL(h.cfg.BaseURL, d),
	})
}
