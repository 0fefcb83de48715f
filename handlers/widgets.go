// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/widgetyy/cliparse"
	"github.com/danielhkuo/widgetyy/middleware"
	"github.com/danielhkuo/widgetyy/models"
	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/render"
	"github.com/danielhkuo/widgetyy/widget"
)

type WidgetHandler struct {
	cfg   cliparse.Config
	clock progress.Clock
}

func NewWidgetHandler(cfg cliparse.Config, clock progress.Clock) *WidgetHandler {
	return &WidgetHandler{cfg: cfg, clock: clock}
}

// DayTracker handles GET /day_tracker
func (h *WidgetHandler) DayTracker(w http.ResponseWriter, r *http.Request) {
	h.servePeriod(w, r, progress.PeriodDay)
}

// MonthTracker handles GET /month_tracker
func (h *WidgetHandler) MonthTracker(w http.ResponseWriter, r *http.Request) {
	h.servePeriod(w, r, progress.PeriodMonth)
}

// YearTracker handles GET /year_tracker
func (h *WidgetHandler) YearTracker(w http.ResponseWriter, r *http.Request) {
	h.servePeriod(w, r, progress.PeriodYear)
}

func (h *WidgetHandler) servePeriod(w http.ResponseWriter, r *http.Request, p progress.Period) {
	var warnings []string
	loc, err := resolveLocation(r.URL.Query(), h.cfg.Location)
	if err != nil {
		slog.Warn("tracker timezone ignored", "period", p, "error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
		warnings = append(warnings, err.Error())
		loc = h.cfg.Location
	}

	now := h.clock.Now().In(loc)
	res, err := progress.Track(p, now)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	grid := progress.PeriodGrid(p)
	caps := widget.PeriodCaptions(res, now)
	page := pageFor(string(p))

	data := render.PageData{
		Kind:           string(p),
		PageTitle:      page.Name + " - Widgetyy",
		Description:    page.Description,
		RefreshSeconds: refreshSeconds(h.cfg.PeriodRefresh),
		Heading:        caps.Heading,
		Subheading:     caps.Subheading,
		Footer:         caps.Footer,
		Percent:        res.Percent,
		Columns:        grid.Columns,
		Cells:          render.Cells(grid, grid.Filled(res.Percent)),
		Warnings:       warnings,
	}

	writeBody(w, r, "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
		return render.Page(buf, data)
	})
}

// DeadlineTracker handles GET /deadline_tracker
// Query: title, date (YYYY-MM-DD), time (HH:MM), tz
func (h *WidgetHandler) DeadlineTracker(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	d, err := widget.ParseDeadline(widget.UnescapeTitle(r.URL.Query()), now, h.cfg.WidgetDefaults())
	if err != nil {
		// Invalid parameters fall back to defaults; the page lists what was ignored
		slog.Warn("deadline parameters replaced by defaults", "error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}

	res := progress.Compute(now.In(d.Location), d.At)
	grid := progress.TemplateGrid(res.Template)
	page := pageFor(models.KindDeadline)

	data := render.PageData{
		Kind:           models.KindDeadline,
		PageTitle:      d.Title + " - " + page.Name,
		Description:    page.Description,
		RefreshSeconds: refreshSeconds(h.cfg.DeadlineRefresh),
		Heading:        d.Title,
		Subheading:     widget.TemplateLabel(res.Template),
		Percent:        res.Percent,
		Expired:        res.Expired,
		Columns:        grid.Columns,
		Cells:          render.Cells(grid, grid.Filled(res.Percent)),
		DeadlineDate:   d.DisplayDate(),
		DeadlineTime:   d.DisplayTime(),
		Remaining:      widget.Describe(res),
		TemplateLabel:  widget.TemplateLabel(res.Template),
		ShareURL:       shareURL(h.cfg.BaseURL, d),
		Warnings:       warningList(err),
	}

	writeBody(w, r, "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
		return render.Page(buf, data)
	})
}

// SVG handles GET /widgets/{file} where file is {kind}.svg
func (h *WidgetHandler) SVG(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	kind, ok := strings.CutSuffix(file, ".svg")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "unknown widget image")
		return
	}

	var (
		grid    progress.Grid
		percent int
		expired bool
	)

	if kind == models.KindDeadline {
		now := h.clock.Now()
		d, _ := widget.ParseDeadline(widget.UnescapeTitle(r.URL.Query()), now, h.cfg.WidgetDefaults())
		res := progress.Compute(now.In(d.Location), d.At)
		grid, percent, expired = progress.TemplateGrid(res.Template), res.Percent, res.Expired
	} else {
		p, err := progress.ParsePeriod(kind)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		loc, err := resolveLocation(r.URL.Query(), h.cfg.Location)
		if err != nil {
			loc = h.cfg.Location
		}
		res, err := progress.Track(p, h.clock.Now().In(loc))
		if err != nil {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		grid, percent = progress.PeriodGrid(p), res.Percent
	}

	writeBody(w, r, "image/svg+xml", func(buf *bytes.Buffer) error {
		return render.SVG(buf, grid, grid.Filled(percent), expired)
	})
}
