// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"

	"github.com/danielhkuo/widgetyy/cliparse"
	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/render"
)

type SiteHandler struct {
	cfg   cliparse.Config
	clock progress.Clock
}

func NewSiteHandler(cfg cliparse.Config, clock progress.Clock) *SiteHandler {
	return &SiteHandler{cfg: cfg, clock: clock}
}

// Index handles GET /
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	// GET / also matches every unregistered path
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	entries := make([]render.IndexEntry, 0, len(WidgetPages))
	for _, p := range WidgetPages {
		entries = append(entries, render.IndexEntry{Path: p.Path, Name: p.Name, Description: p.Description})
	}

	writeBody(w, r, "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
		return render.Index(buf, entries)
	})
}

// Robots handles GET /robots.txt
func (h *SiteHandler) Robots(w http.ResponseWriter, r *http.Request) {
	writeBody(w, r, "text/plain; charset=utf-8", func(buf *bytes.Buffer) error {
		return render.Robots(buf, h.cfg.BaseURL)
	})
}

// Sitemap handles GET /sitemap.xml
func (h *SiteHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries := []render.SitemapEntry{{Path: "/", ChangeFreq: "weekly", Priority: 1.0}}
	for _, p := range WidgetPages {
		entries = append(entries, render.SitemapEntry{Path: p.Path, ChangeFreq: "daily", Priority: 0.8})
	}

	writeBody(w, r, "application/xml; charset=utf-8", func(buf *bytes.Buffer) error {
		return render.Sitemap(buf, h.cfg.BaseURL, h.clock.Now(), entries)
	})
}
