// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package render draws widget pages, SVG cell grids and the SEO files.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/danielhkuo/widgetyy/progress"
)

// Cell is one diamond of the grid.
type Cell struct {
	Filled bool
}

// PageData is everything a widget page shows.
type PageData struct {
	Kind           string
	PageTitle      string
	Description    string
	RefreshSeconds int

	Heading    string
	Subheading string
	Footer     string

	Percent int
	Expired bool
	Columns int
	Cells   []Cell

	// Deadline widget only.
	DeadlineDate  string
	DeadlineTime  string
	Remaining     string
	TemplateLabel string
	ShareURL      string
	Warnings      []string
}

// Cells lays out grid.Total cells with the first filled ones set.
func Cells(grid progress.Grid, filled int) []Cell {
	cells := make([]Cell, grid.Total)
	for i := 0; i < filled && i < len(cells); i++ {
		cells[i].Filled = true
	}
	return cells
}

// Page writes a complete, iframe-embeddable widget page.
func Page(w io.Writer, data PageData) error {
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render %s page: %w", data.Kind, err)
	}
	return nil
}

// IndexEntry links one widget from the landing page.
type IndexEntry struct {
	Path        string
	Name        string
	Description string
}

// Index writes the landing page listing every widget.
func Index(w io.Writer, entries []IndexEntry) error {
	if err := indexTmpl.Execute(w, entries); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    {{- if gt .RefreshSeconds 0}}
    <meta http-equiv="refresh" content="{{.RefreshSeconds}}" />
    {{- end}}
    <meta name="description" content="{{.Description}}" />
    <meta property="og:title" content="{{.PageTitle}}" />
    <title>{{.PageTitle}}</title>
    <style>
      body { margin: 0; min-height: 100vh; display: flex; align-items: center; justify-content: center;
             background: #f3f4f6; font-family: ui-sans-serif, system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; }
      .card { background: #fff; border-radius: 16px; padding: 40px 48px; box-shadow: 0 10px 24px rgba(0,0,0,0.08); }
      .top, .bottom { display: flex; justify-content: space-between; align-items: center; gap: 24px; }
      .top { margin-bottom: 28px; }
      .bottom { margin-top: 28px; font-size: 12px; color: #9ca3af; }
      .heading { font-size: 14px; font-weight: 600; color: #4b5563; }
      .sub { font-size: 13px; color: #6b7280; }
      .percent { font-size: 32px; font-weight: 700; color: #1f2937; }
      .grid { display: grid; gap: 20px; justify-content: center; }
      .d { width: 14px; height: 14px; transform: rotate(45deg); border: 2px solid #d1d5db; box-sizing: border-box; }
      .d.on { background: #1f2937; border-color: #1f2937; }
      .expired .d.on { background: #b91c1c; border-color: #b91c1c; }
      .warn { color: #b45309; font-size: 12px; margin-top: 12px; }
      a { color: inherit; }
    </style>
  </head>
  <body>
    <div class="card{{if .Expired}} expired{{end}}" data-kind="{{.Kind}}">
      <div class="top">
        <div>
          <div class="heading">{{.Heading}}</div>
          {{- if .Subheading}}<div class="sub">{{.Subheading}}</div>{{end}}
        </div>
        <div class="percent">{{.Percent}}%</div>
      </div>
      <div class="grid" style="grid-template-columns: repeat({{.Columns}}, 14px);">
        {{- range .Cells}}
        <div class="d{{if .Filled}} on{{end}}"></div>
        {{- end}}
      </div>
      <div class="bottom">
        {{- if .Remaining}}
        <span>{{.DeadlineDate}} {{.DeadlineTime}}</span>
        <span>{{.Remaining}}</span>
        <span>{{.TemplateLabel}}</span>
        {{- else}}
        <span>{{.Footer}}</span>
        {{- end}}
      </div>
      {{- if .ShareURL}}
      <div class="bottom"><a href="{{.ShareURL}}" target="_blank" rel="noopener">Embed link</a></div>
      {{- end}}
      {{- range .Warnings}}
      <div class="warn">{{.}}</div>
      {{- end}}
    </div>
  </body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <meta name="description" content="Free embeddable progress widgets for Notion and dashboards." />
    <title>Widgetyy - Progress Widgets</title>
  </head>
  <body>
    <h1>Widgetyy</h1>
    <ul>
      {{- range .}}
      <li><a href="{{.Path}}">{{.Name}}</a> - {{.Description}}</li>
      {{- end}}
    </ul>
  </body>
</html>
`))
