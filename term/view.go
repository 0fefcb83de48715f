// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/widgetyy/progress"
)

const (
	filledDiamond = "◆"
	emptyDiamond  = "◇"
)

var (
	// Colors
	fillColor    = lipgloss.Color("#1F2937")
	expiredColor = lipgloss.Color("#B91C1C")
	subtleColor  = lipgloss.Color("#6B7280")
	emptyColor   = lipgloss.Color("#D1D5DB")

	headingStyle = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)
	percentStyle = lipgloss.NewStyle().Bold(true).PaddingLeft(4)
	emptyStyle   = lipgloss.NewStyle().Foreground(emptyColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(1, 2)
)

// Render draws a snapshot as a bordered card.
func Render(s Snapshot, help string) string {
	fill := fillColor
	if s.Expired {
		fill = expiredColor
	}
	filledStyle := lipgloss.NewStyle().Foreground(fill)

	title := headingStyle.Render(s.Heading)
	if s.Subheading != "" {
		title = lipgloss.JoinVertical(lipgloss.Left, title, subtleStyle.Render(s.Subheading))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, percentStyle.Foreground(fill).Render(fmt.Sprintf("%d%%", s.Percent)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		grid(s.Grid, s.Filled, filledStyle),
		"",
		subtleStyle.Render(s.Footer),
	)
	if help != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", subtleStyle.Render(help))
	}
	return boxStyle.Render(body)
}

// grid lays out g.Total diamonds, g.Columns per row, the first filled ones solid.
func grid(g progress.Grid, filled int, filledStyle lipgloss.Style) string {
	if g.Columns <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < g.Total; i++ {
		switch {
		case i == 0:
		case i%g.Columns == 0:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		if i < filled {
			b.WriteString(filledStyle.Render(filledDiamond))
		} else {
			b.WriteString(emptyStyle.Render(emptyDiamond))
		}
	}
	return b.String()
}
