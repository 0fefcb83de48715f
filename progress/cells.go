package progress

import "math"

// Grid is the layout of the diamond cells a widget renders.
type Grid struct {
	Total   int `json:"total"`
	Columns int `json:"columns"`
}

// Rows returns the number of rows needed to lay out every cell.
func (g Grid) Rows() int {
	if g.Columns <= 0 {
		return 0
	}
	return (g.Total + g.Columns - 1) / g.Columns
}

// Filled returns how many of the grid's cells a percentage covers.
func (g Grid) Filled(percent int) int {
	return Filled(percent, g.Total)
}

var templateGrids = map[Template]Grid{
	TemplateHour:  {Total: 12, Columns: 6},
	TemplateDay:   {Total: 24, Columns: 6},
	TemplateMonth: {Total: 30, Columns: 6},
	TemplateYear:  {Total: 182, Columns: 26},
}

var periodGrids = map[Period]Grid{
	PeriodDay:   {Total: 24, Columns: 6},
	PeriodMonth: {Total: 30, Columns: 10},
	PeriodYear:  {Total: 120, Columns: 30},
}

// TemplateGrid returns the deadline grid for a template, defaulting to the day grid.
func TemplateGrid(t Template) Grid {
	if g, ok := templateGrids[t]; ok {
		return g
	}
	return templateGrids[TemplateDay]
}

// PeriodGrid returns the tracker grid for a period, defaulting to the day grid.
func PeriodGrid(p Period) Grid {
	if g, ok := periodGrids[p]; ok {
		return g
	}
	return periodGrids[PeriodDay]
}

// Filled maps a percentage onto total cells, rounding to the nearest cell.
func Filled(percent, total int) int {
	if total <= 0 {
		return 0
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return int(math.Round(float64(percent) / 100 * float64(total)))
}
