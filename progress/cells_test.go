package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateGrid(t *testing.T) {
	tests := []struct {
		tmpl  Template
		total int
		cols  int
	}{
		{TemplateHour, 12, 6},
		{TemplateDay, 24, 6},
		{TemplateMonth, 30, 6},
		{TemplateYear, 182, 26},
		{Template("bogus"), 24, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.tmpl), func(t *testing.T) {
			g := TemplateGrid(tt.tmpl)
			assert.Equal(t, tt.total, g.Total)
			assert.Equal(t, tt.cols, g.Columns)
		})
	}
}

func TestPeriodGrid(t *testing.T) {
	assert.Equal(t, Grid{Total: 24, Columns: 6}, PeriodGrid(PeriodDay))
	assert.Equal(t, Grid{Total: 30, Columns: 10}, PeriodGrid(PeriodMonth))
	assert.Equal(t, Grid{Total: 120, Columns: 30}, PeriodGrid(PeriodYear))
}

func TestGrid_Rows(t *testing.T) {
	assert.Equal(t, 2, Grid{Total: 12, Columns: 6}.Rows())
	assert.Equal(t, 7, Grid{Total: 182, Columns: 26}.Rows())
	assert.Equal(t, 5, Grid{Total: 30, Columns: 7}.Rows())
	assert.Equal(t, 0, Grid{Total: 30}.Rows())
}

func TestFilled(t *testing.T) {
	assert.Equal(t, 12, Filled(50, 24))
	assert.Equal(t, 91, Filled(50, 182))
	assert.Equal(t, 0, Filled(4, 12))
	assert.Equal(t, 1, Filled(5, 12))
	assert.Equal(t, 120, Filled(100, 120))
	assert.Equal(t, 0, Filled(-10, 24))
	assert.Equal(t, 24, Filled(250, 24))
	assert.Equal(t, 0, Filled(50, 0))
}
