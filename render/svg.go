package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/danielhkuo/widgetyy/progress"
)

// Grid geometry in SVG user units.
const (
	cellSize = 16
	cellGap  = 20
	margin   = 12
)

const (
	fillColor    = "#1f2937"
	expiredColor = "#b91c1c"
	emptyColor   = "#d1d5db"
)

type svgDiamond struct {
	Points string
	Filled bool
}

type svgData struct {
	Width, Height int
	Fill, Empty   string
	Diamonds      []svgDiamond
}

// SVG writes the diamond grid as a standalone SVG image.
func SVG(w io.Writer, grid progress.Grid, filled int, expired bool) error {
	if grid.Columns <= 0 || grid.Total <= 0 {
		return fmt.Errorf("render svg: empty grid %+v", grid)
	}

	pitch := cellSize + cellGap
	data := svgData{
		Width:  2*margin + grid.Columns*pitch - cellGap,
		Height: 2*margin + grid.Rows()*pitch - cellGap,
		Fill:   fillColor,
		Empty:  emptyColor,
	}
	if expired {
		data.Fill = expiredColor
	}

	half := cellSize / 2
	for i, c := range Cells(grid, filled) {
		cx := margin + (i%grid.Columns)*pitch + half
		cy := margin + (i/grid.Columns)*pitch + half
		data.Diamonds = append(data.Diamonds, svgDiamond{
			Points: fmt.Sprintf("%d,%d %d,%d %d,%d %d,%d", cx, cy-half, cx+half, cy, cx, cy+half, cx-half, cy),
			Filled: c.Filled,
		})
	}

	if err := svgTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	return nil
}

var svgTmpl = template.Must(template.New("svg").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
{{- range .Diamonds}}
<polygon points="{{.Points}}" {{if .Filled}}fill="{{$.Fill}}"{{else}}fill="none" stroke="{{$.Empty}}" stroke-width="2"{{end}}/>
{{- end}}
</svg>
`))
