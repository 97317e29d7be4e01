package render

import (
	"github.com/lixenwraith/supr-growth/game"
	"github.com/lixenwraith/supr-growth/vmath"
)

const (
	statusRows = 2 // score line and effect bars
	hintRows   = 1
)

// Viewport maps the logical playfield onto a rectangle of terminal cells
type Viewport struct {
	pf         game.Playfield
	X, Y       int // top-left cell of the playfield
	Cols, Rows int
}

// NewViewport lays the playfield out below the status rows of a screen
func NewViewport(pf game.Playfield, screenCols, screenRows int) Viewport {
	return Viewport{
		pf:   pf,
		X:    0,
		Y:    statusRows,
		Cols: max(screenCols, 1),
		Rows: max(screenRows-statusRows-hintRows, 1),
	}
}

// Col maps a logical x to a screen column
func (v Viewport) Col(x float64) int {
	c := int(x / v.pf.Width * float64(v.Cols))
	return v.X + min(max(c, 0), v.Cols-1)
}

// Row maps a logical y to a screen row
func (v Viewport) Row(y float64) int {
	r := int(y / v.pf.Height * float64(v.Rows))
	return v.Y + min(max(r, 0), v.Rows-1)
}

// LogicalX maps a screen column to the logical x at the column's centre
func (v Viewport) LogicalX(col int) float64 {
	x := (float64(col-v.X) + 0.5) / float64(v.Cols) * v.pf.Width
	return vmath.Clamp(x, 0, v.pf.Width)
}

// Contains reports whether a cell lies inside the playfield area
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Cols && row >= v.Y && row < v.Y+v.Rows
}
