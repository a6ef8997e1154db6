// Package canvas provides a character-cell drawing surface addressed in
// world coordinates. Simulations plot colored glyph markers at float
// positions; the canvas projects them onto its cell grid.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	glyph string
	color lipgloss.Color
}

// Canvas is a Width×Height glyph grid mapped to the world rectangle
// [xmin, xmax] × [ymin, ymax]. Row 0 corresponds to ymax so the world
// y axis points up on screen.
type Canvas struct {
	Width, Height          int
	xmin, xmax, ymin, ymax float64
	cells                  [][]cell
}

func New(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		xmin:   -1, xmax: 1, ymin: -1, ymax: 1,
		cells: make([][]cell, h),
	}
	for i := range c.cells {
		c.cells[i] = make([]cell, w)
	}
	return c
}

// SetBounds sets the world rectangle the grid covers.
func (c *Canvas) SetBounds(xmin, xmax, ymin, ymax float64) {
	c.xmin, c.xmax, c.ymin, c.ymax = xmin, xmax, ymin, ymax
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = cell{}
		}
	}
}

// Plot places a glyph at world position (x, y). Points outside the
// bounds are dropped. A later Plot into the same cell overwrites the
// earlier one, so callers paint trails before live bodies.
func (c *Canvas) Plot(x, y float64, glyph string, color lipgloss.Color) {
	col, row, ok := c.project(x, y)
	if !ok {
		return
	}
	c.cells[row][col] = cell{glyph: glyph, color: color}
}

func (c *Canvas) project(x, y float64) (col, row int, ok bool) {
	if c.xmax <= c.xmin || c.ymax <= c.ymin {
		return 0, 0, false
	}
	if x < c.xmin || x > c.xmax || y < c.ymin || y > c.ymax {
		return 0, 0, false
	}
	col = int((x - c.xmin) / (c.xmax - c.xmin) * float64(c.Width-1))
	row = int((c.ymax - y) / (c.ymax - c.ymin) * float64(c.Height-1))
	return col, row, true
}

// String renders the grid, styling each occupied cell with its color.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range row {
			if cl.glyph == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(cl.color).Render(cl.glyph))
		}
	}
	return b.String()
}
