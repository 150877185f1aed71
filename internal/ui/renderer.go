package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mapconv/internal/tilecode"
	"github.com/samdwyer/mapconv/internal/world"
)

// statusRows is the space kept free at the bottom for the status line.
const statusRows = 1

// Renderer draws a map viewport and a status line onto a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Viewport returns how many map columns and rows fit on the canvas.
func (r *Renderer) Viewport() (cols, rows int) {
	w, h := r.canvas.Size()
	return w, max(0, h-statusRows)
}

// Render draws the map with (offX, offY) at the top-left corner, then the
// status line.
func (r *Renderer) Render(m *world.Map, offX, offY int) {
	r.canvas.Clear()

	cols, rows := r.Viewport()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tile, ok := m.At(offX+x, offY+y)
			if !ok {
				continue
			}
			r.canvas.SetContent(x, y, rune(tilecode.Digit(int(tile))), tileStyle(tile))
		}
	}

	r.RenderMessage(statusLine(m, offX, offY), rows)
	r.canvas.Show()
}

// RenderMessage writes msg on row y starting at column 0.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}

// tileStyle colours a tile by index band; clamped tiles stand out in red.
func tileStyle(tile world.Tile) tcell.Style {
	switch {
	case !tile.InRange():
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	case tile.IsEmpty():
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case tile < 10:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case tile < 20:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	}
}

func statusLine(m *world.Map, offX, offY int) string {
	if !m.HasLayer {
		return fmt.Sprintf(" %dx%d  no layer data  q:quit ", m.Width, m.Height)
	}
	return fmt.Sprintf(" %dx%d  tiles:%d  clamped:%d  at %d,%d  arrows:scroll q:quit ",
		m.Width, m.Height, len(m.Tiles), m.OutOfRange(), offX, offY)
}
