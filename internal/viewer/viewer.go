// Package viewer runs the interactive terminal preview of an extracted map.
package viewer

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mapconv/internal/telemetry"
	"github.com/samdwyer/mapconv/internal/ui"
	"github.com/samdwyer/mapconv/internal/world"
)

// Display is a terminal the viewer can draw on and read events from.
type Display interface {
	ui.Canvas
	PollEvent() tcell.Event
	Sync()
	Close()
}

// Viewer holds the preview state.
type Viewer struct {
	display  Display
	renderer *ui.Renderer
	m        *world.Map
	offX     int
	offY     int
	running  bool
	moves    int

	closeOnce sync.Once
}

// New creates a viewer for m on a fresh terminal screen.
func New(m *world.Map) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithDisplay(m, screen), nil
}

// NewWithDisplay creates a viewer drawing on d.
func NewWithDisplay(m *world.Map, d Display) *Viewer {
	return &Viewer{
		display:  d,
		renderer: ui.NewRenderer(d),
		m:        m,
		running:  true,
	}
}

// Run draws the map and handles input until the user quits or ctx is done.
// The display is closed on return.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	_, span := tracer.Start(ctx, "viewer.run")
	defer span.End()

	// PollEvent blocks, so cancellation closes the display to wake it; a
	// finalized screen reports a nil event, which ends the loop.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			v.close()
		case <-done:
		}
	}()
	defer v.close()

	for v.running {
		v.renderer.Render(v.m, v.offX, v.offY)
		v.handleEvent(v.display.PollEvent())
	}

	span.SetAttributes(attribute.Int("viewer.scrolls", v.moves))
	return ctx.Err()
}

func (v *Viewer) close() {
	v.closeOnce.Do(v.display.Close)
}

// handleEvent processes a single terminal event.
func (v *Viewer) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.display.Sync()
		v.scroll(0, 0)
	case nil:
		// PollEvent returns nil once the screen is finalized
		v.running = false
	}
}

// handleKey processes keyboard input.
func (v *Viewer) handleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyHome:
		v.offX, v.offY = 0, 0

	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			v.running = false
		}
	}
}

// scroll moves the viewport by the given delta, keeping it on the map.
func (v *Viewer) scroll(dx, dy int) {
	cols, rows := v.renderer.Viewport()
	maxX := max(0, v.m.Width-cols)
	maxY := max(0, v.m.Rows()-rows)

	newX := min(max(v.offX+dx, 0), maxX)
	newY := min(max(v.offY+dy, 0), maxY)
	if newX != v.offX || newY != v.offY {
		v.moves++
	}
	v.offX, v.offY = newX, newY
}
