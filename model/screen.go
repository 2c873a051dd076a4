package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenRenderer draws frames onto a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
	rows   int
}

// NewScreenRenderer initializes screen, or the terminal when screen is nil
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
		}
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.HideCursor()

	return &ScreenRenderer{screen: screen, style: tcell.StyleDefault}, nil
}

// Render clears the screen and draws the grid from the top-left corner
func (r *ScreenRenderer) Render(g *Grid) error {
	r.screen.Clear()
	for y := range g.height {
		for x := range g.width {
			glyph := gridPosDead
			if g.cells[g.index(x, y)] {
				glyph = gridPosAlive
			}
			r.screen.SetContent(x, y, glyph, nil, r.style)
		}
	}
	r.rows = g.height
	r.screen.Show()
	return nil
}

// Caption draws line on the row under the last frame
func (r *ScreenRenderer) Caption(line string) error {
	col := 0
	for _, ch := range line {
		r.screen.SetContent(col, r.rows, ch, nil, r.style)
		col++
	}
	r.screen.Show()
	return nil
}

// WatchInterrupt calls stop once Ctrl-C or Escape is pressed.
// Raw mode swallows the terminal's interrupt signal, so the key is mapped back to it here.
func (r *ScreenRenderer) WatchInterrupt(stop func()) {
	go func() {
		for {
			switch ev := r.screen.PollEvent().(type) {
			case nil:
				// screen finalized
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
					stop()
					return
				}
			}
		}
	}()
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
