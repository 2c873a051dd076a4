package model

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreenRenderer(t *testing.T) (*ScreenRenderer, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := NewScreenRenderer(screen)
	if err != nil {
		t.Fatalf("NewScreenRenderer: %v", err)
	}
	t.Cleanup(r.Close)
	screen.SetSize(10, 10)
	return r, screen
}

func TestScreenRendererDrawsGrid(t *testing.T) {
	r, screen := newSimScreenRenderer(t)

	g := gridFrom(
		"#..",
		".#.",
		"..#",
	)
	if err := r.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := r.Caption("ok"); err != nil {
		t.Fatalf("Caption: %v", err)
	}

	cells, width, _ := screen.GetContents()
	runeAt := func(x, y int) rune {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			return 0
		}
		return runes[0]
	}

	for y := range 3 {
		for x := range 3 {
			want := rune(gridPosDead)
			if x == y {
				want = gridPosAlive
			}
			if got := runeAt(x, y); got != want {
				t.Fatalf("cell (%d,%d) shows %q, want %q", x, y, got, want)
			}
		}
	}
	if runeAt(0, 3) != 'o' || runeAt(1, 3) != 'k' {
		t.Fatalf("caption not drawn under the frame")
	}
}

func TestScreenRendererWatchInterrupt(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyCtrlC, tcell.KeyEscape} {
		r, screen := newSimScreenRenderer(t)

		stopped := make(chan struct{})
		r.WatchInterrupt(func() { close(stopped) })
		screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
		screen.InjectKey(key, 0, tcell.ModNone)

		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			t.Fatalf("key %v did not stop the game", key)
		}
	}
}
