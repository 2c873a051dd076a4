package model

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = '#'
	gridPosDead  = ' '

	ansiClearSeq = "\x1b[H\x1b[2J"
	clearCmd     = "clear"
)

// Renderer draws one frame of a grid onto a display
type Renderer interface {
	Render(g *Grid) error
}

// Captioner is implemented by renderers that can show a status line under the frame
type Captioner interface {
	Caption(line string) error
}

// Clearer resets a display so frames do not stack
type Clearer interface {
	Clear(w io.Writer) error
}

// ANSIClearer homes the cursor and erases the screen with escape sequences
type ANSIClearer struct{}

func (ANSIClearer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, ansiClearSeq)
	return errors.Wrap(err, "[ANSIClearer.Clear] failed to write escape sequence")
}

// CommandClearer clears the terminal by running an external command
type CommandClearer struct {
	// Name defaults to "clear"
	Name string
}

func (c CommandClearer) Clear(w io.Writer) error {
	name := c.Name
	if name == "" {
		name = clearCmd
	}

	cmd := exec.Command(name)
	cmd.Stdout = w
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "[CommandClearer.Clear] failed to run %+v", name)
	}
	return nil
}

// TextRenderer writes frames as plain text, one glyph per cell
type TextRenderer struct {
	Out     io.Writer
	Clearer Clearer
}

// NewTextRenderer returns a renderer for out, clearing with ANSI escapes when clearer is nil
func NewTextRenderer(out io.Writer, clearer Clearer) *TextRenderer {
	if clearer == nil {
		clearer = ANSIClearer{}
	}
	return &TextRenderer{Out: out, Clearer: clearer}
}

// Render clears the display and draws the grid
func (r *TextRenderer) Render(g *Grid) error {
	if err := r.Clearer.Clear(r.Out); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render] failed to clear display")
	}
	if _, err := io.WriteString(r.Out, Frame(g)); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render] failed to write frame")
	}
	return nil
}

// Caption prints a line below the last frame
func (r *TextRenderer) Caption(line string) error {
	_, err := fmt.Fprintln(r.Out, line)
	return errors.Wrap(err, "[TextRenderer.Caption] failed to write caption")
}

// Frame returns the grid as height lines of width glyphs, top row first
func Frame(g *Grid) string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for y := range g.height {
		for x := range g.width {
			if g.cells[g.index(x, y)] {
				b.WriteByte(gridPosAlive)
			} else {
				b.WriteByte(gridPosDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
