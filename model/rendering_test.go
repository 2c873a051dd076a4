package model

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

var errClear = errors.New("terminal gone")

type failingClearer struct{}

func (failingClearer) Clear(io.Writer) error { return errClear }

func TestFrame(t *testing.T) {
	g := gridFrom(
		"#.#",
		"...",
		".##",
	)
	want := "# #\n   \n ##\n"
	if got := Frame(g); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFrameShape(t *testing.T) {
	g := randomGrid(30, 30, 8)
	lines := strings.Split(strings.TrimSuffix(Frame(g), "\n"), "\n")
	if len(lines) != 30 {
		t.Fatalf("got %d lines, want 30", len(lines))
	}
	for i, line := range lines {
		if len(line) != 30 {
			t.Fatalf("line %d has %d glyphs, want 30", i, len(line))
		}
	}
}

func TestTextRendererClearsBeforeDrawing(t *testing.T) {
	var out bytes.Buffer
	g := gridFrom("#.", ".#")

	r := NewTextRenderer(&out, nil)
	if err := r.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := ansiClearSeq + "# \n #\n"; out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestTextRendererFailsWhenClearFails(t *testing.T) {
	var out bytes.Buffer
	r := NewTextRenderer(&out, failingClearer{})

	err := r.Render(NewGrid(3, 3))
	if errors.Cause(err) != errClear {
		t.Fatalf("got %v, want clear failure", err)
	}
	if out.Len() != 0 {
		t.Fatalf("frame written after failed clear: %q", out.String())
	}
}

func TestTextRendererCaption(t *testing.T) {
	var out bytes.Buffer
	r := NewTextRenderer(&out, nil)
	if err := r.Caption("Gen: 1"); err != nil {
		t.Fatalf("Caption: %v", err)
	}
	if out.String() != "Gen: 1\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestCommandClearerMissingCommand(t *testing.T) {
	c := CommandClearer{Name: "go-life-no-such-command"}
	if err := c.Clear(io.Discard); err == nil {
		t.Fatal("expected an error for a missing clear command")
	}
}
