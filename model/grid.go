package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is a fixed-size toroidal board stored row-major in a single buffer
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a new grid of dead cells with the specified dimensions
func NewGrid(width, height int) *Grid {
	width, height = max(width, 1), max(height, 1)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Len returns the number of cells in the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

// Reset resizes the grid to new dimensions, leaving every cell dead
func (g *Grid) Reset(width, height int) {
	width, height = max(width, 1), max(height, 1)
	g.width = width
	g.height = height

	if cap(g.cells) < width*height {
		g.cells = make([]bool, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[g.index(x, y)] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[g.index(x, y)]
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// wrap moves coord by offset around a ring of size dim.
// Adding dim before the modulo keeps the intermediate value non-negative.
func wrap(coord, offset, dim int) int {
	return (coord + offset + dim) % dim
}

// CountNeighbors counts living cells among the 8 toroidally adjacent positions
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := wrap(y, dy, g.height)
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[g.index(wrap(x, dx, g.width), ny)] {
				count++
			}
		}
	}
	return count
}

// stepRows writes rows [startRow, endRow) of the next generation into next
func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			idx := g.index(x, y)
			next.cells[idx] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[idx])
		}
	}
}

func (g *Grid) newNext(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// NextGeneration returns a new grid holding the next generation.
// The receiver is only read, never written.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := g.newNext(pool)
	g.stepRows(next, 0, g.height)
	return next
}

// NextGenerationParallel calculates the next generation in row bands across workers.
// A non-positive worker count uses one band per CPU.
func (g *Grid) NextGenerationParallel(pool *GridPool, workers int) *Grid {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 {
		return g.NextGeneration(pool)
	}

	next := g.newNext(pool)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	// bands never fail; Wait is only a barrier here
	_ = eg.Wait()

	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}
