package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game is the state carried between frames
type game struct {
	grid       *model.Grid
	pool       *model.GridPool
	renderer   model.Renderer
	stats      *utils.Stats
	config     utils.Config
	generation int
}

// newRenderer builds the configured renderer and a func that releases the display
func newRenderer(config utils.Config, out io.Writer, interrupt func()) (model.Renderer, func(), error) {
	if config.Renderer == utils.RendererScreen {
		screen, err := model.NewScreenRenderer(nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "[newRenderer] failed to open screen")
		}
		screen.WatchInterrupt(interrupt)
		return screen, screen.Close, nil
	}

	var clearer model.Clearer = model.ANSIClearer{}
	if config.Clear == utils.ClearCommand {
		clearer = model.CommandClearer{}
	}
	return model.NewTextRenderer(out, clearer), func() {}, nil
}

// seedGrid populates the initial generation with the configured seeder
func seedGrid(grid *model.Grid, config utils.Config, seed int64) {
	switch config.Seeder {
	case utils.SeederNoise:
		grid.RandomizeNoise(seed)
	case utils.SeederPatterns:
		grid.SeedPatterns()
	default:
		grid.Randomize(model.NewRandSource(uint64(seed)))
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, renderer model.Renderer, seed int64) *game {
	grid := model.NewGrid(utils.GridWidth, utils.GridHeight)
	seedGrid(grid, config, seed)

	return &game{
		grid:     grid,
		pool:     model.NewGridPool(),
		renderer: renderer,
		stats:    utils.NewStats(),
		config:   config,
	}
}

// simulate draws and advances generations until ctx is done or rendering fails
func simulate(ctx context.Context, g *game, delay time.Duration) error {
	lastFrameTime := time.Now()

	for ctx.Err() == nil {
		frameStart := time.Now()

		if err := g.renderer.Render(g.grid); err != nil {
			return errors.Wrapf(err, "[simulate] failed to render generation %d", g.generation)
		}

		if g.config.ShowStats {
			g.stats.Update(g.generation, g.grid.CountLivingCells(), frameStart.Sub(lastFrameTime))
			if captioner, ok := g.renderer.(model.Captioner); ok {
				if err := captioner.Caption(g.stats.Line()); err != nil {
					return errors.Wrapf(err, "[simulate] failed to caption generation %d", g.generation)
				}
			}
		}
		lastFrameTime = frameStart

		next := g.grid.NextGenerationParallel(g.pool, g.config.Workers)
		model.GridToPool(g.grid, g.pool)
		g.grid = next
		g.generation++

		if !wait(ctx, delay) {
			break
		}
	}
	return nil
}

// wait pauses for d, returning false if ctx ends first
func wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
