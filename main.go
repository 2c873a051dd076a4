package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("go-life: ")

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(utils.DefaultConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		config = utils.DefaultConfig()
	}

	// The loop only ends on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, closeRenderer, err := newRenderer(config, os.Stdout, stop)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	g := initializeGame(config, renderer, config.ResolveSeed(time.Now()))

	// Any display failure is fatal
	if err = simulate(ctx, g, utils.FrameDelay); err != nil {
		closeRenderer()
		log.Fatalf("%+v", err)
	}
	closeRenderer()
}
