package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Board geometry and pacing are fixed at build time
const (
	GridWidth  = 30
	GridHeight = 30
	FrameDelay = 150 * time.Millisecond
)

// DefaultConfigFile is read from the working directory when present
const DefaultConfigFile = "life.json"

const (
	RendererText   = "text"
	RendererScreen = "screen"

	ClearANSI    = "ansi"
	ClearCommand = "command"

	SeederUniform  = "uniform"
	SeederNoise    = "noise"
	SeederPatterns = "patterns"
)

// Config holds the presentation options for the game
type Config struct {
	Renderer  string `json:"renderer"`
	Clear     string `json:"clear"`
	Seeder    string `json:"seeder"`
	Seed      int64  `json:"seed"` // 0 picks a time-based seed
	Workers   int    `json:"workers"`
	ShowStats bool   `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Renderer: RendererText,
		Clear:    ClearANSI,
		Seeder:   SeederUniform,
		Workers:  1,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects unknown option values
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererText, RendererScreen:
	default:
		return errors.Errorf("[Config.Validate] unknown renderer %q", c.Renderer)
	}

	switch c.Clear {
	case ClearANSI, ClearCommand:
	default:
		return errors.Errorf("[Config.Validate] unknown clear mode %q", c.Clear)
	}

	switch c.Seeder {
	case SeederUniform, SeederNoise, SeederPatterns:
	default:
		return errors.Errorf("[Config.Validate] unknown seeder %q", c.Seeder)
	}

	if c.Workers < 0 {
		return errors.Errorf("[Config.Validate] workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// ResolveSeed returns the configured seed, or one derived from now when unset
func (c Config) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
