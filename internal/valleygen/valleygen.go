// Package valleygen builds random valleys for tests and benchmarks.
package valleygen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/blizzard/gridgraph"
)

// ErrBadDensity indicates a density outside 0..100.
var ErrBadDensity = errors.New("valleygen: density must be within 0..100")

// Config holds generation parameters.
type Config struct {
	// Density is the percentage of interior cells that start with a hazard.
	Density int
	// Seed feeds the random source; equal seeds give equal valleys.
	Seed int64
	// RandomOpenings places entry and exit in random columns instead of
	// the top-left and bottom-right corners.
	RandomOpenings bool
	// ClearOpenings keeps vertical hazards out of the entry and exit columns.
	ClearOpenings bool
}

// Option configures Random.
type Option func(*Config)

// DefaultConfig returns Density=50, Seed=1, corner openings, no clearing.
func DefaultConfig() Config {
	return Config{Density: 50, Seed: 1}
}

// WithDensity sets the hazard percentage.
func WithDensity(pct int) Option {
	return func(c *Config) { c.Density = pct }
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithRandomOpenings draws the entry and exit columns at random.
func WithRandomOpenings() Option {
	return func(c *Config) { c.RandomOpenings = true }
}

// WithClearOpenings turns vertical hazards in the opening columns horizontal.
func WithClearOpenings() Option {
	return func(c *Config) { c.ClearOpenings = true }
}

var dirs = []gridgraph.Direction{gridgraph.Up, gridgraph.Right, gridgraph.Down, gridgraph.Left}

// Random builds a w×h valley. For each interior cell, in row-major order, it
// rolls the density and then a direction, so valleys are reproducible per seed.
func Random(w, h int, opts ...Option) (*gridgraph.Grid, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Density < 0 || cfg.Density > 100 {
		return nil, fmt.Errorf("%w: %d", ErrBadDensity, cfg.Density)
	}
	if w <= 0 || h <= 0 {
		return nil, gridgraph.ErrEmptyGrid
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	entry := gridgraph.Position{X: 1, Y: 0}
	exit := gridgraph.Position{X: w, Y: h + 1}
	if cfg.RandomOpenings {
		entry.X = 1 + rng.Intn(w)
		exit.X = 1 + rng.Intn(w)
	}

	var hz []gridgraph.Hazard
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			if rng.Intn(100) >= cfg.Density {
				continue
			}
			d := dirs[rng.Intn(len(dirs))]
			vertical := d == gridgraph.Up || d == gridgraph.Down
			if cfg.ClearOpenings && vertical && (x == entry.X || x == exit.X) {
				d = gridgraph.Right
			}
			hz = append(hz, gridgraph.Hazard{Pos: gridgraph.Position{X: x, Y: y}, Dir: d})
		}
	}

	return gridgraph.NewGrid(w, h, entry, exit, hz)
}
