package model

import (
	"math/rand/v2"
	"slices"

	"github.com/aquilax/go-perlin"
)

// aliveOneIn is the inverse probability of a seeded cell starting alive
const aliveOneIn = 3

const (
	noiseAlpha  = 2.
	noiseBeta   = 2.
	noiseOctave = 3
	noiseScale  = 0.17
)

// RandSource is the randomness the seeders draw from; *rand.Rand satisfies it
type RandSource interface {
	IntN(n int) int
}

// NewRandSource returns a deterministic PCG source for the given seed
func NewRandSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// Randomize sets every cell, row-major, alive with probability 1/3
func (g *Grid) Randomize(src RandSource) {
	for i := range g.cells {
		g.cells[i] = src.IntN(aliveOneIn) == 0
	}
}

// RandomizeNoise seeds the grid from 2D Perlin noise.
// The third of the cells with the highest noise value start alive.
func (g *Grid) RandomizeNoise(seed int64) {
	var (
		p      = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
		values = make([]float64, len(g.cells))
	)
	for y := range g.height {
		for x := range g.width {
			values[g.index(x, y)] = p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale)
		}
	}

	g.Clear()
	alive := len(values) / aliveOneIn
	if alive == 0 {
		return
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	threshold := sorted[len(sorted)-alive]
	for i, v := range values {
		g.cells[i] = v >= threshold
	}
}
