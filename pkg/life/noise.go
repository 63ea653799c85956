package life

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Noise parameters for ReseedNoise
const (
	NoiseAlpha     = 2.0
	NoiseBeta      = 2.0
	NoiseOctaves   = 3
	NoiseScale     = 0.08 // Sample spacing; integer coordinates always sample 0
	NoiseThreshold = 0.0
)

// ReseedNoise fills the grid from a 2D Perlin field: a cell is alive where the
// noise at its scaled position is above threshold. The field seed is drawn from rng.
func (g *Grid) ReseedNoise(rng *rand.Rand, scale, threshold float64) {
	if scale <= 0 {
		scale = NoiseScale
	}
	p := perlin.NewPerlin(NoiseAlpha, NoiseBeta, NoiseOctaves, rng.Int63())
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			v := p.Noise2D(float64(col)*scale, float64(row)*scale)
			g.cells[row*g.cols+col] = v > threshold
		}
	}
	g.reset()
}
