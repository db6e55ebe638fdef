package heightmap

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise parameters chosen for terrain-like relief at typical grid sizes.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 4.0
)

// Generate synthesizes a rows x cols fractal terrain from Perlin noise,
// normalized to span the full 0..255 sample range. The same seed always
// produces the same grid.
func Generate(rows, cols int, seed int64) *Grid {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	values := make([]float64, rows*cols)
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := p.Noise2D(
				noiseScale*float64(c)/float64(cols),
				noiseScale*float64(r)/float64(rows),
			)
			values[r*cols+c] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	g := NewGrid(rows, cols)
	span := hi - lo
	if span == 0 {
		return g
	}
	for i, v := range values {
		g.samples[i] = uint8(math.Round((v - lo) / span * 255))
	}
	return g
}
