// Package heightmap acquires the height grids the mesher consumes: from
// grayscale-converted images on disk, or synthesized from fractal noise for
// self-contained runs.
package heightmap

// Grid is a rectangular field of 8-bit height samples, row-major. It
// satisfies mesh.HeightGrid.
type Grid struct {
	rows, cols int
	samples    []uint8
}

// NewGrid returns a zero-filled rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, samples: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at (row, col).
func (g *Grid) At(row, col int) uint8 {
	return g.samples[row*g.cols+col]
}

// Set stores a sample at (row, col).
func (g *Grid) Set(row, col int, v uint8) {
	g.samples[row*g.cols+col] = v
}

// Min returns the smallest sample in the grid.
func (g *Grid) Min() uint8 {
	lowest := g.samples[0]
	for _, s := range g.samples[1:] {
		if s < lowest {
			lowest = s
		}
	}
	return lowest
}

// Max returns the largest sample in the grid.
func (g *Grid) Max() uint8 {
	highest := g.samples[0]
	for _, s := range g.samples[1:] {
		if s > highest {
			highest = s
		}
	}
	return highest
}
