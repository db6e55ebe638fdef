package mesh

import "github.com/pkg/errors"

// HeightGrid is the source of raw 8-bit height samples. The heightmap
// package provides the concrete implementation; the mesher only needs
// read access.
type HeightGrid interface {
	Rows() int
	Cols() int
	At(row, col int) uint8
}

// Lattice is the doubled vertex field the mesher sweeps: real vertices (one
// per sample) interleaved with center vertices (one per interior 2x2 block,
// averaging its corners). In line addressing, even lines are real rows and
// odd lines are center rows; center lines have one fewer column and there is
// no center line after the last real row.
//
// Parity and bounds arithmetic live here, behind Real, Center and AtLine, so
// the meshing passes never index raw storage.
type Lattice struct {
	rows, cols int
	reals      [][]Vertex
	centers    [][]Vertex
}

// NewLattice builds the doubled field from a height grid. Heights are
// normalized so the lowest sample sits exactly baseThickness above the
// floor.
func NewLattice(g HeightGrid, p Params) (*Lattice, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	rows, cols := g.Rows(), g.Cols()
	if rows < 2 || cols < 2 {
		return nil, errors.Wrapf(ErrInvalidGrid, "%dx%d", rows, cols)
	}

	lowest := g.At(0, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s := g.At(r, c); s < lowest {
				lowest = s
			}
		}
	}

	l := &Lattice{
		rows:    rows,
		cols:    cols,
		reals:   make([][]Vertex, rows),
		centers: make([][]Vertex, rows-1),
	}
	for r := 0; r < rows; r++ {
		l.reals[r] = make([]Vertex, cols)
		for c := 0; c < cols; c++ {
			z := float64(g.At(r, c)-lowest)*p.ZScale + p.BaseThickness
			l.reals[r][c] = V(float64(c)*p.Pitch, float64(r)*p.Pitch, z)
		}
	}
	half := p.Pitch / 2
	for r := 0; r < rows-1; r++ {
		l.centers[r] = make([]Vertex, cols-1)
		for c := 0; c < cols-1; c++ {
			sw := l.reals[r][c]
			se := l.reals[r][c+1]
			nw := l.reals[r+1][c]
			ne := l.reals[r+1][c+1]
			z := (sw.Z() + se.Z() + nw.Z() + ne.Z()) / 4
			l.centers[r][c] = V(sw.X()+half, sw.Y()+half, z)
		}
	}
	return l, nil
}

// Rows returns the number of real rows.
func (l *Lattice) Rows() int { return l.rows }

// Cols returns the number of real columns.
func (l *Lattice) Cols() int { return l.cols }

// Lines returns the number of lines in the doubled field, 2*rows-1.
func (l *Lattice) Lines() int { return 2*l.rows - 1 }

// Real returns the measured vertex at a real row and column.
func (l *Lattice) Real(row, col int) (Vertex, error) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return Vertex{}, errors.Wrapf(ErrMeshBounds, "real (%d,%d)", row, col)
	}
	return l.reals[row][col], nil
}

// Center returns the interpolated vertex inside the 2x2 block whose
// south-west corner is the real vertex at (row,col).
func (l *Lattice) Center(row, col int) (Vertex, error) {
	if row < 0 || row >= l.rows-1 || col < 0 || col >= l.cols-1 {
		return Vertex{}, errors.Wrapf(ErrMeshBounds, "center (%d,%d)", row, col)
	}
	return l.centers[row][col], nil
}

// AtLine addresses the doubled field directly: even lines resolve to real
// vertices, odd lines to center vertices.
func (l *Lattice) AtLine(line, col int) (Vertex, error) {
	if line < 0 || line >= l.Lines() {
		return Vertex{}, errors.Wrapf(ErrMeshBounds, "line %d", line)
	}
	if line%2 == 0 {
		return l.Real(line/2, col)
	}
	return l.Center(line/2, col)
}
