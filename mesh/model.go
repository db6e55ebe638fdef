package mesh

import (
	"context"
	"math"

	"github.com/pkg/errors"
)

// Model ties a named height grid and its scaling to the facet stream.
// Construction builds the vertex lattice once; the facets themselves are
// produced on demand and never retained.
type Model struct {
	Name string

	lat    *Lattice
	params Params
}

// NewModel validates the grid and parameters and builds the vertex field.
func NewModel(name string, g HeightGrid, p Params) (*Model, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidParameter, "empty model name")
	}
	lat, err := NewLattice(g, p)
	if err != nil {
		return nil, err
	}
	return &Model{Name: name, lat: lat, params: p}, nil
}

// Rows returns the height grid's row count.
func (m *Model) Rows() int { return m.lat.Rows() }

// Cols returns the height grid's column count.
func (m *Model) Cols() int { return m.lat.Cols() }

// FacetCount returns the predicted facet count for this model.
func (m *Model) FacetCount() int {
	return PredictFacetCount(m.lat.Rows(), m.lat.Cols())
}

// WriteTo streams the solid's facets to w.
func (m *Model) WriteTo(ctx context.Context, w FacetWriter) error {
	return BuildSolid(ctx, m.lat, w)
}

// Bounds returns the axis-aligned bounding box of the solid. The floor pins
// the minimum z to 0.
func (m *Model) Bounds() (min, max Vertex) {
	rows, cols := m.lat.Rows(), m.lat.Cols()
	min = Vertex{0, 0, 0}
	max = Vertex{0, 0, 0}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.lat.reals[r][c]
			max = Vertex{
				math.Max(max.X(), v.X()),
				math.Max(max.Y(), v.Y()),
				math.Max(max.Z(), v.Z()),
			}
		}
	}
	return min, max
}
