package stl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdamC19/AFM-to-STL/heightmap"
	"github.com/AdamC19/AFM-to-STL/mesh"
)

func facet(ax, ay, az, bx, by, bz, cx, cy, cz float64) mesh.Facet {
	return mesh.Facet{
		A: mesh.V(ax, ay, az),
		B: mesh.V(bx, by, bz),
		C: mesh.V(cx, cy, cz),
	}
}

// testModel is the minimal checkerboard: 2x2 samples, unit pitch and scale,
// no base. It produces exactly 14 facets.
func testModel(t *testing.T, name string) *mesh.Model {
	t.Helper()
	g := heightmap.NewGrid(2, 2)
	g.Set(0, 1, 255)
	g.Set(1, 0, 255)
	m, err := mesh.NewModel(name, g, mesh.Params{Pitch: 1, ZScale: 1})
	require.NoError(t, err)
	return m
}

// uniformModel builds a rows x cols grid with every sample equal.
func uniformModel(t *testing.T, name string, rows, cols int, v uint8, p mesh.Params) *mesh.Model {
	t.Helper()
	g := heightmap.NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, v)
		}
	}
	m, err := mesh.NewModel(name, g, p)
	require.NoError(t, err)
	return m
}
