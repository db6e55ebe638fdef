// Package mesh turns a rectangular grid of height samples into a stream of
// triangular facets forming a closed, printable solid: a contoured top
// surface, vertical side walls and a flat floor at z=0.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a point of the solid in physical units: x and y in the sample
// pitch unit, z in the model's vertical unit. It is a plain array value, so
// a "modified" vertex is always a fresh value and facets can share vertices
// without aliasing each other.
type Vertex = mgl64.Vec3

// V is shorthand for constructing a Vertex.
func V(x, y, z float64) Vertex {
	return Vertex{x, y, z}
}

// onFloor returns v projected straight down onto the base plane.
func onFloor(v Vertex) Vertex {
	return Vertex{v.X(), v.Y(), 0}
}

// Facet is a single triangle of the output solid. A, B, C follow the
// right-hand rule as constructed by the mesher; the wire formats carry a
// conventional zero normal, so consumers must never reorder the vertices.
type Facet struct {
	A, B, C Vertex
}

// FacetWriter consumes facets as the mesher produces them. Encoders
// implement this so the stream is serialized immediately and peak memory
// stays proportional to the grid, not the facet count.
type FacetWriter interface {
	WriteFacet(f Facet) error
}
