package mesh

import "github.com/pkg/errors"

var (
	// ErrInvalidGrid reports a height grid too small to mesh. A single row
	// or column cannot form facets.
	ErrInvalidGrid = errors.New("mesh: grid must be at least 2x2")

	// ErrInvalidParameter reports a non-positive pitch or scale.
	ErrInvalidParameter = errors.New("mesh: invalid parameter")

	// ErrMeshBounds reports a lattice access outside the doubled vertex
	// field. Surfaced as an error rather than a panic so a topology bug can
	// never crash an export.
	ErrMeshBounds = errors.New("mesh: lattice access out of range")
)
