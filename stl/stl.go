// Package stl serializes facet streams to the two STL wire formats. Both
// encoders implement mesh.FacetWriter, so facets are written the moment the
// mesher emits them and nothing is buffered beyond the underlying writer.
package stl

import (
	"github.com/pkg/errors"

	"github.com/AdamC19/AFM-to-STL/mesh"
)

// Format selects the output encoding.
type Format int

const (
	// FormatASCII is the human-readable text encoding.
	FormatASCII Format = iota
	// FormatBinary is the little-endian 50-byte-record encoding.
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatASCII:
		return "ascii"
	case FormatBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ErrFacetCountMismatch reports a binary encoder that streamed a different
// number of facets than the count written in its header. The file size
// invariant 84 + 50*count no longer holds, so the output is unusable.
var ErrFacetCountMismatch = errors.New("stl: facet count mismatch")

// Encoder is the common surface of the two format encoders.
type Encoder interface {
	mesh.FacetWriter

	// Count returns the number of facets written so far.
	Count() int

	// Close finalizes the stream. It must be called on every path, even
	// after a write error.
	Close() error
}
