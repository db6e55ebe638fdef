package stl

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/AdamC19/AFM-to-STL/mesh"
)

const (
	headerSize = 80
	recordSize = 50
)

// BinaryEncoder writes the binary STL format: an 80-byte description
// header, a little-endian uint32 facet count, then one 50-byte record per
// facet (zero normal, nine float32 coordinates, zero attribute count). The
// count is written up front from the caller's prediction so the stream
// never needs buffering; Close verifies the prediction held.
type BinaryEncoder struct {
	w         io.Writer
	predicted int
	count     int
	record    [recordSize]byte
}

// NewBinaryEncoder writes the header and facet count and returns the
// encoder. expectedFacets must equal the number of facets that will be
// streamed; for a grid solid that is mesh.PredictFacetCount.
func NewBinaryEncoder(w io.Writer, name string, expectedFacets int) (*BinaryEncoder, error) {
	if expectedFacets < 0 || int64(expectedFacets) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrFacetCountMismatch, "expected count %d out of range", expectedFacets)
	}
	var header [headerSize]byte
	copy(header[:], name+" (binary STL)")
	if _, err := w.Write(header[:]); err != nil {
		return nil, errors.Wrap(err, "stl: write header")
	}
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(expectedFacets))
	if _, err := w.Write(count[:]); err != nil {
		return nil, errors.Wrap(err, "stl: write facet count")
	}
	return &BinaryEncoder{w: w, predicted: expectedFacets}, nil
}

// WriteFacet appends one 50-byte record. The normal and attribute bytes of
// the record buffer stay zero for its whole life.
func (e *BinaryEncoder) WriteFacet(f mesh.Facet) error {
	off := 12 // skip the zero normal
	for _, v := range [3]mesh.Vertex{f.A, f.B, f.C} {
		binary.LittleEndian.PutUint32(e.record[off:], math.Float32bits(float32(v.X())))
		binary.LittleEndian.PutUint32(e.record[off+4:], math.Float32bits(float32(v.Y())))
		binary.LittleEndian.PutUint32(e.record[off+8:], math.Float32bits(float32(v.Z())))
		off += 12
	}
	if _, err := e.w.Write(e.record[:]); err != nil {
		return errors.Wrapf(err, "stl: write facet %d", e.count)
	}
	e.count++
	return nil
}

// Count returns the number of facets written so far.
func (e *BinaryEncoder) Count() int { return e.count }

// Close verifies the streamed facet count against the header.
func (e *BinaryEncoder) Close() error {
	if e.count != e.predicted {
		return errors.Wrapf(ErrFacetCountMismatch, "header says %d, wrote %d", e.predicted, e.count)
	}
	return nil
}
