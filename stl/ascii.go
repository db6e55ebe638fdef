package stl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/AdamC19/AFM-to-STL/mesh"
)

// ASCIIEncoder writes the text STL format: a "solid" header, a fixed
// seven-line block per facet, and an "endsolid" trailer written by Close.
// Coordinates use Go's shortest round-trip decimal form. The normal is the
// conventional zero vector; slicers recompute it from the winding.
type ASCIIEncoder struct {
	w     *bufio.Writer
	name  string
	count int
}

// NewASCIIEncoder writes the solid header and returns the encoder.
func NewASCIIEncoder(w io.Writer, name string) (*ASCIIEncoder, error) {
	e := &ASCIIEncoder{w: bufio.NewWriter(w), name: name}
	if _, err := fmt.Fprintf(e.w, "solid %s\n", name); err != nil {
		return nil, errors.Wrap(err, "stl: write header")
	}
	return e, nil
}

// WriteFacet appends one facet block.
func (e *ASCIIEncoder) WriteFacet(f mesh.Facet) error {
	if _, err := fmt.Fprintf(e.w,
		" facet normal 0 0 0\n"+
			" outer loop\n"+
			"  vertex %v %v %v\n"+
			"  vertex %v %v %v\n"+
			"  vertex %v %v %v\n"+
			" endloop\n"+
			" endfacet\n",
		f.A.X(), f.A.Y(), f.A.Z(),
		f.B.X(), f.B.Y(), f.B.Z(),
		f.C.X(), f.C.Y(), f.C.Z(),
	); err != nil {
		return errors.Wrapf(err, "stl: write facet %d", e.count)
	}
	e.count++
	return nil
}

// Count returns the number of facets written so far.
func (e *ASCIIEncoder) Count() int { return e.count }

// Close writes the endsolid trailer and flushes buffered text.
func (e *ASCIIEncoder) Close() error {
	if _, err := fmt.Fprintf(e.w, "endsolid %s\n", e.name); err != nil {
		return errors.Wrap(err, "stl: write trailer")
	}
	if err := e.w.Flush(); err != nil {
		return errors.Wrap(err, "stl: flush")
	}
	return nil
}
