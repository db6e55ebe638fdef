package stl

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/AdamC19/AFM-to-STL/mesh"
)

// Export streams the model's facets to w in the chosen format and returns
// the number of facets written. The encoder is always closed, so a binary
// stream that completes without error satisfies the 84 + 50*count size
// invariant.
func Export(ctx context.Context, m *mesh.Model, w io.Writer, format Format) (int, error) {
	var (
		enc Encoder
		err error
	)
	switch format {
	case FormatBinary:
		enc, err = NewBinaryEncoder(w, m.Name, m.FacetCount())
	default:
		enc, err = NewASCIIEncoder(w, m.Name)
	}
	if err != nil {
		return 0, err
	}
	err = multierr.Append(m.WriteTo(ctx, enc), enc.Close())
	return enc.Count(), err
}

// ExportFile writes the model to a new file at path. The handle is closed
// on every path; on failure any partial file is left in place for the
// caller to inspect or discard.
func ExportFile(ctx context.Context, m *mesh.Model, path string, format Format) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "stl: create output")
	}
	defer func() {
		err = multierr.Append(err, errors.Wrap(f.Close(), "stl: close output"))
	}()
	return Export(ctx, m, f, format)
}
