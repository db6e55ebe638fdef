package stl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamC19/AFM-to-STL/mesh"
)

func TestExportFile(t *testing.T) {
	m := uniformModel(t, "slab", 4, 4, 10, mesh.Params{Pitch: 1, ZScale: 1, BaseThickness: 1})
	path := filepath.Join(t.TempDir(), "slab.stl")

	n, err := ExportFile(context.Background(), m, path, FormatBinary)
	require.NoError(t, err)
	require.Equal(t, 70, n)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 84+50*70, fi.Size())
}

func TestExportFileCreateFailure(t *testing.T) {
	m := testModel(t, "checker")
	path := filepath.Join(t.TempDir(), "missing", "out.stl")

	_, err := ExportFile(context.Background(), m, path, FormatASCII)
	require.Error(t, err)
}

func TestExportFileCancelledLeavesPartialFile(t *testing.T) {
	m := testModel(t, "checker")
	path := filepath.Join(t.TempDir(), "partial.stl")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExportFile(ctx, m, path, FormatASCII)
	require.ErrorIs(t, err, context.Canceled)

	// The handle was closed and whatever was written stays on disk for the
	// caller to discard.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
