package stl

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamC19/AFM-to-STL/mesh"
)

func TestBinaryExportSize(t *testing.T) {
	// 4x4 grid: 4*16 + 2*8 - 10 = 70 facets, 84 + 50*70 bytes.
	m := uniformModel(t, "slab", 4, 4, 128, mesh.Params{Pitch: 1, ZScale: 1, BaseThickness: 1})

	var buf bytes.Buffer
	n, err := Export(context.Background(), m, &buf, FormatBinary)
	require.NoError(t, err)
	require.Equal(t, 70, n)
	assert.Equal(t, 84+50*70, buf.Len())
	assert.Equal(t, 3584, buf.Len())
}

func TestBinaryLayout(t *testing.T) {
	m := testModel(t, "checker")

	var buf bytes.Buffer
	n, err := Export(context.Background(), m, &buf, FormatBinary)
	require.NoError(t, err)
	require.Equal(t, 14, n)

	raw := buf.Bytes()
	require.Len(t, raw, 84+50*14)

	// Header carries the model name and pads to exactly 80 bytes.
	assert.True(t, bytes.HasPrefix(raw, []byte("checker")))
	assert.Equal(t, uint32(14), binary.LittleEndian.Uint32(raw[80:84]))

	for i := 0; i < n; i++ {
		rec := raw[84+50*i:]
		// Zero normal and zero attribute byte count on every record.
		assert.Equal(t, make([]byte, 12), rec[:12], "record %d normal", i)
		assert.Equal(t, []byte{0, 0}, rec[48:50], "record %d attributes", i)
	}
}

func TestBinaryHeaderTruncation(t *testing.T) {
	long := bytes.Repeat([]byte("n"), 200)
	var buf bytes.Buffer
	enc, err := NewBinaryEncoder(&buf, string(long), 0)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	assert.Equal(t, 84, buf.Len())
}

func TestBinaryCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewBinaryEncoder(&buf, "short", 5)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, enc.WriteFacet(facet(0, 0, 0, 1, 0, 0, 0, 1, 0)))
	}
	require.ErrorIs(t, enc.Close(), ErrFacetCountMismatch)
}

func TestBinaryMatchesASCIICount(t *testing.T) {
	m := uniformModel(t, "slab", 3, 5, 77, mesh.Params{Pitch: 0.5, ZScale: 2, BaseThickness: 1})

	var text, bin bytes.Buffer
	asciiCount, err := Export(context.Background(), m, &text, FormatASCII)
	require.NoError(t, err)
	binCount, err := Export(context.Background(), m, &bin, FormatBinary)
	require.NoError(t, err)

	headerCount := binary.LittleEndian.Uint32(bin.Bytes()[80:84])
	recordCount := (bin.Len() - 84) / 50
	assert.Equal(t, asciiCount, binCount)
	assert.Equal(t, uint32(asciiCount), headerCount)
	assert.Equal(t, asciiCount, recordCount)
	assert.Equal(t, mesh.PredictFacetCount(3, 5), asciiCount)
}

func TestBinaryExportIsByteIdentical(t *testing.T) {
	m := testModel(t, "checker")

	var first, second bytes.Buffer
	_, err := Export(context.Background(), m, &first, FormatBinary)
	require.NoError(t, err)
	_, err = Export(context.Background(), m, &second, FormatBinary)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}
