package stl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCIIFacetBlock(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewASCIIEncoder(&buf, "plate")
	require.NoError(t, err)

	require.NoError(t, enc.WriteFacet(facet(
		0, 0, 0,
		1, 0, 0.5,
		0, 1, 255,
	)))
	require.NoError(t, enc.Close())

	want := "solid plate\n" +
		" facet normal 0 0 0\n" +
		" outer loop\n" +
		"  vertex 0 0 0\n" +
		"  vertex 1 0 0.5\n" +
		"  vertex 0 1 255\n" +
		" endloop\n" +
		" endfacet\n" +
		"endsolid plate\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, enc.Count())
}

func TestASCIIExportShape(t *testing.T) {
	m := testModel(t, "checker")

	var buf bytes.Buffer
	n, err := Export(context.Background(), m, &buf, FormatASCII)
	require.NoError(t, err)
	require.Equal(t, 14, n)

	text := buf.String()
	assert.True(t, strings.HasPrefix(text, "solid checker\n"))
	assert.True(t, strings.HasSuffix(text, "endsolid checker\n"))
	assert.Equal(t, 14, strings.Count(text, " facet normal 0 0 0\n"))
	assert.Equal(t, 14, strings.Count(text, " endfacet\n"))
	// Header, trailer, and seven lines per facet.
	assert.Equal(t, 2+7*14, strings.Count(text, "\n"))
}

func TestASCIIExportIsByteIdentical(t *testing.T) {
	m := testModel(t, "checker")

	var first, second bytes.Buffer
	_, err := Export(context.Background(), m, &first, FormatASCII)
	require.NoError(t, err)
	_, err = Export(context.Background(), m, &second, FormatASCII)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}
