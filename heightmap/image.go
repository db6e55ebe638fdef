package heightmap

import (
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// Register the decoders Load accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// FromImage converts an image to an 8-bit height grid. Color input is
// reduced to grayscale first, so pixel luminance becomes height.
func FromImage(img image.Image) *Grid {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	g := NewGrid(b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			// Grayscale output carries the luminance in every channel.
			g.Set(y, x, row[x*4])
		}
	}
	return g
}

// Load reads an image file (PNG, JPEG, GIF, TIFF or BMP) and converts it to
// a height grid. If maxDim is positive and either image dimension exceeds
// it, the image is resampled down to fit, preserving aspect ratio.
func Load(path string, maxDim int) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "heightmap: open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "heightmap: decode %s", path)
	}
	b := img.Bounds()
	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}
	return FromImage(img), nil
}
