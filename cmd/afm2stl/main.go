// Command afm2stl converts a grayscale heightmap image (an AFM scan, a
// depth map, any intensity image) into a watertight STL solid where
// brighter pixels become taller features. With -gen it synthesizes a
// fractal terrain instead of reading an image, which is handy for trying
// the tool without scan data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/AdamC19/AFM-to-STL/heightmap"
	"github.com/AdamC19/AFM-to-STL/mesh"
	"github.com/AdamC19/AFM-to-STL/stl"
)

var (
	in      = flag.String("in", "", "input heightmap image (png, jpeg, gif, tiff, bmp)")
	out     = flag.String("out", "", "output STL path (default: model name + .stl)")
	name    = flag.String("name", "", "model name (default: input base name)")
	useBin  = flag.Bool("binary", false, "write binary STL instead of ASCII")
	maxDim  = flag.Int("max-dim", 0, "resample the image down if larger than this (0 = never)")
	gen     = flag.Bool("gen", false, "generate a fractal terrain instead of reading -in")
	genRows = flag.Int("rows", 256, "generated terrain rows (with -gen)")
	genCols = flag.Int("cols", 256, "generated terrain columns (with -gen)")
	genSeed = flag.Int64("seed", 1, "generated terrain seed (with -gen)")

	// Defaults suit a typical AFM scan: 2500 nm across at 1024 samples per
	// line, saturated pixels 5 mm tall on a 1 mm base.
	scanSize       = flag.Float64("scan-size", 2500, "physical scan size before resampling")
	samplesPerLine = flag.Float64("samples-per-line", 1024, "samples per scan line before resampling")
	peakHeight     = flag.Float64("peak-height", 5, "model height of a saturated sample")
	baseThickness  = flag.Float64("base-thickness", 1, "material below the lowest sample")
)

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "afm2stl: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		grid *heightmap.Grid
		err  error
	)
	switch {
	case *gen:
		grid = heightmap.Generate(*genRows, *genCols, *genSeed)
		logger.Info("generated terrain",
			zap.Int("rows", grid.Rows()), zap.Int("cols", grid.Cols()),
			zap.Int64("seed", *genSeed))
	case *in != "":
		grid, err = heightmap.Load(*in, *maxDim)
		if err != nil {
			return err
		}
		logger.Info("loaded heightmap",
			zap.String("path", *in),
			zap.Int("rows", grid.Rows()), zap.Int("cols", grid.Cols()),
			zap.Uint8("min", grid.Min()), zap.Uint8("max", grid.Max()))
	default:
		flag.Usage()
		return fmt.Errorf("either -in or -gen is required")
	}

	modelName := *name
	if modelName == "" {
		modelName = defaultName(*in)
	}
	outPath := *out
	if outPath == "" {
		outPath = modelName + ".stl"
	}
	format := stl.FormatASCII
	if *useBin {
		format = stl.FormatBinary
	}

	params, err := mesh.DeriveParams(*scanSize, *samplesPerLine, *peakHeight, *baseThickness)
	if err != nil {
		return err
	}
	model, err := mesh.NewModel(modelName, grid, params)
	if err != nil {
		return err
	}

	expected := model.FacetCount()
	logger.Info("exporting model",
		zap.String("name", modelName),
		zap.String("path", outPath),
		zap.Stringer("format", format),
		zap.Int("expected_facets", expected))

	written, err := stl.ExportFile(ctx, model, outPath, format)
	if err != nil {
		return err
	}

	lo, hi := model.Bounds()
	size := int64(-1)
	if fi, err := os.Stat(outPath); err == nil {
		size = fi.Size()
	}
	logger.Info("model statistics",
		zap.Int("expected_facets", expected),
		zap.Int("facets", written),
		zap.Int64("bytes", size),
		zap.Float64s("bounds_min", lo[:]),
		zap.Float64s("bounds_max", hi[:]))
	return nil
}

// defaultName names the model after the source image without its extension.
func defaultName(path string) string {
	if path == "" {
		return "terrain"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
