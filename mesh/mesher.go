package mesh

import "context"

// PredictFacetCount returns the number of facets the solid for a rows x cols
// grid will contain: 4*rows*cols + 2*(rows+cols) - 10.
func PredictFacetCount(rows, cols int) int {
	return 4*rows*cols + 2*(rows+cols) - 10
}

// BuildSolid sweeps the lattice in three passes (floor, walls, surface) and
// streams every facet to w in a fixed, reproducible order: lines top to
// bottom, columns left to right. Cancellation is checked once per line; on
// cancel the stream simply stops and ctx.Err() is returned.
func BuildSolid(ctx context.Context, l *Lattice, w FacetWriter) error {
	if err := floorPass(ctx, l, w); err != nil {
		return err
	}
	if err := wallPass(ctx, l, w); err != nil {
		return err
	}
	return surfacePass(ctx, l, w)
}

// floorPass closes the base of the solid at z=0. The first and last real
// lines each contribute a fan of triangles across the columns; every
// interior real line contributes the two triangles bridging it to its
// neighboring real lines. All vertices are floor projections, so the base is
// flat regardless of surface relief.
func floorPass(ctx context.Context, l *Lattice, w FacetWriter) error {
	lines := l.Lines()
	last := lines - 1
	cols := l.Cols()
	for line := 0; line < lines; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch {
		case line == 0:
			for pt := 0; pt < cols-1; pt++ {
				a, err := l.AtLine(line, pt)
				if err != nil {
					return err
				}
				b, err := l.AtLine(line+2, cols-1)
				if err != nil {
					return err
				}
				c, err := l.AtLine(line, pt+1)
				if err != nil {
					return err
				}
				if err := w.WriteFacet(Facet{onFloor(a), onFloor(b), onFloor(c)}); err != nil {
					return err
				}
			}
		case line == last:
			for pt := 0; pt < cols-1; pt++ {
				a, err := l.AtLine(line, pt)
				if err != nil {
					return err
				}
				b, err := l.AtLine(line, pt+1)
				if err != nil {
					return err
				}
				c, err := l.AtLine(line-2, 0)
				if err != nil {
					return err
				}
				if err := w.WriteFacet(Facet{onFloor(a), onFloor(b), onFloor(c)}); err != nil {
					return err
				}
			}
		case line%2 == 0:
			a, err := l.AtLine(line, 0)
			if err != nil {
				return err
			}
			b, err := l.AtLine(line, cols-1)
			if err != nil {
				return err
			}
			c, err := l.AtLine(line-2, 0)
			if err != nil {
				return err
			}
			if err := w.WriteFacet(Facet{onFloor(a), onFloor(b), onFloor(c)}); err != nil {
				return err
			}
			b2, err := l.AtLine(line+2, cols-1)
			if err != nil {
				return err
			}
			if err := w.WriteFacet(Facet{onFloor(a), onFloor(b2), onFloor(b)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// wallPass closes the four sides. The first and last real lines grow the
// front and back walls, one quad per column span; every other real line
// grows the left and right walls by one quad up to the next real line. Each
// quad is two triangles joining surface vertices to their floor projections.
func wallPass(ctx context.Context, l *Lattice, w FacetWriter) error {
	lines := l.Lines()
	last := lines - 1
	cols := l.Cols()
	for line := 0; line < lines; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if line == 0 {
			for pt := 0; pt < cols-1; pt++ {
				va, err := l.AtLine(line, pt+1)
				if err != nil {
					return err
				}
				prev, err := l.AtLine(line, pt)
				if err != nil {
					return err
				}
				vb := onFloor(prev)
				vc := onFloor(va)
				if err := w.WriteFacet(Facet{va, vb, vc}); err != nil {
					return err
				}
				if err := w.WriteFacet(Facet{va, prev, vb}); err != nil {
					return err
				}
			}
		} else if line == last {
			for pt := 0; pt < cols-1; pt++ {
				va, err := l.AtLine(line, pt+1)
				if err != nil {
					return err
				}
				prev, err := l.AtLine(line, pt)
				if err != nil {
					return err
				}
				vb := onFloor(va)
				vc := onFloor(prev)
				if err := w.WriteFacet(Facet{va, vb, vc}); err != nil {
					return err
				}
				if err := w.WriteFacet(Facet{va, vc, prev}); err != nil {
					return err
				}
			}
		}
		if line%2 == 0 && line != last {
			lower, err := l.AtLine(line, 0)
			if err != nil {
				return err
			}
			upper, err := l.AtLine(line+2, 0)
			if err != nil {
				return err
			}
			if err := w.WriteFacet(Facet{upper, onFloor(upper), onFloor(lower)}); err != nil {
				return err
			}
			if err := w.WriteFacet(Facet{upper, onFloor(lower), lower}); err != nil {
				return err
			}
			lowerR, err := l.AtLine(line, cols-1)
			if err != nil {
				return err
			}
			upperR, err := l.AtLine(line+2, cols-1)
			if err != nil {
				return err
			}
			if err := w.WriteFacet(Facet{upperR, onFloor(lowerR), onFloor(upperR)}); err != nil {
				return err
			}
			if err := w.WriteFacet(Facet{upperR, lowerR, onFloor(lowerR)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// surfacePass emits the contoured top. Each 2x2 block of real vertices,
// together with its shared center vertex, becomes a four-triangle fan
// (west, north, east, south) so the surface follows the height data without
// a preferred diagonal.
func surfacePass(ctx context.Context, l *Lattice, w FacetWriter) error {
	lines := l.Lines()
	cols := l.Cols()
	for line := 0; line < lines-2; line += 2 {
		if err := ctx.Err(); err != nil {
			return err
		}
		for pt := 0; pt < cols-1; pt++ {
			sw, err := l.AtLine(line, pt)
			if err != nil {
				return err
			}
			nw, err := l.AtLine(line+2, pt)
			if err != nil {
				return err
			}
			ne, err := l.AtLine(line+2, pt+1)
			if err != nil {
				return err
			}
			se, err := l.AtLine(line, pt+1)
			if err != nil {
				return err
			}
			cent, err := l.AtLine(line+1, pt)
			if err != nil {
				return err
			}
			for _, f := range [4]Facet{
				{sw, cent, nw},
				{nw, cent, ne},
				{ne, cent, se},
				{se, cent, sw},
			} {
				if err := w.WriteFacet(f); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
