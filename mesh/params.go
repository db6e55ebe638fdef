package mesh

import "github.com/pkg/errors"

// Params holds the physical scaling applied to raw samples.
type Params struct {
	// Pitch is the physical distance between adjacent samples.
	Pitch float64
	// ZScale converts a normalized intensity (0..255) to model height.
	ZScale float64
	// BaseThickness is added to every surface height so the thinnest part
	// of the model still has material above the floor.
	BaseThickness float64
}

func (p Params) validate() error {
	if p.Pitch <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "pitch %v", p.Pitch)
	}
	if p.ZScale <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "z scale %v", p.ZScale)
	}
	if p.BaseThickness < 0 {
		return errors.Wrapf(ErrInvalidParameter, "base thickness %v", p.BaseThickness)
	}
	return nil
}

// DeriveParams maps scan-dialog quantities to meshing parameters: the pitch
// is the scan size divided by the number of samples per line, and a fully
// saturated sample maps to peakHeight above the base.
func DeriveParams(scanSize, samplesPerLine, peakHeight, baseThickness float64) (Params, error) {
	if samplesPerLine <= 0 {
		return Params{}, errors.Wrapf(ErrInvalidParameter, "samples per line %v", samplesPerLine)
	}
	p := Params{
		Pitch:         scanSize / samplesPerLine,
		ZScale:        peakHeight / 255,
		BaseThickness: baseThickness,
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
