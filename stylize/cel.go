package stylize

import (
	"fmt"
	"math"

	"github.com/pyrbin/motte/common"
)

// CelMode selects which cel quantizer variant a material uses. The variant
// is chosen at authoring time, not per frame.
type CelMode int

const (
	// CelTwoTone thresholds lit lightness into a crisp lit/shadow pair.
	CelTwoTone CelMode = iota
	// CelBanded quantizes lightness into N power-curved bands with dither.
	CelBanded
)

// String returns the mode name used in preset files.
func (m CelMode) String() string {
	switch m {
	case CelTwoTone:
		return "two_tone"
	case CelBanded:
		return "banded"
	default:
		return fmt.Sprintf("CelMode(%d)", int(m))
	}
}

// CelParams is the immutable per-material parameter record for the cel
// quantizer, a tagged variant over the two modes. Two-tone fields (Lit,
// Shadow, CutOff) are read only in CelTwoTone mode; banded fields (Bands,
// Power, DitherFactor) only in CelBanded mode.
type CelParams struct {
	Mode CelMode

	// Lit and Shadow are unclamped lightness multipliers applied to the
	// albedo lightness on either side of the threshold.
	Lit    float32
	Shadow float32
	// CutOff is the lit-lightness threshold, clamped to [0,1] before use.
	CutOff float32

	// Bands is the number of discrete lightness bands. Non-integer values
	// are tolerated and act as a continuous blend control.
	Bands float32
	// Power is the gamma-like response exponent. Power > 1 compresses bands
	// toward shadows, power < 1 toward highlights. Zero is invalid.
	Power float32
	// DitherFactor scales the screen-space noise added before quantization.
	DitherFactor float32
}

// TwoTone builds a CelParams record in two-tone mode.
// Original defaults are lit=1.0, shadow=0.5, cutOff=0.5.
//
// Parameters:
//   - lit: lightness multiplier on the lit side of the threshold
//   - shadow: lightness multiplier on the shadow side
//   - cutOff: lit-lightness threshold, clamped to [0,1]
//
// Returns:
//   - CelParams: the two-tone parameter record
func TwoTone(lit, shadow, cutOff float32) CelParams {
	return CelParams{Mode: CelTwoTone, Lit: lit, Shadow: shadow, CutOff: cutOff}
}

// Banded builds a CelParams record in banded mode.
//
// Parameters:
//   - bands: positive band count
//   - power: nonzero response exponent
//   - ditherFactor: non-negative dither noise scale
//
// Returns:
//   - CelParams: the banded parameter record
func Banded(bands, power, ditherFactor float32) CelParams {
	return CelParams{Mode: CelBanded, Bands: bands, Power: power, DitherFactor: ditherFactor}
}

// Validate reports whether the record is usable by the per-pixel functions.
// Out-of-domain parameters are a configuration error and are rejected here,
// at load time, never per pixel.
//
// Returns:
//   - error: nil if valid, otherwise the first violated constraint
func (p CelParams) Validate() error {
	switch p.Mode {
	case CelTwoTone:
		for _, v := range []struct {
			name string
			val  float32
		}{{"lit", p.Lit}, {"shadow", p.Shadow}, {"cut_off", p.CutOff}} {
			if !isFinite(v.val) {
				return fmt.Errorf("cel: two-tone %s must be finite, got %v", v.name, v.val)
			}
		}
	case CelBanded:
		if !isFinite(p.Bands) || p.Bands <= 0 {
			return fmt.Errorf("cel: bands must be positive, got %v", p.Bands)
		}
		if !isFinite(p.Power) || p.Power == 0 {
			return fmt.Errorf("cel: power must be finite and nonzero, got %v", p.Power)
		}
		if !isFinite(p.DitherFactor) || p.DitherFactor < 0 {
			return fmt.Errorf("cel: dither_factor must be non-negative, got %v", p.DitherFactor)
		}
	default:
		return fmt.Errorf("cel: unknown mode %d", int(p.Mode))
	}
	return nil
}

// ShadeTwoTone applies the two-tone quantizer to a lit color. The lit
// lightness is hard-thresholded against CutOff (no smoothing; the two-tone
// look wants a crisp lit/shadow boundary), then clamped between the shadow-
// and lit-scaled albedo lightness so the result stays driven by the surface
// tint. Chroma, hue, and alpha of the lit color are unchanged.
//
// Parameters:
//   - lit: the renderer's already-lit color
//   - albedo: the pre-lighting base color, used as a per-surface ambient hint
//   - p: two-tone parameters
//
// Returns:
//   - Color: the re-quantized color
func ShadeTwoTone(lit, albedo Color, p CelParams) Color {
	cutOff := common.Saturate(p.CutOff)
	la := Lightness(albedo)
	ll := Lightness(lit)

	newL := common.Clamp(common.Step(cutOff, ll), p.Shadow*la, p.Lit*la)
	return WithLightness(lit, newL)
}

// ShadeBanded applies the banded quantizer to a lit color. Lightness gets a
// dither offset, a power remap x^(1/p), a scale by the band count, a floor,
// a rescale, and the inverse remap x^p. With dither 0 the output takes
// exactly Bands distinct values at (k/Bands)^p. Chroma, hue, and alpha are
// unchanged.
//
// Parameters:
//   - lit: the renderer's already-lit color
//   - p: banded parameters
//   - noise: screen-space noise sample in [0,1] for this fragment
//
// Returns:
//   - Color: the re-quantized color
func ShadeBanded(lit Color, p CelParams, noise float32) Color {
	l := Lightness(lit)
	l += (noise - 0.5) * p.DitherFactor
	l = common.Saturate(l)

	x := common.Pow(l, 1/p.Power)
	band := common.Floor(x * p.Bands)
	if band > p.Bands-1 {
		band = p.Bands - 1
	}
	l = common.Pow(band/p.Bands, p.Power)

	return WithLightness(lit, l)
}

// Shade dispatches to the quantizer variant selected by the record's mode.
// Albedo is read only in two-tone mode, noise only in banded mode.
//
// Parameters:
//   - lit: the renderer's already-lit color
//   - albedo: the pre-lighting base color
//   - p: cel parameters
//   - noise: screen-space noise sample in [0,1]
//
// Returns:
//   - Color: the re-quantized color
func Shade(lit, albedo Color, p CelParams, noise float32) Color {
	if p.Mode == CelTwoTone {
		return ShadeTwoTone(lit, albedo, p)
	}
	return ShadeBanded(lit, p, noise)
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
