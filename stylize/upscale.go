package stylize

import "github.com/pyrbin/motte/common"

// ColorSampler supplies the composed low-resolution color buffer the
// upscaler reads. Texel dimensions are queried, never assumed.
type ColorSampler interface {
	// Size returns the buffer dimensions in texels.
	Size() (width, height int)
	// SampleBilinear samples the buffer at normalized coordinates with
	// bilinear filtering and clamp-to-edge addressing.
	SampleBilinear(u, v float32) Color
}

// ScaleBias is the screen-space coordinate transform applied to normalized
// texture coordinates before sampling, supplied by the host as camera and
// viewport framing. Identity is scale (1,1), bias (0,0).
type ScaleBias struct {
	Scale [2]float32
	Bias  [2]float32
}

// IdentityScaleBias returns the transform that leaves coordinates unchanged.
//
// Returns:
//   - ScaleBias: scale (1,1), bias (0,0)
func IdentityScaleBias() ScaleBias {
	return ScaleBias{Scale: [2]float32{1, 1}}
}

// Apply transforms a normalized coordinate pair.
//
// Parameters:
//   - u, v: normalized texture coordinates
//
// Returns:
//   - float32: transformed u
//   - float32: transformed v
func (sb ScaleBias) Apply(u, v float32) (float32, float32) {
	return u*sb.Scale[0] + sb.Bias[0], v*sb.Scale[1] + sb.Bias[1]
}

// Upscale resamples the low-resolution color buffer at a display coordinate
// using a box filter matched to the screen-space derivative of the texture
// coordinate. The box size in texel units is clamped to [1e-5, 1]: the lower
// bound avoids degenerate zero-width boxes, the upper bound keeps the filter
// from exceeding one texel and oversmoothing. A smoothstep of the fractional
// texel coordinate against 1-boxSize grows the filter support continuously
// from a point sample at 1:1 or minification to a full one-texel box under
// large magnification, so pixel edges stay crisp without shimmering.
//
// The caller passes the screen-space derivatives of the pre-transform
// coordinate; the GPU path likewise samples with explicit gradients because
// the coordinate remapping would corrupt implicit derivative estimation.
//
// Parameters:
//   - src: composed low-resolution color buffer
//   - u, v: normalized display coordinates before the scale/bias transform
//   - dudx: horizontal screen-space derivative of u
//   - dvdy: vertical screen-space derivative of v
//   - sb: camera/viewport framing transform
//
// Returns:
//   - Color: the filtered sample
func Upscale(src ColorSampler, u, v, dudx, dvdy float32, sb ScaleBias) Color {
	w, h := src.Size()
	fw, fh := float32(w), float32(h)

	su, sv := sb.Apply(u, v)

	texelX := su * fw
	texelY := sv * fh

	boxX := common.Clamp(dudx*sb.Scale[0]*fw, 1e-5, 1)
	boxY := common.Clamp(dvdy*sb.Scale[1]*fh, 1e-5, 1)

	tx := texelX - 0.5*boxX
	ty := texelY - 0.5*boxY

	offX := common.Smoothstep(1-boxX, 1, common.Fract(tx))
	offY := common.Smoothstep(1-boxY, 1, common.Fract(ty))

	finalU := (common.Floor(tx) + 0.5 + offX) / fw
	finalV := (common.Floor(ty) + 0.5 + offY) / fh

	return src.SampleBilinear(finalU, finalV)
}
