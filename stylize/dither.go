package stylize

import "github.com/pyrbin/motte/common"

// NoiseFunc produces a screen-space noise sample in [0,1] for a fragment
// position. The banded quantizer consumes one sample per fragment; any
// uniform-noise source works (ordered, blue noise, hash).
type NoiseFunc func(x, y float32) float32

// InterleavedGradientNoise is the default screen-space dither source, the
// Jimenez interleaved gradient noise pattern. It is cheap, tiles well under
// motion, and distributes band-boundary crossings evenly.
//
// Parameters:
//   - x, y: fragment position in pixels
//
// Returns:
//   - float32: noise sample in [0,1)
func InterleavedGradientNoise(x, y float32) float32 {
	return common.Fract(52.9829189 * common.Fract(0.06711056*x+0.00583715*y))
}

// ZeroNoise returns 0.5 for every fragment, which cancels the dither offset
// entirely. Useful for deterministic output in tests and presets with
// dithering disabled.
//
// Parameters:
//   - x, y: fragment position in pixels (ignored)
//
// Returns:
//   - float32: always 0.5
func ZeroNoise(x, y float32) float32 {
	return 0.5
}
