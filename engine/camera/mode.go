package camera

import (
	"fmt"

	"github.com/pyrbin/motte/stylize"
)

// MinScaleFactor is the smallest accepted downscale factor. A factor below one
// would render at higher than window resolution, which the upscale pass does
// not support.
const MinScaleFactor float32 = 1.0

// modeKind discriminates the sizing mode variants.
type modeKind int

const (
	modePixelsPerUnit modeKind = iota
	modeFixedResolution
	modeScaleFactor
)

// Mode selects how the camera derives its render resolution from the window
// size. Construct values with PixelsPerUnit, FixedResolution, or ScaleFactor.
type Mode struct {
	kind          modeKind
	pixelsPerUnit int
	width         uint32
	height        uint32
	scaleFactor   float32
}

// PixelsPerUnit creates a sizing mode where the render resolution tracks the
// camera's viewport height in world units at a fixed texel density.
//
// Parameters:
//   - n: texels per world unit, must be in [1, 255]
//
// Returns:
//   - Mode: the pixels-per-unit sizing mode
func PixelsPerUnit(n int) Mode {
	if n < 1 || n > 255 {
		panic(fmt.Sprintf("camera: pixels per unit must be in [1, 255], got %d", n))
	}
	return Mode{kind: modePixelsPerUnit, pixelsPerUnit: n}
}

// FixedResolution creates a sizing mode with an explicit render resolution,
// clamped to the window size during Update.
//
// Parameters:
//   - width, height: the render target size in texels, both must be positive
//
// Returns:
//   - Mode: the fixed-resolution sizing mode
func FixedResolution(width, height uint32) Mode {
	if width == 0 || height == 0 {
		panic(fmt.Sprintf("camera: fixed resolution must be positive, got %dx%d", width, height))
	}
	return Mode{kind: modeFixedResolution, width: width, height: height}
}

// ScaleFactor creates a sizing mode where the render resolution is the window
// size divided by a constant factor. Factors below MinScaleFactor are clamped.
//
// Parameters:
//   - f: the downscale factor
//
// Returns:
//   - Mode: the scale-factor sizing mode
func ScaleFactor(f float32) Mode {
	if f < MinScaleFactor {
		f = MinScaleFactor
	}
	return Mode{kind: modeScaleFactor, scaleFactor: f}
}

// ModeFromConfig maps a validated [pixelate] preset table onto a sizing mode.
//
// Parameters:
//   - cfg: the pixelate preset table
//
// Returns:
//   - Mode: the corresponding sizing mode
//   - error: an error if the mode name is unknown
func ModeFromConfig(cfg stylize.PixelateConfig) (Mode, error) {
	switch cfg.Mode {
	case "pixels_per_unit":
		return PixelsPerUnit(cfg.PixelsPerUnit), nil
	case "fixed_resolution":
		return FixedResolution(cfg.Width, cfg.Height), nil
	case "scale_factor":
		return ScaleFactor(cfg.ScaleFactor), nil
	default:
		return Mode{}, fmt.Errorf("camera: unknown pixelate mode %q", cfg.Mode)
	}
}
