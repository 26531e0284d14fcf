package camera

import (
	"testing"

	"github.com/pyrbin/motte/stylize"
)

func approx(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestModeConstructorPanics(t *testing.T) {
	t.Run("pixels per unit out of range", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for 0 pixels per unit")
			}
		}()
		PixelsPerUnit(0)
	})

	t.Run("pixels per unit above 255", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for 256 pixels per unit")
			}
		}()
		PixelsPerUnit(256)
	})

	t.Run("zero fixed resolution", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for zero-height resolution")
			}
		}()
		FixedResolution(320, 0)
	})
}

func TestScaleFactorClampsToMin(t *testing.T) {
	m := ScaleFactor(0.5)
	c := NewCamera(WithMode(m))
	c.Update(800, 600)
	w, h := c.RenderResolution()
	if w != 800 || h != 600 {
		t.Errorf("clamped factor should render at window size, got %dx%d", w, h)
	}
}

func TestRenderResolutionPixelsPerUnit(t *testing.T) {
	c := NewCamera(WithMode(PixelsPerUnit(8)), WithViewportHeight(10))
	c.Update(1600, 900)
	w, h := c.RenderResolution()
	if h != 80 {
		t.Errorf("render height: got %d, want 80", h)
	}
	if w != 142 {
		t.Errorf("render width: got %d, want 142", w)
	}
	if !approx(c.UnitsPerPixel(), 0.125, 1e-6) {
		t.Errorf("units per pixel: got %v, want 0.125", c.UnitsPerPixel())
	}
}

func TestRenderResolutionScaleFactor(t *testing.T) {
	c := NewCamera(WithMode(ScaleFactor(4)))
	c.Update(1920, 1080)
	w, h := c.RenderResolution()
	if w != 480 || h != 270 {
		t.Errorf("got %dx%d, want 480x270", w, h)
	}
}

func TestRenderResolutionFixedClampedToWindow(t *testing.T) {
	c := NewCamera(WithMode(FixedResolution(640, 360)))
	c.Update(320, 200)
	w, h := c.RenderResolution()
	if w != 320 || h != 200 {
		t.Errorf("fixed resolution should clamp to window, got %dx%d", w, h)
	}

	c.Update(1280, 720)
	w, h = c.RenderResolution()
	if w != 640 || h != 360 {
		t.Errorf("fixed resolution inside window should hold, got %dx%d", w, h)
	}
}

func TestRenderResolutionNeverZero(t *testing.T) {
	c := NewCamera(WithMode(ScaleFactor(1000)))
	c.Update(4, 4)
	w, h := c.RenderResolution()
	if w < 1 || h < 1 {
		t.Errorf("render resolution must be at least 1x1, got %dx%d", w, h)
	}
}

func TestSnapOffsetAndBias(t *testing.T) {
	c := NewCamera(WithMode(PixelsPerUnit(8)), WithViewportHeight(10), WithPosition(0.3, 0.2))
	c.Update(1600, 900)

	// units per pixel is 0.125; 0.3 snaps to 0.25, 0.2 snaps to 0.25
	off := c.SnapOffset()
	if !approx(off[0], 0.05, 1e-5) || !approx(off[1], -0.05, 1e-5) {
		t.Errorf("snap offset: got %v", off)
	}

	sb := c.ScaleBias()
	if sb.Scale != [2]float32{1, 1} {
		t.Errorf("scale should stay identity, got %v", sb.Scale)
	}
	if !approx(sb.Bias[0], 0.05/0.125/142, 1e-6) {
		t.Errorf("bias x: got %v", sb.Bias[0])
	}
	// y bias is negated: texture rows grow downward
	if !approx(sb.Bias[1], 0.05/0.125/80, 1e-6) {
		t.Errorf("bias y: got %v", sb.Bias[1])
	}
}

func TestSmoothingOffZeroesBias(t *testing.T) {
	c := NewCamera(
		WithMode(PixelsPerUnit(8)),
		WithViewportHeight(10),
		WithPosition(0.3, 0.2),
		WithSubPixelSmoothing(false),
	)
	c.Update(1600, 900)

	if off := c.SnapOffset(); off == ([2]float32{}) {
		t.Errorf("snapping still tracks the offset with smoothing off")
	}
	if sb := c.ScaleBias(); sb != stylize.IdentityScaleBias() {
		t.Errorf("smoothing off should produce the identity transform, got %+v", sb)
	}
}

func TestSnapTransformsOff(t *testing.T) {
	c := NewCamera(WithMode(PixelsPerUnit(8)), WithPosition(0.3, 0.2), WithSnapTransforms(false))
	c.Update(1600, 900)
	if off := c.SnapOffset(); off != ([2]float32{}) {
		t.Errorf("snapping disabled should report a zero offset, got %v", off)
	}
	if sb := c.ScaleBias(); sb.Bias != ([2]float32{}) {
		t.Errorf("zero offset should produce zero bias, got %v", sb.Bias)
	}
}

func TestSnappedPositionLandsOnGrid(t *testing.T) {
	c := NewCamera(WithMode(PixelsPerUnit(8)), WithViewportHeight(10), WithPosition(1.0, -0.5))
	c.Update(1600, 900)
	// 1.0 and -0.5 are exact multiples of 0.125
	if off := c.SnapOffset(); !approx(off[0], 0, 1e-6) || !approx(off[1], 0, 1e-6) {
		t.Errorf("on-grid position should have zero offset, got %v", off)
	}
}

func TestProjectionMatchesRenderAspect(t *testing.T) {
	c := NewCamera(WithMode(FixedResolution(320, 180)), WithViewportHeight(9))
	c.Update(1280, 720)

	proj := c.ProjectionMatrix()
	// Orthographic: m[0] = 2/(right-left), m[5] = 2/(top-bottom)
	halfH := float32(4.5)
	halfW := halfH * 320.0 / 180.0
	if !approx(proj[0], 1/halfW, 1e-5) {
		t.Errorf("projection x scale: got %v, want %v", proj[0], 1/halfW)
	}
	if !approx(proj[5], 1/halfH, 1e-5) {
		t.Errorf("projection y scale: got %v, want %v", proj[5], 1/halfH)
	}
}

func TestViewProjectionUsesSnappedTranslation(t *testing.T) {
	c := NewCamera(WithMode(FixedResolution(100, 100)), WithViewportHeight(10), WithPosition(0.33, 0.2))
	c.Update(1000, 1000)

	// units per pixel is 0.1: 0.33 snaps to 0.3, 0.2 is already on the grid.
	// Orthographic half extents are 5, so the translation column carries
	// scale * -snapped = 0.2 * -0.3.
	vp := c.ViewProjectionMatrix()
	if !approx(vp[12], -0.06, 1e-6) {
		t.Errorf("view-projection x translation: got %v, want %v", vp[12], -0.06)
	}
	if !approx(vp[13], -0.04, 1e-6) {
		t.Errorf("view-projection y translation: got %v, want %v", vp[13], -0.04)
	}

	// With snapping off the raw position feeds the view untouched.
	c.SetSnapTransforms(false)
	c.Update(1000, 1000)
	vp = c.ViewProjectionMatrix()
	if !approx(vp[12], -0.066, 1e-6) {
		t.Errorf("unsnapped x translation: got %v, want %v", vp[12], -0.066)
	}
}

func TestModeFromConfig(t *testing.T) {
	cfg := stylize.DefaultPreset().Pixelate
	m, err := ModeFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.kind != modePixelsPerUnit || m.pixelsPerUnit != 8 {
		t.Errorf("default preset should map to 8 pixels per unit, got %+v", m)
	}

	if _, err := ModeFromConfig(stylize.PixelateConfig{Mode: "nope"}); err == nil {
		t.Errorf("expected error for unknown mode name")
	}
}
