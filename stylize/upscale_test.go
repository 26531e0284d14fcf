package stylize

import "testing"

// rampImage builds a small image with a distinct color per texel.
func rampImage(w, h int) *Image {
	img := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, Color{
				R: float32(x) / float32(w),
				G: float32(y) / float32(h),
				B: float32(x+y) / float32(w+h),
				A: 1,
			})
		}
	}
	return img
}

func colorsClose(a, b Color, tol float32) bool {
	return absf(a.R-b.R) <= tol && absf(a.G-b.G) <= tol && absf(a.B-b.B) <= tol && absf(a.A-b.A) <= tol
}

func TestScaleBiasApply(t *testing.T) {
	sb := ScaleBias{Scale: [2]float32{2, 0.5}, Bias: [2]float32{0.1, -0.2}}
	u, v := sb.Apply(0.5, 0.4)
	if absf(u-1.1) > 1e-6 || absf(v-0) > 1e-6 {
		t.Errorf("Apply(0.5, 0.4) = (%v, %v), want (1.1, 0)", u, v)
	}

	id := IdentityScaleBias()
	if u, v := id.Apply(0.25, 0.75); u != 0.25 || v != 0.75 {
		t.Errorf("identity transform moved coordinates: (%v, %v)", u, v)
	}
}

// TestUpscalePointSampleAtMinBox: with vanishing derivatives the box clamps
// to its 1e-5 floor and the filter degenerates to a point sample of the
// texel under the coordinate.
func TestUpscalePointSampleAtMinBox(t *testing.T) {
	src := rampImage(8, 8)
	sb := IdentityScaleBias()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			u := (float32(x) + 0.5) / 8
			v := (float32(y) + 0.5) / 8
			got := Upscale(src, u, v, 1e-7, 1e-7, sb)
			want := src.At(x, y)
			if !colorsClose(got, want, 1e-4) {
				t.Fatalf("point sample at (%d,%d): got %+v, want %+v", x, y, got, want)
			}
		}
	}

	// Off-center coordinates still land on the owning texel.
	got := Upscale(src, 0.124, 0.874, 1e-7, 1e-7, sb)
	want := src.SamplePoint(0.124, 0.874)
	if !colorsClose(got, want, 1e-4) {
		t.Errorf("off-center point sample: got %+v, want %+v", got, want)
	}
}

// TestUpscaleIdempotentAtUnitScale: resampling at exactly the source
// resolution reproduces the source.
func TestUpscaleIdempotentAtUnitScale(t *testing.T) {
	src := rampImage(8, 8)
	sb := IdentityScaleBias()
	dudx := float32(1) / 8
	dvdy := float32(1) / 8

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			u := (float32(x) + 0.5) / 8
			v := (float32(y) + 0.5) / 8
			got := Upscale(src, u, v, dudx, dvdy, sb)
			want := src.At(x, y)
			if !colorsClose(got, want, 1e-4) {
				t.Fatalf("1:1 resample at (%d,%d): got %+v, want %+v", x, y, got, want)
			}
		}
	}
}

// TestUpscaleBoxClamp: derivatives wider than one texel clamp to a one-texel
// box instead of oversmoothing.
func TestUpscaleBoxClamp(t *testing.T) {
	src := rampImage(4, 4)
	sb := IdentityScaleBias()

	// A 4x-minified sample at a texel center must still equal that texel:
	// the box never exceeds one texel.
	got := Upscale(src, (0.5+1)/4, (0.5+2)/4, 1, 1, sb)
	want := src.At(1, 2)
	if !colorsClose(got, want, 1e-4) {
		t.Errorf("clamped box at texel center: got %+v, want %+v", got, want)
	}
}

// TestUpscaleSmoothBoundaryUnderMagnification: near a texel boundary under
// large magnification the filter produces intermediate values instead of a
// hard stair step.
func TestUpscaleSmoothBoundaryUnderMagnification(t *testing.T) {
	src := NewImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				src.Set(x, y, Color{R: 1, G: 1, B: 1, A: 1})
			} else {
				src.Set(x, y, Color{A: 1})
			}
		}
	}
	sb := IdentityScaleBias()
	deriv := float32(1) / 400 // 100x magnification

	// Sweep across the boundary between texel (0,0) white and (1,0) black.
	prev := float32(2)
	sawIntermediate := false
	for i := 0; i <= 40; i++ {
		u := 0.2475 + 0.005*float32(i)/40 // texel x in [0.99, 1.01]
		c := Upscale(src, u, 0.125, deriv, deriv, sb)
		if c.R > prev+1e-5 {
			t.Fatalf("boundary crossing not monotone at u=%v: %v -> %v", u, prev, c.R)
		}
		if c.R > 0.1 && c.R < 0.9 {
			sawIntermediate = true
		}
		prev = c.R
	}
	if !sawIntermediate {
		t.Errorf("no intermediate values across the boundary; edge is stair-stepped")
	}
}

func TestImageSampling(t *testing.T) {
	img := rampImage(4, 4)

	// Clamp-to-edge addressing.
	if got, want := img.At(-3, 2), img.At(0, 2); got != want {
		t.Errorf("negative x clamp: got %+v, want %+v", got, want)
	}
	if got, want := img.At(1, 99), img.At(1, 3); got != want {
		t.Errorf("overflow y clamp: got %+v, want %+v", got, want)
	}

	// Bilinear at a texel center equals the texel.
	if got, want := img.SampleBilinear(0.375, 0.625), img.At(1, 2); !colorsClose(got, want, 1e-6) {
		t.Errorf("bilinear at texel center: got %+v, want %+v", got, want)
	}

	// Bilinear midway between two texels is their average.
	mid := img.SampleBilinear(0.5, 0.125)
	want := Color{
		R: (img.At(1, 0).R + img.At(2, 0).R) / 2,
		G: (img.At(1, 0).G + img.At(2, 0).G) / 2,
		B: (img.At(1, 0).B + img.At(2, 0).B) / 2,
		A: 1,
	}
	if !colorsClose(mid, want, 1e-6) {
		t.Errorf("bilinear midpoint: got %+v, want %+v", mid, want)
	}
}

func TestInterleavedGradientNoiseRange(t *testing.T) {
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			n := InterleavedGradientNoise(float32(x), float32(y))
			if n < 0 || n >= 1 {
				t.Fatalf("noise at (%d,%d) = %v, want [0,1)", x, y, n)
			}
		}
	}
	if ZeroNoise(3, 7) != 0.5 {
		t.Errorf("ZeroNoise is not 0.5")
	}
}
