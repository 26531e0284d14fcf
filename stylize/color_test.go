package stylize

import (
	"math"
	"testing"
)

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// TestPerceptualRoundTrip sweeps a grid over the displayable gamut and
// verifies toDisplay(toPerceptual(c)) returns the original color within
// 1e-4 per channel.
func TestPerceptualRoundTrip(t *testing.T) {
	const steps = 16
	const tol = 1e-4

	for ri := 0; ri <= steps; ri++ {
		for gi := 0; gi <= steps; gi++ {
			for bi := 0; bi <= steps; bi++ {
				in := Color{
					R: float32(ri) / steps,
					G: float32(gi) / steps,
					B: float32(bi) / steps,
					A: 1,
				}
				out := ToDisplay(ToPerceptual(in))
				if absf(out.R-in.R) > tol || absf(out.G-in.G) > tol || absf(out.B-in.B) > tol {
					t.Fatalf("round trip of %+v produced %+v", in, out)
				}
			}
		}
	}
}

func TestLightnessMatchesFullTransform(t *testing.T) {
	tests := []Color{
		{R: 0, G: 0, B: 0, A: 1},
		{R: 1, G: 1, B: 1, A: 1},
		{R: 0.8, G: 0.2, B: 0.1, A: 1},
		{R: 0.1, G: 0.5, B: 0.9, A: 1},
	}
	for _, c := range tests {
		if got, want := Lightness(c), ToPerceptual(c).L; absf(got-want) > 1e-6 {
			t.Errorf("Lightness(%+v) = %v, ToPerceptual().L = %v", c, got, want)
		}
	}
}

// TestWithLightnessPreservesChromaHue verifies only the L channel moves.
func TestWithLightnessPreservesChromaHue(t *testing.T) {
	in := Color{R: 0.7, G: 0.3, B: 0.2, A: 0.5}
	before := ToPerceptual(in)

	out := WithLightness(in, 0.4)
	after := ToPerceptual(out)

	if absf(after.L-0.4) > 1e-4 {
		t.Errorf("lightness = %v, want 0.4", after.L)
	}
	if absf(after.C-before.C) > 1e-4 {
		t.Errorf("chroma changed: %v -> %v", before.C, after.C)
	}
	if absf(after.H-before.H) > 1e-4 {
		t.Errorf("hue changed: %v -> %v", before.H, after.H)
	}
	if out.A != in.A {
		t.Errorf("alpha changed: %v -> %v", in.A, out.A)
	}
}

func TestWhiteAndBlackLightness(t *testing.T) {
	if l := Lightness(Color{R: 1, G: 1, B: 1, A: 1}); absf(l-1) > 1e-4 {
		t.Errorf("white lightness = %v, want 1", l)
	}
	if l := Lightness(Color{A: 1}); absf(l) > 1e-4 {
		t.Errorf("black lightness = %v, want 0", l)
	}
}
