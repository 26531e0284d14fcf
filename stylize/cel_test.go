package stylize

import (
	"math"
	"testing"
)

// gray builds a neutral color with the given perceptual lightness.
func gray(l float32) Color {
	return ToDisplay(Perceptual{L: l})
}

func TestCelParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  CelParams
		wantErr bool
	}{
		{"two-tone defaults", TwoTone(1.0, 0.5, 0.5), false},
		{"two-tone unclamped multipliers", TwoTone(2.5, -0.5, 0.9), false},
		{"two-tone nan lit", TwoTone(float32(math.NaN()), 0.5, 0.5), true},
		{"banded valid", Banded(4, 1.5, 0.02), false},
		{"banded fractional bands", Banded(3.5, 1, 0), false},
		{"banded zero power", Banded(4, 0, 0), true},
		{"banded zero bands", Banded(0, 1, 0), true},
		{"banded negative bands", Banded(-2, 1, 0), true},
		{"banded negative dither", Banded(4, 1, -0.1), true},
		{"banded inf power", Banded(4, float32(math.Inf(1)), 0), true},
		{"unknown mode", CelParams{Mode: CelMode(99)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestTwoToneThreshold verifies the discontinuous jump straddling the
// cut-off: with cut_off 0.5, lit 1, shadow 0, lightness 0.49 clamps to the
// shadow-scaled value and 0.51 to the lit-scaled albedo value.
func TestTwoToneThreshold(t *testing.T) {
	params := TwoTone(1.0, 0.0, 0.5)
	albedo := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	albedoL := Lightness(albedo)

	below := Lightness(ShadeTwoTone(gray(0.49), albedo, params))
	above := Lightness(ShadeTwoTone(gray(0.51), albedo, params))

	if absf(below) > 1e-4 {
		t.Errorf("lightness 0.49 produced %v, want shadow value 0", below)
	}
	if absf(above-albedoL) > 1e-4 {
		t.Errorf("lightness 0.51 produced %v, want lit albedo value %v", above, albedoL)
	}
	if above-below < 0.5 {
		t.Errorf("no discontinuous jump across the threshold: %v -> %v", below, above)
	}
}

func TestTwoToneCutOffClamped(t *testing.T) {
	// An out-of-range cut-off behaves like its clamped value.
	albedo := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	in := gray(0.5)

	wild := Lightness(ShadeTwoTone(in, albedo, TwoTone(1, 0, -3)))
	clamped := Lightness(ShadeTwoTone(in, albedo, TwoTone(1, 0, 0)))
	if absf(wild-clamped) > 1e-5 {
		t.Errorf("cut_off -3 produced %v, cut_off 0 produced %v", wild, clamped)
	}
}

// TestBandedMonotonicity checks that quantization preserves ordering:
// increasing input lightness never decreases output lightness.
func TestBandedMonotonicity(t *testing.T) {
	for _, power := range []float32{0.5, 1, 2} {
		params := Banded(5, power, 0)
		prev := float32(-1)
		for i := 0; i <= 1000; i++ {
			l := float32(i) / 1000
			out := Lightness(ShadeBanded(gray(l), params, 0.5))
			if out < prev-1e-5 {
				t.Fatalf("power %v: output decreased at l=%v: %v -> %v", power, l, prev, out)
			}
			prev = out
		}
	}
}

// TestBandedBandCount sweeps input lightness over [0,1] with dither 0 and
// verifies exactly N distinct output values at (k/N)^power.
func TestBandedBandCount(t *testing.T) {
	const bands = 4
	const power = 2
	params := Banded(bands, power, 0)

	seen := make(map[int32]bool)
	for i := 0; i <= 2000; i++ {
		l := float32(i) / 2000
		out := Lightness(ShadeBanded(gray(l), params, 0.5))
		seen[int32(math.Round(float64(out)*1e3))] = true
	}
	if len(seen) != bands {
		t.Fatalf("got %d distinct bands, want %d", len(seen), bands)
	}
	for k := 0; k < bands; k++ {
		want := float32(math.Pow(float64(k)/bands, power))
		if !seen[int32(math.Round(float64(want)*1e3))] {
			t.Errorf("band value (%d/%d)^%d = %v not produced", k, bands, power, want)
		}
	}
}

// TestBandedDitherShiftsBoundary verifies noise moves which band a pixel
// near a boundary lands in without altering the band structure.
func TestBandedDitherShiftsBoundary(t *testing.T) {
	params := Banded(4, 1, 0.1)
	in := gray(0.49) // just below the 0.5 boundary at power 1

	low := Lightness(ShadeBanded(in, params, 0.0))
	high := Lightness(ShadeBanded(in, params, 1.0))
	if absf(high-low) < 1e-3 {
		t.Errorf("dither had no effect near a band boundary: %v vs %v", low, high)
	}
}

func TestBandedPreservesChromaHueAlpha(t *testing.T) {
	in := Color{R: 0.7, G: 0.3, B: 0.2, A: 0.25}
	before := ToPerceptual(in)

	out := ShadeBanded(in, Banded(3, 1.5, 0), 0.5)
	after := ToPerceptual(out)

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

func TestShadeDispatch(t *testing.T) {
	lit := gray(0.7)
	albedo := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}

	twoTone := Shade(lit, albedo, TwoTone(1, 0.5, 0.5), 0.5)
	if want := ShadeTwoTone(lit, albedo, TwoTone(1, 0.5, 0.5)); twoTone != want {
		t.Errorf("two-tone dispatch mismatch: %+v vs %+v", twoTone, want)
	}

	banded := Shade(lit, albedo, Banded(4, 1, 0), 0.5)
	if want := ShadeBanded(lit, Banded(4, 1, 0), 0.5); banded != want {
		t.Errorf("banded dispatch mismatch: %+v vs %+v", banded, want)
	}
}
