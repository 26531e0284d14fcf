package stylize

import "testing"

// TestCheckerboardMagnification is the end-to-end scenario: a 4x4
// black/white checkerboard displayed at 400x400 (100x magnification).
// Pixels far from any checker boundary equal the exact source texel color;
// pixels near a boundary are box-filtered rather than stair-stepped.
func TestCheckerboardMagnification(t *testing.T) {
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

	r := NewRenderer(WithWorkers(4))
	out, err := r.UpscalePass(src, 400, 400, IdentityScaleBias())
	if err != nil {
		t.Fatalf("UpscalePass() error = %v", err)
	}
	if w, h := out.Size(); w != 400 || h != 400 {
		t.Fatalf("output size %dx%d, want 400x400", w, h)
	}

	// Cell centers, 50 pixels from any boundary, reproduce the source
	// exactly.
	for cy := 0; cy < 4; cy++ {
		for cx := 0; cx < 4; cx++ {
			got := out.At(cx*100+50, cy*100+50)
			want := src.At(cx, cy)
			if !colorsClose(got, want, 1e-4) {
				t.Errorf("cell (%d,%d) center: got %+v, want %+v", cx, cy, got, want)
			}
		}
	}

	// Crossing the boundary between cells is monotone: no overshoot or
	// ringing, just a box-filtered transition.
	prev := float32(2)
	for x := 95; x <= 105; x++ {
		c := out.At(x, 50)
		if c.R > prev+1e-5 {
			t.Fatalf("boundary crossing not monotone at x=%d: %v -> %v", x, prev, c.R)
		}
		prev = c.R
	}
	if out.At(95, 50).R < 0.99 {
		t.Errorf("pixel 5px left of the boundary is %v, want white", out.At(95, 50).R)
	}
	if out.At(105, 50).R > 0.01 {
		t.Errorf("pixel 5px right of the boundary is %v, want black", out.At(105, 50).R)
	}
}

func TestShadePassTwoTone(t *testing.T) {
	lit := NewImage(4, 4)
	lit.Fill(gray(0.8))
	albedo := NewImage(4, 4)
	albedo.Fill(Color{R: 0.5, G: 0.5, B: 0.5, A: 1})

	r := NewRenderer(
		WithWorkers(2),
		WithCelParams(TwoTone(1.0, 0.0, 0.5)),
	)
	out, err := r.ShadePass(lit, albedo, nil)
	if err != nil {
		t.Fatalf("ShadePass() error = %v", err)
	}

	wantL := Lightness(albedo.At(0, 0))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := Lightness(out.At(x, y)); absf(got-wantL) > 1e-4 {
				t.Fatalf("pixel (%d,%d) lightness %v, want %v", x, y, got, wantL)
			}
		}
	}
}

func TestShadePassBandedMatchesReference(t *testing.T) {
	lit := NewImage(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			lit.Set(x, y, gray(float32(x*8+y)/63))
		}
	}

	params := Banded(4, 2, 0.05)
	r := NewRenderer(WithWorkers(3), WithCelParams(params))
	out, err := r.ShadePass(lit, nil, nil)
	if err != nil {
		t.Fatalf("ShadePass() error = %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := ShadeBanded(lit.At(x, y), params, InterleavedGradientNoise(float32(x), float32(y)))
			if got := out.At(x, y); !colorsClose(got, want, 1e-6) {
				t.Fatalf("pixel (%d,%d): got %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestShadePassOutlines(t *testing.T) {
	lit := NewImage(8, 8)
	lit.Fill(gray(0.9))

	geo := NewGeometryBuffer(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				geo.SetPixel(x, y, 0.3, [3]float32{0, 0, 1})
			} else {
				geo.SetPixel(x, y, 0.9, [3]float32{0, 0, 1})
			}
		}
	}

	r := NewRenderer(
		WithWorkers(2),
		WithCelParams(Banded(4, 1, 0)),
		WithNoise(ZeroNoise),
		WithOutlineParams(OutlineParams{Enabled: true, Strength: 1}),
	)
	out, err := r.ShadePass(lit, nil, geo)
	if err != nil {
		t.Fatalf("ShadePass() error = %v", err)
	}

	// The deeper side of the silhouette darkens; the flat interior does not.
	edge := out.At(4, 4)
	flat := out.At(6, 4)
	if edge.R >= flat.R {
		t.Errorf("edge pixel %v not darker than interior %v", edge.R, flat.R)
	}
}

func TestShadePassErrors(t *testing.T) {
	r := NewRenderer(WithWorkers(1), WithCelParams(Banded(0, 1, 0)))
	if _, err := r.ShadePass(NewImage(2, 2), nil, nil); err == nil {
		t.Errorf("invalid cel params not rejected")
	}

	r = NewRenderer(WithWorkers(1), WithOutlineParams(OutlineParams{Enabled: true, Strength: 0.5}))
	if _, err := r.ShadePass(NewImage(2, 2), nil, nil); err == nil {
		t.Errorf("outlining without a geometry buffer not rejected")
	}

	if _, err := r.ShadePass(nil, nil, nil); err == nil {
		t.Errorf("nil lit buffer not rejected")
	}

	if _, err := NewRenderer(WithWorkers(1)).UpscalePass(NewImage(2, 2), 0, 10, IdentityScaleBias()); err == nil {
		t.Errorf("zero display width not rejected")
	}
}

func TestRendererWithPreset(t *testing.T) {
	p := DefaultPreset()
	p.Outline.Enabled = true
	p.Outline.Strength = 0.5

	r := NewRenderer(WithWorkers(1), WithPreset(p)).(*renderer)
	if r.cel.Mode != CelTwoTone || r.cel.Lit != 1.0 || r.cel.Shadow != 0.5 {
		t.Errorf("preset cel params not applied: %+v", r.cel)
	}
	if !r.outline.Enabled || r.outline.Strength != 0.5 {
		t.Errorf("preset outline params not applied: %+v", r.outline)
	}
	if len(r.edge.Offsets) != 4 {
		t.Errorf("preset edge neighborhood not applied: %d offsets", len(r.edge.Offsets))
	}
}
