package stylize

import "testing"

// flatBuffer builds a geometry buffer with uniform depth and normal.
func flatBuffer(w, h int, depth float32, normal [3]float32) *GeometryBuffer {
	g := NewGeometryBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetPixel(x, y, depth, normal)
		}
	}
	return g
}

func TestEdgeParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EdgeParams)
		wantErr bool
	}{
		{"defaults", func(*EdgeParams) {}, false},
		{"eight neighborhood", func(p *EdgeParams) { p.Offsets = EightNeighborhood }, false},
		{"empty offsets", func(p *EdgeParams) { p.Offsets = nil }, true},
		{"inverted depth band", func(p *EdgeParams) { p.DepthThresholdLow, p.DepthThresholdHigh = 0.001, 0.0002 }, true},
		{"degenerate normal band", func(p *EdgeParams) { p.NormalThresholdLow = p.NormalThresholdHigh }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultEdgeParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestFlatFieldReportsNoEdges: a fragment with identical depth and normal to
// all neighbors reports {0,0}.
func TestFlatFieldReportsNoEdges(t *testing.T) {
	g := flatBuffer(8, 8, 0.5, [3]float32{0, 0, 1})
	params := DefaultEdgeParams()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			ne, de := DetectEdges(g, x, y, params)
			if ne != 0 || de != 0 {
				t.Fatalf("flat field at (%d,%d) reported {%v, %v}", x, y, ne, de)
			}
		}
	}
}

// TestNormalEdgeShallowerPixelOnly: across a combined normal and slight
// depth discontinuity, only the shallower fragment reports a normal edge.
func TestNormalEdgeShallowerPixelOnly(t *testing.T) {
	g := NewGeometryBuffer(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				g.SetPixel(x, y, 0.5, [3]float32{0, 0, 1})
			} else {
				// Slightly deeper so the depth delta picks a side without
				// tripping the inverse-depth suppressor.
				g.SetPixel(x, y, 0.5005, [3]float32{1, 0, 0})
			}
		}
	}
	params := DefaultEdgeParams()

	shallowNE, _ := DetectEdges(g, 3, 4, params)
	deepNE, _ := DetectEdges(g, 4, 4, params)

	if shallowNE <= 0 {
		t.Errorf("shallower fragment reported no normal edge")
	}
	if deepNE != 0 {
		t.Errorf("deeper fragment reported normal edge %v, want 0", deepNE)
	}
}

// TestDepthEdgeAsymmetric: only positive center-minus-neighbor deltas count,
// so the deeper fragment of a large depth step carries the depth edge.
func TestDepthEdgeAsymmetric(t *testing.T) {
	g := NewGeometryBuffer(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				g.SetPixel(x, y, 0.3, [3]float32{0, 0, 1})
			} else {
				g.SetPixel(x, y, 0.9, [3]float32{0, 0, 1})
			}
		}
	}
	params := DefaultEdgeParams()

	_, shallowDE := DetectEdges(g, 3, 4, params)
	_, deepDE := DetectEdges(g, 4, 4, params)

	if shallowDE != 0 {
		t.Errorf("shallower fragment reported depth edge %v, want 0", shallowDE)
	}
	if deepDE < 0.99 {
		t.Errorf("deeper fragment reported depth edge %v, want ~1", deepDE)
	}
}

// TestDepthStepSuppressesNormalEdge: a pure large depth discontinuity is not
// double-reported as a normal edge even when normals differ across it.
func TestDepthStepSuppressesNormalEdge(t *testing.T) {
	g := NewGeometryBuffer(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				g.SetPixel(x, y, 0.3, [3]float32{0, 0, 1})
			} else {
				g.SetPixel(x, y, 0.9, [3]float32{1, 0, 0})
			}
		}
	}
	params := DefaultEdgeParams()

	ne, _ := DetectEdges(g, 3, 4, params)
	if ne != 0 {
		t.Errorf("normal edge %v across a large depth step, want 0 (suppressed)", ne)
	}
}

func TestApplyOutline(t *testing.T) {
	c := Color{R: 0.8, G: 0.6, B: 0.4, A: 1}

	// Disabled: identity regardless of the edge signal.
	if got := ApplyOutline(c, 1, 1, OutlineParams{}); got != c {
		t.Errorf("disabled outline changed the color: %+v", got)
	}

	// Enabled at full strength on a full edge: black, alpha untouched.
	got := ApplyOutline(c, 1, 0.5, OutlineParams{Enabled: true, Strength: 1})
	if got.R != 0 || got.G != 0 || got.B != 0 || got.A != 1 {
		t.Errorf("full-strength outline produced %+v, want black with alpha 1", got)
	}

	// No edge signal: identity even when enabled.
	if got := ApplyOutline(c, 0, 0, OutlineParams{Enabled: true, Strength: 1}); got != c {
		t.Errorf("outline with zero edge signal changed the color: %+v", got)
	}
}
