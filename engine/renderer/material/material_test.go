package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pyrbin/motte/stylize"
)

func f32At(t *testing.T, buf []byte, offset int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
}

func TestGPUCelParamsMarshal(t *testing.T) {
	g := GPUCelParams{
		Mode:           1,
		Lit:            0.9,
		Shadow:         0.4,
		CutOff:         0.5,
		Bands:          4,
		Power:          2,
		DitherFactor:   0.05,
		OutlineEnabled: 1,
	}
	if g.Size() != 32 {
		t.Fatalf("expected 32-byte struct, got %d", g.Size())
	}
	buf := g.Marshal()
	if len(buf) != 32 {
		t.Fatalf("expected 32-byte buffer, got %d", len(buf))
	}
	if got := binary.LittleEndian.Uint32(buf[0:4]); got != 1 {
		t.Errorf("mode at offset 0: got %d, want 1", got)
	}
	if got := f32At(t, buf, 4); got != 0.9 {
		t.Errorf("lit at offset 4: got %v", got)
	}
	if got := f32At(t, buf, 16); got != 4 {
		t.Errorf("bands at offset 16: got %v", got)
	}
	if got := binary.LittleEndian.Uint32(buf[28:32]); got != 1 {
		t.Errorf("outline_enabled at offset 28: got %d, want 1", got)
	}
}

func TestGPUEdgeParamsMarshal(t *testing.T) {
	g := GPUEdgeParams{
		NormalBias:            [3]float32{1, 2, 3},
		OutlineStrength:       0.8,
		DepthThresholdLow:     0.0002,
		DepthThresholdHigh:    0.001,
		NegDepthThresholdLow:  0.4,
		NegDepthThresholdHigh: 0.6,
		NormalThresholdLow:    0.2,
		NormalThresholdHigh:   0.8,
		NormalBiasLow:         -0.01,
		NormalBiasHigh:        0.01,
	}
	if g.Size() != 48 {
		t.Fatalf("expected 48-byte struct, got %d", g.Size())
	}
	buf := g.Marshal()
	if len(buf) != 48 {
		t.Fatalf("expected 48-byte buffer, got %d", len(buf))
	}
	if got := f32At(t, buf, 8); got != 3 {
		t.Errorf("normal_bias.z at offset 8: got %v", got)
	}
	if got := f32At(t, buf, 12); got != 0.8 {
		t.Errorf("outline_strength at offset 12: got %v", got)
	}
	if got := f32At(t, buf, 16); got != 0.0002 {
		t.Errorf("depth_threshold_low at offset 16: got %v", got)
	}
	if got := f32At(t, buf, 44); got != 0.01 {
		t.Errorf("normal_bias_high at offset 44: got %v", got)
	}
}

func TestUniformsAssembly(t *testing.T) {
	m := NewMaterial(
		WithName("banded"),
		WithCelParams(stylize.Banded(6, 2, 0.1)),
		WithOutlineParams(stylize.OutlineParams{Enabled: true, Strength: 0.75}),
	)

	cel, edge := m.Uniforms()
	if cel.Mode != 1 {
		t.Errorf("banded material should map to mode 1, got %d", cel.Mode)
	}
	if cel.Bands != 6 || cel.Power != 2 || cel.DitherFactor != 0.1 {
		t.Errorf("banded fields not carried: %+v", cel)
	}
	if cel.OutlineEnabled != 1 {
		t.Errorf("outline flag not carried into cel uniform")
	}
	if edge.OutlineStrength != 0.75 {
		t.Errorf("outline strength not carried into edge uniform: %v", edge.OutlineStrength)
	}

	defaults := stylize.DefaultEdgeParams()
	if edge.DepthThresholdLow != defaults.DepthThresholdLow || edge.NormalBias != defaults.NormalBias {
		t.Errorf("edge uniform should reflect default detector params: %+v", edge)
	}
}

func TestUniformsOutlineDisabled(t *testing.T) {
	m := NewMaterial(WithCelParams(stylize.TwoTone(1.0, 0.5, 0.5)))

	cel, edge := m.Uniforms()
	if cel.Mode != 0 {
		t.Errorf("two-tone material should map to mode 0, got %d", cel.Mode)
	}
	if cel.OutlineEnabled != 0 {
		t.Errorf("outline should default to disabled")
	}
	if edge.OutlineStrength != 0 {
		t.Errorf("disabled outline should carry zero strength, got %v", edge.OutlineStrength)
	}
}

func TestMaterialMutation(t *testing.T) {
	m := NewMaterial(WithName("tunable"))

	m.SetCelParams(stylize.Banded(3, 1.5, 0))
	m.SetOutlineParams(stylize.OutlineParams{Enabled: true, Strength: 1})
	m.SetPipelineKey("cel_compose")

	if m.CelParams().Mode != stylize.CelBanded {
		t.Errorf("SetCelParams did not replace the record")
	}
	if m.PipelineKey() != "cel_compose" {
		t.Errorf("SetPipelineKey did not stick: %q", m.PipelineKey())
	}
	cel, _ := m.Uniforms()
	if cel.Mode != 1 || cel.OutlineEnabled != 1 {
		t.Errorf("uniforms should reflect mutated params: %+v", cel)
	}
}
