package pixelate

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pyrbin/motte/stylize"
)

func TestGPUScaleBiasMarshal(t *testing.T) {
	g := GPUScaleBias{
		Scale: [2]float32{0.5, 0.25},
		Bias:  [2]float32{0.125, -0.0625},
	}
	if g.Size() != 16 {
		t.Fatalf("expected 16-byte struct, got %d", g.Size())
	}
	buf := g.Marshal()
	if len(buf) != 16 {
		t.Fatalf("expected 16-byte buffer, got %d", len(buf))
	}
	want := []float32{0.5, 0.25, 0.125, -0.0625}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : i*4+4]))
		if got != w {
			t.Errorf("float at offset %d: got %v, want %v", i*4, got, w)
		}
	}
}

func TestPassDefaultsToIdentity(t *testing.T) {
	p := NewPass()
	g := p.Uniform()
	if g.Scale != [2]float32{1, 1} || g.Bias != [2]float32{0, 0} {
		t.Errorf("default uniform should be the identity transform, got %+v", g)
	}
}

func TestPassScaleBiasMutation(t *testing.T) {
	p := NewPass(WithPipelineKey("pixelate_upscale"))

	sb := stylize.ScaleBias{Scale: [2]float32{1, 1}, Bias: [2]float32{0.01, -0.02}}
	p.SetScaleBias(sb)

	if p.ScaleBias() != sb {
		t.Errorf("SetScaleBias did not replace the transform")
	}
	g := p.Uniform()
	if g.Bias != sb.Bias {
		t.Errorf("uniform should reflect mutated transform: %+v", g)
	}
	if p.PipelineKey() != "pixelate_upscale" {
		t.Errorf("pipeline key not carried: %q", p.PipelineKey())
	}
}
