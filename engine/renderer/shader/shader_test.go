package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/pyrbin/motte/engine/renderer/material"
	"github.com/pyrbin/motte/engine/renderer/pixelate"
)

func TestParseAnnotationInclude(t *testing.T) {
	a, err := parseAnnotation("//@motte:include cel_params", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == nil || a.Type != annotationTypeInclude {
		t.Fatalf("expected include annotation, got %+v", a)
	}
	if a.Args[0] != AnnotationArgCelParams {
		t.Errorf("expected cel_params argument, got %q", a.Args[0])
	}
	if a.Group != nil || a.Binding != nil {
		t.Errorf("include annotations should carry no group/binding")
	}
}

func TestParseAnnotationGroup(t *testing.T) {
	a, err := parseAnnotation("//@motte:group 0 1 storage_uniform edges edge_params", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == nil || a.Type != AnnotationTypeBindingGroup {
		t.Fatalf("expected group annotation, got %+v", a)
	}
	if *a.Group != 0 || *a.Binding != 1 {
		t.Errorf("group/binding mismatch: %d %d", *a.Group, *a.Binding)
	}
	if a.Args[0] != annotationArgStorageTypeUniform || a.Args[1] != "edges" || a.Args[2] != AnnotationArgEdgeParams {
		t.Errorf("unexpected args: %v", a.Args)
	}
	if a.Line != 7 {
		t.Errorf("line number not carried: %d", a.Line)
	}
}

func TestParseAnnotationProvider(t *testing.T) {
	a, err := parseAnnotation("//@motte:provider 2 0 geometry depth_texture", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == nil || a.Type != AnnotationTypeProvider {
		t.Fatalf("expected provider annotation, got %+v", a)
	}
	if a.Args[0] != AnnotationArgGeometry || a.Args[1] != AnnotationArgDepthTexture {
		t.Errorf("unexpected args: %v", a.Args)
	}
}

func TestParseAnnotationIgnoresPlainLines(t *testing.T) {
	for _, line := range []string{
		"@group(0) @binding(0) var<uniform> params: CelParams;",
		"// a plain comment",
		"fn main() {}",
		"",
	} {
		a, err := parseAnnotation(line, 1)
		if err != nil {
			t.Errorf("line %q: unexpected error %v", line, err)
		}
		if a != nil {
			t.Errorf("line %q: expected nil annotation, got %+v", line, a)
		}
	}
}

func TestParseAnnotationErrors(t *testing.T) {
	for _, line := range []string{
		"//@motte:include unknown_struct",
		"//@motte:include",
		"//@motte:group 0 0 bad_space params cel_params",
		"//@motte:group x 0 storage_uniform params cel_params",
		"//@motte:group 0 0 storage_uniform params unknown",
		"//@motte:provider 0 0 unknown_provider",
		"//@motte:provider 0 0 material unknown_role",
		"//@motte:frobnicate 0 0",
	} {
		if _, err := parseAnnotation(line, 1); err == nil {
			t.Errorf("line %q: expected parse error", line)
		}
	}
}

func TestPreProcessorInjectsAndDeclares(t *testing.T) {
	src := strings.Join([]string{
		"//@motte:include cel_params",
		"//@motte:group 0 0 storage_uniform params cel_params",
		"//@motte:provider 1 0 material lit_texture",
		"@group(1) @binding(0) var lit_texture: texture_2d<f32>;",
	}, "\n")

	pp := NewPreProcessor()
	out, err := pp.Process(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "struct CelParams") {
		t.Errorf("include annotation did not inject struct source")
	}
	if !strings.Contains(out, "@group(0) @binding(0) var<uniform> params: CelParams;") {
		t.Errorf("group annotation did not generate declaration:\n%s", out)
	}
	if strings.Contains(out, annotationPrefix) {
		t.Errorf("processed output still contains annotations")
	}

	decls := pp.Declarations()
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations (group + provider), got %d", len(decls))
	}
	if decls[0].Type != AnnotationTypeBindingGroup || decls[1].Type != AnnotationTypeProvider {
		t.Errorf("declarations out of order: %v %v", decls[0].Type, decls[1].Type)
	}
}

func TestPreProcessorResetsDeclarations(t *testing.T) {
	pp := NewPreProcessor()
	if _, err := pp.Process("//@motte:provider 0 1 pixelate color_texture"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := pp.Process("fn main() {}"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pp.Declarations()) != 0 {
		t.Errorf("declarations should reset between Process calls")
	}
}

func TestStructSizes(t *testing.T) {
	combined := material.GPUCelParamsSource + "\n" + material.GPUEdgeParamsSource + "\n" + pixelate.GPUScaleBiasSource
	sizes := computeStructSizes(parseStructBlocks(stripComments(combined)))

	want := map[string]uint64{
		"CelParams":  32,
		"EdgeParams": 48,
		"ScaleBias":  16,
	}
	for name, size := range want {
		layout, ok := sizes[name]
		if !ok {
			t.Errorf("struct %s not resolved", name)
			continue
		}
		if layout.size != size {
			t.Errorf("struct %s: got size %d, want %d", name, layout.size, size)
		}
	}
}

func TestNewShaderCelFragment(t *testing.T) {
	s := NewShader("cel_fragment", ShaderTypeFragment, material.CelShaderSource)

	if s.EntryPoint() != "fragment_cel" {
		t.Errorf("entry point: got %q", s.EntryPoint())
	}
	if s.ShaderType() != ShaderTypeFragment {
		t.Errorf("shader type mismatch")
	}
	if s.Module() == nil || s.Module().WGSLDescriptor.Code == "" {
		t.Fatalf("module descriptor not built")
	}

	descs := s.BindGroupLayoutDescriptors()
	if len(descs) != 3 {
		t.Fatalf("expected 3 bind groups, got %d", len(descs))
	}

	g0 := descs[0]
	if len(g0.Entries) != 2 {
		t.Fatalf("group 0: expected 2 uniform entries, got %d", len(g0.Entries))
	}
	if g0.Entries[0].Buffer.Type != wgpu.BufferBindingTypeUniform || g0.Entries[0].Buffer.MinBindingSize != 32 {
		t.Errorf("group 0 binding 0: expected 32-byte uniform, got %+v", g0.Entries[0].Buffer)
	}
	if g0.Entries[1].Buffer.MinBindingSize != 48 {
		t.Errorf("group 0 binding 1: expected 48-byte uniform, got %+v", g0.Entries[1].Buffer)
	}

	g1 := descs[1]
	if len(g1.Entries) != 3 {
		t.Fatalf("group 1: expected 3 entries, got %d", len(g1.Entries))
	}
	if g1.Entries[0].Texture.SampleType != wgpu.TextureSampleTypeFloat {
		t.Errorf("group 1 binding 0: expected float texture, got %+v", g1.Entries[0].Texture)
	}
	if g1.Entries[2].Sampler.Type != wgpu.SamplerBindingTypeFiltering {
		t.Errorf("group 1 binding 2: expected filtering sampler, got %+v", g1.Entries[2].Sampler)
	}

	g2 := descs[2]
	if g2.Entries[0].Texture.SampleType != wgpu.TextureSampleTypeDepth {
		t.Errorf("group 2 binding 0: expected depth texture, got %+v", g2.Entries[0].Texture)
	}
	if g2.Entries[1].Texture.SampleType != wgpu.TextureSampleTypeFloat {
		t.Errorf("group 2 binding 1: expected float normal texture, got %+v", g2.Entries[1].Texture)
	}

	if name := s.BindGroupVarName(1, 0); name != "lit_texture" {
		t.Errorf("var name lookup: got %q", name)
	}
	if binding, ok := s.BindGroupFromVarName(2, "normal_texture"); !ok || binding != 1 {
		t.Errorf("reverse lookup: got %d %v", binding, ok)
	}
}

func TestNewShaderCelVertex(t *testing.T) {
	s := NewShader("cel_vertex", ShaderTypeVertex, material.CelShaderSource)

	if s.EntryPoint() != "vertex_fullscreen" {
		t.Errorf("entry point: got %q", s.EntryPoint())
	}
	for _, desc := range s.BindGroupLayoutDescriptors() {
		for _, e := range desc.Entries {
			if e.Visibility != wgpu.ShaderStageVertex {
				t.Errorf("vertex stage entries should carry vertex visibility, got %v", e.Visibility)
			}
		}
	}
}

func TestNewShaderPixelate(t *testing.T) {
	s := NewShader("pixelate_fragment", ShaderTypeFragment, pixelate.PixelateShaderSource)

	if s.EntryPoint() != "fragment_pixelate" {
		t.Errorf("entry point: got %q", s.EntryPoint())
	}
	descs := s.BindGroupLayoutDescriptors()
	if len(descs) != 1 {
		t.Fatalf("expected 1 bind group, got %d", len(descs))
	}
	entries := descs[0].Entries
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Buffer.Type != wgpu.BufferBindingTypeUniform || entries[0].Buffer.MinBindingSize != 16 {
		t.Errorf("binding 0: expected 16-byte uniform, got %+v", entries[0].Buffer)
	}
	if entries[1].Texture.SampleType != wgpu.TextureSampleTypeFloat {
		t.Errorf("binding 1: expected float texture, got %+v", entries[1].Texture)
	}
	if entries[2].Sampler.Type != wgpu.SamplerBindingTypeFiltering {
		t.Errorf("binding 2: expected filtering sampler, got %+v", entries[2].Sampler)
	}

	var providers []Annotation
	for _, d := range s.Declarations() {
		if d.Type == AnnotationTypeProvider {
			providers = append(providers, d)
		}
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 provider declarations, got %d", len(providers))
	}
	if providers[0].Args[0] != AnnotationArgPixelate {
		t.Errorf("provider identity: got %q", providers[0].Args[0])
	}
}

func TestNewShaderPanics(t *testing.T) {
	t.Run("empty source", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for empty source")
			}
		}()
		NewShader("empty", ShaderTypeFragment, "")
	})

	t.Run("bad annotation", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for malformed annotation")
			}
		}()
		NewShader("bad", ShaderTypeFragment, "//@motte:include nope\n@fragment fn f() {}")
	})

	t.Run("missing entry point", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for missing stage entry point")
			}
		}()
		NewShader("no_vertex", ShaderTypeVertex, "@fragment fn f() -> @location(0) vec4<f32> { return vec4<f32>(0.0); }")
	})
}
