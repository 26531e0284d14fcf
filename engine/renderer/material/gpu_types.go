package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/pyrbin/motte/stylize"
)

// GPUCelParamsSource is the canonical WGSL definition of the CelParams struct.
// Matches GPUCelParams layout exactly (32 bytes, std430 aligned).
//
//go:embed assets/cel_params.wgsl
var GPUCelParamsSource string

// GPUCelParams is the GPU-aligned uniform for the cel compose fragment shader.
// Mode 0 selects the two-tone quantizer, 1 the banded quantizer; the unused
// variant's fields are ignored by the shader. Matches the WGSL CelParams
// struct layout exactly (see GPUCelParamsSource).
// Size: 32 bytes (std430 aligned).
type GPUCelParams struct {
	Mode           uint32  // offset  0: 0 = two-tone, 1 = banded
	Lit            float32 // offset  4: lit-side lightness multiplier
	Shadow         float32 // offset  8: shadow-side lightness multiplier
	CutOff         float32 // offset 12: lit-lightness threshold
	Bands          float32 // offset 16: band count
	Power          float32 // offset 20: response exponent
	DitherFactor   float32 // offset 24: dither noise scale
	OutlineEnabled uint32  // offset 28: nonzero enables the outline stage
}

// NewGPUCelParams converts validated CPU-side parameter records into the GPU
// uniform representation.
//
// Parameters:
//   - cel: the cel quantizer parameters
//   - outline: the outline composition parameters
//
// Returns:
//   - GPUCelParams: the uniform value ready for Marshal
func NewGPUCelParams(cel stylize.CelParams, outline stylize.OutlineParams) GPUCelParams {
	g := GPUCelParams{
		Lit:          cel.Lit,
		Shadow:       cel.Shadow,
		CutOff:       cel.CutOff,
		Bands:        cel.Bands,
		Power:        cel.Power,
		DitherFactor: cel.DitherFactor,
	}
	if cel.Mode == stylize.CelBanded {
		g.Mode = 1
	}
	if outline.Enabled {
		g.OutlineEnabled = 1
	}
	return g
}

// Size returns the size of the GPUCelParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUCelParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCelParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUCelParams) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], g.Mode)
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Lit))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Shadow))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.CutOff))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Bands))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Power))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.DitherFactor))
	binary.LittleEndian.PutUint32(buf[28:32], g.OutlineEnabled)
	return buf
}

// GPUEdgeParamsSource is the canonical WGSL definition of the EdgeParams struct.
// Matches GPUEdgeParams layout exactly (48 bytes, std430 aligned).
//
//go:embed assets/edge_params.wgsl
var GPUEdgeParamsSource string

// GPUEdgeParams is the GPU-aligned uniform for the edge detector inside the cel
// compose fragment shader. Matches the WGSL EdgeParams struct layout exactly
// (see GPUEdgeParamsSource).
// Size: 48 bytes (vec3 + 9 scalars, std430 aligned).
type GPUEdgeParams struct {
	NormalBias            [3]float32 // offset  0: projection direction for normal differences (12 bytes)
	OutlineStrength       float32    // offset 12: outline darkening scale
	DepthThresholdLow     float32    // offset 16
	DepthThresholdHigh    float32    // offset 20
	NegDepthThresholdLow  float32    // offset 24
	NegDepthThresholdHigh float32    // offset 28
	NormalThresholdLow    float32    // offset 32
	NormalThresholdHigh   float32    // offset 36
	NormalBiasLow         float32    // offset 40
	NormalBiasHigh        float32    // offset 44
}

// NewGPUEdgeParams converts validated CPU-side parameter records into the GPU
// uniform representation. The neighbor offset list is fixed to the four
// axis-aligned neighbors on the GPU path.
//
// Parameters:
//   - edge: the edge detector tunables
//   - outline: the outline composition parameters
//
// Returns:
//   - GPUEdgeParams: the uniform value ready for Marshal
func NewGPUEdgeParams(edge stylize.EdgeParams, outline stylize.OutlineParams) GPUEdgeParams {
	return GPUEdgeParams{
		NormalBias:            edge.NormalBias,
		OutlineStrength:       outline.Strength,
		DepthThresholdLow:     edge.DepthThresholdLow,
		DepthThresholdHigh:    edge.DepthThresholdHigh,
		NegDepthThresholdLow:  edge.NegDepthThresholdLow,
		NegDepthThresholdHigh: edge.NegDepthThresholdHigh,
		NormalThresholdLow:    edge.NormalThresholdLow,
		NormalThresholdHigh:   edge.NormalThresholdHigh,
		NormalBiasLow:         edge.NormalBiasLow,
		NormalBiasHigh:        edge.NormalBiasHigh,
	}
}

// Size returns the size of the GPUEdgeParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUEdgeParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUEdgeParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUEdgeParams) Marshal() []byte {
	buf := make([]byte, 48)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.NormalBias[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.OutlineStrength))
	binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(g.DepthThresholdLow))
	binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(g.DepthThresholdHigh))
	binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(g.NegDepthThresholdLow))
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.NegDepthThresholdHigh))
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(g.NormalThresholdLow))
	binary.LittleEndian.PutUint32(buf[36:], math.Float32bits(g.NormalThresholdHigh))
	binary.LittleEndian.PutUint32(buf[40:], math.Float32bits(g.NormalBiasLow))
	binary.LittleEndian.PutUint32(buf[44:], math.Float32bits(g.NormalBiasHigh))
	return buf
}

// CelShaderSource is the raw annotated WGSL source of the cel compose pass.
// It carries both the fullscreen-triangle vertex entry (vertex_fullscreen) and
// the cel fragment entry (fragment_cel) and is handed to shader.NewShader once
// per stage.
//
//go:embed assets/cel.wgsl
var CelShaderSource string
