package pixelate

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/pyrbin/motte/stylize"
)

// GPUScaleBiasSource is the canonical WGSL definition of the ScaleBias struct.
// Matches GPUScaleBias layout exactly (16 bytes, std430 aligned).
//
//go:embed assets/scale_bias.wgsl
var GPUScaleBiasSource string

// GPUScaleBias is the GPU-aligned uniform for the upscale pass coordinate
// transform. Matches the WGSL ScaleBias struct layout exactly (see
// GPUScaleBiasSource).
// Size: 16 bytes (two vec2, std430 aligned).
type GPUScaleBias struct {
	Scale [2]float32 // offset 0: per-axis coordinate scale
	Bias  [2]float32 // offset 8: per-axis coordinate offset
}

// NewGPUScaleBias converts the CPU-side framing transform into the GPU
// uniform representation.
//
// Parameters:
//   - sb: the camera/viewport framing transform
//
// Returns:
//   - GPUScaleBias: the uniform value ready for Marshal
func NewGPUScaleBias(sb stylize.ScaleBias) GPUScaleBias {
	return GPUScaleBias{Scale: sb.Scale, Bias: sb.Bias}
}

// Size returns the size of the GPUScaleBias struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUScaleBias) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUScaleBias struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUScaleBias) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Scale[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Scale[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Bias[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Bias[1]))
	return buf
}

// PixelateShaderSource is the raw annotated WGSL source of the upscale pass.
// It carries both the fullscreen-triangle vertex entry (vertex_fullscreen) and
// the box-filter fragment entry (fragment_pixelate) and is handed to
// shader.NewShader once per stage.
//
//go:embed assets/pixelate.wgsl
var PixelateShaderSource string
