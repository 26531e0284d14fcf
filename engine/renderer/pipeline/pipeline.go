package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/pyrbin/motte/engine/renderer/shader"
)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	pipelineKey string

	vertexShader   shader.Shader
	fragmentShader shader.Shader

	blend       bool
	blendState  *wgpu.BlendState
	cullMode    wgpu.CullMode
	topology    wgpu.PrimitiveTopology
	frontFace   wgpu.FrontFace
	writeMask   wgpu.ColorWriteMask
	colorFormat wgpu.TextureFormat

	renderPipeline *wgpu.RenderPipeline
}

// Pipeline defines the interface for a render pipeline record. Every pass in the
// stylize chain (cel compose pass, pixelate upscale pass) is a fullscreen-triangle
// render pipeline: no vertex buffers, no depth attachment, a single color target.
//
// The record holds the CPU-side configuration until the Renderer registers it,
// at which point the created *wgpu.RenderPipeline is stored back on the record.
type Pipeline interface {
	// PipelineKey retrieves the unique identifier for this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the pipeline's unique key
	PipelineKey() string

	// Shader retrieves the shader of the given type attached to this pipeline.
	//
	// Parameters:
	//   - shaderType: the shader stage to retrieve (vertex or fragment)
	//
	// Returns:
	//   - shader.Shader: the attached shader, or nil if not set
	Shader(shaderType shader.ShaderType) shader.Shader

	// BlendEnabled reports whether alpha blending is enabled for the color target.
	//
	// Returns:
	//   - bool: true if blending is enabled
	BlendEnabled() bool

	// BlendState retrieves the blend state used when blending is enabled.
	//
	// Returns:
	//   - *wgpu.BlendState: the configured blend state
	BlendState() *wgpu.BlendState

	// CullMode retrieves the triangle cull mode. Fullscreen-triangle passes default
	// to CullModeNone.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode
	CullMode() wgpu.CullMode

	// Topology retrieves the primitive topology.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology
	Topology() wgpu.PrimitiveTopology

	// FrontFace retrieves the front-face winding order.
	//
	// Returns:
	//   - wgpu.FrontFace: the front-face winding
	FrontFace() wgpu.FrontFace

	// WriteMask retrieves the color write mask for the color target.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask
	WriteMask() wgpu.ColorWriteMask

	// ColorFormat retrieves the color target texture format. TextureFormatUndefined
	// means the Renderer substitutes the surface format at registration time.
	//
	// Returns:
	//   - wgpu.TextureFormat: the color target format, or TextureFormatUndefined
	ColorFormat() wgpu.TextureFormat

	// Pipeline retrieves the created GPU render pipeline, or nil if the pipeline has
	// not been registered with the Renderer yet.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the GPU pipeline or nil
	Pipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the created GPU render pipeline on this record.
	// Called by the Renderer during registration.
	//
	// Parameters:
	//   - p: the created render pipeline
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new Pipeline record with the provided options applied.
// Both a vertex and a fragment shader must be attached via options before the
// pipeline can be registered with the Renderer.
//
// Parameters:
//   - pipelineKey: the unique identifier for this pipeline
//   - options: variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline record configured with the provided options
func NewPipeline(pipelineKey string, options ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey: pipelineKey,
		cullMode:    wgpu.CullModeNone,
		topology:    wgpu.PrimitiveTopologyTriangleList,
		frontFace:   wgpu.FrontFaceCCW,
		writeMask:   wgpu.ColorWriteMaskAll,
		colorFormat: wgpu.TextureFormatUndefined,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) BlendEnabled() bool {
	return p.blend
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) ColorFormat() wgpu.TextureFormat {
	return p.colorFormat
}

func (p *pipeline) Pipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}
