package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/pyrbin/motte/engine/renderer/shader"
)

// PipelineBuilderOption is a function that configures a pipeline record during construction.
type PipelineBuilderOption func(*pipeline)

// WithVertexShader is an option builder that attaches the vertex shader to the pipeline.
//
// Parameters:
//   - s: the vertex shader to attach
//
// Returns:
//   - PipelineBuilderOption: a function that applies the vertex shader option to a pipeline
func WithVertexShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexShader = s
	}
}

// WithFragmentShader is an option builder that attaches the fragment shader to the pipeline.
//
// Parameters:
//   - s: the fragment shader to attach
//
// Returns:
//   - PipelineBuilderOption: a function that applies the fragment shader option to a pipeline
func WithFragmentShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.fragmentShader = s
	}
}

// WithBlendEnabled is an option builder that enables or disables alpha blending.
//
// Parameters:
//   - enabled: true to enable blending
//
// Returns:
//   - PipelineBuilderOption: a function that applies the blend option to a pipeline
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blend = enabled
	}
}

// WithBlendState is an option builder that sets a custom blend state, replacing the
// default source-alpha over blend.
//
// Parameters:
//   - state: the blend state to use when blending is enabled
//
// Returns:
//   - PipelineBuilderOption: a function that applies the blend state option to a pipeline
func WithBlendState(state *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = state
	}
}

// WithCullMode is an option builder that sets the triangle cull mode.
//
// Parameters:
//   - mode: the cull mode to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the cull mode option to a pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology is an option builder that sets the primitive topology.
//
// Parameters:
//   - topology: the primitive topology to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the topology option to a pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace is an option builder that sets the front-face winding order.
//
// Parameters:
//   - face: the front-face winding to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the front-face option to a pipeline
func WithFrontFace(face wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = face
	}
}

// WithWriteMask is an option builder that sets the color write mask.
//
// Parameters:
//   - mask: the color write mask to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the write mask option to a pipeline
func WithWriteMask(mask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = mask
	}
}

// WithColorFormat is an option builder that sets the color target texture format.
// Pipelines targeting an offscreen render texture must match that texture's format;
// pipelines targeting the swapchain leave this unset and the Renderer substitutes
// the surface format at registration time.
//
// Parameters:
//   - format: the color target texture format
//
// Returns:
//   - PipelineBuilderOption: a function that applies the color format option to a pipeline
func WithColorFormat(format wgpu.TextureFormat) PipelineBuilderOption {
	return func(p *pipeline) {
		p.colorFormat = format
	}
}
