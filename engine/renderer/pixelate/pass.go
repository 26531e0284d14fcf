package pixelate

import (
	"github.com/pyrbin/motte/engine/renderer/bind_group_provider"
	"github.com/pyrbin/motte/stylize"
)

// pass is the implementation of the Pass interface.
type pass struct {
	scaleBias         stylize.ScaleBias
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Pass holds the state of the pixelate upscale pass: the framing transform the
// camera recomputes every frame and the GPU resource bindings the pass draws
// with. The transform is mutable so sub-pixel camera motion can update it
// between frames; the caller re-uploads the uniform through
// Renderer.WriteBuffers after a change.
type Pass interface {
	// ScaleBias retrieves the current framing transform.
	//
	// Returns:
	//   - stylize.ScaleBias: the coordinate transform applied before sampling
	ScaleBias() stylize.ScaleBias

	// Uniform assembles the GPU-aligned uniform value from the current transform.
	//
	// Returns:
	//   - GPUScaleBias: the framing uniform
	Uniform() GPUScaleBias

	// PipelineKey retrieves the key identifying the render pipeline this pass uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this pass.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetScaleBias replaces the framing transform.
	//
	// Parameters:
	//   - sb: the new coordinate transform
	SetScaleBias(sb stylize.ScaleBias)

	// SetPipelineKey sets the render pipeline key for this pass.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this pass
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this pass.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this pass
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Pass = &pass{}

// NewPass creates a new Pass instance configured with the provided options.
// Unconfigured passes default to the identity framing transform.
//
// Parameters:
//   - options: variadic list of PassBuilderOption functions to configure the pass
//
// Returns:
//   - Pass: a new Pass instance
func NewPass(options ...PassBuilderOption) Pass {
	p := &pass{
		scaleBias: stylize.IdentityScaleBias(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pass) ScaleBias() stylize.ScaleBias {
	return p.scaleBias
}

func (p *pass) Uniform() GPUScaleBias {
	return NewGPUScaleBias(p.scaleBias)
}

func (p *pass) PipelineKey() string {
	return p.pipelineKey
}

func (p *pass) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return p.bindGroupProvider
}

func (p *pass) SetScaleBias(sb stylize.ScaleBias) {
	p.scaleBias = sb
}

func (p *pass) SetPipelineKey(key string) {
	p.pipelineKey = key
}

func (p *pass) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	p.bindGroupProvider = provider
}
