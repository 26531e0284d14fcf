package pixelate

import (
	"github.com/pyrbin/motte/engine/renderer/bind_group_provider"
	"github.com/pyrbin/motte/stylize"
)

// PassBuilderOption is a function that configures a pass during construction.
type PassBuilderOption func(*pass)

// WithScaleBias is an option builder that sets the initial framing transform.
//
// Parameters:
//   - sb: the coordinate transform applied before sampling
//
// Returns:
//   - PassBuilderOption: a function that applies the transform option to a pass
func WithScaleBias(sb stylize.ScaleBias) PassBuilderOption {
	return func(p *pass) {
		p.scaleBias = sb
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key.
//
// Parameters:
//   - key: the pipeline key to associate with the pass
//
// Returns:
//   - PassBuilderOption: a function that applies the pipeline key option to a pass
func WithPipelineKey(key string) PassBuilderOption {
	return func(p *pass) {
		p.pipelineKey = key
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for the pass
//
// Returns:
//   - PassBuilderOption: a function that applies the bind group provider option to a pass
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) PassBuilderOption {
	return func(p *pass) {
		p.bindGroupProvider = provider
	}
}
