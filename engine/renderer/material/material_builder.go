package material

import (
	"github.com/pyrbin/motte/engine/renderer/bind_group_provider"
	"github.com/pyrbin/motte/stylize"
)

// MaterialBuilderOption is a function that configures a material during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithCelParams is an option builder that sets the cel quantizer parameters.
//
// Parameters:
//   - p: the cel quantizer parameters
//
// Returns:
//   - MaterialBuilderOption: a function that applies the cel parameter option to a material
func WithCelParams(p stylize.CelParams) MaterialBuilderOption {
	return func(m *material) {
		m.cel = p
	}
}

// WithEdgeParams is an option builder that sets the edge detector parameters.
//
// Parameters:
//   - p: the edge detector parameters
//
// Returns:
//   - MaterialBuilderOption: a function that applies the edge parameter option to a material
func WithEdgeParams(p stylize.EdgeParams) MaterialBuilderOption {
	return func(m *material) {
		m.edge = p
	}
}

// WithOutlineParams is an option builder that sets the outline composition parameters.
//
// Parameters:
//   - p: the outline parameters
//
// Returns:
//   - MaterialBuilderOption: a function that applies the outline parameter option to a material
func WithOutlineParams(p stylize.OutlineParams) MaterialBuilderOption {
	return func(m *material) {
		m.outline = p
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bind group provider option to a material
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
