package material

import (
	"github.com/pyrbin/motte/engine/renderer/bind_group_provider"
	"github.com/pyrbin/motte/stylize"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	cel               stylize.CelParams
	edge              stylize.EdgeParams
	outline           stylize.OutlineParams
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a cel-shading material, bundling the
// quantizer, edge detector, and outline parameters of one look together with
// the GPU resource bindings the compose pass draws with.
//
// Parameter records are mutable so a look can be retuned at runtime; the
// caller re-uploads the uniforms through Renderer.WriteBuffers after a change.
// GPU resource references (pipeline key, bind group provider) are set after
// construction once the renderer has created the backing resources.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// CelParams retrieves the cel quantizer parameters of this material.
	//
	// Returns:
	//   - stylize.CelParams: the cel quantizer parameters
	CelParams() stylize.CelParams

	// EdgeParams retrieves the edge detector parameters of this material.
	//
	// Returns:
	//   - stylize.EdgeParams: the edge detector parameters
	EdgeParams() stylize.EdgeParams

	// OutlineParams retrieves the outline composition parameters of this material.
	//
	// Returns:
	//   - stylize.OutlineParams: the outline parameters
	OutlineParams() stylize.OutlineParams

	// Uniforms assembles the GPU-aligned uniform values from the current
	// parameter records.
	//
	// Returns:
	//   - GPUCelParams: the cel quantizer uniform
	//   - GPUEdgeParams: the edge detector uniform
	Uniforms() (GPUCelParams, GPUEdgeParams)

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetCelParams replaces the cel quantizer parameters.
	//
	// Parameters:
	//   - p: the new cel quantizer parameters
	SetCelParams(p stylize.CelParams)

	// SetEdgeParams replaces the edge detector parameters.
	//
	// Parameters:
	//   - p: the new edge detector parameters
	SetEdgeParams(p stylize.EdgeParams)

	// SetOutlineParams replaces the outline composition parameters.
	//
	// Parameters:
	//   - p: the new outline parameters
	SetOutlineParams(p stylize.OutlineParams)

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Unconfigured materials default to the two-tone quantizer with the stock edge
// detector and the outline stage disabled.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		cel:  stylize.TwoTone(1.0, 0.5, 0.5),
		edge: stylize.DefaultEdgeParams(),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) CelParams() stylize.CelParams {
	return m.cel
}

func (m *material) EdgeParams() stylize.EdgeParams {
	return m.edge
}

func (m *material) OutlineParams() stylize.OutlineParams {
	return m.outline
}

func (m *material) Uniforms() (GPUCelParams, GPUEdgeParams) {
	return NewGPUCelParams(m.cel, m.outline), NewGPUEdgeParams(m.edge, m.outline)
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetCelParams(p stylize.CelParams) {
	m.cel = p
}

func (m *material) SetEdgeParams(p stylize.EdgeParams) {
	m.edge = p
}

func (m *material) SetOutlineParams(p stylize.OutlineParams) {
	m.outline = p
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
