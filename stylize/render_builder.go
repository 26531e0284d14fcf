package stylize

// RendererBuilderOption is a functional option for configuring a Renderer.
// Use the With* functions to create options.
type RendererBuilderOption func(r *renderer)

// WithCelParams sets the cel quantizer parameter record. Defaults to the
// two-tone variant at lit=1.0, shadow=0.5, cut_off=0.5.
//
// Parameters:
//   - p: the cel parameters (validated on the next shade pass)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithCelParams(p CelParams) RendererBuilderOption {
	return func(r *renderer) {
		r.cel = p
	}
}

// WithEdgeParams sets the edge detector tunables. Defaults to
// DefaultEdgeParams.
//
// Parameters:
//   - p: the edge parameters (validated on the next outlined shade pass)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithEdgeParams(p EdgeParams) RendererBuilderOption {
	return func(r *renderer) {
		r.edge = p
	}
}

// WithOutlineParams sets the outline composition stage configuration.
// Outlining is off by default.
//
// Parameters:
//   - p: the outline parameters
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithOutlineParams(p OutlineParams) RendererBuilderOption {
	return func(r *renderer) {
		r.outline = p
	}
}

// WithNoise sets the screen-space noise source consumed by the banded
// quantizer. Defaults to InterleavedGradientNoise; nil restores the default.
//
// Parameters:
//   - f: the noise function
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithNoise(f NoiseFunc) RendererBuilderOption {
	return func(r *renderer) {
		if f == nil {
			f = InterleavedGradientNoise
		}
		r.noise = f
	}
}

// WithWorkers sets the number of worker goroutines used for the row-parallel
// pixel loops. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithWorkers(n int) RendererBuilderOption {
	return func(r *renderer) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

// WithPreset applies a loaded preset's cel, edge, and outline tables in one
// option.
//
// Parameters:
//   - p: a validated preset
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPreset(p Preset) RendererBuilderOption {
	return func(r *renderer) {
		if cel, err := p.CelParams(); err == nil {
			r.cel = cel
		}
		if edge, err := p.EdgeParams(); err == nil {
			r.edge = edge
		}
		r.outline = p.OutlineParams()
	}
}
