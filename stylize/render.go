package stylize

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// renderer implements the Renderer interface.
type renderer struct {
	cel     CelParams
	edge    EdgeParams
	outline OutlineParams
	noise   NoiseFunc

	// pool manages a bounded set of reusable goroutines for the row-parallel
	// pixel loops. Workers persist across frames, avoiding per-frame
	// goroutine spawn/teardown overhead.
	pool    worker.DynamicWorkerPool
	workers int
}

// Renderer runs the full pipeline over whole image buffers on the CPU. It is
// the software mirror of the GPU passes: the cel material pass (quantize
// plus optional outline) followed by the pixelate upscale pass. Rows are
// processed in parallel; within a pass no invocation observes another's
// intermediate state.
type Renderer interface {
	// ShadePass applies the cel quantizer and the outline stage to a lit
	// color buffer, producing a new buffer of the same size.
	//
	// Parameters:
	//   - lit: the already-lit color buffer
	//   - albedo: the pre-lighting base color buffer; may be nil, in which
	//     case the lit buffer doubles as the albedo hint (two-tone mode only)
	//   - geo: depth/normal prepass buffers; may be nil when outlining is
	//     disabled
	//
	// Returns:
	//   - *Image: the quantized (and optionally outlined) color buffer
	//   - error: invalid parameters or missing required inputs
	ShadePass(lit, albedo *Image, geo *GeometryBuffer) (*Image, error)

	// UpscalePass resamples a composed low-resolution buffer to the display
	// size with the derivative-matched box filter. This is the final pass;
	// the result is presentable with no further processing.
	//
	// Parameters:
	//   - src: composed low-resolution color buffer
	//   - width, height: display dimensions in pixels
	//   - sb: camera/viewport framing transform
	//
	// Returns:
	//   - *Image: the upscaled buffer
	//   - error: non-positive display dimensions
	UpscalePass(src *Image, width, height int, sb ScaleBias) (*Image, error)
}

// Ensure renderer implements Renderer.
var _ Renderer = &renderer{}

// NewRenderer creates a software pipeline renderer with the provided
// options. Defaults: two-tone cel shading at the original defaults, the
// default edge tuning, outlines off, interleaved gradient noise, and one
// worker per available CPU minus one.
//
// Parameters:
//   - options: functional options for pipeline configuration
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &renderer{
		cel:     TwoTone(1.0, 0.5, 0.5),
		edge:    DefaultEdgeParams(),
		outline: OutlineParams{},
		noise:   InterleavedGradientNoise,
		workers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(r)
	}

	// Initialize the pool after options so WithWorkers can override the
	// default. Queue size of 256 accommodates typical row counts per chunk.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)

	Logger().Debug("software renderer created", "workers", r.workers, "cel_mode", r.cel.Mode.String())
	return r
}

func (r *renderer) ShadePass(lit, albedo *Image, geo *GeometryBuffer) (*Image, error) {
	if lit == nil {
		return nil, fmt.Errorf("render: shade pass requires a lit color buffer")
	}
	if err := r.cel.Validate(); err != nil {
		return nil, err
	}
	if r.outline.Enabled {
		if err := r.edge.Validate(); err != nil {
			return nil, err
		}
		if err := r.outline.Validate(); err != nil {
			return nil, err
		}
		if geo == nil {
			return nil, fmt.Errorf("render: outlining requires a depth/normal buffer")
		}
	}
	if albedo == nil {
		albedo = lit
	}

	w, h := lit.Size()
	out := NewImage(w, h)

	// A WaitGroup provides the per-frame barrier; pool workers are reused
	// across passes.
	var wg sync.WaitGroup
	for y := 0; y < h; y++ {
		wg.Add(1)
		row := y
		r.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				for x := 0; x < w; x++ {
					noise := r.noise(float32(x), float32(row))
					c := Shade(lit.At(x, row), albedo.At(x, row), r.cel, noise)
					if r.outline.Enabled {
						ne, de := DetectEdges(geo, x, row, r.edge)
						c = ApplyOutline(c, ne, de, r.outline)
					}
					out.Set(x, row, c)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out, nil
}

func (r *renderer) UpscalePass(src *Image, width, height int, sb ScaleBias) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("render: upscale pass requires a source buffer")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: display dimensions must be positive, got %dx%d", width, height)
	}

	out := NewImage(width, height)
	dudx := 1 / float32(width)
	dvdy := 1 / float32(height)

	var wg sync.WaitGroup
	for y := 0; y < height; y++ {
		wg.Add(1)
		row := y
		r.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				v := (float32(row) + 0.5) / float32(height)
				for x := 0; x < width; x++ {
					u := (float32(x) + 0.5) / float32(width)
					out.Set(x, row, Upscale(src, u, v, dudx, dvdy, sb))
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out, nil
}
