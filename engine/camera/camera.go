package camera

import (
	"math"
	"sync"

	"github.com/pyrbin/motte/common"
	"github.com/pyrbin/motte/stylize"
)

type cameraImpl struct {
	mu *sync.Mutex

	mode              Mode
	viewportHeight    float32
	near              float32
	far               float32
	position          [2]float32
	snapTransforms    bool
	subPixelSmoothing bool

	renderWidth      uint32
	renderHeight     uint32
	unitsPerPixel    float32
	snapOffset       [2]float32
	scaleBias        stylize.ScaleBias
	projectionMatrix [16]float32
	viewProjection   [16]float32
}

// Camera defines the interface for the pixelate camera. It derives the
// low-resolution render target size from the window size per its sizing Mode,
// snaps the camera translation to the texel grid, and produces the ScaleBias
// transform the upscale pass uses to reintroduce the sub-texel remainder of
// the motion. Update recomputes all derived state and should be called once
// per frame (typically in the tick callback) and after window resizes.
type Camera interface {
	// Mode returns the active sizing mode.
	//
	// Returns:
	//   - Mode: the sizing mode
	Mode() Mode

	// ViewportHeight returns the camera's viewport height in world units.
	//
	// Returns:
	//   - float32: the viewport height
	ViewportHeight() float32

	// Position returns the camera's world-space translation on the view plane.
	//
	// Returns:
	//   - [2]float32: the x/y position in world units
	Position() [2]float32

	// RenderResolution returns the low-resolution render target size computed
	// by the most recent Update. At least 1x1, never larger than the window.
	//
	// Returns:
	//   - width, height: the render target size in texels
	RenderResolution() (width, height uint32)

	// UnitsPerPixel returns the world-unit size of one render target texel
	// under the orthographic fixed-vertical projection.
	//
	// Returns:
	//   - float32: world units per texel
	UnitsPerPixel() float32

	// SnapOffset returns the sub-texel remainder of the camera translation,
	// the difference between the requested position and the snapped position.
	// Zero when transform snapping is disabled.
	//
	// Returns:
	//   - [2]float32: the snap offset in world units
	SnapOffset() [2]float32

	// ScaleBias returns the framing transform for the upscale pass. The bias
	// carries the snap offset converted to normalized texture coordinates with
	// y negated (texture rows grow downward); it is zero when sub-pixel
	// smoothing is disabled.
	//
	// Returns:
	//   - stylize.ScaleBias: the framing transform
	ScaleBias() stylize.ScaleBias

	// ProjectionMatrix returns the orthographic fixed-vertical projection for
	// the current render resolution as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the combined view-projection transform for
	// hosts rendering their own geometry into the low-resolution target. The
	// view translation uses the snapped camera position, so world geometry
	// lands on the texel grid while the sub-texel remainder travels through
	// ScaleBias instead.
	//
	// Returns:
	//   - [16]float32: the view-projection matrix (column-major)
	ViewProjectionMatrix() [16]float32

	// SnapTransforms reports whether camera translation snapping is enabled.
	//
	// Returns:
	//   - bool: true if the camera position snaps to the texel grid
	SnapTransforms() bool

	// SubPixelSmoothing reports whether the snap offset is fed to the upscale pass.
	//
	// Returns:
	//   - bool: true if sub-pixel smoothing is enabled
	SubPixelSmoothing() bool

	// Update recomputes the render resolution, units-per-pixel, snap offset,
	// scale-bias transform, and projection matrix for the given window size.
	//
	// Parameters:
	//   - windowWidth, windowHeight: the window framebuffer size in pixels
	Update(windowWidth, windowHeight uint32)

	// SetMode replaces the sizing mode. Takes effect on the next Update.
	//
	// Parameters:
	//   - mode: the new sizing mode
	SetMode(mode Mode)

	// SetViewportHeight sets the viewport height in world units.
	//
	// Parameters:
	//   - height: the viewport height, ignored unless positive
	SetViewportHeight(height float32)

	// SetPosition sets the camera's world-space translation on the view plane.
	//
	// Parameters:
	//   - x, y: the position in world units
	SetPosition(x, y float32)

	// SetSnapTransforms enables or disables camera translation snapping.
	//
	// Parameters:
	//   - enabled: true to snap the camera position to the texel grid
	SetSnapTransforms(enabled bool)

	// SetSubPixelSmoothing enables or disables feeding the snap offset to the
	// upscale pass. With smoothing off the bias is zero and camera motion
	// steps texel by texel.
	//
	// Parameters:
	//   - enabled: true to enable sub-pixel smoothing
	SetSubPixelSmoothing(enabled bool)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera instance with all specified options applied.
// Defaults: 8 pixels per unit, a 10-unit viewport height, snapping and
// sub-pixel smoothing enabled. Derived state holds the identity transform
// until the first Update.
//
// Parameters:
//   - options: variadic list of CameraBuilderOption functions to configure the camera
//
// Returns:
//   - Camera: a new Camera instance
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                &sync.Mutex{},
		mode:              PixelsPerUnit(8),
		viewportHeight:    10,
		near:              -1000,
		far:               1000,
		snapTransforms:    true,
		subPixelSmoothing: true,
		renderWidth:       1,
		renderHeight:      1,
		scaleBias:         stylize.IdentityScaleBias(),
	}
	for _, opt := range options {
		opt(c)
	}
	common.Identity(c.projectionMatrix[:])
	common.Identity(c.viewProjection[:])
	return c
}

func (c *cameraImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *cameraImpl) ViewportHeight() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewportHeight
}

func (c *cameraImpl) Position() [2]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) RenderResolution() (uint32, uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderWidth, c.renderHeight
}

func (c *cameraImpl) UnitsPerPixel() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unitsPerPixel
}

func (c *cameraImpl) SnapOffset() [2]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapOffset
}

func (c *cameraImpl) ScaleBias() stylize.ScaleBias {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scaleBias
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjection
}

func (c *cameraImpl) SnapTransforms() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapTransforms
}

func (c *cameraImpl) SubPixelSmoothing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subPixelSmoothing
}

func (c *cameraImpl) Update(windowWidth, windowHeight uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	windowWidth = max(windowWidth, 1)
	windowHeight = max(windowHeight, 1)

	c.renderWidth, c.renderHeight = c.renderResolution(windowWidth, windowHeight)
	c.unitsPerPixel = c.viewportHeight / float32(c.renderHeight)

	viewX, viewY := c.position[0], c.position[1]
	if c.snapTransforms {
		viewX = common.Snap(viewX, c.unitsPerPixel)
		viewY = common.Snap(viewY, c.unitsPerPixel)
		c.snapOffset = [2]float32{c.position[0] - viewX, c.position[1] - viewY}
	} else {
		c.snapOffset = [2]float32{}
	}

	c.scaleBias = stylize.IdentityScaleBias()
	if c.subPixelSmoothing {
		c.scaleBias.Bias = [2]float32{
			c.snapOffset[0] / c.unitsPerPixel / float32(c.renderWidth),
			-c.snapOffset[1] / c.unitsPerPixel / float32(c.renderHeight),
		}
	}

	halfHeight := c.viewportHeight / 2
	halfWidth := halfHeight * float32(c.renderWidth) / float32(c.renderHeight)
	common.Orthographic(c.projectionMatrix[:], -halfWidth, halfWidth, -halfHeight, halfHeight, c.near, c.far)

	var view [16]float32
	common.Identity(view[:])
	view[12] = -viewX
	view[13] = -viewY
	common.Mul4(c.viewProjection[:], c.projectionMatrix[:], view[:])
}

func (c *cameraImpl) SetMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

func (c *cameraImpl) SetViewportHeight(height float32) {
	if height <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewportHeight = height
}

func (c *cameraImpl) SetPosition(x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [2]float32{x, y}
}

func (c *cameraImpl) SetSnapTransforms(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapTransforms = enabled
}

func (c *cameraImpl) SetSubPixelSmoothing(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subPixelSmoothing = enabled
}

// renderResolution computes the render target size for the active mode,
// clamped to at least 1x1 and at most the window size. Caller holds the lock.
func (c *cameraImpl) renderResolution(windowWidth, windowHeight uint32) (uint32, uint32) {
	var w, h uint32
	switch c.mode.kind {
	case modePixelsPerUnit:
		aspect := float64(windowWidth) / float64(windowHeight)
		fh := float64(c.viewportHeight) * float64(c.mode.pixelsPerUnit)
		h = uint32(math.Round(fh))
		w = uint32(math.Round(fh * aspect))
	case modeFixedResolution:
		w, h = c.mode.width, c.mode.height
	case modeScaleFactor:
		w = uint32(math.Round(float64(windowWidth) / float64(c.mode.scaleFactor)))
		h = uint32(math.Round(float64(windowHeight) / float64(c.mode.scaleFactor)))
	}
	w = min(max(w, 1), windowWidth)
	h = min(max(h, 1), windowHeight)
	return w, h
}
