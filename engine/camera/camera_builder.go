package camera

// CameraBuilderOption is a function that configures a camera during construction.
type CameraBuilderOption func(*cameraImpl)

// WithMode is an option builder that sets the sizing mode.
//
// Parameters:
//   - mode: the sizing mode to use
//
// Returns:
//   - CameraBuilderOption: a function that applies the mode option to a camera
func WithMode(mode Mode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mode = mode
	}
}

// WithViewportHeight is an option builder that sets the viewport height in world units.
// Non-positive heights are ignored.
//
// Parameters:
//   - height: the viewport height in world units
//
// Returns:
//   - CameraBuilderOption: a function that applies the viewport height option to a camera
func WithViewportHeight(height float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if height > 0 {
			c.viewportHeight = height
		}
	}
}

// WithPosition is an option builder that sets the initial camera position.
//
// Parameters:
//   - x, y: the position in world units
//
// Returns:
//   - CameraBuilderOption: a function that applies the position option to a camera
func WithPosition(x, y float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = [2]float32{x, y}
	}
}

// WithClipPlanes is an option builder that sets the near and far clip distances
// of the orthographic projection.
//
// Parameters:
//   - near, far: the clip plane distances
//
// Returns:
//   - CameraBuilderOption: a function that applies the clip plane option to a camera
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithSnapTransforms is an option builder that enables or disables camera
// translation snapping.
//
// Parameters:
//   - enabled: true to snap the camera position to the texel grid
//
// Returns:
//   - CameraBuilderOption: a function that applies the snapping option to a camera
func WithSnapTransforms(enabled bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.snapTransforms = enabled
	}
}

// WithSubPixelSmoothing is an option builder that enables or disables sub-pixel
// smoothing.
//
// Parameters:
//   - enabled: true to feed the snap offset to the upscale pass
//
// Returns:
//   - CameraBuilderOption: a function that applies the smoothing option to a camera
func WithSubPixelSmoothing(enabled bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.subPixelSmoothing = enabled
	}
}
