package stylize

import (
	"image"
	"image/color"

	"github.com/pyrbin/motte/common"
)

// Image is a float32 RGBA pixel buffer with clamp-to-edge addressing. It is
// the CPU stand-in for the renderer's color attachments and implements
// ColorSampler. Buffers are created per pass and never shared mutably
// between pixel invocations.
type Image struct {
	width, height int
	pix           []float32 // RGBA interleaved, row-major
}

var _ ColorSampler = &Image{}

// NewImage creates a zeroed image. Panics on non-positive dimensions, which
// is a programmer error, not a runtime condition.
//
// Parameters:
//   - width, height: dimensions in texels
//
// Returns:
//   - *Image: the new image
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		panic("stylize: NewImage requires positive dimensions")
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]float32, 4*width*height),
	}
}

// Size returns the image dimensions in texels.
func (img *Image) Size() (int, int) {
	return img.width, img.height
}

// clampCoord clamps a pixel coordinate to the valid range (clamp-to-edge).
func clampCoord(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

// At returns the color at a pixel. Out-of-range coordinates clamp to the
// nearest edge texel.
//
// Parameters:
//   - x, y: pixel coordinates
//
// Returns:
//   - Color: the stored color
func (img *Image) At(x, y int) Color {
	x = clampCoord(x, img.width)
	y = clampCoord(y, img.height)
	i := 4 * (y*img.width + x)
	return Color{R: img.pix[i], G: img.pix[i+1], B: img.pix[i+2], A: img.pix[i+3]}
}

// Set stores a color at a pixel. Out-of-range coordinates are ignored.
//
// Parameters:
//   - x, y: pixel coordinates
//   - c: color to store
func (img *Image) Set(x, y int, c Color) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	i := 4 * (y*img.width + x)
	img.pix[i], img.pix[i+1], img.pix[i+2], img.pix[i+3] = c.R, c.G, c.B, c.A
}

// SamplePoint samples the image at normalized coordinates with nearest
// filtering and clamp-to-edge addressing. Texel centers sit at half-texel
// offsets, matching GPU sampling conventions.
//
// Parameters:
//   - u, v: normalized coordinates
//
// Returns:
//   - Color: the nearest texel's color
func (img *Image) SamplePoint(u, v float32) Color {
	x := int(common.Floor(u * float32(img.width)))
	y := int(common.Floor(v * float32(img.height)))
	return img.At(x, y)
}

// SampleBilinear samples the image at normalized coordinates with bilinear
// filtering and clamp-to-edge addressing.
//
// Parameters:
//   - u, v: normalized coordinates
//
// Returns:
//   - Color: the filtered color
func (img *Image) SampleBilinear(u, v float32) Color {
	tx := u*float32(img.width) - 0.5
	ty := v*float32(img.height) - 0.5

	x0 := int(common.Floor(tx))
	y0 := int(common.Floor(ty))
	fx := tx - common.Floor(tx)
	fy := ty - common.Floor(ty)

	c00 := img.At(x0, y0)
	c10 := img.At(x0+1, y0)
	c01 := img.At(x0, y0+1)
	c11 := img.At(x0+1, y0+1)

	lerp := func(a, b Color, t float32) Color {
		return Color{
			R: common.Mix(a.R, b.R, t),
			G: common.Mix(a.G, b.G, t),
			B: common.Mix(a.B, b.B, t),
			A: common.Mix(a.A, b.A, t),
		}
	}
	return lerp(lerp(c00, c10, fx), lerp(c01, c11, fx), fy)
}

// Fill sets every pixel to the given color.
//
// Parameters:
//   - c: fill color
func (img *Image) Fill(c Color) {
	for i := 0; i < len(img.pix); i += 4 {
		img.pix[i], img.pix[i+1], img.pix[i+2], img.pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// ToNRGBA converts the image to an 8-bit stdlib image for PNG output.
// Channels are clamped to [0,1] and scaled; no gamma encoding is applied.
//
// Returns:
//   - *image.NRGBA: the converted image
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.At(x, y)
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(common.Saturate(c.R)*255 + 0.5),
				G: uint8(common.Saturate(c.G)*255 + 0.5),
				B: uint8(common.Saturate(c.B)*255 + 0.5),
				A: uint8(common.Saturate(c.A)*255 + 0.5),
			})
		}
	}
	return out
}

// GeometryBuffer is the CPU stand-in for the depth/normal prepass
// attachments. It implements DepthNormalSampler with clamp-to-edge
// addressing and is read-only from the detector's perspective.
type GeometryBuffer struct {
	width, height int
	depth         []float32
	normals       []float32 // xyz interleaved, row-major
}

var _ DepthNormalSampler = &GeometryBuffer{}

// NewGeometryBuffer creates a zeroed depth/normal buffer. Panics on
// non-positive dimensions.
//
// Parameters:
//   - width, height: dimensions in texels
//
// Returns:
//   - *GeometryBuffer: the new buffer
func NewGeometryBuffer(width, height int) *GeometryBuffer {
	if width <= 0 || height <= 0 {
		panic("stylize: NewGeometryBuffer requires positive dimensions")
	}
	return &GeometryBuffer{
		width:   width,
		height:  height,
		depth:   make([]float32, width*height),
		normals: make([]float32, 3*width*height),
	}
}

// Size returns the buffer dimensions in texels.
func (g *GeometryBuffer) Size() (int, int) {
	return g.width, g.height
}

// SetPixel stores depth and normal for a pixel. Out-of-range coordinates
// are ignored.
//
// Parameters:
//   - x, y: pixel coordinates
//   - depth: linear depth
//   - normal: view-space normal
func (g *GeometryBuffer) SetPixel(x, y int, depth float32, normal [3]float32) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	i := y*g.width + x
	g.depth[i] = depth
	copy(g.normals[3*i:3*i+3], normal[:])
}

// Depth returns the linear depth at a pixel with clamp-to-edge addressing.
func (g *GeometryBuffer) Depth(x, y int) float32 {
	x = clampCoord(x, g.width)
	y = clampCoord(y, g.height)
	return g.depth[y*g.width+x]
}

// Normal returns the view-space normal at a pixel with clamp-to-edge
// addressing.
func (g *GeometryBuffer) Normal(x, y int) [3]float32 {
	x = clampCoord(x, g.width)
	y = clampCoord(y, g.height)
	i := 3 * (y*g.width + x)
	return [3]float32{g.normals[i], g.normals[i+1], g.normals[i+2]}
}
