package stylize

import "math"

// Color is a linear-space RGBA color sample. Channels are unclamped
// float32 so lit colors above 1.0 survive the round trip through the
// perceptual space.
type Color struct {
	R, G, B, A float32
}

// Perceptual is a color expressed in the OKLCh perceptually uniform space:
// lightness L, chroma C, and hue angle H in radians. Equal numeric steps in
// L approximate equal perceived lightness differences, which is what makes
// quantizing L alone safe against hue shifts.
type Perceptual struct {
	L, C, H float32
}

// ToPerceptual converts a linear RGB color to OKLCh lightness, chroma, and
// hue. Alpha does not participate. The transform is defined over the full
// real-valued domain but only meaningful for displayable colors.
//
// Parameters:
//   - c: linear RGB color sample
//
// Returns:
//   - Perceptual: the OKLCh representation
func ToPerceptual(c Color) Perceptual {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	okL := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	okA := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	okB := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	return Perceptual{
		L: float32(okL),
		C: float32(math.Sqrt(okA*okA + okB*okB)),
		H: float32(math.Atan2(okB, okA)),
	}
}

// ToDisplay converts an OKLCh color back to linear RGB. Mutually inverse
// with ToPerceptual up to floating-point rounding for colors inside the
// representable gamut.
//
// Parameters:
//   - p: OKLCh color
//
// Returns:
//   - Color: the linear RGB color with alpha 1
func ToDisplay(p Perceptual) Color {
	okL := float64(p.L)
	okA := float64(p.C) * math.Cos(float64(p.H))
	okB := float64(p.C) * math.Sin(float64(p.H))

	l := okL + 0.3963377774*okA + 0.2158037573*okB
	m := okL - 0.1055613458*okA - 0.0638541728*okB
	s := okL - 0.0894841775*okA - 1.2914855480*okB

	l = l * l * l
	m = m * m * m
	s = s * s * s

	return Color{
		R: float32(4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G: float32(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B: float32(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
		A: 1,
	}
}

// Lightness returns the perceptual lightness of a linear RGB color. It is
// the L channel of ToPerceptual without computing chroma and hue.
//
// Parameters:
//   - c: linear RGB color sample
//
// Returns:
//   - float32: OKLab lightness
func Lightness(c Color) float32 {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return float32(0.2104542553*l + 0.7936177850*m - 0.0040720468*s)
}

// WithLightness replaces the perceptual lightness of a color while keeping
// its chroma, hue, and alpha unchanged.
//
// Parameters:
//   - c: source color
//   - l: new perceptual lightness
//
// Returns:
//   - Color: the re-lit color
func WithLightness(c Color, l float32) Color {
	p := ToPerceptual(c)
	p.L = l
	out := ToDisplay(p)
	out.A = c.A
	return out
}
