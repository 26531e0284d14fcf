package stylize

import (
	"fmt"

	"github.com/pyrbin/motte/common"
)

// DepthNormalSampler supplies the prepass buffers the edge detector reads:
// linear depth and view-space normals, queryable at arbitrary screen-space
// offsets. Implementations clamp out-of-range coordinates to the edge.
type DepthNormalSampler interface {
	// Depth returns the linear depth at the given pixel.
	Depth(x, y int) float32
	// Normal returns the view-space normal at the given pixel.
	Normal(x, y int) [3]float32
}

// FourNeighborhood is the default neighbor offset set: the four axis-aligned
// neighbors. Diagonals are excluded to save samples while still catching
// axis-aligned silhouettes.
var FourNeighborhood = [][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}

// EightNeighborhood is the full offset set including diagonals, available
// for materials that want denser silhouette coverage at double the sample
// cost.
var EightNeighborhood = [][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{1, -1},
	{-1, 1},
	{-1, -1},
}

// EdgeParams holds the edge detector's tunables. The smoothstep thresholds
// are empirically tuned; they are configuration, not constants, so a host
// can retune them per scene scale.
type EdgeParams struct {
	// Offsets is the ordered neighbor sample offset list.
	Offsets [][2]int

	// DepthThresholdLow and DepthThresholdHigh bound the smoothstep that
	// remaps the accumulated positive depth difference into a binary-ish
	// edge signal. Raw depth deltas are scale-dependent and too noisy to
	// threshold directly.
	DepthThresholdLow  float32
	DepthThresholdHigh float32

	// NegDepthThresholdLow and NegDepthThresholdHigh bound the unit-step-like
	// band for the inverse-depth suppressor, so pure depth discontinuities
	// are not double-reported as normal edges.
	NegDepthThresholdLow  float32
	NegDepthThresholdHigh float32

	// NormalThresholdLow and NormalThresholdHigh bound the smoothstep over
	// the accumulated normal difference.
	NormalThresholdLow  float32
	NormalThresholdHigh float32

	// NormalBias is the fixed direction the per-neighbor normal difference
	// is projected onto; NormalBiasLow/High bound the smoothstep over that
	// projection.
	NormalBias     [3]float32
	NormalBiasLow  float32
	NormalBiasHigh float32
}

// DefaultEdgeParams returns the tuning the original material ships with:
// 4-neighborhood, depth band [0.0002, 0.001], inverse-depth band centered
// on 0.5, normal band [0.2, 0.8], bias direction (1,1,1) over [-0.01, 0.01].
//
// Returns:
//   - EdgeParams: the default tunables
func DefaultEdgeParams() EdgeParams {
	return EdgeParams{
		Offsets:               FourNeighborhood,
		DepthThresholdLow:     0.0002,
		DepthThresholdHigh:    0.001,
		NegDepthThresholdLow:  0.4,
		NegDepthThresholdHigh: 0.6,
		NormalThresholdLow:    0.2,
		NormalThresholdHigh:   0.8,
		NormalBias:            [3]float32{1, 1, 1},
		NormalBiasLow:         -0.01,
		NormalBiasHigh:        0.01,
	}
}

// Validate rejects records that would break the per-pixel math: an empty
// offset list and inverted or non-finite smoothstep bands.
//
// Returns:
//   - error: nil if valid, otherwise the first violated constraint
func (p EdgeParams) Validate() error {
	if len(p.Offsets) == 0 {
		return fmt.Errorf("edge: offset list must not be empty")
	}
	bands := []struct {
		name     string
		lo, hi   float32
		strictLt bool
	}{
		{"depth_threshold", p.DepthThresholdLow, p.DepthThresholdHigh, true},
		{"neg_depth_threshold", p.NegDepthThresholdLow, p.NegDepthThresholdHigh, true},
		{"normal_threshold", p.NormalThresholdLow, p.NormalThresholdHigh, true},
		{"normal_bias", p.NormalBiasLow, p.NormalBiasHigh, true},
	}
	for _, b := range bands {
		if !isFinite(b.lo) || !isFinite(b.hi) {
			return fmt.Errorf("edge: %s band must be finite, got [%v, %v]", b.name, b.lo, b.hi)
		}
		if b.lo >= b.hi {
			return fmt.Errorf("edge: %s band must satisfy low < high, got [%v, %v]", b.name, b.lo, b.hi)
		}
	}
	return nil
}

// DetectEdges samples depth and normal at a fragment and its configured
// neighbors and produces the two edge signals, both in [0,1], higher
// meaning a stronger edge.
//
// The depth channel accumulates only positive center-minus-neighbor deltas
// (asymmetric by design) and remaps them through a narrow smoothstep band.
// The normal channel projects each center-minus-neighbor normal difference
// onto the bias direction, gated so only the shallower fragment of a depth
// discontinuity registers, which avoids double-counting the same silhouette
// from both sides; the inverse-depth suppressor is then subtracted so pure
// depth steps are not reported twice.
//
// Detection only: composing the signals into the final color is the
// caller's concern (see ApplyOutline).
//
// Parameters:
//   - s: depth/normal prepass sampler
//   - x, y: fragment position in pixels
//   - p: detector tunables
//
// Returns:
//   - float32: normal edge signal in [0,1]
//   - float32: depth edge signal in [0,1]
func DetectEdges(s DepthNormalSampler, x, y int, p EdgeParams) (normalEdge, depthEdge float32) {
	cd := s.Depth(x, y)
	cn := s.Normal(x, y)

	var depthDiff, negDepthDiff, normalSum float32
	for _, off := range p.Offsets {
		nd := s.Depth(x+off[0], y+off[1])
		nn := s.Normal(x+off[0], y+off[1])

		depthDiff += common.Saturate(cd - nd)
		negDepthDiff += common.Saturate(nd - cd)

		diff := [3]float32{cn[0] - nn[0], cn[1] - nn[1], cn[2] - nn[2]}
		proj := diff[0]*p.NormalBias[0] + diff[1]*p.NormalBias[1] + diff[2]*p.NormalBias[2]
		indicator := common.Smoothstep(p.NormalBiasLow, p.NormalBiasHigh, proj)
		shallower := common.Step(0, nd-cd)

		dot := cn[0]*nn[0] + cn[1]*nn[1] + cn[2]*nn[2]
		normalSum += (1 - dot) * indicator * shallower
	}

	depthEdge = common.Smoothstep(p.DepthThresholdLow, p.DepthThresholdHigh, depthDiff)
	suppressor := common.Smoothstep(p.NegDepthThresholdLow, p.NegDepthThresholdHigh, negDepthDiff)
	normalEdge = common.Saturate(common.Smoothstep(p.NormalThresholdLow, p.NormalThresholdHigh, normalSum) - suppressor)
	return normalEdge, depthEdge
}

// OutlineParams configures the toggleable outline composition stage that
// consumes the edge signals. Off by default.
type OutlineParams struct {
	// Enabled selects whether the edge signal affects the final color at
	// all. When false, ApplyOutline is the identity.
	Enabled bool
	// Strength scales how far edges darken the color, in [0,1].
	Strength float32
}

// Validate rejects out-of-range strength values.
//
// Returns:
//   - error: nil if valid
func (p OutlineParams) Validate() error {
	if !isFinite(p.Strength) || p.Strength < 0 || p.Strength > 1 {
		return fmt.Errorf("outline: strength must be in [0,1], got %v", p.Strength)
	}
	return nil
}

// ApplyOutline blends the edge signals into a color by darkening it toward
// black proportionally to the stronger of the two signals. Uniform RGB
// scaling preserves hue in the perceptual space, so outlines never tint.
//
// Parameters:
//   - c: composed fragment color
//   - normalEdge, depthEdge: detector output for this fragment
//   - p: outline configuration
//
// Returns:
//   - Color: the outlined color, or c unchanged when disabled
func ApplyOutline(c Color, normalEdge, depthEdge float32, p OutlineParams) Color {
	if !p.Enabled {
		return c
	}
	edge := normalEdge
	if depthEdge > edge {
		edge = depthEdge
	}
	k := 1 - common.Saturate(p.Strength*edge)
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}
