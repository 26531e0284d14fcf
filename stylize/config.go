package stylize

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Preset is the on-disk TOML configuration for the full pipeline. Presets
// fail fast at load time: unknown keys, unknown mode names, and out-of-domain
// parameters are all rejected before any value reaches per-pixel code.
type Preset struct {
	Cel      CelConfig      `toml:"cel"`
	Edge     EdgeConfig     `toml:"edge"`
	Outline  OutlineConfig  `toml:"outline"`
	Pixelate PixelateConfig `toml:"pixelate"`
}

// CelConfig is the [cel] preset table.
type CelConfig struct {
	Mode         string  `toml:"mode"`
	Lit          float32 `toml:"lit"`
	Shadow       float32 `toml:"shadow"`
	CutOff       float32 `toml:"cut_off"`
	Bands        float32 `toml:"bands"`
	Power        float32 `toml:"power"`
	DitherFactor float32 `toml:"dither_factor"`
}

// EdgeConfig is the [edge] preset table.
type EdgeConfig struct {
	Neighborhood          string     `toml:"neighborhood"`
	DepthThresholdLow     float32    `toml:"depth_threshold_low"`
	DepthThresholdHigh    float32    `toml:"depth_threshold_high"`
	NegDepthThresholdLow  float32    `toml:"neg_depth_threshold_low"`
	NegDepthThresholdHigh float32    `toml:"neg_depth_threshold_high"`
	NormalThresholdLow    float32    `toml:"normal_threshold_low"`
	NormalThresholdHigh   float32    `toml:"normal_threshold_high"`
	NormalBias            [3]float32 `toml:"normal_bias"`
	NormalBiasLow         float32    `toml:"normal_bias_low"`
	NormalBiasHigh        float32    `toml:"normal_bias_high"`
}

// OutlineConfig is the [outline] preset table.
type OutlineConfig struct {
	Enabled  bool    `toml:"enabled"`
	Strength float32 `toml:"strength"`
}

// PixelateConfig is the [pixelate] preset table. The camera package maps it
// onto a sizing mode; it stays plain data here so presets do not depend on
// engine packages.
type PixelateConfig struct {
	Mode              string  `toml:"mode"`
	PixelsPerUnit     int     `toml:"pixels_per_unit"`
	Width             uint32  `toml:"width"`
	Height            uint32  `toml:"height"`
	ScaleFactor       float32 `toml:"scale_factor"`
	SnapTransforms    bool    `toml:"snap_transforms"`
	SubPixelSmoothing bool    `toml:"sub_pixel_smoothing"`
}

// DefaultPreset returns the preset the pipeline ships with: two-tone cel
// shading at the original defaults, the default edge tuning, outlines off,
// and an 8 pixels-per-unit camera with sub-pixel smoothing.
//
// Returns:
//   - Preset: the default configuration
func DefaultPreset() Preset {
	edge := DefaultEdgeParams()
	return Preset{
		Cel: CelConfig{
			Mode:         CelTwoTone.String(),
			Lit:          1.0,
			Shadow:       0.5,
			CutOff:       0.5,
			Bands:        4,
			Power:        1.0,
			DitherFactor: 0,
		},
		Edge: EdgeConfig{
			Neighborhood:          "four",
			DepthThresholdLow:     edge.DepthThresholdLow,
			DepthThresholdHigh:    edge.DepthThresholdHigh,
			NegDepthThresholdLow:  edge.NegDepthThresholdLow,
			NegDepthThresholdHigh: edge.NegDepthThresholdHigh,
			NormalThresholdLow:    edge.NormalThresholdLow,
			NormalThresholdHigh:   edge.NormalThresholdHigh,
			NormalBias:            edge.NormalBias,
			NormalBiasLow:         edge.NormalBiasLow,
			NormalBiasHigh:        edge.NormalBiasHigh,
		},
		Outline: OutlineConfig{Enabled: false, Strength: 0.8},
		Pixelate: PixelateConfig{
			Mode:              "pixels_per_unit",
			PixelsPerUnit:     8,
			ScaleFactor:       1.0,
			SnapTransforms:    true,
			SubPixelSmoothing: true,
		},
	}
}

// LoadPreset reads a TOML preset file over the defaults and validates it.
// Keys absent from the file keep their default values; unknown keys are an
// error so typos never silently fall back to defaults.
//
// Parameters:
//   - path: preset file path
//
// Returns:
//   - Preset: the merged, validated preset
//   - error: decode or validation error
func LoadPreset(path string) (Preset, error) {
	p := DefaultPreset()
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: failed to decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Preset{}, fmt.Errorf("preset: unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset: invalid %s: %w", path, err)
	}
	Logger().Info("preset loaded", "path", path, "cel_mode", p.Cel.Mode, "outline", p.Outline.Enabled)
	return p, nil
}

// Validate checks every table against the parameter domains.
//
// Returns:
//   - error: nil if valid, otherwise the first violated constraint
func (p Preset) Validate() error {
	if _, err := p.CelParams(); err != nil {
		return err
	}
	if _, err := p.EdgeParams(); err != nil {
		return err
	}
	if err := p.OutlineParams().Validate(); err != nil {
		return err
	}
	switch p.Pixelate.Mode {
	case "pixels_per_unit":
		if p.Pixelate.PixelsPerUnit < 1 || p.Pixelate.PixelsPerUnit > 255 {
			return fmt.Errorf("pixelate: pixels_per_unit must be in [1,255], got %d", p.Pixelate.PixelsPerUnit)
		}
	case "fixed_resolution":
		if p.Pixelate.Width == 0 || p.Pixelate.Height == 0 {
			return fmt.Errorf("pixelate: fixed_resolution requires nonzero width and height")
		}
	case "scale_factor":
		if !isFinite(p.Pixelate.ScaleFactor) || p.Pixelate.ScaleFactor < 1 {
			return fmt.Errorf("pixelate: scale_factor must be >= 1, got %v", p.Pixelate.ScaleFactor)
		}
	default:
		return fmt.Errorf("pixelate: unknown mode %q", p.Pixelate.Mode)
	}
	return nil
}

// CelParams converts the [cel] table into a validated parameter record.
//
// Returns:
//   - CelParams: the tagged variant for the configured mode
//   - error: unknown mode or out-of-domain parameters
func (p Preset) CelParams() (CelParams, error) {
	var cp CelParams
	switch p.Cel.Mode {
	case "two_tone":
		cp = TwoTone(p.Cel.Lit, p.Cel.Shadow, p.Cel.CutOff)
	case "banded":
		cp = Banded(p.Cel.Bands, p.Cel.Power, p.Cel.DitherFactor)
	default:
		return CelParams{}, fmt.Errorf("cel: unknown mode %q", p.Cel.Mode)
	}
	if err := cp.Validate(); err != nil {
		return CelParams{}, err
	}
	return cp, nil
}

// EdgeParams converts the [edge] table into a validated parameter record.
//
// Returns:
//   - EdgeParams: the detector tunables
//   - error: unknown neighborhood or invalid bands
func (p Preset) EdgeParams() (EdgeParams, error) {
	ep := EdgeParams{
		DepthThresholdLow:     p.Edge.DepthThresholdLow,
		DepthThresholdHigh:    p.Edge.DepthThresholdHigh,
		NegDepthThresholdLow:  p.Edge.NegDepthThresholdLow,
		NegDepthThresholdHigh: p.Edge.NegDepthThresholdHigh,
		NormalThresholdLow:    p.Edge.NormalThresholdLow,
		NormalThresholdHigh:   p.Edge.NormalThresholdHigh,
		NormalBias:            p.Edge.NormalBias,
		NormalBiasLow:         p.Edge.NormalBiasLow,
		NormalBiasHigh:        p.Edge.NormalBiasHigh,
	}
	switch p.Edge.Neighborhood {
	case "four":
		ep.Offsets = FourNeighborhood
	case "eight":
		ep.Offsets = EightNeighborhood
	default:
		return EdgeParams{}, fmt.Errorf("edge: unknown neighborhood %q", p.Edge.Neighborhood)
	}
	if err := ep.Validate(); err != nil {
		return EdgeParams{}, err
	}
	return ep, nil
}

// OutlineParams converts the [outline] table into a parameter record.
//
// Returns:
//   - OutlineParams: the outline stage configuration
func (p Preset) OutlineParams() OutlineParams {
	return OutlineParams{Enabled: p.Outline.Enabled, Strength: p.Outline.Strength}
}
