package stylize

import (
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write preset: %v", err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
[cel]
mode = "banded"
bands = 6.0
power = 1.5
dither_factor = 0.02

[edge]
neighborhood = "eight"
depth_threshold_high = 0.002

[outline]
enabled = true
strength = 0.7

[pixelate]
mode = "fixed_resolution"
width = 320
height = 180
`)

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset() error = %v", err)
	}

	cel, err := p.CelParams()
	if err != nil {
		t.Fatalf("CelParams() error = %v", err)
	}
	if cel.Mode != CelBanded || cel.Bands != 6 || cel.Power != 1.5 || cel.DitherFactor != 0.02 {
		t.Errorf("cel params = %+v", cel)
	}

	edge, err := p.EdgeParams()
	if err != nil {
		t.Fatalf("EdgeParams() error = %v", err)
	}
	if len(edge.Offsets) != 8 {
		t.Errorf("neighborhood = %d offsets, want 8", len(edge.Offsets))
	}
	if edge.DepthThresholdHigh != 0.002 {
		t.Errorf("depth_threshold_high = %v, want 0.002", edge.DepthThresholdHigh)
	}
	// Keys absent from the file keep their defaults.
	if edge.DepthThresholdLow != 0.0002 {
		t.Errorf("depth_threshold_low = %v, want default 0.0002", edge.DepthThresholdLow)
	}

	if out := p.OutlineParams(); !out.Enabled || out.Strength != 0.7 {
		t.Errorf("outline params = %+v", out)
	}
	if p.Pixelate.Mode != "fixed_resolution" || p.Pixelate.Width != 320 || p.Pixelate.Height != 180 {
		t.Errorf("pixelate config = %+v", p.Pixelate)
	}
}

func TestLoadPresetFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "[cel]\nmoed = \"banded\"\n"},
		{"unknown cel mode", "[cel]\nmode = \"smooth\"\n"},
		{"zero power", "[cel]\nmode = \"banded\"\nbands = 4.0\npower = 0.0\n"},
		{"negative bands", "[cel]\nmode = \"banded\"\nbands = -1.0\npower = 1.0\n"},
		{"unknown neighborhood", "[edge]\nneighborhood = \"five\"\n"},
		{"inverted depth band", "[edge]\ndepth_threshold_low = 0.5\ndepth_threshold_high = 0.1\n"},
		{"outline strength out of range", "[outline]\nenabled = true\nstrength = 1.5\n"},
		{"pixelate zero resolution", "[pixelate]\nmode = \"fixed_resolution\"\nwidth = 0\nheight = 0\n"},
		{"pixelate scale below minimum", "[pixelate]\nmode = \"scale_factor\"\nscale_factor = 0.5\n"},
		{"pixelate unknown mode", "[pixelate]\nmode = \"stretch\"\n"},
		{"malformed toml", "[cel\nmode = banded\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePreset(t, tt.content)
			if _, err := LoadPreset(path); err == nil {
				t.Errorf("LoadPreset() accepted invalid preset")
			}
		})
	}
}

func TestDefaultPresetIsValid(t *testing.T) {
	if err := DefaultPreset().Validate(); err != nil {
		t.Fatalf("default preset invalid: %v", err)
	}
}
