package tesseract

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {

	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}

	if cfg.FourDimensional() {
		t.Fatal("default config should use the parallel projection")
	}

	cfg.Rotation4 = Rotation4{XW: 1}
	if !cfg.FourDimensional() {
		t.Fatal("a config with a W rotation should be four-dimensional")
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config with a 4D rotation is invalid: %v", err)
	}

}

func TestConfigValidate(t *testing.T) {

	tests := []struct {
		name   string
		modify func(cfg *Config)
		want   string
	}{
		{"viewport", func(cfg *Config) { cfg.Width = 0 }, "viewport"},
		{"tps", func(cfg *Config) { cfg.TPS = -1 }, "tps"},
		{"dimensions", func(cfg *Config) { cfg.Dimensions = 5 }, "dimensions"},
		{"speed", func(cfg *Config) { cfg.RotationSpeed = math.NaN() }, "rotation speed"},
		{"plane speed", func(cfg *Config) { cfg.Rotation4.YW = math.Inf(1) }, "yw rotation speed"},
		{"viewer", func(cfg *Config) { cfg.Rotation4.XW = 1; cfg.ViewerW = 1.5 }, "viewer w"},
		{"distance", func(cfg *Config) { cfg.CameraDistance = 0 }, "camera distance"},
		{"intro", func(cfg *Config) { cfg.IntroDuration = -time.Second }, "intro duration"},
		{"fov", func(cfg *Config) { cfg.FieldOfView = 180 }, "field of view"},
		{"clipping", func(cfg *Config) { cfg.Far = cfg.Near }, "clipping planes"},
		{"spring", func(cfg *Config) { cfg.SpringFrequency = 0 }, "spring"},
		{"opacity", func(cfg *Config) { cfg.EdgeOpacity = 1.5 }, "opacities"},
		{"line width", func(cfg *Config) { cfg.LineWidth = 0 }, "line width"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {

			cfg := DefaultConfig()
			test.modify(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}

			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error %v does not wrap ErrInvalidConfig", err)
			}

			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error %q does not mention %q", err, test.want)
			}

		})
	}

}

func TestConfigValidateReportsEveryProblem(t *testing.T) {

	cfg := DefaultConfig()
	cfg.TPS = 0
	cfg.LineWidth = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "tps") || !strings.Contains(msg, "line width") {
		t.Fatalf("error %q should mention both problems", msg)
	}

}

func TestConfigIntroDisabled(t *testing.T) {

	cfg := DefaultConfig()
	cfg.IntroDuration = 0
	cfg.IntroDistance = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("a config without an intro should not need an intro distance: %v", err)
	}

}
