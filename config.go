package tesseract

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything needed to set up an App. Start from DefaultConfig and override fields as desired.
type Config struct {
	Width, Height int // Viewport size in pixels
	TPS           int // Updates per second; the camera spring is tuned for this rate

	Dimensions    int       // Hypercube dimension count, 1 to MaxDimensions
	RotationSpeed float64   // Radians per second of rotation about Z
	Rotation4     Rotation4 // Radians per second of rotation in each 4D plane; zero keeps the parallel projection
	ViewerW       float64   // W position of the 4D eye when Rotation4 is non-zero

	CameraDistance   float64       // Resting distance of the camera from the origin
	IntroDistance    float64       // Distance the camera dollies in from on start and on reset
	IntroDuration    time.Duration // Length of the dolly; 0 disables it
	FieldOfView      float64       // Vertical field of view, in degrees
	Near, Far        float64       // Clipping planes
	MouseSensitivity float64       // World units of camera offset per pixel of mouse offset from the viewport center
	SpringFrequency  float64       // Angular frequency of the camera's follow spring
	SpringDamping    float64       // Damping ratio of the camera's follow spring

	PrimaryColor   Color   // Color of EdgeGroupPrimary edges
	SecondaryColor Color   // Color of EdgeGroupSecondary edges
	CubeColor      Color   // Color of the inner cube's faces
	EdgeOpacity    float32 // Alpha applied to both edge colors
	CubeOpacity    float32 // Alpha applied to the cube's faces
	LineWidth      float64 // Edge stroke width, in pixels
}

// DefaultConfig returns the settings of the classic rotating tesseract.
func DefaultConfig() Config {
	return Config{
		Width:  960,
		Height: 540,
		TPS:    60,

		Dimensions:    TesseractDimensions,
		RotationSpeed: 1,
		ViewerW:       3,

		CameraDistance:   7,
		IntroDistance:    40,
		IntroDuration:    2500 * time.Millisecond,
		FieldOfView:      45,
		Near:             0.1,
		Far:              1000,
		MouseSensitivity: 0.01,
		SpringFrequency:  1.5,
		SpringDamping:    1,

		PrimaryColor:   NewColorFromHex(0xF9D423),
		SecondaryColor: NewColorFromHex(0xFC913A),
		CubeColor:      NewColorFromHex(0x79BD9A),
		EdgeOpacity:    0.5,
		CubeOpacity:    0.25,
		LineWidth:      2,
	}
}

// FourDimensional reports whether the App rotates through W and projects with perspective, rather than
// only spinning about Z and dropping W.
func (cfg Config) FourDimensional() bool {
	return !cfg.Rotation4.IsZero()
}

// Validate checks the Config for values the App cannot run with, returning every problem found joined together.
func (cfg Config) Validate() error {

	var errs []error

	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		invalid("viewport must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.TPS <= 0 {
		invalid("tps must be positive, got %d", cfg.TPS)
	}

	if cfg.Dimensions < 1 || cfg.Dimensions > MaxDimensions {
		invalid("dimensions must range from 1 to %d, got %d", MaxDimensions, cfg.Dimensions)
	}

	speeds := []struct {
		name  string
		value float64
	}{
		{"rotation speed", cfg.RotationSpeed},
		{"xy rotation speed", cfg.Rotation4.XY},
		{"xz rotation speed", cfg.Rotation4.XZ},
		{"xw rotation speed", cfg.Rotation4.XW},
		{"yz rotation speed", cfg.Rotation4.YZ},
		{"yw rotation speed", cfg.Rotation4.YW},
		{"zw rotation speed", cfg.Rotation4.ZW},
	}

	for _, speed := range speeds {
		if !isFinite(speed.value) {
			invalid("%s must be finite, got %g", speed.name, speed.value)
		}
	}

	if cfg.FourDimensional() && !(cfg.ViewerW > 2) {
		invalid("viewer w must be greater than 2 for 4D projection, got %g", cfg.ViewerW)
	}

	if !(cfg.CameraDistance > 0) {
		invalid("camera distance must be positive, got %g", cfg.CameraDistance)
	}

	if cfg.IntroDuration < 0 {
		invalid("intro duration must not be negative, got %s", cfg.IntroDuration)
	}

	if cfg.IntroDuration > 0 && !(cfg.IntroDistance > 0) {
		invalid("intro distance must be positive, got %g", cfg.IntroDistance)
	}

	if !(cfg.FieldOfView > 0 && cfg.FieldOfView < 180) {
		invalid("field of view must be between 0 and 180 degrees, got %g", cfg.FieldOfView)
	}

	if !(cfg.Near > 0 && cfg.Far > cfg.Near) {
		invalid("clipping planes must satisfy 0 < near < far, got near %g, far %g", cfg.Near, cfg.Far)
	}

	if cfg.MouseSensitivity < 0 {
		invalid("mouse sensitivity must not be negative, got %g", cfg.MouseSensitivity)
	}

	if !(cfg.SpringFrequency > 0) || cfg.SpringDamping < 0 {
		invalid("spring needs a positive frequency and non-negative damping, got %g and %g", cfg.SpringFrequency, cfg.SpringDamping)
	}

	if cfg.EdgeOpacity < 0 || cfg.EdgeOpacity > 1 || cfg.CubeOpacity < 0 || cfg.CubeOpacity > 1 {
		invalid("opacities must range from 0 to 1, got edge %g, cube %g", cfg.EdgeOpacity, cfg.CubeOpacity)
	}

	if !(cfg.LineWidth > 0) {
		invalid("line width must be positive, got %g", cfg.LineWidth)
	}

	return errors.Join(errs...)

}
