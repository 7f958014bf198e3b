package tesseract

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
// Colors are not premultiplied; ToRGBA64 premultiplies on the way out.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex returns a new, opaque Color from a 0xRRGGBB value.
func NewColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xFF) / 255,
		G: float32((hex>>8)&0xFF) / 255,
		B: float32(hex&0xFF) / 255,
		A: 1,
	}
}

// ParseHexColor parses a color written as "RRGGBB", "#RRGGBB", or "0xRRGGBB" into an opaque Color.
func ParseHexColor(s string) (Color, error) {

	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#"), "0x")

	if len(trimmed) != 6 {
		return Color{}, fmt.Errorf("parse color %q: expected 6 hex digits", s)
	}

	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}

	return NewColorFromHex(uint32(value)), nil

}

// Hex returns the 0xRRGGBB value of the Color, ignoring alpha.
func (c Color) Hex() uint32 {
	return uint32(clamp(c.R, 0, 1)*255+0.5)<<16 |
		uint32(clamp(c.G, 0, 1)*255+0.5)<<8 |
		uint32(clamp(c.B, 0, 1)*255+0.5)
}

// WithAlpha returns a copy of the Color with its alpha component replaced.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// Floats returns the Color's components as a [4]float64 array, as used by glTF material factors.
func (c Color) Floats() [4]float64 {
	return [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

// ToRGBA64 converts the Color to a premultiplied color.RGBA64 for use with image and ebiten APIs.
func (c Color) ToRGBA64() color.RGBA64 {
	a := clamp(c.A, 0, 1)
	return color.RGBA64{
		R: uint16(clamp(c.R, 0, 1) * a * 0xFFFF),
		G: uint16(clamp(c.G, 0, 1) * a * 0xFFFF),
		B: uint16(clamp(c.B, 0, 1) * a * 0xFFFF),
		A: uint16(a * 0xFFFF),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToRGBA64().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%06X (a=%.2f)", c.Hex(), c.A)
}
