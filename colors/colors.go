// Package colors holds the viewer's fixed interface colors. Edge and cube colors are configurable and live in
// tesseract.Config instead.
package colors

import "github.com/solarlune/tesseract"

// LightGray is the color of the HUD text.
func LightGray() tesseract.Color {
	return tesseract.NewColor(0.8, 0.8, 0.8, 1)
}

// Slate is the background the tesseract is drawn over.
func Slate() tesseract.Color {
	return tesseract.NewColorFromHex(0x1C2026)
}
