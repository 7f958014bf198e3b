// tesseract - Rotating hypercube viewer
// Draws a wireframe tesseract in a window, or prints and exports its edge graph.
//
// Controls (view):
//
//	Mouse       - Drift the camera
//	Space       - Pause rotation
//	R           - Reset rotation and camera
//	F1          - Toggle HUD
//	F4          - Toggle fullscreen
//	F12         - Screenshot
//	Esc         - Quit
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}
