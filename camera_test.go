package tesseract

import (
	"math"
	"testing"
	"time"
)

func TestCameraWorldToScreen(t *testing.T) {

	cam := NewCamera(200, 100)

	x, y, ok := cam.WorldToScreen(Vector{})
	if !ok || math.Abs(x-100) > tolerance || math.Abs(y-50) > tolerance {
		t.Fatalf("origin projected to (%g, %g, %t), expected the center of the viewport", x, y, ok)
	}

	// Up in the world is up on screen, which is a smaller Y.
	_, yUp, ok := cam.WorldToScreen(NewVector(0, 1, 0))
	if !ok || !(yUp < y) {
		t.Fatalf("a point above the origin projected to y %g, expected less than %g", yUp, y)
	}

	xRight, _, ok := cam.WorldToScreen(NewVector(1, 0, 0))
	if !ok || !(xRight > x) {
		t.Fatalf("a point right of the origin projected to x %g, expected more than %g", xRight, x)
	}

	if _, _, ok := cam.WorldToScreen(NewVector(0, 0, 20)); ok {
		t.Fatal("a point behind the camera should not be visible")
	}

	if d := cam.Depth(Vector{}); math.Abs(d-10) > tolerance {
		t.Fatalf("origin depth %g, expected 10", d)
	}

}

func TestCameraResize(t *testing.T) {

	cam := NewCamera(0, -5)

	if w, h := cam.Size(); w != 1 || h != 1 {
		t.Fatalf("size %dx%d, expected the minimum of 1x1", w, h)
	}

	cam.Resize(640, 480)
	if x, y, _ := cam.WorldToScreen(Vector{}); math.Abs(x-320) > tolerance || math.Abs(y-240) > tolerance {
		t.Fatalf("origin projected to (%g, %g) after resizing", x, y)
	}

}

func TestMouseCameraDolly(t *testing.T) {

	cfg := DefaultConfig()
	cam := NewMouseCamera(cfg)

	if math.Abs(cam.Distance()-cfg.IntroDistance) > 1e-3 {
		t.Fatalf("camera starts at %g, expected the intro distance %g", cam.Distance(), cfg.IntroDistance)
	}

	if cam.Settled() {
		t.Fatal("camera should not be settled while dollying")
	}

	cam.Update(cfg.IntroDuration.Seconds() / 2)
	if d := cam.Distance(); !(d < cfg.IntroDistance && d > cfg.CameraDistance) {
		t.Fatalf("halfway through the dolly the camera is at %g", d)
	}

	cam.Update(cfg.IntroDuration.Seconds())
	if math.Abs(cam.Distance()-cfg.CameraDistance) > 1e-4 {
		t.Fatalf("camera ended the dolly at %g, expected %g", cam.Distance(), cfg.CameraDistance)
	}

	if !cam.Settled() {
		t.Fatal("camera should be settled after the dolly with the mouse centered")
	}

	cam.Reset()
	if math.Abs(cam.Distance()-cfg.IntroDistance) > 1e-3 {
		t.Fatalf("camera reset to %g, expected the intro distance %g", cam.Distance(), cfg.IntroDistance)
	}

}

func TestMouseCameraFollowsMouse(t *testing.T) {

	cfg := DefaultConfig()
	cfg.IntroDuration = 0
	cam := NewMouseCamera(cfg)

	if math.Abs(cam.Position.Magnitude()-cfg.CameraDistance) > tolerance {
		t.Fatalf("camera rests %g from the origin, expected %g", cam.Position.Magnitude(), cfg.CameraDistance)
	}

	// Centered mouse: no drift.
	cam.SetMouse(cfg.Width/2, cfg.Height/2)
	cam.Update(0)
	if !cam.Settled() {
		t.Fatal("a centered mouse should leave the camera settled")
	}

	cam.SetMouse(cfg.Width, cfg.Height/2)
	wantX := float64(cfg.Width/2) * cfg.MouseSensitivity

	dt := time.Second / time.Duration(cfg.TPS)
	for i := 0; i < cfg.TPS*20; i++ {
		cam.Update(dt.Seconds())
	}

	x, y := cam.Offset()
	if math.Abs(x-wantX) > 1e-3 || math.Abs(y) > 1e-3 {
		t.Fatalf("camera drifted to (%g, %g), expected (%g, 0)", x, y, wantX)
	}

	if !cam.Settled() {
		t.Fatal("camera should settle on its target")
	}

	// The drift is sideways, so the camera still faces the origin from the same depth along its resting direction.
	if d := cam.Position.Dot(cam.direction); math.Abs(d-cfg.CameraDistance) > 1e-6 {
		t.Fatalf("drifting changed the camera's depth to %g", d)
	}

	cam.Reset()
	if x, y := cam.Offset(); x != 0 || y != 0 {
		t.Fatalf("Reset left the camera offset at (%g, %g)", x, y)
	}

}
