package tesseract

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera is a perspective camera looking from Position towards Target. It converts world-space points into
// viewport pixel coordinates for whatever draws the scene.
type Camera struct {
	Position    Vector
	Target      Vector
	Up          Vector
	FieldOfView float64 // Vertical field of view, in degrees
	Near, Far   float64
	width       int
	height      int
}

// NewCamera creates a new Camera with a viewport of the given size, sitting at +Z and looking at the origin.
func NewCamera(width, height int) *Camera {
	cam := &Camera{
		Position:    NewVector(0, 0, 10),
		Up:          VecY,
		FieldOfView: 45,
		Near:        0.1,
		Far:         1000,
	}
	cam.Resize(width, height)
	return cam
}

// Resize sets the Camera's viewport size. Sizes below 1 pixel are clamped to 1.
func (camera *Camera) Resize(width, height int) {
	camera.width = max(width, 1)
	camera.height = max(height, 1)
}

// Size returns the viewport size of the Camera.
func (camera *Camera) Size() (int, int) {
	return camera.width, camera.height
}

// ViewMatrix returns the Matrix4 that takes world-space points into camera space.
func (camera *Camera) ViewMatrix() Matrix4 {
	return NewLookAtMatrix(camera.Position, camera.Target, camera.Up)
}

// Projection returns the Camera's perspective projection Matrix4.
func (camera *Camera) Projection() Matrix4 {
	return NewProjectionPerspective(camera.FieldOfView, camera.Near, camera.Far, float64(camera.width), float64(camera.height))
}

// ViewProjection returns the combined view and projection Matrix4, for projecting many points at once.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.ViewMatrix().Mult(camera.Projection())
}

// Depth returns the distance of a world-space point in front of the Camera along its viewing direction.
// Points behind the Camera have a negative depth.
func (camera *Camera) Depth(point Vector) float64 {
	return -camera.ViewMatrix().MultVec(point).Z
}

// WorldToScreen projects a world-space point into viewport pixel coordinates, with (0, 0) at the top-left.
// ok is false if the point lies behind the near clipping plane.
func (camera *Camera) WorldToScreen(point Vector) (x, y float64, ok bool) {
	return camera.worldToScreen(camera.ViewProjection(), point)
}

func (camera *Camera) worldToScreen(viewProjection Matrix4, point Vector) (x, y float64, ok bool) {

	clip := viewProjection.MultVecW(point)

	if clip.W < camera.Near {
		return 0, 0, false
	}

	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W

	x = (ndcX + 1) / 2 * float64(camera.width)
	y = (1 - ndcY) / 2 * float64(camera.height)

	return x, y, true

}

// MouseCamera is a Camera that drifts after the mouse: the further the cursor sits from the center of the viewport,
// the further the Camera slides sideways, easing there on a critically damped spring. It also dollies in from afar
// when created or reset.
type MouseCamera struct {
	*Camera

	Sensitivity float64

	direction Vector // unit direction from the origin to the resting position
	distance  float64

	offsetX, offsetY float64 // current spring positions
	velX, velY       float64 // current spring velocities
	targetX, targetY float64
	spring           harmonica.Spring

	dolly         *gween.Tween
	dollyDone     bool
	introDuration float64
}

// NewMouseCamera creates a MouseCamera from the camera-related fields of cfg.
func NewMouseCamera(cfg Config) *MouseCamera {

	cam := &MouseCamera{
		Camera:        NewCamera(cfg.Width, cfg.Height),
		Sensitivity:   cfg.MouseSensitivity,
		direction:     NewVector(1, 1, 1).Unit(),
		distance:      cfg.CameraDistance,
		spring:        harmonica.NewSpring(harmonica.FPS(cfg.TPS), cfg.SpringFrequency, cfg.SpringDamping),
		introDuration: cfg.IntroDuration.Seconds(),
	}

	cam.FieldOfView = cfg.FieldOfView
	cam.Near = cfg.Near
	cam.Far = cfg.Far

	if cam.introDuration > 0 {
		cam.dolly = gween.New(float32(cfg.IntroDistance), float32(cfg.CameraDistance), float32(cam.introDuration), ease.OutCubic)
	}

	cam.Reset()

	return cam

}

// SetMouse sets the cursor position, in viewport pixels, that the Camera drifts towards.
func (cam *MouseCamera) SetMouse(x, y int) {
	cam.targetX = (float64(x) - float64(cam.width)/2) * cam.Sensitivity
	cam.targetY = -(float64(y) - float64(cam.height)/2) * cam.Sensitivity
}

// Update advances the Camera's spring by one tick and its dolly by dt seconds, then repositions it.
func (cam *MouseCamera) Update(dt float64) {

	cam.offsetX, cam.velX = cam.spring.Update(cam.offsetX, cam.velX, cam.targetX)
	cam.offsetY, cam.velY = cam.spring.Update(cam.offsetY, cam.velY, cam.targetY)

	if cam.dolly != nil && !cam.dollyDone {
		var current float32
		current, cam.dollyDone = cam.dolly.Update(float32(dt))
		cam.distance = float64(current)
	}

	cam.place()

}

// Reset snaps the Camera back to the center and restarts its dolly.
func (cam *MouseCamera) Reset() {

	cam.offsetX, cam.offsetY = 0, 0
	cam.velX, cam.velY = 0, 0
	cam.targetX, cam.targetY = 0, 0

	if cam.dolly != nil {
		cam.dolly.Reset()
		cam.dollyDone = false
		current, _ := cam.dolly.Update(0)
		cam.distance = float64(current)
	}

	cam.place()

}

// Distance returns how far the Camera's resting position currently is from the origin.
func (cam *MouseCamera) Distance() float64 {
	return cam.distance
}

// Offset returns the Camera's current sideways drift in camera-relative X and Y.
func (cam *MouseCamera) Offset() (float64, float64) {
	return cam.offsetX, cam.offsetY
}

// Settled returns true once the dolly has finished and the spring has come to rest on its target.
func (cam *MouseCamera) Settled() bool {
	const eps = 1e-3
	dollyDone := cam.dolly == nil || cam.dollyDone
	return dollyDone &&
		math.Abs(cam.offsetX-cam.targetX) < eps && math.Abs(cam.offsetY-cam.targetY) < eps &&
		math.Abs(cam.velX) < eps && math.Abs(cam.velY) < eps
}

func (cam *MouseCamera) place() {

	// Drift within the plane facing the origin, so the cube stays centered while the view swings around it.
	right := cam.Up.Cross(cam.direction).Unit()
	up := cam.direction.Cross(right).Unit()

	cam.Position = cam.direction.Scale(cam.distance).
		Add(right.Scale(cam.offsetX)).
		Add(up.Scale(cam.offsetY))

}
