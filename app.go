package tesseract

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fortio.org/log"
)

// ErrAppClosed is returned when an App is used after Close.
var ErrAppClosed = errors.New("app closed")

// maxFrameStep caps how much time a single Update can advance the animation by, so a stalled window doesn't lurch.
const maxFrameStep = 100 * time.Millisecond

// Segment is an edge of the hypercube as it lands on screen, in viewport pixels.
type Segment struct {
	Edge   Edge
	X0, Y0 float64
	X1, Y1 float64
	Color  Color
}

// Face is one face of the inner cube as it lands on screen; Points wind around the face in order.
type Face struct {
	Points [4][2]float64
	Depth  float64 // Average distance of the corners in front of the camera; larger is further away
	Color  Color
}

// Frame is everything a renderer needs to draw one frame of the App. Faces are sorted back to front.
type Frame struct {
	Segments []Segment
	Faces    []Face
	Angle    float64
	Elapsed  time.Duration
}

// App is the application context of the tesseract viewer: the hypercube, the camera, and the animation clock.
// It owns no rendering resources; a renderer calls Update once per tick and draws the Frame it produces.
type App struct {
	Config    Config
	Hypercube *Hypercube
	Camera    *MouseCamera

	lastUpdate time.Time
	elapsed    time.Duration
	angle      float64
	paused     bool
	closed     bool

	projected []Vector
	frame     Frame
}

// NewApp validates cfg and creates an App from it. The animation clock starts on the first call to Update.
func NewApp(cfg Config) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		Hypercube: NewHypercube(cfg.Dimensions),
		Camera:    NewMouseCamera(cfg),
	}

	app.project()
	app.buildFrame()

	log.Infof("Tesseract app ready: %d dimensions, %d vertices, %d edges, 4D projection %t",
		cfg.Dimensions, app.Hypercube.VertexCount(), app.Hypercube.EdgeCount(), cfg.FourDimensional())

	return app, nil

}

// AngleAt returns the rotation angle, in radians, after the given amount of unpaused time.
func (app *App) AngleAt(elapsed time.Duration) float64 {
	return elapsed.Seconds() * app.Config.RotationSpeed
}

// Update advances the App to now: the rotation angle, the camera, and the Frame.
func (app *App) Update(now time.Time) error {

	if app.closed {
		return ErrAppClosed
	}

	var dt time.Duration
	if !app.lastUpdate.IsZero() {
		dt = now.Sub(app.lastUpdate)
	}
	app.lastUpdate = now

	dt = clamp(dt, 0, maxFrameStep)

	if !app.paused {
		app.elapsed += dt
	}

	app.Camera.Update(dt.Seconds())
	app.project()
	app.buildFrame()

	return nil

}

// SetMouse forwards the cursor position to the camera.
func (app *App) SetMouse(x, y int) {
	app.Camera.SetMouse(x, y)
}

// Resize changes the viewport size of the App.
func (app *App) Resize(width, height int) {
	w, h := app.Camera.Size()
	if w == width && h == height {
		return
	}
	app.Camera.Resize(width, height)
	log.Debugf("Viewport resized to %dx%d", width, height)
}

// TogglePause pauses or resumes the rotation; the camera keeps moving either way.
func (app *App) TogglePause() {
	app.paused = !app.paused
	log.Infof("Rotation paused: %t", app.paused)
}

// Paused returns whether the rotation is paused.
func (app *App) Paused() bool {
	return app.paused
}

// Reset rewinds the rotation to zero and restarts the camera's dolly.
func (app *App) Reset() {
	app.elapsed = 0
	app.Camera.Reset()
	app.project()
	app.buildFrame()
}

// Angle returns the current rotation angle about Z, in radians.
func (app *App) Angle() float64 {
	return app.angle
}

// Elapsed returns how much unpaused time the animation has run for.
func (app *App) Elapsed() time.Duration {
	return app.elapsed
}

// Projected returns the current 3D positions of the hypercube's vertices. The slice is replaced, never modified, on
// each Update, so callers may hold on to it.
func (app *App) Projected() []Vector {
	return app.projected
}

// Frame returns the screen-space geometry of the current state.
func (app *App) Frame() Frame {
	return app.frame
}

// Close tears the App down. Further calls to Update return ErrAppClosed.
func (app *App) Close() error {
	if app.closed {
		return ErrAppClosed
	}
	app.closed = true
	log.Infof("Tesseract app closed after %s of rotation", app.elapsed.Round(time.Millisecond))
	return nil
}

func (app *App) project() {

	app.angle = app.AngleAt(app.elapsed)
	rot := app.Config.Rotation4.Scaled(app.elapsed.Seconds())
	app.projected = app.Hypercube.ProjectTumble(app.angle, rot, app.Config.ViewerW)

}

func (app *App) edgeColor(group EdgeGroup) Color {
	c := app.Config.PrimaryColor
	if group == EdgeGroupSecondary {
		c = app.Config.SecondaryColor
	}
	return c.WithAlpha(app.Config.EdgeOpacity)
}

func (app *App) buildFrame() {

	cam := app.Camera.Camera
	vp := cam.ViewProjection()

	type screenPoint struct {
		x, y float64
		ok   bool
	}

	points := make([]screenPoint, len(app.projected))
	for i, p := range app.projected {
		x, y, ok := cam.worldToScreen(vp, p)
		points[i] = screenPoint{x, y, ok}
	}

	frame := Frame{
		Segments: make([]Segment, 0, app.Hypercube.EdgeCount()),
		Angle:    app.angle,
		Elapsed:  app.elapsed,
	}

	for _, edge := range app.Hypercube.edges {
		a, b := points[edge.A], points[edge.B]
		if !a.ok || !b.ok {
			continue
		}
		frame.Segments = append(frame.Segments, Segment{
			Edge:  edge,
			X0:    a.x,
			Y0:    a.y,
			X1:    b.x,
			Y1:    b.y,
			Color: app.edgeColor(edge.Group()),
		})
	}

	if app.Hypercube.Dimensions() >= 3 && app.Config.CubeOpacity > 0 {

		faceColor := app.Config.CubeColor.WithAlpha(app.Config.CubeOpacity)

		view := cam.ViewMatrix()

		for _, quad := range cubeFaces {

			face := Face{Color: faceColor}
			visible := true

			for i, index := range quad {
				p := points[index]
				if !p.ok {
					visible = false
					break
				}
				face.Points[i] = [2]float64{p.x, p.y}
				face.Depth -= view.MultVec(app.projected[index]).Z / 4
			}

			if visible {
				frame.Faces = append(frame.Faces, face)
			}

		}

		sort.SliceStable(frame.Faces, func(i, j int) bool {
			return frame.Faces[i].Depth > frame.Faces[j].Depth
		})

	}

	app.frame = frame

}

// cubeFaces lists the six faces of the inner cube (the vertices with W at -1, indices 0 through 7), each wound
// around its perimeter.
var cubeFaces = buildCubeFaces()

func buildCubeFaces() [6][4]int {

	var faces [6][4]int

	i := 0
	for axis := 0; axis < 3; axis++ {
		// The two axes spanning this face, in ascending order
		u := (axis + 1) % 3
		v := (axis + 2) % 3
		if u > v {
			u, v = v, u
		}
		for side := 0; side < 2; side++ {
			base := side << axis
			faces[i] = [4]int{
				base,
				base | 1<<u,
				base | 1<<u | 1<<v,
				base | 1<<v,
			}
			i++
		}
	}

	return faces

}

func (frame Frame) String() string {
	return fmt.Sprintf("Frame{angle: %.3f, segments: %d, faces: %d}", frame.Angle, len(frame.Segments), len(frame.Faces))
}
