package tesseract

import (
	"fmt"
	"math"
)

// Rotation4 holds rotation angles (in radians) for each of the six coordinate planes of 4D space.
// Rotating in a plane that includes W is what turns a tesseract "inside out" when it is viewed in 3D.
type Rotation4 struct {
	XY, XZ, XW, YZ, YW, ZW float64
}

// Scaled returns a copy of the Rotation4 with every plane angle multiplied by the given factor.
func (rot Rotation4) Scaled(factor float64) Rotation4 {
	return Rotation4{
		XY: rot.XY * factor,
		XZ: rot.XZ * factor,
		XW: rot.XW * factor,
		YZ: rot.YZ * factor,
		YW: rot.YW * factor,
		ZW: rot.ZW * factor,
	}
}

// IsZero returns true if none of the plane angles rotate anything.
func (rot Rotation4) IsZero() bool {
	return rot == Rotation4{}
}

// IsFinite returns true if every plane angle is a finite number.
func (rot Rotation4) IsFinite() bool {
	for _, angle := range rot.planes() {
		if !isFinite(angle) {
			return false
		}
	}
	return true
}

func (rot Rotation4) planes() [6]float64 {
	return [6]float64{rot.XY, rot.XZ, rot.XW, rot.YZ, rot.YW, rot.ZW}
}

// planeRotation returns a Matrix4 rotating counter-clockwise by angle in the plane spanned by axes a and b (a < b).
// Rows are inputs and columns are outputs, matching MultVec4.
func planeRotation(a, b int, angle float64) Matrix4 {
	s, c := math.Sincos(angle)
	mat := NewMatrix4()
	mat[a][a], mat[a][b] = c, s
	mat[b][a], mat[b][b] = -s, c
	return mat
}

// NewMatrix4DRotate composes the plane rotations of rot into a single 4D rotation Matrix4 for use with MultVec4.
// The planes are applied in the order ZW, YW, YZ, XW, XZ, then XY.
func NewMatrix4DRotate(rot Rotation4) Matrix4 {
	return planeRotation(2, 3, rot.ZW).
		Mult(planeRotation(1, 3, rot.YW)).
		Mult(planeRotation(1, 2, rot.YZ)).
		Mult(planeRotation(0, 3, rot.XW)).
		Mult(planeRotation(0, 2, rot.XZ)).
		Mult(planeRotation(0, 1, rot.XY))
}

// ProjectPerspective rotates the Hypercube's corners in 4D by rot, then projects them into 3D as seen from an eye sitting on the
// W axis at viewerW. Corners nearer the eye come out larger. viewerW must exceed the corner radius, sqrt(n), so that no
// rotation can carry a corner onto or behind the eye.
func (cube *Hypercube) ProjectPerspective(rot Rotation4, viewerW float64) []Vector {

	mustBeFinite("viewer distance", viewerW)

	if !rot.IsFinite() {
		panic(fmt.Sprintf("tesseract: ProjectPerspective requires finite plane angles, got %+v", rot))
	}

	if radius := cube.Radius(); viewerW <= radius {
		panic(fmt.Sprintf("tesseract: ProjectPerspective requires viewerW > %g, got %g", radius, viewerW))
	}

	rotation := NewMatrix4DRotate(rot)

	projected := make([]Vector, len(cube.vertices))
	for i, v := range cube.vertices {
		r := rotation.MultVec4(v)
		projected[i] = r.XYZ().Scale(1 / (viewerW - r.W))
	}

	return projected

}

// Radius returns the distance from the center of the Hypercube to any of its corners, sqrt(n).
func (cube *Hypercube) Radius() float64 {
	return math.Sqrt(float64(cube.dimensions))
}

// ProjectTumble is the projection the viewer and exporter share. With a zero rot it is Project(angle); otherwise angle is
// added to rot's XY plane, the corners are projected with ProjectPerspective, and the result is scaled by viewerW so that
// points at W=0 keep their size.
func (cube *Hypercube) ProjectTumble(angle float64, rot Rotation4, viewerW float64) []Vector {

	if rot.IsZero() {
		return cube.Project(angle)
	}

	mustBeFinite("projection angle", angle)

	rot.XY += angle

	projected := cube.ProjectPerspective(rot, viewerW)
	for i := range projected {
		projected[i] = projected[i].Scale(viewerW)
	}

	return projected

}
