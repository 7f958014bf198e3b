package tesseract

import (
	"math"
	"reflect"
	"testing"
)

const tolerance = 1e-9

func BenchmarkComputeEdges(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		ComputeEdges(TesseractVertexCount)
	}

}

func BenchmarkProjectVertices(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		ProjectVertices(float64(i) * 0.01)
	}

}

func TestComputeEdgesTesseract(t *testing.T) {

	edges := ComputeEdges(16)

	if len(edges) != 32 {
		t.Fatalf("expected 32 edges, got %d", len(edges))
	}

	degree := make([]int, 16)
	seen := map[Edge]bool{}

	for _, edge := range edges {
		if edge.A >= edge.B {
			t.Fatalf("edge %v is not ordered a < b", edge)
		}
		if seen[edge] {
			t.Fatalf("edge %v appears twice", edge)
		}
		seen[edge] = true
		degree[edge.A]++
		degree[edge.B]++
	}

	for v, d := range degree {
		if d != 4 {
			t.Errorf("vertex %d has degree %d, expected 4", v, d)
		}
	}

}

func TestComputeEdgesMatchesHammingDistance(t *testing.T) {

	edges := map[Edge]bool{}
	for _, edge := range ComputeEdges(16) {
		edges[edge] = true
	}

	for i := 0; i < 16; i++ {
		for j := i + 1; j < 16; j++ {
			want := HammingDistance(i, j) == 1
			if got := edges[Edge{A: i, B: j}]; got != want {
				t.Errorf("pair (%d, %d): in edge list = %t, hamming distance 1 = %t", i, j, got, want)
			}
		}
	}

}

func TestComputeEdgesOrder(t *testing.T) {

	edges := ComputeEdges(16)

	for i := 1; i < len(edges); i++ {
		prev, cur := edges[i-1], edges[i]
		if prev.A > cur.A || (prev.A == cur.A && prev.B >= cur.B) {
			t.Fatalf("edges out of order at %d: %v then %v", i, prev, cur)
		}
	}

}

func TestComputeEdgesSquare(t *testing.T) {

	want := []Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}}

	if got := ComputeEdges(4); !reflect.DeepEqual(got, want) {
		t.Fatalf("ComputeEdges(4) = %v, expected %v", got, want)
	}

}

func TestComputeEdgesSmall(t *testing.T) {

	for _, n := range []int{0, 1} {
		if edges := ComputeEdges(n); len(edges) != 0 {
			t.Errorf("ComputeEdges(%d) returned %d edges, expected none", n, len(edges))
		}
	}

	if edges := ComputeEdges(2); !reflect.DeepEqual(edges, []Edge{{0, 1}}) {
		t.Errorf("ComputeEdges(2) = %v, expected a single edge", edges)
	}

	// n * 2^(n-1) edges for every n
	for n := 1; n <= 8; n++ {
		want := n * (1 << (n - 1))
		if got := len(ComputeEdges(1 << n)); got != want {
			t.Errorf("ComputeEdges(%d) returned %d edges, expected %d", 1<<n, got, want)
		}
	}

}

func TestComputeEdgesPanicsOnBadInput(t *testing.T) {

	for _, n := range []int{-1, 3, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ComputeEdges(%d) did not panic", n)
				}
			}()
			ComputeEdges(n)
		}()
	}

}

func TestHammingDistance(t *testing.T) {

	for x := 0; x < 64; x++ {
		if d := HammingDistance(x, x); d != 0 {
			t.Fatalf("HammingDistance(%d, %d) = %d, expected 0", x, x, d)
		}
		for y := 0; y < 64; y++ {
			if HammingDistance(x, y) != HammingDistance(y, x) {
				t.Fatalf("HammingDistance is not symmetric for %d, %d", x, y)
			}
		}
	}

	for k := 0; k < 62; k++ {
		if d := HammingDistance(0, 1<<k); d != 1 {
			t.Fatalf("HammingDistance(0, 1<<%d) = %d, expected 1", k, d)
		}
	}

	if d := HammingDistance(0b1011, 0b0110); d != 3 {
		t.Fatalf("HammingDistance(0b1011, 0b0110) = %d, expected 3", d)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("HammingDistance did not panic on a negative input")
		}
	}()
	HammingDistance(-1, 0)

}

func TestVertexPosition(t *testing.T) {

	// The corner list in index order: X flips fastest, W slowest.
	want := []Vector4{
		{-1, -1, -1, -1}, {1, -1, -1, -1}, {-1, 1, -1, -1}, {1, 1, -1, -1},
		{-1, -1, 1, -1}, {1, -1, 1, -1}, {-1, 1, 1, -1}, {1, 1, 1, -1},
		{-1, -1, -1, 1}, {1, -1, -1, 1}, {-1, 1, -1, 1}, {1, 1, -1, 1},
		{-1, -1, 1, 1}, {1, -1, 1, 1}, {-1, 1, 1, 1}, {1, 1, 1, 1},
	}

	for i, w := range want {
		if got := VertexPosition(i); got != w {
			t.Errorf("VertexPosition(%d) = %+v, expected %+v", i, got, w)
		}
	}

}

func TestEdgesJoinCornersOneAxisApart(t *testing.T) {

	cube := NewTesseract()

	for _, edge := range cube.Edges() {
		a, b := cube.Vertex(edge.A), cube.Vertex(edge.B)
		differing := 0
		for axis := 0; axis < 4; axis++ {
			if a.Component(axis) != b.Component(axis) {
				differing++
				if axis != edge.Axis() {
					t.Errorf("edge %v differs on axis %d, but reports axis %d", edge, axis, edge.Axis())
				}
			}
		}
		if differing != 1 {
			t.Errorf("edge %v joins corners differing on %d axes", edge, differing)
		}
	}

}

func TestEdgeGroup(t *testing.T) {

	if g := (Edge{A: 0, B: 1}).Group(); g != EdgeGroupPrimary {
		t.Errorf("edge (0, 1) is in group %s", g)
	}

	if g := (Edge{A: 4, B: 5}).Group(); g != EdgeGroupSecondary {
		t.Errorf("edge (4, 5) is in group %s", g)
	}

	// Bit 2 of the first index only: (3, 7) starts at 3.
	if g := (Edge{A: 3, B: 7}).Group(); g != EdgeGroupPrimary {
		t.Errorf("edge (3, 7) is in group %s", g)
	}

	cube := NewTesseract()
	primary := cube.EdgesInGroup(EdgeGroupPrimary)
	secondary := cube.EdgesInGroup(EdgeGroupSecondary)

	if len(primary)+len(secondary) != cube.EdgeCount() {
		t.Fatalf("groups hold %d + %d edges, expected %d in total", len(primary), len(secondary), cube.EdgeCount())
	}

	// Eight corners have bit 2 set, and each starts one edge per clear bit among the other three.
	if len(secondary) != 12 {
		t.Errorf("expected 12 secondary edges, got %d", len(secondary))
	}

}

func TestHypercubeNeighbors(t *testing.T) {

	cube := NewTesseract()

	if got, want := cube.Neighbors(5), []int{1, 4, 7, 13}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(5) = %v, expected %v", got, want)
	}

	for v := 0; v < cube.VertexCount(); v++ {
		if d := cube.Degree(v); d != 4 {
			t.Errorf("Degree(%d) = %d, expected 4", v, d)
		}
	}

}

func TestHypercubeDimensions(t *testing.T) {

	for dims := 1; dims <= MaxDimensions; dims++ {

		cube := NewHypercube(dims)

		if cube.VertexCount() != 1<<dims {
			t.Errorf("%dD hypercube has %d vertices", dims, cube.VertexCount())
		}

		if cube.EdgeCount() != dims*(1<<(dims-1)) {
			t.Errorf("%dD hypercube has %d edges", dims, cube.EdgeCount())
		}

		// Unused axes stay at zero.
		for _, v := range cube.Vertices() {
			for axis := dims; axis < MaxDimensions; axis++ {
				if v.Component(axis) != 0 {
					t.Errorf("%dD hypercube vertex %+v has a non-zero axis %d", dims, v, axis)
				}
			}
		}

	}

	for _, dims := range []int{0, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewHypercube(%d) did not panic", dims)
				}
			}()
			NewHypercube(dims)
		}()
	}

}

func TestHypercubeCopiesAreIndependent(t *testing.T) {

	cube := NewTesseract()

	edges := cube.Edges()
	edges[0] = Edge{A: 99, B: 100}

	verts := cube.Vertices()
	verts[0] = Vector4{}

	if cube.Edges()[0] != (Edge{A: 0, B: 1}) {
		t.Fatal("modifying a returned edge list changed the hypercube")
	}

	if cube.Vertex(0) != VertexPosition(0) {
		t.Fatal("modifying a returned vertex list changed the hypercube")
	}

}

func TestProjectVerticesIdentity(t *testing.T) {

	projected := ProjectVertices(0)

	if len(projected) != 16 {
		t.Fatalf("expected 16 points, got %d", len(projected))
	}

	for i, p := range projected {
		if want := VertexPosition(i).XYZ(); !p.EqualsWithin(want, tolerance) {
			t.Errorf("point %d moved at angle 0: %+v, expected %+v", i, p, want)
		}
	}

}

func TestProjectVerticesPeriodic(t *testing.T) {

	for _, angle := range []float64{0, 0.3, 1, math.Pi / 3, 2.5, -4} {

		a := ProjectVertices(angle)
		b := ProjectVertices(angle + 2*math.Pi)

		for i := range a {
			if !a[i].EqualsWithin(b[i], tolerance) {
				t.Errorf("angle %g: point %d differs after a full turn: %+v vs %+v", angle, i, a[i], b[i])
			}
		}

	}

}

func TestProjectVerticesPreservesLength(t *testing.T) {

	for _, angle := range []float64{0.1, 0.7, math.Pi / 2, 3, 100} {

		for i, p := range ProjectVertices(angle) {

			v := VertexPosition(i)

			if math.Abs((p.X*p.X+p.Y*p.Y)-(v.X*v.X+v.Y*v.Y)) > tolerance {
				t.Errorf("angle %g: point %d changed its x-y length", angle, i)
			}

			if p.Z != v.Z {
				t.Errorf("angle %g: point %d changed its z from %g to %g", angle, i, v.Z, p.Z)
			}

		}

	}

}

func TestProjectVerticesQuarterTurn(t *testing.T) {

	// (1, 0, 0) is not a corner, so rotate it with the same matrix the projection uses.
	p := NewMatrix4RotateZ(math.Pi / 2).MultVec(NewVector(1, 0, 0))

	if !p.EqualsWithin(NewVector(0, 1, 0), tolerance) {
		t.Fatalf("quarter turn of (1, 0, 0) = %+v, expected (0, 1, 0)", p)
	}

	// Corner 1 sits at (1, -1, -1) and turns to (1, 1, -1).
	projected := ProjectVertices(math.Pi / 2)
	if !projected[1].EqualsWithin(NewVector(1, 1, -1), tolerance) {
		t.Fatalf("quarter turn of corner 1 = %+v, expected (1, 1, -1)", projected[1])
	}

}

func TestProjectVerticesDeterministic(t *testing.T) {

	a := ProjectVertices(1.234)
	b := ProjectVertices(1.234)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("ProjectVertices returned different points for the same angle")
	}

	a[0] = Vector{}
	if reflect.DeepEqual(a, ProjectVertices(1.234)) {
		t.Fatal("ProjectVertices returned a shared slice")
	}

}

func TestProjectVerticesPanicsOnNonFiniteAngle(t *testing.T) {

	for _, angle := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ProjectVertices(%g) did not panic", angle)
				}
			}()
			ProjectVertices(angle)
		}()
	}

}

func TestHypercubeProjectMatchesProjectVertices(t *testing.T) {

	if !reflect.DeepEqual(NewTesseract().Project(0.42), ProjectVertices(0.42)) {
		t.Fatal("Hypercube.Project disagrees with ProjectVertices")
	}

}
