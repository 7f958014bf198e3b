package tesseract

import (
	"fmt"
	"math/bits"
)

// TesseractDimensions is the dimension count of a tesseract, the 4D hypercube.
const TesseractDimensions = 4

// TesseractVertexCount is the number of corners on a tesseract (2^4).
const TesseractVertexCount = 1 << TesseractDimensions

// MaxDimensions is the highest dimension count a Hypercube can place its vertices in, as vertices are stored as Vector4s.
const MaxDimensions = 4

// EdgeGroup identifies which of the two line materials an Edge is drawn with.
type EdgeGroup int

const (
	EdgeGroupPrimary   EdgeGroup = iota // Edges whose first vertex has bit 2 clear
	EdgeGroupSecondary                  // Edges whose first vertex has bit 2 set
)

func (group EdgeGroup) String() string {
	switch group {
	case EdgeGroupPrimary:
		return "primary"
	case EdgeGroupSecondary:
		return "secondary"
	}
	return fmt.Sprintf("EdgeGroup(%d)", int(group))
}

// Edge is an unordered pair of hypercube vertex indices that differ in exactly one bit. A is always the smaller index.
type Edge struct {
	A, B int
}

// Group returns the visual group of the Edge, decided by bit 2 of its first vertex index.
func (edge Edge) Group() EdgeGroup {
	if edge.A&4 != 0 {
		return EdgeGroupSecondary
	}
	return EdgeGroupPrimary
}

// Axis returns the index of the single coordinate axis the Edge runs along.
func (edge Edge) Axis() int {
	return bits.TrailingZeros(uint(edge.A ^ edge.B))
}

func (edge Edge) String() string {
	return fmt.Sprintf("(%d, %d)", edge.A, edge.B)
}

// HammingDistance returns the number of bit positions in which x and y differ.
// Both values must be non-negative.
func HammingDistance(x, y int) int {
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("tesseract: HammingDistance requires non-negative inputs, got %d and %d", x, y))
	}
	return bits.OnesCount(uint(x ^ y))
}

// ComputeEdges returns every pair of vertex indices (i, j) with i < j < vertexCount whose Hamming distance is exactly 1,
// ordered by ascending i, then ascending j. vertexCount must be a power of two (2^n); a vertexCount of 0 or 1 yields no edges.
func ComputeEdges(vertexCount int) []Edge {

	if vertexCount < 0 {
		panic(fmt.Sprintf("tesseract: ComputeEdges requires a non-negative vertex count, got %d", vertexCount))
	}

	if vertexCount <= 1 {
		return []Edge{}
	}

	if vertexCount&(vertexCount-1) != 0 {
		panic(fmt.Sprintf("tesseract: ComputeEdges requires a power-of-two vertex count, got %d", vertexCount))
	}

	// Each of the 2^n vertices has degree n.
	dims := bits.TrailingZeros(uint(vertexCount))
	edges := make([]Edge, 0, vertexCount*dims/2)

	for i := 0; i < vertexCount; i++ {
		for j := i + 1; j < vertexCount; j++ {
			if HammingDistance(i, j) == 1 {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}

	return edges

}

// VertexPosition returns the 4D corner encoded by a vertex index: bit k set puts coordinate k at +1, clear puts it at -1.
// Bits 0 through 3 map to X, Y, Z, and W respectively.
func VertexPosition(index int) Vector4 {
	return vertexPosition(index, TesseractDimensions)
}

func vertexPosition(index, dimensions int) Vector4 {

	if index < 0 || index >= 1<<dimensions {
		panic(fmt.Sprintf("tesseract: vertex index %d out of range for %d dimensions", index, dimensions))
	}

	var vec Vector4

	for axis := 0; axis < dimensions; axis++ {
		value := -1.0
		if index&(1<<axis) != 0 {
			value = 1
		}
		vec = vec.SetComponent(axis, value)
	}

	return vec

}

var tesseractVertices = generateVertices(TesseractDimensions)

func generateVertices(dimensions int) []Vector4 {
	verts := make([]Vector4, 1<<dimensions)
	for i := range verts {
		verts[i] = vertexPosition(i, dimensions)
	}
	return verts
}

// ProjectVertices rotates the 16 tesseract corners about the Z axis by angle (in radians) and drops W,
// returning the resulting 3D points in vertex index order. The result is a fresh slice on each call.
func ProjectVertices(angle float64) []Vector {
	return projectParallel(tesseractVertices, angle)
}

func projectParallel(vertices []Vector4, angle float64) []Vector {

	mustBeFinite("projection angle", angle)

	rotation := NewMatrix4RotateZ(angle)

	projected := make([]Vector, len(vertices))
	for i, v := range vertices {
		projected[i] = rotation.MultVec(v.XYZ())
	}

	return projected

}

// Hypercube is the edge graph and corner set of an n-dimensional hypercube, computed once on creation.
// A Hypercube is immutable after NewHypercube returns, so it can be shared freely between goroutines.
type Hypercube struct {
	dimensions int
	vertices   []Vector4
	edges      []Edge
}

// NewHypercube creates a Hypercube of the given dimension count, which must range from 1 to MaxDimensions.
// Axes past the dimension count are left at 0 in each vertex position.
func NewHypercube(dimensions int) *Hypercube {

	if dimensions < 1 || dimensions > MaxDimensions {
		panic(fmt.Sprintf("tesseract: hypercube dimensions must range from 1 to %d, got %d", MaxDimensions, dimensions))
	}

	return &Hypercube{
		dimensions: dimensions,
		vertices:   generateVertices(dimensions),
		edges:      ComputeEdges(1 << dimensions),
	}

}

// NewTesseract creates the 4-dimensional Hypercube.
func NewTesseract() *Hypercube {
	return NewHypercube(TesseractDimensions)
}

// Dimensions returns the dimension count of the Hypercube.
func (cube *Hypercube) Dimensions() int {
	return cube.dimensions
}

// VertexCount returns the number of corners of the Hypercube (2^n).
func (cube *Hypercube) VertexCount() int {
	return len(cube.vertices)
}

// Vertices returns a copy of the Hypercube's corner positions, in vertex index order.
func (cube *Hypercube) Vertices() []Vector4 {
	return append([]Vector4(nil), cube.vertices...)
}

// Vertex returns the corner position of the given vertex index.
func (cube *Hypercube) Vertex(index int) Vector4 {
	return cube.vertices[index]
}

// Edges returns a copy of the Hypercube's edge list, ordered as ComputeEdges orders it.
func (cube *Hypercube) Edges() []Edge {
	return append([]Edge(nil), cube.edges...)
}

// EdgeCount returns the number of edges on the Hypercube (n * 2^(n-1)).
func (cube *Hypercube) EdgeCount() int {
	return len(cube.edges)
}

// EdgesInGroup returns the edges belonging to the given EdgeGroup, in edge list order.
func (cube *Hypercube) EdgesInGroup(group EdgeGroup) []Edge {
	out := make([]Edge, 0, len(cube.edges)/2)
	for _, edge := range cube.edges {
		if edge.Group() == group {
			out = append(out, edge)
		}
	}
	return out
}

// Neighbors returns the vertex indices sharing an edge with the given vertex, in ascending order.
func (cube *Hypercube) Neighbors(index int) []int {

	if index < 0 || index >= len(cube.vertices) {
		panic(fmt.Sprintf("tesseract: vertex index %d out of range for %d vertices", index, len(cube.vertices)))
	}

	neighbors := make([]int, 0, cube.dimensions)
	for _, edge := range cube.edges {
		if edge.A == index {
			neighbors = append(neighbors, edge.B)
		} else if edge.B == index {
			neighbors = append(neighbors, edge.A)
		}
	}

	return neighbors

}

// Degree returns the number of edges touching the given vertex; for a Hypercube this is always its dimension count.
func (cube *Hypercube) Degree(index int) int {
	return len(cube.Neighbors(index))
}

// Project is ProjectVertices over this Hypercube's corners: each corner is rotated about Z by angle and W is dropped.
func (cube *Hypercube) Project(angle float64) []Vector {
	return projectParallel(cube.vertices, angle)
}
