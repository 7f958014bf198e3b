package tesseract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportOptions controls how a Hypercube is written out as a glTF scene.
type ExportOptions struct {
	Name           string    // Name of the scene node and mesh
	Angle          float64   // Rotation about Z, in radians
	Rotation       Rotation4 // 4D plane rotation; when non-zero the corners are projected with perspective from ViewerW
	ViewerW        float64
	PrimaryColor   Color
	SecondaryColor Color
	Binary         bool // Write GLB instead of glTF JSON with an embedded buffer
}

// DefaultExportOptions returns ExportOptions using the default edge colors, at angle 0.
func DefaultExportOptions() ExportOptions {
	cfg := DefaultConfig()
	return ExportOptions{
		Name:           "Tesseract",
		ViewerW:        cfg.ViewerW,
		PrimaryColor:   cfg.PrimaryColor.WithAlpha(cfg.EdgeOpacity),
		SecondaryColor: cfg.SecondaryColor.WithAlpha(cfg.EdgeOpacity),
	}
}

// BuildGLTF creates a glTF document holding the projected Hypercube as a single mesh with one LINES primitive per EdgeGroup,
// each with its own material. All primitives share one position accessor, indexed by vertex index.
func BuildGLTF(cube *Hypercube, opts ExportOptions) (*gltf.Document, error) {

	if !isFinite(opts.Angle) {
		return nil, fmt.Errorf("build gltf: angle must be finite, got %g", opts.Angle)
	}

	if !opts.Rotation.IsFinite() {
		return nil, fmt.Errorf("build gltf: plane angles must be finite, got %+v", opts.Rotation)
	}

	if !opts.Rotation.IsZero() && !(opts.ViewerW > cube.Radius()) {
		return nil, fmt.Errorf("build gltf: viewer w must be greater than %g, got %g", cube.Radius(), opts.ViewerW)
	}

	projected := cube.ProjectTumble(opts.Angle, opts.Rotation, opts.ViewerW)

	name := opts.Name
	if name == "" {
		name = "Hypercube"
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "tesseract"

	positions := make([][3]float32, len(projected))
	for i, p := range projected {
		positions[i] = p.Float32s()
	}
	positionAccessor := modeler.WritePosition(doc, positions)

	mesh := &gltf.Mesh{Name: name}

	groups := []struct {
		group EdgeGroup
		color Color
	}{
		{EdgeGroupPrimary, opts.PrimaryColor},
		{EdgeGroupSecondary, opts.SecondaryColor},
	}

	for _, g := range groups {

		edges := cube.EdgesInGroup(g.group)
		if len(edges) == 0 {
			continue
		}

		indices := make([]uint16, 0, len(edges)*2)
		for _, edge := range edges {
			indices = append(indices, uint16(edge.A), uint16(edge.B))
		}

		baseColor := g.color.Floats()

		material := &gltf.Material{
			Name: name + "_" + g.group.String(),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &baseColor,
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(1),
			},
		}
		if g.color.A < 1 {
			material.AlphaMode = gltf.AlphaBlend
		}
		doc.Materials = append(doc.Materials, material)

		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Mode:       gltf.PrimitiveLines,
			Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
			Material:   gltf.Index(len(doc.Materials) - 1),
			Attributes: map[string]int{gltf.POSITION: positionAccessor},
		})

	}

	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
		Extras: map[string]any{
			"dimensions": cube.Dimensions(),
			"angle":      opts.Angle,
		},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil

}

// ExportGLTF writes the projected Hypercube to w as glTF JSON, or as GLB if opts.Binary is set.
func ExportGLTF(w io.Writer, cube *Hypercube, opts ExportOptions) error {

	doc, err := BuildGLTF(cube, opts)
	if err != nil {
		return err
	}

	if !opts.Binary {
		// JSON output has nowhere to put a binary chunk, so the buffer travels as a data URI.
		for _, buffer := range doc.Buffers {
			buffer.EmbeddedResource()
		}
	}

	enc := gltf.NewEncoder(w)
	enc.AsBinary = opts.Binary

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gltf: %w", err)
	}

	return nil

}

// SaveGLTF writes the projected Hypercube to the file at path; a ".glb" extension selects binary output.
func SaveGLTF(path string, cube *Hypercube, opts ExportOptions) error {

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb":
		opts.Binary = true
	case ".gltf":
		opts.Binary = false
	default:
		return fmt.Errorf("save gltf: unsupported extension %q (use .gltf or .glb)", ext)
	}

	doc, err := BuildGLTF(cube, opts)
	if err != nil {
		return err
	}

	if opts.Binary {
		err = gltf.SaveBinary(doc, path)
	} else {
		for _, buffer := range doc.Buffers {
			buffer.EmbeddedResource()
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("save gltf %s: %w", path, err)
	}

	log.Infof("Saved %d-dimensional hypercube (%d edges) to %s", cube.Dimensions(), cube.EdgeCount(), path)

	return nil

}

// WireframeSummary describes the line geometry found in a glTF document.
type WireframeSummary struct {
	Vertices      int
	Edges         int
	EdgesPerGroup []int // Edge count of each LINES primitive, in primitive order
}

// ErrNoWireframe is returned by SummarizeWireframe when a document holds no LINES primitives.
var ErrNoWireframe = errors.New("no line primitives found")

// ErrAccessorOutOfRange is returned by SummarizeWireframe when a primitive points at data the document does not hold.
var ErrAccessorOutOfRange = errors.New("accessor index out of range")

// SummarizeWireframe reads back every LINES primitive of the first mesh in doc, as written by BuildGLTF.
func SummarizeWireframe(doc *gltf.Document) (WireframeSummary, error) {

	var summary WireframeSummary

	if len(doc.Meshes) == 0 {
		return summary, ErrNoWireframe
	}

	positionsSeen := map[int]bool{}

	for _, prim := range doc.Meshes[0].Primitives {

		if prim.Mode != gltf.PrimitiveLines || prim.Indices == nil {
			continue
		}

		posIndex, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return summary, fmt.Errorf("line primitive has no %s attribute", gltf.POSITION)
		}

		if err := checkAccessor(doc, posIndex); err != nil {
			return summary, fmt.Errorf("%s: %w", gltf.POSITION, err)
		}

		if err := checkAccessor(doc, *prim.Indices); err != nil {
			return summary, fmt.Errorf("indices: %w", err)
		}

		if !positionsSeen[posIndex] {
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
			if err != nil {
				return summary, fmt.Errorf("read positions: %w", err)
			}
			summary.Vertices += len(positions)
			positionsSeen[posIndex] = true
		}

		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return summary, fmt.Errorf("read indices: %w", err)
		}

		summary.Edges += len(indices) / 2
		summary.EdgesPerGroup = append(summary.EdgesPerGroup, len(indices)/2)

	}

	if len(summary.EdgesPerGroup) == 0 {
		return summary, ErrNoWireframe
	}

	return summary, nil

}

// checkAccessor makes sure the accessor at index, and the buffer view and buffer behind it, exist in doc.
func checkAccessor(doc *gltf.Document, index int) error {

	if index < 0 || index >= len(doc.Accessors) || doc.Accessors[index] == nil {
		return fmt.Errorf("accessor %d: %w", index, ErrAccessorOutOfRange)
	}

	view := doc.Accessors[index].BufferView
	if view == nil {
		return nil
	}

	if *view < 0 || *view >= len(doc.BufferViews) || doc.BufferViews[*view] == nil {
		return fmt.Errorf("accessor %d: buffer view %d: %w", index, *view, ErrAccessorOutOfRange)
	}

	if buffer := doc.BufferViews[*view].Buffer; buffer < 0 || buffer >= len(doc.Buffers) {
		return fmt.Errorf("accessor %d: buffer %d: %w", index, buffer, ErrAccessorOutOfRange)
	}

	return nil

}

// OpenWireframe loads a glTF or GLB file and summarizes its line geometry.
func OpenWireframe(path string) (WireframeSummary, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return WireframeSummary{}, fmt.Errorf("open gltf %s: %w", path, err)
	}
	return SummarizeWireframe(doc)
}
