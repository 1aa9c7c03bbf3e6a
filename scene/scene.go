// Package scene is the concrete shape of the scene graph this module's
// writer translates into FBX. spec.md treats the real source data model as
// an external collaborator out of scope for the core engineering, but a
// translator has to consume something -- these types are that something,
// shaped after the field names the God of War Browser's own per-resource
// mesh/material/node graph already exposes.
package scene

import "github.com/go-gl/mathgl/mgl64"

// ColorSlot names one of a material's color channels.
type ColorSlot int

const (
	Ambient ColorSlot = iota
	Diffuse
	Specular
	Emissive
	Transparent
	Reflective
)

// UVChannel is one UV set on a mesh. Components is 2 or 3; spec.md section
// 4.5.1 requires emitting only the first two when more are supplied.
type UVChannel struct {
	Components int
	// Values holds Components floats per polygon-vertex-index entry --
	// i.e. indexed the same way Mesh.Faces is (not deduplicated yet;
	// the translator does that).
	Values [][]float64
}

// Mesh is a single piece of renderable geometry.
type Mesh struct {
	Name string

	// Vertices holds one [3]float64 position per source vertex.
	Vertices [][3]float64

	// Faces holds one entry per polygon; each entry lists the dedup-table
	// indices (before dedup, i.e. indices into Vertices) of the face's
	// corners in order. A face may have 2 or more corners.
	Faces [][]int

	// Normals, if present, holds one [3]float64 per polygon-vertex (i.e.
	// len(Normals) == sum of len(f) over Faces), not one per unique
	// vertex -- this matches how FBX's ByPolygonVertex mapping mode
	// expects normal data to be laid out.
	Normals [][3]float64

	UVs []UVChannel

	// MaterialIndex selects which entry of Scene.Materials this mesh uses.
	MaterialIndex int
}

// Material describes a single surface.
type Material struct {
	Name string

	// Shininess > 0 selects the Phong shading model; otherwise Lambert.
	Shininess float64

	// Opacity, if non-nil, overrides the default of
	// 1 - mean(Colors[Transparent]).
	Opacity *float64

	Colors map[ColorSlot][3]float64

	// DiffuseTexturePath is the source-file path of this material's
	// diffuse texture, or "" if it has none.
	DiffuseTexturePath string
}

// Node is one entry in the scene hierarchy. Transform is this node's own
// local 4x4 matrix (not yet decomposed or pivot-collapsed -- that happens
// during translation).
type Node struct {
	Name      string
	Transform mgl64.Mat4
	MeshRefs  []int
	Children  []*Node
}

// Scene is the top-level input to the translator.
type Scene struct {
	Root      *Node
	Meshes    []Mesh
	Materials []Material
}
