package translate

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

func countByName(nodes []fbx.Node, name string) int {
	n := 0
	for _, o := range nodes {
		if o.Name == name {
			n++
		}
	}
	return n
}

// TestTranslateRootMeshGetsMeshModel checks a mesh referenced directly by
// the scene root is emitted as a Mesh-type Model parented to the implicit
// UID 0, without a synthetic Null wrapper (root never emits its own Model).
func TestTranslateRootMeshGetsMeshModel(t *testing.T) {
	sc := &scene.Scene{
		Meshes: []scene.Mesh{{Name: "Plane", Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Faces: [][]int{{0, 1, 2}}, MaterialIndex: -1}},
		Root:   &scene.Node{Name: "Root", Transform: mgl64.Ident4(), MeshRefs: []int{0}},
	}

	result, err := Translate(sc, fbx.NewUIDAllocator())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got := countByName(result.Objects, "Model"); got != 1 {
		t.Fatalf("got %d Model objects, want 1", got)
	}
	if got := countByName(result.Objects, "Geometry"); got != 1 {
		t.Fatalf("got %d Geometry objects, want 1", got)
	}
	if result.Counts.Model != 1 || result.Counts.Geometry != 1 {
		t.Errorf("Counts = %+v, want Model=1 Geometry=1", result.Counts)
	}
}

// TestTranslateMultiMeshNodeExpandsToNullPlusChildren checks a non-root node
// with two meshes emits itself as a Null and each mesh as its own Mesh-type
// child Model.
func TestTranslateMultiMeshNodeExpandsToNullPlusChildren(t *testing.T) {
	sc := &scene.Scene{
		Meshes: []scene.Mesh{
			{Name: "A", Vertices: [][3]float64{{0, 0, 0}}, MaterialIndex: -1},
			{Name: "B", Vertices: [][3]float64{{0, 0, 0}}, MaterialIndex: -1},
		},
		Root: &scene.Node{
			Name:      "Root",
			Transform: mgl64.Ident4(),
			Children: []*scene.Node{
				{Name: "Group", Transform: mgl64.Ident4(), MeshRefs: []int{0, 1}},
			},
		},
	}

	result, err := Translate(sc, fbx.NewUIDAllocator())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	// 1 Null (Group) + 2 Mesh children = 3 Models.
	if got := countByName(result.Objects, "Model"); got != 3 {
		t.Fatalf("got %d Model objects, want 3", got)
	}
	if got := countByName(result.Objects, "Geometry"); got != 2 {
		t.Fatalf("got %d Geometry objects, want 2", got)
	}
}

// TestTranslateZeroMeshNodeIsNull checks an interior node with no meshes of
// its own becomes a Null Model.
func TestTranslateZeroMeshNodeIsNull(t *testing.T) {
	sc := &scene.Scene{
		Root: &scene.Node{
			Name:      "Root",
			Transform: mgl64.Ident4(),
			Children: []*scene.Node{
				{Name: "Empty", Transform: mgl64.Ident4()},
			},
		},
	}
	result, err := Translate(sc, fbx.NewUIDAllocator())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got := countByName(result.Objects, "Model"); got != 1 {
		t.Fatalf("got %d Model objects, want 1", got)
	}
	var found bool
	for _, o := range result.Objects {
		if o.Name == "Model" && o.Properties[2].Str() == "Null" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Null-type Model for the zero-mesh node")
	}
}
