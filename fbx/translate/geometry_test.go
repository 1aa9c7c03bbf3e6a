package translate

import (
	"testing"

	"github.com/mogaika/scenefbx/scene"
)

func TestTranslateMeshSingleTriangle(t *testing.T) {
	mesh := &scene.Mesh{
		Name:     "Tri",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][]int{{0, 1, 2}},
	}
	node, warnings := translateMesh(mesh, 42)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	verts := findFbxChild(t, node, "Vertices").Properties[0].Float64Array()
	want := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	if !float64SliceEqual(verts, want) {
		t.Errorf("Vertices = %v, want %v", verts, want)
	}

	indices := findFbxChild(t, node, "PolygonVertexIndex").Properties[0].Int32Array()
	wantIdx := []int32{0, 1, -3}
	if !int32SliceEqual(indices, wantIdx) {
		t.Errorf("PolygonVertexIndex = %v, want %v", indices, wantIdx)
	}
}

func TestTranslateMeshDedupDegenerateQuad(t *testing.T) {
	mesh := &scene.Mesh{
		Name:     "Degenerate",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {1, 0, 0}},
		Faces:    [][]int{{0, 1, 2, 3}},
	}
	node, _ := translateMesh(mesh, 1)

	verts := findFbxChild(t, node, "Vertices").Properties[0].Float64Array()
	if len(verts) != 6 {
		t.Fatalf("dedup left %d floats, want 6 (2 unique verts)", len(verts))
	}

	indices := findFbxChild(t, node, "PolygonVertexIndex").Properties[0].Int32Array()
	want := []int32{0, 1, 0, -2}
	if !int32SliceEqual(indices, want) {
		t.Errorf("PolygonVertexIndex = %v, want %v", indices, want)
	}
}

func TestTranslateMeshTwoVertexFace(t *testing.T) {
	mesh := &scene.Mesh{
		Name:     "Edge",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}},
		Faces:    [][]int{{0, 1}},
	}
	node, _ := translateMesh(mesh, 1)
	indices := findFbxChild(t, node, "PolygonVertexIndex").Properties[0].Int32Array()
	want := []int32{0, -2}
	if !int32SliceEqual(indices, want) {
		t.Errorf("PolygonVertexIndex = %v, want %v", indices, want)
	}
}

func TestTranslateMeshEmpty(t *testing.T) {
	mesh := &scene.Mesh{Name: "Empty"}
	node, warnings := translateMesh(mesh, 1)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	verts := findFbxChild(t, node, "Vertices").Properties[0].Float64Array()
	if len(verts) != 0 {
		t.Errorf("Vertices = %v, want empty", verts)
	}
	for _, name := range []string{"LayerElementNormal", "LayerElementUV"} {
		for _, c := range node.Children {
			if c.Name == name {
				t.Errorf("empty mesh should not emit %s", name)
			}
		}
	}
}

func TestTranslateMeshUVTruncatesExtraComponents(t *testing.T) {
	mesh := &scene.Mesh{
		Name:     "UVd",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][]int{{0, 1, 2}},
		UVs: []scene.UVChannel{
			{Components: 3, Values: [][]float64{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}},
		},
	}
	_, warnings := translateMesh(mesh, 1)
	if len(warnings) != 1 {
		t.Fatalf("expected one truncation warning, got %v", warnings)
	}
}
