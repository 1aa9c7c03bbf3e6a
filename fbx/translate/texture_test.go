package translate

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

// TestTranslateTextureProperties70 checks the Texture node's Properties70
// block carries both CurrentTextureBlendMode=0 and UseMaterial=1, the pair
// pack/wad/txr/export_fbx.go emits alongside each other.
func TestTranslateTextureProperties70(t *testing.T) {
	n := translateTexture("brick.png", 1)
	props := findFbxChild(t, n, "Properties70")

	var sawBlendMode, sawUseMaterial bool
	for _, p := range props.Children {
		if p.Name != "P" {
			continue
		}
		switch p.Properties[0].Str() {
		case "CurrentTextureBlendMode":
			sawBlendMode = true
			if got := p.Properties[4].Int32(); got != 0 {
				t.Errorf("CurrentTextureBlendMode = %d, want 0", got)
			}
		case "UseMaterial":
			sawUseMaterial = true
			if got := p.Properties[4].Int32(); got != 1 {
				t.Errorf("UseMaterial = %d, want 1", got)
			}
		}
	}
	if !sawBlendMode {
		t.Error("Texture Properties70 is missing CurrentTextureBlendMode")
	}
	if !sawUseMaterial {
		t.Error("Texture Properties70 is missing UseMaterial")
	}
}

// TestTranslateSharedTextureDeduplicates checks that two materials pointing
// at the same source path end up sharing a single Texture object linked by
// two separate OP connections.
func TestTranslateSharedTextureDeduplicates(t *testing.T) {
	sc := &scene.Scene{
		Root: &scene.Node{Name: "Root", Transform: mgl64.Ident4()},
		Materials: []scene.Material{
			{Name: "MatA", DiffuseTexturePath: "brick.png"},
			{Name: "MatB", DiffuseTexturePath: "brick.png"},
		},
	}

	result, err := Translate(sc, fbx.NewUIDAllocator())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	textureCount := 0
	for _, o := range result.Objects {
		if o.Name == "Texture" {
			textureCount++
		}
	}
	if textureCount != 1 {
		t.Fatalf("got %d Texture objects, want 1", textureCount)
	}
	if result.Counts.Texture != 1 {
		t.Errorf("Counts.Texture = %d, want 1", result.Counts.Texture)
	}

	opCount := 0
	for _, c := range result.Connections {
		if c.Name == "C" && c.Properties[0].Str() == "OP" {
			opCount++
		}
	}
	if opCount != 2 {
		t.Errorf("got %d OP connections, want 2", opCount)
	}
}
