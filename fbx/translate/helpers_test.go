package translate

import (
	"testing"

	"github.com/mogaika/scenefbx/fbx"
)

func findFbxChild(t *testing.T, n fbx.Node, name string) *fbx.Node {
	t.Helper()
	for i := range n.Children {
		if n.Children[i].Name == name {
			return &n.Children[i]
		}
	}
	t.Fatalf("node %q has no child %q", n.Name, name)
	return nil
}

func float64SliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int32SliceEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
