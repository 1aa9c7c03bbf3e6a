package fbx

import (
	"testing"
	"time"
)

// TestDefinitionsObjectsCountsAgree is a regression test for the invariant
// that Definitions' per-type Count values match what Objects actually
// contains: 3 Model, 2 Geometry, 1 Material, 0 Texture.
func TestDefinitionsObjectsCountsAgree(t *testing.T) {
	ids := NewUIDAllocator()
	objects := []Node{
		NewNode("Model", PropI64(1)),
		NewNode("Model", PropI64(2)),
		NewNode("Model", PropI64(3)),
		NewNode("Geometry", PropI64(4)),
		NewNode("Geometry", PropI64(5)),
		NewNode("Material", PropI64(6)),
	}
	counts := ObjectCounts{Model: 3, Geometry: 2, Material: 1, Texture: 0}

	nodes := BuildTopLevelNodes(ids, DocumentInfo{Creator: "test", Time: time.Unix(0, 0)}, objects, nil, counts, false)

	var defs *Node
	var objs *Node
	for i := range nodes {
		switch nodes[i].Name {
		case "Definitions":
			defs = &nodes[i]
		case "Objects":
			objs = &nodes[i]
		}
	}
	if defs == nil || objs == nil {
		t.Fatal("missing Definitions or Objects node")
	}

	declared := map[string]int32{}
	for _, c := range defs.Children {
		if c.Name != "ObjectType" {
			continue
		}
		typeName := string(c.Properties[0].raw)
		for _, sub := range c.Children {
			if sub.Name == "Count" {
				declared[typeName] = int32(le32(sub.Properties[0].raw))
			}
		}
	}

	actual := map[string]int32{}
	for _, o := range objs.Children {
		actual[o.Name]++
	}

	for _, typ := range []string{"Model", "Geometry", "Material"} {
		if declared[typ] != actual[typ] {
			t.Errorf("Definitions declares %d %s, Objects has %d", declared[typ], typ, actual[typ])
		}
	}
	if declared["Texture"] != 0 {
		t.Errorf("Definitions declares %d Texture, want 0", declared["Texture"])
	}
}
