package translate

import (
	"fmt"

	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

// geometryVersion is the constant FBX 7.4 writers stamp on every Geometry
// node's Version child, grounded on pack/wad/mesh/export_fbx.go's own
// bfbx73.Geometry(...) call.
const geometryVersion = 124

// translateMesh builds the Geometry object node for one scene.Mesh,
// deduplicating vertices by exact position equality and flattening faces
// into the sign-terminated polygon index stream spec.md section 4.5.1
// describes.
func translateMesh(mesh *scene.Mesh, uid uint64) (fbx.Node, []error) {
	var warnings []error

	dedup := make(map[[3]float64]int32, len(mesh.Vertices))
	var positions []float64
	remap := make([]int32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		if slot, ok := dedup[v]; ok {
			remap[i] = slot
			continue
		}
		slot := int32(len(positions) / 3)
		dedup[v] = slot
		positions = append(positions, v[0], v[1], v[2])
		remap[i] = slot
	}

	var polygonIndices []int32
	for _, face := range mesh.Faces {
		last := len(face) - 1
		for i, rawIdx := range face {
			idx := remap[rawIdx]
			if i == last {
				polygonIndices = append(polygonIndices, -1-idx)
			} else {
				polygonIndices = append(polygonIndices, idx)
			}
		}
	}

	geom := fbx.NewNode("Geometry",
		fbx.PropI64(int64(uid)),
		fbx.PropString(fbx.SanitizeName(mesh.Name)+fbx.NameSeparator+"Geometry"),
		fbx.PropString("Mesh"),
	)
	geom.AddChildren(
		*fbx.Properties70Node(),
		fbx.NewNode("GeometryVersion", fbx.PropI32(geometryVersion)),
		fbx.NewNode("Vertices", fbx.PropF64Array(positions)),
		fbx.NewNode("PolygonVertexIndex", fbx.PropI32Array(polygonIndices)),
	)

	if len(mesh.Normals) > 0 {
		geom.AddChild(layerElementNormal(mesh.Normals))
	}

	uvLayers := make([]fbx.Node, 0, len(mesh.UVs))
	for ch, uv := range mesh.UVs {
		node, warn := layerElementUV(uv, ch)
		if warn != nil {
			warnings = append(warnings, warn)
		}
		uvLayers = append(uvLayers, node)
		geom.AddChild(node)
	}

	geom.AddChild(layerElementMaterial())
	geom.AddChild(buildLayer(len(mesh.Normals) > 0, len(uvLayers)))

	return geom, warnings
}

func layerElementNormal(normals [][3]float64) fbx.Node {
	flat := make([]float64, 0, len(normals)*3)
	for _, n := range normals {
		flat = append(flat, n[0], n[1], n[2])
	}
	n := fbx.NewNode("LayerElementNormal", fbx.PropI32(0))
	n.AddChildren(
		fbx.NewNode("Version", fbx.PropI32(101)),
		fbx.NewNode("Name", fbx.PropString("")),
		fbx.NewNode("MappingInformationType", fbx.PropString("ByPolygonVertex")),
		fbx.NewNode("ReferenceInformationType", fbx.PropString("Direct")),
		fbx.NewNode("Normals", fbx.PropF64Array(flat)),
	)
	return n
}

// layerElementUV deduplicates UV values by exact equality (IndexToDirect
// mapping), truncating anything past the first two components per
// spec.md section 4.5.1 and warning when it does.
func layerElementUV(uv scene.UVChannel, channel int) (fbx.Node, error) {
	var warn error
	if uv.Components > 2 {
		warn = fmt.Errorf("translate: UV channel %d has %d components, truncating to 2", channel, uv.Components)
	}

	type key [2]float64
	dedup := make(map[key]int32)
	var values []float64
	var indices []int32
	for _, v := range uv.Values {
		var k key
		k[0] = v[0]
		if len(v) > 1 {
			k[1] = v[1]
		}
		slot, ok := dedup[k]
		if !ok {
			slot = int32(len(values) / 2)
			dedup[k] = slot
			values = append(values, k[0], k[1])
		}
		indices = append(indices, slot)
	}

	n := fbx.NewNode("LayerElementUV", fbx.PropI32(int32(channel)))
	n.AddChildren(
		fbx.NewNode("Version", fbx.PropI32(101)),
		fbx.NewNode("Name", fbx.PropString(fmt.Sprintf("UVChannel_%d", channel))),
		fbx.NewNode("MappingInformationType", fbx.PropString("ByPolygonVertex")),
		fbx.NewNode("ReferenceInformationType", fbx.PropString("IndexToDirect")),
		fbx.NewNode("UV", fbx.PropF64Array(values)),
		fbx.NewNode("UVIndex", fbx.PropI32Array(indices)),
	)
	return n, warn
}

func layerElementMaterial() fbx.Node {
	n := fbx.NewNode("LayerElementMaterial", fbx.PropI32(0))
	n.AddChildren(
		fbx.NewNode("Version", fbx.PropI32(101)),
		fbx.NewNode("Name", fbx.PropString("")),
		fbx.NewNode("MappingInformationType", fbx.PropString("AllSame")),
		fbx.NewNode("ReferenceInformationType", fbx.PropString("IndexToDirect")),
		fbx.NewNode("Materials", fbx.PropI32Array([]int32{0})),
	)
	return n
}

func buildLayer(hasNormals bool, uvCount int) fbx.Node {
	layer := fbx.NewNode("Layer", fbx.PropI32(0))
	layer.AddChild(fbx.NewNode("Version", fbx.PropI32(100)))

	addElement := func(typ string, index int) {
		le := fbx.NewNode("LayerElement")
		le.AddChildren(
			fbx.NewNode("Type", fbx.PropString(typ)),
			fbx.NewNode("TypedIndex", fbx.PropI32(int32(index))),
		)
		layer.AddChild(le)
	}

	if hasNormals {
		addElement("LayerElementNormal", 0)
	}
	addElement("LayerElementMaterial", 0)
	for i := 0; i < uvCount; i++ {
		addElement("LayerElementUV", i)
	}
	return layer
}
