package translate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

// modelVersion matches every Model node pack/wad/*/export_fbx.go emits.
const modelVersion = 232

// inheritTypeRSrs is TransformInheritance_RSrs from the original exporter's
// enum (RrSs=0, RSrs=1, Rrs=2) -- the default every Model in this package
// declares, same as pack/wad/mesh/export_fbx.go's own Model construction.
const inheritTypeRSrs = 1

// walkNode emits the Model (or Mesh-model) node for one non-magic scene
// node and recurses into its children, per spec.md section 4.5.5's
// hierarchy rules. parentUID is 0 for the implicit scene root.
func (tr *translator) walkNode(n *scene.Node, parentUID uint64, chain []pivotEntry) error {
	isRoot := n == tr.scene.Root

	if isRoot {
		for _, meshIdx := range n.MeshRefs {
			tr.emitMeshChild(n, meshIdx, 0)
		}
		return tr.walkChildren(n, 0)
	}

	nodeUID := tr.ids.Next()
	tr.connections = append(tr.connections, fbx.Connection("OO", nodeUID, parentUID))

	switch len(n.MeshRefs) {
	case 0:
		tr.emitModel(nodeUID, n.Name, "Null", chain, n.Transform)

	case 1:
		tr.emitModel(nodeUID, n.Name, "Mesh", chain, n.Transform)
		if err := tr.connectMesh(n.MeshRefs[0], nodeUID); err != nil {
			return err
		}

	default:
		tr.emitModel(nodeUID, n.Name, "Null", chain, n.Transform)
		for _, meshIdx := range n.MeshRefs {
			tr.emitMeshChild(n, meshIdx, nodeUID)
		}
	}

	return tr.walkChildren(n, nodeUID)
}

// emitMeshChild allocates and emits one identity-transform Mesh-type Model
// for a single mesh reference hanging directly off parentUID, used both for
// meshes attached straight to the scene root and for the synthetic
// per-mesh children a multi-mesh node expands into.
func (tr *translator) emitMeshChild(owner *scene.Node, meshIdx int, parentUID uint64) {
	childUID := tr.ids.Next()
	tr.connections = append(tr.connections, fbx.Connection("OO", childUID, parentUID))
	name := fmt.Sprintf("%s_mesh%d", owner.Name, meshIdx)
	tr.emitModel(childUID, name, "Mesh", nil, mgl64.Ident4())
	if err := tr.connectMesh(meshIdx, childUID); err != nil {
		tr.warnings = append(tr.warnings, err)
	}
}

func (tr *translator) walkChildren(n *scene.Node, parentUID uint64) error {
	for _, child := range n.Children {
		collapsed, chain, err := collapseChain(child)
		if err != nil {
			return err
		}
		if err := tr.walkNode(collapsed, parentUID, chain); err != nil {
			return err
		}
	}
	return nil
}

// connectMesh wires a Model to its mesh's Geometry (translating it on first
// reference, reusing the cached Geometry object on every later one) and to
// the mesh's Material.
func (tr *translator) connectMesh(meshIdx int, modelUID uint64) error {
	geomUID, err := tr.geometryUID(meshIdx)
	if err != nil {
		return err
	}
	tr.connections = append(tr.connections, fbx.Connection("OO", geomUID, modelUID))

	mesh := &tr.scene.Meshes[meshIdx]
	if mesh.MaterialIndex >= 0 && mesh.MaterialIndex < len(tr.materialUIDs) {
		tr.connections = append(tr.connections, fbx.Connection("OO", tr.materialUIDs[mesh.MaterialIndex], modelUID))
	}
	return nil
}

func (tr *translator) geometryUID(meshIdx int) (uint64, error) {
	if uid, ok := tr.geometryUIDs[meshIdx]; ok {
		return uid, nil
	}
	uid := tr.ids.Next()
	node, warnings := translateMesh(&tr.scene.Meshes[meshIdx], uid)
	tr.warnings = append(tr.warnings, warnings...)
	tr.objects = append(tr.objects, node)
	tr.geometryUIDs[meshIdx] = uid
	return uid, nil
}

// emitModel builds the Model node itself: either the accumulated pivot
// chain's property list, or -- when there was no chain to collapse -- the
// node's own matrix decomposed into the three non-identity TRS properties,
// same split spec.md section 4.5.5 describes.
func (tr *translator) emitModel(uid uint64, name, modelType string, chain []pivotEntry, own mgl64.Mat4) {
	var props []fbx.Node
	if len(chain) > 0 {
		for _, entry := range chain {
			flags := ""
			if entry.animated {
				flags = "A"
			}
			typ, subtype := propertyTypeFor(entry.property)
			props = append(props, fbx.P(entry.property, typ, subtype, flags,
				fbx.PropF64(entry.value[0]), fbx.PropF64(entry.value[1]), fbx.PropF64(entry.value[2])))
		}
	} else {
		translation, rotationDeg, scale := decomposeTRS(own)
		if isNonZero(translation) {
			props = append(props, fbx.P("Lcl Translation", "Lcl Translation", "", "A",
				fbx.PropF64(translation[0]), fbx.PropF64(translation[1]), fbx.PropF64(translation[2])))
		}
		if isNonZero(rotationDeg) {
			props = append(props, fbx.P("Lcl Rotation", "Lcl Rotation", "", "A",
				fbx.PropF64(rotationDeg[0]), fbx.PropF64(rotationDeg[1]), fbx.PropF64(rotationDeg[2])))
		}
		if isNonUnit(scale) {
			props = append(props, fbx.P("Lcl Scaling", "Lcl Scaling", "", "A",
				fbx.PropF64(scale[0]), fbx.PropF64(scale[1]), fbx.PropF64(scale[2])))
		}
	}

	props = append(props,
		fbx.P("RotationActive", "bool", "", "", fbx.PropI32(1)),
		fbx.P("InheritType", "enum", "", "", fbx.PropI32(inheritTypeRSrs)),
	)

	m := fbx.NewNode("Model",
		fbx.PropI64(int64(uid)),
		fbx.PropString(fbx.SanitizeName(name)+fbx.NameSeparator+"Model"),
		fbx.PropString(modelType),
	)
	m.AddChildren(
		fbx.NewNode("Version", fbx.PropI32(modelVersion)),
		*fbx.Properties70Node(props...),
		fbx.NewNode("Shading", fbx.PropBool(true)),
		fbx.NewNode("Culling", fbx.PropString("CullingOff")),
	)
	tr.objects = append(tr.objects, m)
}

// propertyTypeFor supplies the (type, subtype) pair Properties70 expects for
// each pivot-chain property name; only the three Lcl* names get the special
// "Lcl X" type, everything else is a plain Vector3D/Vector.
func propertyTypeFor(property string) (typ, subtype string) {
	switch property {
	case "Lcl Translation", "Lcl Rotation", "Lcl Scaling":
		return property, ""
	default:
		return "Vector3D", "Vector"
	}
}
