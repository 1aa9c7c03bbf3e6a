package fbx

import "time"

// EXPORT_VERSION in both integer (multiplied-by-1000) and dotted form. The
// container this package writes targets FBX 7.4, matching spec.md's scope.
const (
	ExportVersionInt = 7400
	ExportVersionStr = "7.4.0"
)

// The true FBX FileId is a hash over the creation time (and, per assimp's own
// comments, possibly other fields); the algorithm has never been published.
// Using a fixed, known-good constant -- the same one Blender's own FBX
// exporter settled on -- is interoperable with every consumer that has been
// tested against it, even though it is technically not a correct hash of
// this file's actual contents. spec.md section 9 calls this out explicitly
// as an open question to leave alone rather than guess at.
var genericFileID = [16]byte{
	0x28, 0xb3, 0x2a, 0xeb, 0xb6, 0x24, 0xcc, 0xc2,
	0xbf, 0xc8, 0xb0, 0x2a, 0xa9, 0x2b, 0xfc, 0xf1,
}

const genericCreationTime = "1970-01-01 10:00:00:000"

// DocumentInfo carries the small set of caller-controlled strings that vary
// between exports: who/what produced the file and what it's nominally
// called. Everything else in the fixed section tree is a constant.
type DocumentInfo struct {
	Creator  string
	Filename string
	Time     time.Time
}

// ObjectCounts is the bookkeeping Definitions needs: it must declare, per
// object type, exactly the count of objects of that type that Objects will
// go on to emit.
type ObjectCounts struct {
	Model    int
	Geometry int
	Material int
	Texture  int
}

// BuildTopLevelNodes assembles the fixed top-level section tree -- Header,
// (FileId/CreationTime/Creator, binary-only), GlobalSettings, Documents,
// References, Definitions, Objects, Connections -- described in spec.md
// section 4.4, wrapping the already-translated scene objects/connections
// the C5 layer produced. materialIsPhong selects which surface shading
// PropertyTemplate Definitions declares; it must agree with the
// first-phong-wins rule the scene translator used when deciding each
// material's ShadingModel (spec.md section 4.5.3).
func BuildTopLevelNodes(ids *UIDAllocator, info DocumentInfo, objects []Node, connections []Node, counts ObjectCounts, materialIsPhong bool) []Node {
	animObjects, animConnections := animationStub(ids)
	objects = append(append([]Node{}, objects...), animObjects...)
	connections = append(append([]Node{}, connections...), animConnections...)

	return []Node{
		headerExtension(info),
		NewNode("FileId", PropRaw(genericFileID[:])),
		NewNode("CreationTime", PropString(genericCreationTime)),
		NewNode("Creator", PropString(info.Creator)),
		globalSettings(),
		documents(ids, info),
		{Name: "References"},
		definitions(counts, materialIsPhong),
		{Name: "Objects", Children: objects},
		{Name: "Connections", Children: connections},
	}
}

func headerExtension(info DocumentInfo) Node {
	t := info.Time
	timestamp := NewNode("CreationTimeStamp")
	timestamp.AddChildren(
		NewNode("Version", PropI32(1000)),
		NewNode("Year", PropI32(int32(t.Year()))),
		NewNode("Month", PropI32(int32(t.Month()))),
		NewNode("Day", PropI32(int32(t.Day()))),
		NewNode("Hour", PropI32(int32(t.Hour()))),
		NewNode("Minute", PropI32(int32(t.Minute()))),
		NewNode("Second", PropI32(int32(t.Second()))),
		NewNode("Millisecond", PropI32(int32(t.Nanosecond()/1e6))),
	)

	n := NewNode("FBXHeaderExtension")
	n.AddChildren(
		NewNode("FBXHeaderVersion", PropI32(1003)),
		NewNode("FBXVersion", PropI32(ExportVersionInt)),
		NewNode("EncryptionType", PropI32(0)),
		timestamp,
		NewNode("Creator", PropString(info.Creator)),
		Node{Name: "SceneInfo"},
	)
	return n
}

func globalSettings() Node {
	n := NewNode("GlobalSettings")
	n.AddChildren(
		NewNode("Version", PropI32(1000)),
		*Properties70Node(
			P("UpAxis", "int", "Integer", "", PropI32(1)),
			P("UpAxisSign", "int", "Integer", "", PropI32(1)),
			P("FrontAxis", "int", "Integer", "", PropI32(2)),
			P("FrontAxisSign", "int", "Integer", "", PropI32(1)),
			P("CoordAxis", "int", "Integer", "", PropI32(0)),
			P("CoordAxisSign", "int", "Integer", "", PropI32(1)),
			P("OriginalUpAxis", "int", "Integer", "", PropI32(1)),
			P("OriginalUpAxisSign", "int", "Integer", "", PropI32(1)),
			P("UnitScaleFactor", "double", "Number", "", PropF64(1)),
			P("OriginalUnitScaleFactor", "double", "Number", "", PropF64(1)),
			P("AmbientColor", "ColorRGB", "Color", "", PropF64(0), PropF64(0), PropF64(0)),
			P("DefaultCamera", "KString", "", "", PropString("Producer Perspective")),
			P("TimeMode", "enum", "", "", PropI32(0)),
			P("TimeProtocol", "enum", "", "", PropI32(2)),
			P("TimeSpanStart", "KTime", "Time", "", PropI64(0)),
			P("TimeSpanStop", "KTime", "Time", "", PropI64(46186158000)),
			P("CustomFrameRate", "double", "Number", "", PropF64(-1)),
		),
	)
	return n
}

func documents(ids *UIDAllocator, info DocumentInfo) Node {
	doc := NewNode("Document",
		PropI64(int64(ids.Next())),
		PropString(""),
		PropString("Scene"),
	)
	doc.AddChildren(
		*Properties70Node(
			P("SourceObject", "object", "", ""),
			P("ActiveAnimStackName", "KString", "", "", PropString("")),
		),
		NewNode("RootNode", PropI64(0)),
	)
	n := NewNode("Documents")
	n.AddChildren(NewNode("Count", PropI32(1)), doc)
	return n
}

func definitions(counts ObjectCounts, materialIsPhong bool) Node {
	total := int32(0)
	n := NewNode("Definitions")
	n.AddChildren(NewNode("Version", PropI32(100)))

	addType := func(name string, count int, template *Node) {
		total += int32(count)
		ot := NewNode("ObjectType", PropString(name))
		ot.AddChildren(NewNode("Count", PropI32(int32(count))))
		if template != nil {
			ot.AddChildren(*template)
		}
		n.AddChildren(ot)
	}

	addType("GlobalSettings", 1, nil)
	addType("AnimationStack", 1, animStackTemplate())
	addType("AnimationLayer", 1, animLayerTemplate())
	addType("Model", counts.Model, modelTemplate())
	addType("Geometry", counts.Geometry, geometryTemplate())
	addType("Material", counts.Material, materialTemplate(materialIsPhong))
	addType("Texture", counts.Texture, textureTemplate())

	// splice Count in right after Version, matching the field order
	// spec.md's wire layout expects (Version, Count, ObjectType...).
	countNode := NewNode("Count", PropI32(total))
	children := make([]Node, 0, len(n.Children)+1)
	children = append(children, n.Children[0], countNode)
	children = append(children, n.Children[1:]...)
	n.Children = children
	return n
}

func propertyTemplate(name string, props ...Node) *Node {
	t := NewNode("PropertyTemplate", PropString(name))
	t.AddChildren(*Properties70Node(props...))
	return &t
}

func modelTemplate() *Node {
	return propertyTemplate("FbxNode",
		P("QuaternionInterpolate", "enum", "", "", PropI32(0)),
		P("Show", "bool", "", "", PropI32(1)),
		P("Lcl Translation", "Lcl Translation", "", "A", PropF64(0), PropF64(0), PropF64(0)),
		P("Lcl Rotation", "Lcl Rotation", "", "A", PropF64(0), PropF64(0), PropF64(0)),
		P("Lcl Scaling", "Lcl Scaling", "", "A", PropF64(1), PropF64(1), PropF64(1)),
		P("Visibility", "Visibility", "", "A", PropF64(1)),
		P("Visibility Inheritance", "Visibility Inheritance", "", "", PropI32(1)),
	)
}

func geometryTemplate() *Node {
	return propertyTemplate("FbxMesh",
		P("Color", "ColorRGB", "Color", "", PropF64(1), PropF64(1), PropF64(1)),
		P("Primary Visibility", "bool", "", "", PropI32(1)),
		P("Casts Shadows", "bool", "", "", PropI32(1)),
		P("Receive Shadows", "bool", "", "", PropI32(1)),
	)
}

func materialTemplate(isPhong bool) *Node {
	if isPhong {
		return propertyTemplate("FbxSurfacePhong",
			P("ShadingModel", "KString", "", "", PropString("phong")),
			P("MultiLayer", "bool", "", "", PropI32(0)),
			P("EmissiveColor", "Color", "", "A", PropF64(0), PropF64(0), PropF64(0)),
			P("AmbientColor", "Color", "", "A", PropF64(0.2), PropF64(0.2), PropF64(0.2)),
			P("DiffuseColor", "Color", "", "A", PropF64(1), PropF64(1), PropF64(1)),
			P("SpecularColor", "Color", "", "A", PropF64(0.2), PropF64(0.2), PropF64(0.2)),
			P("ShininessExponent", "Number", "", "A", PropF64(20)),
			P("ReflectionFactor", "Number", "", "A", PropF64(0)),
		)
	}
	return propertyTemplate("FbxSurfaceLambert",
		P("ShadingModel", "KString", "", "", PropString("lambert")),
		P("MultiLayer", "bool", "", "", PropI32(0)),
		P("EmissiveColor", "Color", "", "A", PropF64(0), PropF64(0), PropF64(0)),
		P("AmbientColor", "Color", "", "A", PropF64(0.2), PropF64(0.2), PropF64(0.2)),
		P("DiffuseColor", "Color", "", "A", PropF64(1), PropF64(1), PropF64(1)),
	)
}

func textureTemplate() *Node {
	return propertyTemplate("FbxFileTexture",
		P("TextureTypeUse", "enum", "", "", PropI32(0)),
		P("Texture alpha", "Number", "", "A", PropF64(1)),
		P("CurrentMappingType", "enum", "", "", PropI32(0)),
		P("WrapModeU", "enum", "", "", PropI32(0)),
		P("WrapModeV", "enum", "", "", PropI32(0)),
		P("UVSwap", "bool", "", "", PropI32(0)),
		P("PremultiplyAlpha", "bool", "", "", PropI32(1)),
		P("UseMaterial", "bool", "", "", PropI32(0)),
		P("UseMipMap", "bool", "", "", PropI32(0)),
	)
}

func animStackTemplate() *Node {
	return propertyTemplate("FbxAnimStack",
		P("Description", "KString", "", "", PropString("")),
		P("LocalStart", "KTime", "Time", "", PropI64(0)),
		P("LocalStop", "KTime", "Time", "", PropI64(0)),
		P("ReferenceStart", "KTime", "Time", "", PropI64(0)),
		P("ReferenceStop", "KTime", "Time", "", PropI64(0)),
	)
}

func animLayerTemplate() *Node {
	return propertyTemplate("FbxAnimLayer",
		P("Weight", "Number", "", "A", PropF64(100)),
		P("Mute", "bool", "", "", PropI32(0)),
		P("Solo", "bool", "", "", PropI32(0)),
		P("Lock", "bool", "", "", PropI32(0)),
		P("Color", "ColorRGB", "Color", "", PropF64(0.8), PropF64(0.8), PropF64(0.8)),
	)
}

// animationStub emits the empty "Take 001" AnimationStack/AnimationLayer
// pair spec.md's Definitions/Objects consistency invariant requires
// (AnimationStack=1, AnimationLayer=1) even though this package never emits
// any animation curves -- most FBX consumers expect at least one stack to
// exist.
func animationStub(ids *UIDAllocator) (objects []Node, connections []Node) {
	stackID := ids.Next()
	layerID := ids.Next()

	stack := NewNode("AnimationStack", PropI64(int64(stackID)), PropString("Take 001"+NameSeparator+"AnimStack"), PropString(""))
	stack.AddChildren(*Properties70Node(
		P("Description", "KString", "", "", PropString("Take 001")),
		P("LocalStart", "KTime", "Time", "", PropI64(0)),
		P("LocalStop", "KTime", "Time", "", PropI64(0)),
		P("ReferenceStart", "KTime", "Time", "", PropI64(0)),
		P("ReferenceStop", "KTime", "Time", "", PropI64(0)),
	))

	layer := NewNode("AnimationLayer", PropI64(int64(layerID)), PropString("BaseLayer"+NameSeparator+"AnimLayer"), PropString(""))

	return []Node{stack, layer}, []Node{Connection("OO", layerID, stackID)}
}

func Properties70Node(entries ...Node) *Node {
	n := Properties70(entries...)
	return &n
}
