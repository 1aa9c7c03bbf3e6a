package translate

import (
	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

// isPhong decides a material's shading model the same way pack/wad/mat's
// export picks between Phong and Lambert: a positive shininess earns Phong,
// everything else gets Lambert.
func isPhong(mat *scene.Material) bool {
	return mat.Shininess > 0
}

func opacityOf(mat *scene.Material) float64 {
	if mat.Opacity != nil {
		return *mat.Opacity
	}
	t, ok := mat.Colors[scene.Transparent]
	if !ok {
		return 1
	}
	mean := (t[0] + t[1] + t[2]) / 3
	return 1 - mean
}

func colorOf(mat *scene.Material, slot scene.ColorSlot) [3]float64 {
	return mat.Colors[slot]
}

// transparentColorOf is the color half of the TransparentColor/
// TransparencyFactor pair: spec.md section 4.5.2 fixes TransparencyFactor at
// 1.0 and carries the actual transparency in TransparentColor instead, so an
// explicit Transparent color slot wins and an opacity-only material falls
// back to broadcasting 1-opacity across all three channels.
func transparentColorOf(mat *scene.Material, opacity float64) [3]float64 {
	if c, ok := mat.Colors[scene.Transparent]; ok {
		return c
	}
	v := 1 - opacity
	return [3]float64{v, v, v}
}

func translateMaterial(mat *scene.Material, uid uint64) fbx.Node {
	phong := isPhong(mat)
	opacity := opacityOf(mat)

	emissive := colorOf(mat, scene.Emissive)
	ambient := colorOf(mat, scene.Ambient)
	diffuse := colorOf(mat, scene.Diffuse)
	specular := colorOf(mat, scene.Specular)
	reflective := colorOf(mat, scene.Reflective)
	transparent := transparentColorOf(mat, opacity)

	shadingModel := "lambert"
	if phong {
		shadingModel = "phong"
	}

	props := []fbx.Node{
		fbx.P("ShadingModel", "KString", "", "", fbx.PropString(shadingModel)),
		fbx.P("MultiLayer", "bool", "", "", fbx.PropI32(0)),

		// Modern property block.
		fbx.P("EmissiveColor", "Color", "", "A", fbx.PropF64(emissive[0]), fbx.PropF64(emissive[1]), fbx.PropF64(emissive[2])),
		fbx.P("AmbientColor", "Color", "", "A", fbx.PropF64(ambient[0]), fbx.PropF64(ambient[1]), fbx.PropF64(ambient[2])),
		fbx.P("DiffuseColor", "Color", "", "A", fbx.PropF64(diffuse[0]), fbx.PropF64(diffuse[1]), fbx.PropF64(diffuse[2])),
		fbx.P("TransparentColor", "Color", "", "A", fbx.PropF64(transparent[0]), fbx.PropF64(transparent[1]), fbx.PropF64(transparent[2])),
		fbx.P("TransparencyFactor", "Number", "", "A", fbx.PropF64(1)),

		// Legacy property block, kept alive for older consumers that never
		// learned the modern names.
		fbx.P("Emissive", "Vector3D", "Vector", "", fbx.PropF64(emissive[0]), fbx.PropF64(emissive[1]), fbx.PropF64(emissive[2])),
		fbx.P("Ambient", "Vector3D", "Vector", "", fbx.PropF64(ambient[0]), fbx.PropF64(ambient[1]), fbx.PropF64(ambient[2])),
		fbx.P("Diffuse", "Vector3D", "Vector", "", fbx.PropF64(diffuse[0]), fbx.PropF64(diffuse[1]), fbx.PropF64(diffuse[2])),
		fbx.P("Opacity", "double", "Number", "", fbx.PropF64(opacity)),
	}

	if phong {
		props = append(props,
			fbx.P("SpecularColor", "Color", "", "A", fbx.PropF64(specular[0]), fbx.PropF64(specular[1]), fbx.PropF64(specular[2])),
			fbx.P("ShininessExponent", "Number", "", "A", fbx.PropF64(mat.Shininess)),
			fbx.P("ReflectionFactor", "Number", "", "A", fbx.PropF64(reflective[0])),
			fbx.P("Specular", "Vector3D", "Vector", "", fbx.PropF64(specular[0]), fbx.PropF64(specular[1]), fbx.PropF64(specular[2])),
			fbx.P("Shininess", "double", "Number", "", fbx.PropF64(mat.Shininess)),
			fbx.P("Reflectivity", "double", "Number", "", fbx.PropF64(reflective[0]*reflective[0]*0.25479)),
		)
	}

	n := fbx.NewNode("Material",
		fbx.PropI64(int64(uid)),
		fbx.PropString(fbx.SanitizeName(mat.Name)+fbx.NameSeparator+"Material"),
		fbx.PropString(""),
	)
	n.AddChildren(
		fbx.NewNode("Version", fbx.PropI32(102)),
		fbx.NewNode("ShadingModel", fbx.PropString(shadingModel)),
		fbx.NewNode("MultiLayer", fbx.PropI32(0)),
		*fbx.Properties70Node(props...),
	)
	return n
}
