package translate

import (
	"testing"

	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

// findMaterialProp locates a "P" entry by name inside a Properties70 node's
// children.
func findMaterialProp(t *testing.T, properties70 *fbx.Node, name string) fbx.Node {
	t.Helper()
	for _, p := range properties70.Children {
		if p.Name == "P" && p.Properties[0].Str() == name {
			return p
		}
	}
	t.Fatalf("Properties70 has no %q entry", name)
	return fbx.Node{}
}

// TestTranslateMaterialShadingModelLowercase checks both the ShadingModel
// child and the Properties70 ShadingModel entry use the lowercase
// "phong"/"lambert" spelling pack/wad/mat/export_fbx.go itself emits.
func TestTranslateMaterialShadingModelLowercase(t *testing.T) {
	cases := []struct {
		name      string
		shininess float64
		want      string
	}{
		{"Lambert", 0, "lambert"},
		{"Phong", 50, "phong"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mat := &scene.Material{Name: c.name, Shininess: c.shininess}
			n := translateMaterial(mat, 1)

			shading := findFbxChild(t, n, "ShadingModel")
			if got := shading.Properties[0].Str(); got != c.want {
				t.Errorf("ShadingModel child = %q, want %q", got, c.want)
			}

			props := findFbxChild(t, n, "Properties70")
			p := findMaterialProp(t, props, "ShadingModel")
			if got := p.Properties[4].Str(); got != c.want {
				t.Errorf("Properties70 ShadingModel = %q, want %q", got, c.want)
			}
		})
	}
}

// TestTranslateMaterialTransparencyFactorIsFixed checks TransparencyFactor
// is always the constant 1.0 and that TransparentColor, not
// TransparencyFactor, is what varies with the material's actual opacity --
// spec.md section 4.5.2's "TransparentColor + TransparencyFactor = 1.0"
// convention, inverted by an earlier version of this code.
func TestTranslateMaterialTransparencyFactorIsFixed(t *testing.T) {
	opacity := 0.25
	mat := &scene.Material{Name: "Glass", Opacity: &opacity}
	n := translateMaterial(mat, 1)

	props := findFbxChild(t, n, "Properties70")

	factor := findMaterialProp(t, props, "TransparencyFactor")
	if got := factor.Properties[4].Float64(); got != 1 {
		t.Errorf("TransparencyFactor = %v, want 1.0", got)
	}

	color := findMaterialProp(t, props, "TransparentColor")
	want := 1 - opacity
	for i, axis := range []string{"R", "G", "B"} {
		if got := color.Properties[4+i].Float64(); got != want {
			t.Errorf("TransparentColor.%s = %v, want %v", axis, got, want)
		}
	}
}

// TestTranslateMaterialTransparentColorPrefersExplicitSlot checks an
// explicit Transparent color slot wins over the opacity-derived fallback.
func TestTranslateMaterialTransparentColorPrefersExplicitSlot(t *testing.T) {
	opacity := 0.25
	mat := &scene.Material{
		Name:    "Tinted",
		Opacity: &opacity,
		Colors: map[scene.ColorSlot][3]float64{
			scene.Transparent: {0.1, 0.2, 0.3},
		},
	}
	n := translateMaterial(mat, 1)
	props := findFbxChild(t, n, "Properties70")
	color := findMaterialProp(t, props, "TransparentColor")

	want := [3]float64{0.1, 0.2, 0.3}
	for i, axis := range []string{"R", "G", "B"} {
		if got := color.Properties[4+i].Float64(); got != want[i] {
			t.Errorf("TransparentColor.%s = %v, want %v", axis, got, want[i])
		}
	}
}
