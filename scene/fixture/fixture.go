// Package fixture loads scene.Scene values from YAML documents, the format
// this module's own tests and its cmd/scenefbx CLI use to describe input
// scenes without needing a real asset pipeline behind them.
package fixture

import (
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/scenefbx/scene"
)

type document struct {
	Meshes    []meshDoc     `yaml:"meshes"`
	Materials []materialDoc `yaml:"materials"`
	Root      nodeDoc       `yaml:"root"`
}

type meshDoc struct {
	Name          string        `yaml:"name"`
	Vertices      [][3]float64  `yaml:"vertices"`
	Faces         [][]int       `yaml:"faces"`
	Normals       [][3]float64  `yaml:"normals"`
	UVs           []uvDoc       `yaml:"uvs"`
	MaterialIndex int           `yaml:"material_index"`
}

type uvDoc struct {
	Components int         `yaml:"components"`
	Values     [][]float64 `yaml:"values"`
}

type materialDoc struct {
	Name                string                `yaml:"name"`
	Shininess           float64               `yaml:"shininess"`
	Opacity             *float64              `yaml:"opacity"`
	Colors              map[string][3]float64 `yaml:"colors"`
	DiffuseTexturePath  string                `yaml:"diffuse_texture"`
}

type nodeDoc struct {
	Name      string       `yaml:"name"`
	Transform [16]float64  `yaml:"transform"`
	MeshRefs  []int        `yaml:"mesh_refs"`
	Children  []nodeDoc    `yaml:"children"`
}

var colorSlots = map[string]scene.ColorSlot{
	"ambient":     scene.Ambient,
	"diffuse":     scene.Diffuse,
	"specular":    scene.Specular,
	"emissive":    scene.Emissive,
	"transparent": scene.Transparent,
	"reflective":  scene.Reflective,
}

// Load reads and decodes a YAML scene fixture from path.
func Load(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "fixture: open")
	}
	defer f.Close()

	var doc document
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "fixture: decode")
	}
	return doc.toScene()
}

func (d *document) toScene() (*scene.Scene, error) {
	sc := &scene.Scene{
		Meshes:    make([]scene.Mesh, len(d.Meshes)),
		Materials: make([]scene.Material, len(d.Materials)),
	}

	for i, m := range d.Meshes {
		uvs := make([]scene.UVChannel, len(m.UVs))
		for j, uv := range m.UVs {
			uvs[j] = scene.UVChannel{Components: uv.Components, Values: uv.Values}
		}
		sc.Meshes[i] = scene.Mesh{
			Name:          m.Name,
			Vertices:      m.Vertices,
			Faces:         m.Faces,
			Normals:       m.Normals,
			UVs:           uvs,
			MaterialIndex: m.MaterialIndex,
		}
	}

	for i, m := range d.Materials {
		colors := make(map[scene.ColorSlot][3]float64, len(m.Colors))
		for name, v := range m.Colors {
			slot, ok := colorSlots[name]
			if !ok {
				return nil, errors.Errorf("fixture: material %q has unknown color slot %q", m.Name, name)
			}
			colors[slot] = v
		}
		sc.Materials[i] = scene.Material{
			Name:                m.Name,
			Shininess:           m.Shininess,
			Opacity:             m.Opacity,
			Colors:              colors,
			DiffuseTexturePath:  m.DiffuseTexturePath,
		}
	}

	root, err := d.Root.toNode()
	if err != nil {
		return nil, err
	}
	sc.Root = root
	return sc, nil
}

func (n *nodeDoc) toNode() (*scene.Node, error) {
	out := &scene.Node{
		Name:      n.Name,
		Transform: transformOrIdentity(n.Transform),
		MeshRefs:  n.MeshRefs,
	}
	for _, c := range n.Children {
		child, err := c.toNode()
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}

func transformOrIdentity(m [16]float64) mgl64.Mat4 {
	var zero [16]float64
	if m == zero {
		return mgl64.Ident4()
	}
	return mgl64.Mat4(m)
}
