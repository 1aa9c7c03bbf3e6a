// Package translate turns a scene.Scene into the Objects/Connections node
// lists fbx.BuildTopLevelNodes assembles into a full document. It depends on
// fbx but is never imported back by it, so the low-level container layer
// stays reusable by callers that have nothing to do with scene graphs at
// all -- the split pack/wad/mesh/export_fbx.go and pack/wad/mat/export_fbx.go
// never had to make, since the teacher's fbx package and its exporters were
// always one package.
package translate

import (
	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

// Result is everything fbx.BuildTopLevelNodes needs from a translated
// scene.
type Result struct {
	Objects         []fbx.Node
	Connections     []fbx.Node
	Counts          fbx.ObjectCounts
	MaterialIsPhong bool
	Warnings        []error
}

// translator carries the mutable state one Translate call accumulates. It
// is never reused across calls, matching the rule that a UIDAllocator
// belongs to exactly one export.
type translator struct {
	scene *scene.Scene
	ids   *fbx.UIDAllocator

	objects     []fbx.Node
	connections []fbx.Node
	warnings    []error

	geometryUIDs map[int]uint64
	materialUIDs []uint64
	textures     *textureTable
}

// Translate converts sc into the object/connection graph a document needs.
// ids is caller-owned so a single export can share one UID sequence across
// multiple translate calls (e.g. several scenes merged into one file).
func Translate(sc *scene.Scene, ids *fbx.UIDAllocator) (*Result, error) {
	tr := &translator{
		scene:        sc,
		ids:          ids,
		geometryUIDs: make(map[int]uint64),
		materialUIDs: make([]uint64, len(sc.Materials)),
		textures:     newTextureTable(ids),
	}

	materialIsPhong := false
	for i := range sc.Materials {
		mat := &sc.Materials[i]
		uid := ids.Next()
		tr.materialUIDs[i] = uid
		tr.objects = append(tr.objects, translateMaterial(mat, uid))
		if isPhong(mat) {
			materialIsPhong = true
		}
		if mat.DiffuseTexturePath != "" {
			texUID, created := tr.textures.uidFor(mat.DiffuseTexturePath)
			if created {
				tr.objects = append(tr.objects, translateTexture(mat.DiffuseTexturePath, texUID))
			}
			tr.connections = append(tr.connections, fbx.Connection("OP", texUID, uid, "DiffuseColor"))
		}
	}

	if sc.Root != nil {
		if err := tr.walkNode(sc.Root, 0, nil); err != nil {
			return nil, err
		}
	}

	modelCount := 0
	for i := range tr.objects {
		if tr.objects[i].Name == "Model" {
			modelCount++
		}
	}

	return &Result{
		Objects:     tr.objects,
		Connections: tr.connections,
		Counts: fbx.ObjectCounts{
			Model:    modelCount,
			Geometry: len(tr.geometryUIDs),
			Material: len(sc.Materials),
			Texture:  len(tr.textures.byUID),
		},
		MaterialIsPhong: materialIsPhong,
		Warnings:        tr.warnings,
	}, nil
}
