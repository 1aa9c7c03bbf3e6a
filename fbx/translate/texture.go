package translate

import (
	"path/filepath"

	"github.com/mogaika/scenefbx/fbx"
)

// textureVersion matches pack/wad/mat/export_fbx.go's own Texture node
// construction.
const textureVersion = 202

func translateTexture(path string, uid uint64) fbx.Node {
	name := fbx.SanitizeName(filepath.Base(path))
	n := fbx.NewNode("Texture",
		fbx.PropI64(int64(uid)),
		fbx.PropString(name+fbx.NameSeparator+"Texture"),
		fbx.PropString(""),
	)
	n.AddChildren(
		fbx.NewNode("Type", fbx.PropString("TextureVideoClip")),
		fbx.NewNode("Version", fbx.PropI32(textureVersion)),
		fbx.NewNode("TextureName", fbx.PropString(name+fbx.NameSeparator+"Texture")),
		*fbx.Properties70Node(
			fbx.P("CurrentTextureBlendMode", "enum", "", "", fbx.PropI32(0)),
			fbx.P("UseMaterial", "bool", "", "", fbx.PropI32(1)),
		),
		fbx.NewNode("Media", fbx.PropString(name+fbx.NameSeparator+"Video")),
		fbx.NewNode("FileName", fbx.PropString(path)),
		fbx.NewNode("RelativeFilename", fbx.PropString(path)),
		fbx.NewNode("ModelUVTranslation", fbx.PropF64(0), fbx.PropF64(0)),
		fbx.NewNode("ModelUVScaling", fbx.PropF64(1), fbx.PropF64(1)),
		fbx.NewNode("Texture_Alpha_Source", fbx.PropString("None")),
		fbx.NewNode("Cropping", fbx.PropI32(0), fbx.PropI32(0), fbx.PropI32(0), fbx.PropI32(0)),
	)
	return n
}

// textureTable deduplicates textures by source path, handing out one UID per
// distinct path across the whole scene -- two materials sharing "brick.png"
// end up with a single Texture object and two OP connections into it,
// grounded on pack/wad/mat/export_fbx.go's own texture-id cache.
type textureTable struct {
	ids   *fbx.UIDAllocator
	byUID map[string]uint64
}

func newTextureTable(ids *fbx.UIDAllocator) *textureTable {
	return &textureTable{ids: ids, byUID: make(map[string]uint64)}
}

func (t *textureTable) uidFor(path string) (uid uint64, created bool) {
	if uid, ok := t.byUID[path]; ok {
		return uid, false
	}
	uid = t.ids.Next()
	t.byUID[path] = uid
	return uid, true
}
