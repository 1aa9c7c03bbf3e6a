package translate

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/scene"
)

// pivotKind is the marker's on-wire behavior: which TRS component the
// collapsed node's matrix contributes, or whether it's an inverse marker
// that only exists to undo an earlier pivot offset before the rest of the
// hierarchy continues (and is therefore dropped once collapsed).
type pivotKind byte

const (
	pivotTranslation pivotKind = 't'
	pivotRotation    pivotKind = 'r'
	pivotScale       pivotKind = 's'
	pivotInverse     pivotKind = 'i'
)

// pivotMarker describes one of the suffixes Assimp's importer appends after
// fbx.MagicNodeTag, e.g. "_$AssimpFbx$_PreRotation". property is the name
// the collapsed value is emitted under on the reconstructed Model; the three
// Lcl* entries are the only ones that map onto the node's animatable local
// transform, the rest are plain per-object properties.
type pivotMarker struct {
	property string
	kind     pivotKind
}

var pivotMarkers = map[string]pivotMarker{
	"Translation":           {"Lcl Translation", pivotTranslation},
	"RotationOffset":        {"RotationOffset", pivotTranslation},
	"RotationPivot":         {"RotationPivot", pivotTranslation},
	"PreRotation":           {"PreRotation", pivotRotation},
	"Rotation":              {"Lcl Rotation", pivotRotation},
	"PostRotation":          {"PostRotation", pivotRotation},
	"RotationPivotInverse":  {"", pivotInverse},
	"ScalingOffset":         {"ScalingOffset", pivotTranslation},
	"ScalingPivot":          {"ScalingPivot", pivotTranslation},
	"Scaling":               {"Lcl Scaling", pivotScale},
	"ScalingPivotInverse":   {"", pivotInverse},
	"GeometricTranslation":  {"GeometricTranslation", pivotTranslation},
	"GeometricRotation":     {"GeometricRotation", pivotRotation},
	"GeometricScaling":      {"GeometricScaling", pivotScale},
}

// pivotEntry is one accumulated, already-decomposed chain link waiting to be
// emitted as a Model property.
type pivotEntry struct {
	property  string
	animated  bool
	value     mgl64.Vec3
}

// magicSuffix reports the part of name after fbx.MagicNodeTag plus its
// separator underscore, e.g. "Cube_$AssimpFbx$_PreRotation" -> "PreRotation".
func magicSuffix(name string) (string, bool) {
	idx := strings.Index(name, fbx.MagicNodeTag)
	if idx < 0 {
		return "", false
	}
	rest := name[idx+len(fbx.MagicNodeTag):]
	rest = strings.TrimPrefix(rest, "_")
	return rest, true
}

func isMagicNode(name string) bool {
	_, ok := magicSuffix(name)
	return ok
}

// decomposeMagic classifies a single magic-tagged node's own matrix and
// returns the chain entry it contributes, or ok=false if it's an inverse
// marker that collapsing drops entirely.
func decomposeMagic(name string, m mgl64.Mat4) (pivotEntry, bool, error) {
	suffix, _ := magicSuffix(name)
	marker, known := pivotMarkers[suffix]
	if !known {
		return pivotEntry{}, false, &fbx.UnknownPivotMarkerError{Marker: suffix}
	}
	if marker.kind == pivotInverse {
		return pivotEntry{}, false, nil
	}

	translation, rotationDeg, scale := decomposeTRS(m)

	var value mgl64.Vec3
	switch marker.kind {
	case pivotTranslation:
		value = translation
	case pivotRotation:
		value = rotationDeg
	case pivotScale:
		value = scale
	}

	animated := marker.property == "Lcl Translation" || marker.property == "Lcl Rotation" || marker.property == "Lcl Scaling"
	return pivotEntry{property: marker.property, animated: animated, value: value}, true, nil
}

// collapseChain walks a run of consecutive magic-tagged nodes starting at n,
// accumulating one pivotEntry per non-inverse marker, and returns the first
// non-magic descendant along with the accumulated chain. Each magic node
// must have exactly one child (spec.md section 4.5.6); anything else is a
// MalformedPivotChainError.
func collapseChain(n *scene.Node) (*scene.Node, []pivotEntry, error) {
	var chain []pivotEntry
	cur := n
	for isMagicNode(cur.Name) {
		if len(cur.Children) != 1 {
			return nil, nil, &fbx.MalformedPivotChainError{NodeName: cur.Name, ChildCount: len(cur.Children)}
		}
		entry, ok, err := decomposeMagic(cur.Name, cur.Transform)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			chain = append(chain, entry)
		}
		cur = cur.Children[0]
	}
	return cur, chain, nil
}
