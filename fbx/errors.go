package fbx

import "fmt"

// Error kinds from the container format's error handling design: any of
// these aborts the export. No local recovery is attempted anywhere in this
// package -- callers that want partial-file cleanup on failure must do it
// themselves, since a half-written output may be left on disk.

type InvalidPropertyTypeError struct {
	Code byte
}

func (e *InvalidPropertyTypeError) Error() string {
	return fmt.Sprintf("fbx: invalid property type code %q", e.Code)
}

type MalformedPivotChainError struct {
	NodeName   string
	ChildCount int
}

func (e *MalformedPivotChainError) Error() string {
	return fmt.Sprintf("fbx: pivot node %q has %d children, want exactly 1", e.NodeName, e.ChildCount)
}

type UnknownPivotMarkerError struct {
	Marker string
}

func (e *UnknownPivotMarkerError) Error() string {
	return fmt.Sprintf("fbx: unknown pivot marker %q", e.Marker)
}

type UnsupportedMultiLayerTextureError struct {
	MaterialIndex int
}

func (e *UnsupportedMultiLayerTextureError) Error() string {
	return fmt.Sprintf("fbx: material %d has more than one texture of the same type", e.MaterialIndex)
}

type NameTooLongError struct {
	Name string
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("fbx: node name %q is %d bytes, max is 255", e.Name, len(e.Name))
}
