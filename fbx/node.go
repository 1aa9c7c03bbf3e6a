package fbx

import (
	"github.com/mogaika/scenefbx/fbx/stream"
)

// NullRecord is the 13 NUL bytes that terminate a node's child list.
var NullRecord = [13]byte{}

// NameSeparator joins an object's display name and its FBX "class" inside a
// single composite property string, e.g. "Cube\x00\x01Geometry".
const NameSeparator = "\x00\x01"

// MagicNodeTag marks the synthetic intermediate nodes an Assimp-authored FBX
// import leaves behind to carry the pieces of the pivot transform chain,
// e.g. "Cube_$AssimpFbx$_Rotation". See pivot.go for the collapse logic.
const MagicNodeTag = "_$AssimpFbx$"

// Node is a named record carrying an ordered list of Properties and an
// ordered list of child Nodes. It knows how to emit itself with back-patched
// offsets -- the wire layout and emission protocol are described in
// spec.md section 4.3, and mirror the C++ original's Node::Dump /
// Begin / DumpProperties / EndProperties / DumpChildren / End split exactly,
// because that split is what lets a caller interleave multi-megabyte array
// properties into the stream without building a Property first (see Begin
// below).
type Node struct {
	Name       string
	Properties []Property
	Children   []Node

	startPos      int64
	propertyStart int64
}

func NewNode(name string, props ...Property) Node {
	return Node{Name: name, Properties: props}
}

func (n *Node) AddProperty(p Property) *Node {
	n.Properties = append(n.Properties, p)
	return n
}

func (n *Node) AddChild(c Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

func (n *Node) AddChildren(cs ...Node) *Node {
	n.Children = append(n.Children, cs...)
	return n
}

// Dump performs whole-node emission: the node owns both its properties and
// its children, so it can just run the full begin/properties/children/end
// sequence itself.
func (n *Node) Dump(w stream.Writer) error {
	if err := n.Begin(w); err != nil {
		return err
	}
	if err := n.DumpProperties(w); err != nil {
		return err
	}
	if err := n.EndProperties(w, len(n.Properties)); err != nil {
		return err
	}
	if err := n.DumpChildren(w); err != nil {
		return err
	}
	return n.End(w, len(n.Children) > 0)
}

// Begin writes the record header with placeholders for end_offset,
// num_properties and property_section_bytes, then the name. Property data
// starts immediately after and is the caller's responsibility from here --
// this is the entry point for streaming emission, used when large arrays
// should avoid a second copy through a Property value.
func (n *Node) Begin(w stream.Writer) error {
	if len(n.Name) > 255 {
		return &NameTooLongError{Name: n.Name}
	}
	n.startPos = w.Tell()

	if err := w.WriteU4(0); err != nil { // end_offset placeholder
		return err
	}
	if err := w.WriteU4(0); err != nil { // num_properties placeholder
		return err
	}
	if err := w.WriteU4(0); err != nil { // property_section_bytes placeholder
		return err
	}
	if err := w.WriteU1(uint8(len(n.Name))); err != nil {
		return err
	}
	if err := w.WriteCString(n.Name); err != nil {
		return err
	}

	n.propertyStart = w.Tell()
	return nil
}

func (n *Node) DumpProperties(w stream.Writer) error {
	for _, p := range n.Properties {
		if err := p.emit(w); err != nil {
			return err
		}
	}
	return nil
}

// EndProperties seeks back to the header placeholders and writes
// num_properties and the measured property-section byte length, then seeks
// forward again to continue where the stream left off. It must be called
// before children are written or End is called. If no properties were
// written, the placeholders are left at zero, matching the reference
// behavior of skipping the back-patch entirely in that case.
func (n *Node) EndProperties(w stream.Writer, numProperties int) error {
	if numProperties == 0 {
		return nil
	}
	pos := w.Tell()
	sectionBytes := pos - n.propertyStart
	if err := w.Seek(n.startPos + 4); err != nil {
		return err
	}
	if err := w.WriteU4(uint32(numProperties)); err != nil {
		return err
	}
	if err := w.WriteU4(uint32(sectionBytes)); err != nil {
		return err
	}
	return w.Seek(pos)
}

func (n *Node) DumpChildren(w stream.Writer) error {
	for i := range n.Children {
		if err := n.Children[i].Dump(w); err != nil {
			return err
		}
	}
	return nil
}

// End writes the trailing null record (if this node had children), then
// back-patches end_offset -- the absolute stream offset at which the record,
// including that trailing null record, ends. This is the only other place
// besides EndProperties that needs random access into the stream.
func (n *Node) End(w stream.Writer, hasChildren bool) error {
	if hasChildren {
		if err := w.WriteBytes(NullRecord[:]); err != nil {
			return err
		}
	}
	endPos := w.Tell()
	if err := w.Seek(n.startPos); err != nil {
		return err
	}
	if err := w.WriteU4(uint32(endPos)); err != nil {
		return err
	}
	return w.Seek(endPos)
}

// P builds a Properties70 "P" entry: (name, type, subtype, flags, values...).
// The fourth positional slot ("flags") is preserved verbatim even for
// undocumented values such as the "H" flag seen on LimbLength in real FBX
// files -- spec.md leaves its meaning as an open question, so this layer
// doesn't interpret it, only carries it through.
func P(name, typ, subtype, flags string, values ...Property) Node {
	n := NewNode("P", PropString(name), PropString(typ), PropString(subtype), PropString(flags))
	n.Properties = append(n.Properties, values...)
	return n
}

func Properties70(entries ...Node) Node {
	return Node{Name: "Properties70", Children: entries}
}

// Connection builds a Connections "C" entry. kind is "OO" for object-to-object
// or "OP" for object-to-property, in which case propertyName names the
// target property on the destination object.
func Connection(kind string, src, dst uint64, propertyName ...string) Node {
	props := []Property{PropString(kind), PropI64(int64(src)), PropI64(int64(dst))}
	for _, p := range propertyName {
		props = append(props, PropString(p))
	}
	return Node{Name: "C", Properties: props}
}
