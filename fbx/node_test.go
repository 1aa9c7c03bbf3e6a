package fbx

import (
	"testing"

	"github.com/mogaika/scenefbx/fbx/stream"
)

// TestNodeEndOffsetNoChildren checks the back-patched end_offset for a leaf
// node equals the first byte after its record (no trailing null record).
func TestNodeEndOffsetNoChildren(t *testing.T) {
	w := stream.NewBufferWriter()
	n := NewNode("Leaf", PropI32(42))
	if err := n.Dump(w); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	b := w.Bytes()
	endOffset := le32(b[0:4])
	if int(endOffset) != len(b) {
		t.Errorf("end_offset = %d, want %d (len of record)", endOffset, len(b))
	}
}

// TestNodeEndOffsetWithChildren checks that a node with children accounts
// for the trailing 13-byte null record in its own end_offset.
func TestNodeEndOffsetWithChildren(t *testing.T) {
	w := stream.NewBufferWriter()
	n := NewNode("Parent")
	n.AddChild(NewNode("Child", PropString("x")))
	if err := n.Dump(w); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	b := w.Bytes()
	endOffset := le32(b[0:4])
	if int(endOffset) != len(b) {
		t.Errorf("end_offset = %d, want %d", endOffset, len(b))
	}
	// last 13 bytes must be the null record.
	tail := b[len(b)-13:]
	for i, v := range tail {
		if v != 0 {
			t.Fatalf("trailing null record byte %d = %#x, want 0", i, v)
		}
	}
}

// TestNodeEmptyPropertiesSkipsBackpatch verifies that a node with zero
// properties leaves the num_properties/property_section_bytes placeholders
// at zero rather than attempting a spurious seek.
func TestNodeEmptyPropertiesSkipsBackpatch(t *testing.T) {
	w := stream.NewBufferWriter()
	n := NewNode("Empty")
	if err := n.Dump(w); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	b := w.Bytes()
	numProps := le32(b[4:8])
	sectionBytes := le32(b[8:12])
	if numProps != 0 || sectionBytes != 0 {
		t.Errorf("numProps=%d sectionBytes=%d, want 0, 0", numProps, sectionBytes)
	}
}

func TestNodeNameTooLong(t *testing.T) {
	w := stream.NewBufferWriter()

	ok := NewNode(string(make([]byte, 255)))
	if err := ok.Dump(w); err != nil {
		t.Errorf("255-byte name should succeed, got %v", err)
	}

	tooLong := NewNode(string(make([]byte, 256)))
	err := tooLong.Dump(w)
	if _, isNameErr := err.(*NameTooLongError); !isNameErr {
		t.Errorf("256-byte name: got %v, want *NameTooLongError", err)
	}
}
