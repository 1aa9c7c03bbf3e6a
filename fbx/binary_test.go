package fbx

import (
	"bytes"
	"testing"

	"github.com/mogaika/scenefbx/fbx/stream"
)

func TestWriteBinaryHeaderMagic(t *testing.T) {
	w := stream.NewBufferWriter()
	if err := WriteBinary(w, nil); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	b := w.Bytes()
	want := append([]byte("Kaydara FBX Binary  "), 0x00, 0x1A, 0x00)
	if !bytes.Equal(b[:23], want) {
		t.Fatalf("header magic = %v, want %v", b[:23], want)
	}
	version := le32(b[23:27])
	if version != ExportVersionInt {
		t.Errorf("version = %d, want %d", version, ExportVersionInt)
	}
}

func TestWriteBinaryFooterTailMagic(t *testing.T) {
	w := stream.NewBufferWriter()
	if err := WriteBinary(w, nil); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	b := w.Bytes()
	tail := b[len(b)-16:]
	if !bytes.Equal(tail, FooterTailMagic[:]) {
		t.Fatalf("footer tail = %v, want %v", tail, FooterTailMagic)
	}
}
