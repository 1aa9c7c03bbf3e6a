package fbx

import (
	"github.com/mogaika/scenefbx/fbx/stream"
)

// BinaryHeaderMagic is the literal 23-byte sequence every FBX binary file
// begins with: "Kaydara FBX Binary  " (note the two trailing spaces)
// followed by 0x00 0x1A 0x00.
var BinaryHeaderMagic = append([]byte("Kaydara FBX Binary  "), 0x00, 0x1A, 0x00)

// GenericFootMagic and FooterTailMagic are fixed 16-byte constants every
// writer emits verbatim; they carry no derivable meaning, only bytes known
// to round-trip through every tested FBX 7.4 reader.
var (
	GenericFootMagic = [16]byte{
		0xfa, 0xbc, 0xab, 0x09, 0xd0, 0xc8, 0xd4, 0x66,
		0xb1, 0x76, 0xfb, 0x83, 0x1c, 0xf7, 0x26, 0x7e,
	}
	FooterTailMagic = [16]byte{
		0xf8, 0x5a, 0x8c, 0x6a, 0xde, 0xf5, 0xd9, 0x7e,
		0xec, 0xe9, 0x0c, 0xe3, 0x75, 0x8f, 0x29, 0x0b,
	}
)

// WriteBinary writes the full binary container: magic header, every
// top-level node record in order, and the fixed footer.
func WriteBinary(w stream.Writer, nodes []Node) error {
	if err := writeBinaryHeader(w); err != nil {
		return err
	}
	for i := range nodes {
		if err := nodes[i].Dump(w); err != nil {
			return err
		}
	}
	return writeBinaryFooter(w)
}

func writeBinaryHeader(w stream.Writer) error {
	if err := w.WriteBytes(BinaryHeaderMagic); err != nil {
		return err
	}
	return w.WriteU4(ExportVersionInt)
}

// writeBinaryFooter writes: a 13-byte null record, the fixed footer ID, four
// NUL bytes, NUL padding up to the next 16-byte boundary (a full 16 bytes if
// already aligned), the version integer again, 120 NUL bytes, then the
// magic tail.
func writeBinaryFooter(w stream.Writer) error {
	if err := w.WriteBytes(NullRecord[:]); err != nil {
		return err
	}
	if err := w.WriteBytes(GenericFootMagic[:]); err != nil {
		return err
	}
	if err := w.WriteBytes(make([]byte, 4)); err != nil {
		return err
	}

	pos := w.Tell()
	pad := 16 - int(pos%16)
	if err := w.WriteBytes(make([]byte, pad)); err != nil {
		return err
	}

	if err := w.WriteU4(ExportVersionInt); err != nil {
		return err
	}
	if err := w.WriteBytes(make([]byte, 120)); err != nil {
		return err
	}
	return w.WriteBytes(FooterTailMagic[:])
}
