// Package stream provides the little-endian, seekable byte sink that the FBX
// node writer back-patches into. Every FBX node record begins with an offset
// field that can only be known after the record's body has been written, so
// the sink has to support absolute seeks into what has already been written.
package stream

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Writer is the minimal primitive-write + seek surface the FBX node/property
// layers need. All multi-byte values are little-endian regardless of host
// byte order.
type Writer interface {
	WriteU1(v uint8) error
	WriteU2(v uint16) error
	WriteU4(v uint32) error
	WriteI2(v int16) error
	WriteI4(v int32) error
	WriteI8(v int64) error
	WriteF4(v float32) error
	WriteF8(v float64) error
	WriteBytes(b []byte) error

	// WriteCString writes name verbatim with no NUL terminator; callers
	// are responsible for the preceding length prefix.
	WriteCString(name string) error

	Tell() int64
	Seek(pos int64) error
}

// BufferWriter is an in-memory seekable sink. The whole file is buffered and
// flushed at the end, which spec.md explicitly permits.
type BufferWriter struct {
	buf bytes.Buffer
	pos int64
}

func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

func (w *BufferWriter) grow(n int) {
	need := int(w.pos) + n
	if need > w.buf.Len() {
		w.buf.Write(make([]byte, need-w.buf.Len()))
	}
}

func (w *BufferWriter) writeAt(b []byte) {
	w.grow(len(b))
	copy(w.buf.Bytes()[w.pos:], b)
	w.pos += int64(len(b))
}

func (w *BufferWriter) WriteU1(v uint8) error { w.writeAt([]byte{v}); return nil }

func (w *BufferWriter) WriteU2(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.writeAt(b[:])
	return nil
}

func (w *BufferWriter) WriteU4(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.writeAt(b[:])
	return nil
}

func (w *BufferWriter) WriteI2(v int16) error { return w.WriteU2(uint16(v)) }
func (w *BufferWriter) WriteI4(v int32) error { return w.WriteU4(uint32(v)) }

func (w *BufferWriter) WriteI8(v int64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	w.writeAt(b[:])
	return nil
}

func (w *BufferWriter) WriteF4(v float32) error {
	return w.WriteU4(math.Float32bits(v))
}

func (w *BufferWriter) WriteF8(v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.writeAt(b[:])
	return nil
}

func (w *BufferWriter) WriteBytes(b []byte) error { w.writeAt(b); return nil }

func (w *BufferWriter) WriteCString(name string) error {
	w.writeAt([]byte(name))
	return nil
}

func (w *BufferWriter) Tell() int64 { return w.pos }

func (w *BufferWriter) Seek(pos int64) error {
	if pos < 0 {
		return errors.Errorf("stream: negative seek position %d", pos)
	}
	w.pos = pos
	return nil
}

// Bytes returns the accumulated buffer. The caller should not mutate it.
func (w *BufferWriter) Bytes() []byte { return w.buf.Bytes() }

// FileWriter wraps a real seekable *os.File, for callers who would rather
// stream straight to disk than hold the whole export in memory.
type FileWriter struct {
	f *os.File
}

func NewFileWriter(f *os.File) *FileWriter { return &FileWriter{f: f} }

func (w *FileWriter) WriteU1(v uint8) error { return w.WriteBytes([]byte{v}) }

func (w *FileWriter) WriteU2(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.WriteBytes(b[:])
}

func (w *FileWriter) WriteU4(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.WriteBytes(b[:])
}

func (w *FileWriter) WriteI2(v int16) error { return w.WriteU2(uint16(v)) }
func (w *FileWriter) WriteI4(v int32) error { return w.WriteU4(uint32(v)) }

func (w *FileWriter) WriteI8(v int64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return w.WriteBytes(b[:])
}

func (w *FileWriter) WriteF4(v float32) error { return w.WriteU4(math.Float32bits(v)) }

func (w *FileWriter) WriteF8(v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return w.WriteBytes(b[:])
}

func (w *FileWriter) WriteBytes(b []byte) error {
	_, err := w.f.Write(b)
	return errors.Wrap(err, "stream: write")
}

func (w *FileWriter) WriteCString(name string) error { return w.WriteBytes([]byte(name)) }

func (w *FileWriter) Tell() int64 {
	pos, _ := w.f.Seek(0, io.SeekCurrent)
	return pos
}

func (w *FileWriter) Seek(pos int64) error {
	_, err := w.f.Seek(pos, io.SeekStart)
	return errors.Wrap(err, "stream: seek")
}
