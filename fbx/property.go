package fbx

import (
	"encoding/binary"
	"math"

	"github.com/mogaika/scenefbx/fbx/stream"
)

// Property is a tagged value carried by a Node. The one-byte type code is
// the on-wire identifier; constructors are type-exact on purpose (see
// PropBool and friends below) so that, for example, a string can never
// silently decay into a boolean the way an untyped "NewProperty(interface{})"
// constructor would allow.
type Property struct {
	code byte
	// raw holds the scalar/string/blob payload for non-array codes, and
	// the pre-encoded element bytes (without the three u4 array headers)
	// for array codes.
	raw []byte
	// count is only meaningful for array codes: the element count that
	// goes in the first u4 header.
	count uint32
}

// Type codes, one per FBX primitive/array kind.
const (
	codeBool    = 'C'
	codeI16     = 'Y'
	codeI32     = 'I'
	codeF32     = 'F'
	codeF64     = 'D'
	codeI64     = 'L'
	codeString  = 'S'
	codeRaw     = 'R'
	codeI32Arr  = 'i'
	codeF32Arr  = 'f'
	codeF64Arr  = 'd'
	codeI64Arr  = 'l'
)

func PropBool(v bool) Property {
	b := byte(0)
	if v {
		b = 1
	}
	return Property{code: codeBool, raw: []byte{b}}
}

func PropI16(v int16) Property {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, uint16(v))
	return Property{code: codeI16, raw: raw}
}

func PropI32(v int32) Property {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, uint32(v))
	return Property{code: codeI32, raw: raw}
}

func PropF32(v float32) Property {
	raw := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw, math.Float32bits(v))
	return Property{code: codeF32, raw: raw}
}

func PropF64(v float64) Property {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, math.Float64bits(v))
	return Property{code: codeF64, raw: raw}
}

func PropI64(v int64) Property {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, uint64(v))
	return Property{code: codeI64, raw: raw}
}

// PropString is the only valid constructor for textual data. A *char-like
// value must always be routed through here, never through PropBool.
func PropString(s string) Property {
	return Property{code: codeString, raw: []byte(s)}
}

// PropRaw holds an opaque binary blob (FileId, embedded binary chunks).
func PropRaw(b []byte) Property {
	return Property{code: codeRaw, raw: append([]byte(nil), b...)}
}

func PropI32Array(v []int32) Property {
	raw := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(x))
	}
	return Property{code: codeI32Arr, raw: raw, count: uint32(len(v))}
}

func PropF32Array(v []float32) Property {
	raw := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(x))
	}
	return Property{code: codeF32Arr, raw: raw, count: uint32(len(v))}
}

func PropF64Array(v []float64) Property {
	raw := make([]byte, 8*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(x))
	}
	return Property{code: codeF64Arr, raw: raw, count: uint32(len(v))}
}

func PropI64Array(v []int64) Property {
	raw := make([]byte, 8*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint64(raw[i*8:], uint64(x))
	}
	return Property{code: codeI64Arr, raw: raw, count: uint32(len(v))}
}

// Code returns the on-wire type code, mostly useful for tests and callers
// building their own ASCII-style dumps.
func (p Property) Code() byte { return p.code }

func (p Property) Bool() bool     { return p.raw[0] != 0 }
func (p Property) Int16() int16   { return int16(binary.LittleEndian.Uint16(p.raw)) }
func (p Property) Int32() int32   { return int32(binary.LittleEndian.Uint32(p.raw)) }
func (p Property) Int64() int64   { return int64(binary.LittleEndian.Uint64(p.raw)) }
func (p Property) Float32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p.raw))
}
func (p Property) Float64() float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(p.raw))
}

// Str returns the payload of a String or Raw property as text.
func (p Property) Str() string { return string(p.raw) }

func (p Property) Int32Array() []int32 {
	out := make([]int32, p.count)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(p.raw[i*4:]))
	}
	return out
}

func (p Property) Float64Array() []float64 {
	out := make([]float64, p.count)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(p.raw[i*8:]))
	}
	return out
}

func isArrayCode(code byte) bool {
	switch code {
	case codeI32Arr, codeF32Arr, codeF64Arr, codeI64Arr:
		return true
	}
	return false
}

// size returns 1 (type code) + the full on-wire payload, including length
// prefixes and, for arrays, the three u4 headers. Node does not call it:
// EndProperties measures the property-section length from the stream
// directly.
func (p Property) size() int {
	switch p.code {
	case codeBool:
		return 1 + 1
	case codeI16:
		return 1 + 2
	case codeI32, codeF32:
		return 1 + 4
	case codeF64, codeI64:
		return 1 + 8
	case codeString, codeRaw:
		return 1 + 4 + len(p.raw)
	case codeI32Arr, codeF32Arr, codeF64Arr, codeI64Arr:
		return 1 + 4 + 4 + 4 + len(p.raw)
	default:
		return 1
	}
}

// emit writes the type code followed by the payload, per the on-wire table.
func (p Property) emit(w stream.Writer) error {
	if err := w.WriteU1(p.code); err != nil {
		return err
	}
	switch p.code {
	case codeBool:
		return w.WriteU1(p.raw[0])
	case codeI16:
		return w.WriteU2(binary.LittleEndian.Uint16(p.raw))
	case codeI32:
		return w.WriteU4(binary.LittleEndian.Uint32(p.raw))
	case codeF32:
		return w.WriteU4(binary.LittleEndian.Uint32(p.raw))
	case codeF64, codeI64:
		return w.WriteBytes(p.raw)
	case codeString, codeRaw:
		if err := w.WriteU4(uint32(len(p.raw))); err != nil {
			return err
		}
		return w.WriteBytes(p.raw)
	case codeI32Arr, codeF32Arr, codeF64Arr, codeI64Arr:
		if err := w.WriteU4(p.count); err != nil {
			return err
		}
		if err := w.WriteU4(0); err != nil { // encoding: always uncompressed
			return err
		}
		if err := w.WriteU4(uint32(len(p.raw))); err != nil {
			return err
		}
		return w.WriteBytes(p.raw)
	default:
		return &InvalidPropertyTypeError{Code: p.code}
	}
}
