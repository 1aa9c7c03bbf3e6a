package fbx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteASCII renders the same top-level Node tree WriteBinary consumes as
// the plain-text transcription DCC tools and Assimp itself can also read,
// leaving out the binary-only top-level FileId, CreationTime and Creator
// records.
// Bit-exactness with any particular tool's own ASCII writer is not a goal
// (spec.md section 6): this is a transcription of the node tree, not a
// second code path with its own semantics.
func WriteASCII(w io.Writer, nodes []Node) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "; FBX %s project file\n", ExportVersionStr)
	fmt.Fprintf(bw, "; ---------------------------------------------------\n\n")

	for i := range nodes {
		switch nodes[i].Name {
		case "FileId", "CreationTime", "Creator":
			continue // binary-only top-level records
		}
		if err := writeASCIINode(bw, &nodes[i], 0); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeASCIINode(w *bufio.Writer, n *Node, depth int) error {
	indent := strings.Repeat("\t", depth)
	fmt.Fprintf(w, "%s%s:", indent, n.Name)

	for i, p := range n.Properties {
		if i > 0 {
			w.WriteString(",")
		}
		w.WriteString(" ")
		writeASCIIProperty(w, p)
	}

	if len(n.Children) == 0 {
		w.WriteString("\n")
		return nil
	}

	w.WriteString(" {\n")
	for i := range n.Children {
		if err := writeASCIINode(w, &n.Children[i], depth+1); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%s}\n", indent)
	return nil
}

func writeASCIIProperty(w *bufio.Writer, p Property) {
	switch p.code {
	case codeBool:
		if p.raw[0] != 0 {
			w.WriteString("1")
		} else {
			w.WriteString("0")
		}
	case codeI16:
		fmt.Fprintf(w, "%d", int16(binary.LittleEndian.Uint16(p.raw)))
	case codeI32:
		fmt.Fprintf(w, "%d", int32(binary.LittleEndian.Uint32(p.raw)))
	case codeF32:
		fmt.Fprintf(w, "%g", math.Float32frombits(binary.LittleEndian.Uint32(p.raw)))
	case codeF64:
		fmt.Fprintf(w, "%g", math.Float64frombits(binary.LittleEndian.Uint64(p.raw)))
	case codeI64:
		fmt.Fprintf(w, "%d", int64(binary.LittleEndian.Uint64(p.raw)))
	case codeString:
		fmt.Fprintf(w, "%q", string(p.raw))
	case codeRaw:
		fmt.Fprintf(w, "<%d raw bytes>", len(p.raw))
	case codeI32Arr:
		w.WriteString("*")
		fmt.Fprintf(w, "%d {\n\t\ta: ", p.count)
		for i := uint32(0); i < p.count; i++ {
			if i > 0 {
				w.WriteString(",")
			}
			fmt.Fprintf(w, "%d", int32(binary.LittleEndian.Uint32(p.raw[i*4:])))
		}
		w.WriteString("\n\t\t}")
	case codeF32Arr:
		w.WriteString("*")
		fmt.Fprintf(w, "%d {\n\t\ta: ", p.count)
		for i := uint32(0); i < p.count; i++ {
			if i > 0 {
				w.WriteString(",")
			}
			fmt.Fprintf(w, "%g", math.Float32frombits(binary.LittleEndian.Uint32(p.raw[i*4:])))
		}
		w.WriteString("\n\t\t}")
	case codeF64Arr:
		w.WriteString("*")
		fmt.Fprintf(w, "%d {\n\t\ta: ", p.count)
		for i := uint32(0); i < p.count; i++ {
			if i > 0 {
				w.WriteString(",")
			}
			fmt.Fprintf(w, "%g", math.Float64frombits(binary.LittleEndian.Uint64(p.raw[i*8:])))
		}
		w.WriteString("\n\t\t}")
	case codeI64Arr:
		w.WriteString("*")
		fmt.Fprintf(w, "%d {\n\t\ta: ", p.count)
		for i := uint32(0); i < p.count; i++ {
			if i > 0 {
				w.WriteString(",")
			}
			fmt.Fprintf(w, "%d", int64(binary.LittleEndian.Uint64(p.raw[i*8:])))
		}
		w.WriteString("\n\t\t}")
	}
}
