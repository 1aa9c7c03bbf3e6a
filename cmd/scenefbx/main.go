// Command scenefbx reads a YAML scene fixture and writes it out as an FBX
// 7.4 file, in either binary or ASCII form.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/mogaika/scenefbx/fbx"
	"github.com/mogaika/scenefbx/fbx/stream"
	"github.com/mogaika/scenefbx/fbx/translate"
	"github.com/mogaika/scenefbx/scene/fixture"
)

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene fixture")
	outPath := flag.String("out", "", "output .fbx path")
	ascii := flag.Bool("ascii", false, "write the ASCII transcription instead of binary")
	creator := flag.String("creator", "scenefbx", "Creator string stamped into the file header")
	flag.Parse()

	if *scenePath == "" || *outPath == "" {
		log.Fatal("scenefbx: -scene and -out are required")
	}

	sc, err := fixture.Load(*scenePath)
	if err != nil {
		log.Fatalf("scenefbx: loading scene: %v", err)
	}

	ids := fbx.NewUIDAllocator()
	result, err := translate.Translate(sc, ids)
	if err != nil {
		log.Fatalf("scenefbx: translating scene: %v", err)
	}
	for _, w := range result.Warnings {
		log.Printf("scenefbx: warning: %v", w)
	}

	info := fbx.DocumentInfo{
		Creator:  *creator,
		Filename: *outPath,
		Time:     time.Now(),
	}
	nodes := fbx.BuildTopLevelNodes(ids, info, result.Objects, result.Connections, result.Counts, result.MaterialIsPhong)

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("scenefbx: creating output: %v", err)
	}
	defer out.Close()

	if *ascii {
		err = fbx.WriteASCII(out, nodes)
	} else {
		err = fbx.WriteBinary(stream.NewFileWriter(out), nodes)
	}
	if err != nil {
		log.Fatalf("scenefbx: writing %s: %v", *outPath, err)
	}
}
