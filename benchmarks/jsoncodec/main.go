// Command jsoncodec compares JSON encoding and decoding between the
// standard library and goccy/go-json.
package main

import (
	"encoding/json"
	"io"
	"os"

	gojson "github.com/goccy/go-json"

	"github.com/benchvs/benchvs/internal/bench"
	"github.com/benchvs/benchvs/internal/dataset"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 1000)
	size := bench.Param("BENCHVS_SIZE", 1000)

	records := dataset.NewGenerator(42).Records(size)

	encoded, err := json.Marshal(records)
	if err != nil {
		bench.Fatalf("marshal fixture: %v", err)
	}

	b := bench.New("JSON Encoding/Decoding")
	b.Note("iterations = %d, records = %d, payload = %d bytes",
		iters, size, len(encoded))

	b.Measure("encoding/json Marshal", iters, func() {
		out, err := json.Marshal(records)
		if err != nil {
			bench.Fatalf("marshal: %v", err)
		}
		bench.Sink = out
	})

	b.Measure("encoding/json MarshalIndent", iters, func() {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			bench.Fatalf("marshal indent: %v", err)
		}
		bench.Sink = out
	})

	b.Measure("encoding/json Encoder stream", iters, func() {
		if err := json.NewEncoder(io.Discard).Encode(records); err != nil {
			bench.Fatalf("encode: %v", err)
		}
	})

	b.Measure("goccy/go-json Marshal", iters, func() {
		out, err := gojson.Marshal(records)
		if err != nil {
			bench.Fatalf("goccy marshal: %v", err)
		}
		bench.Sink = out
	})

	var stdDecoded, goccyDecoded []dataset.Record

	b.Measure("encoding/json Unmarshal", iters, func() {
		stdDecoded = nil
		if err := json.Unmarshal(encoded, &stdDecoded); err != nil {
			bench.Fatalf("unmarshal: %v", err)
		}
	})

	b.Measure("goccy/go-json Unmarshal", iters, func() {
		goccyDecoded = nil
		if err := gojson.Unmarshal(encoded, &goccyDecoded); err != nil {
			bench.Fatalf("goccy unmarshal: %v", err)
		}
	})

	if len(stdDecoded) != size || len(goccyDecoded) != size {
		bench.Fatalf("decoded %d/%d records, want %d",
			len(stdDecoded), len(goccyDecoded), size)
	}

	if stdDecoded[0].ID != goccyDecoded[0].ID {
		bench.Fatalf("decoders disagree on record 0: %q vs %q",
			stdDecoded[0].ID, goccyDecoded[0].ID)
	}

	b.Guide(
		"goccy/go-json is a drop-in replacement worth 2-3x on struct-heavy payloads",
		"stream with Encoder when writing to the network; it skips one buffer copy",
		"MarshalIndent costs real time; keep it for human-facing output only",
	)
	b.Print(os.Stdout)
}
