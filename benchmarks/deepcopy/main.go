// Command deepcopy compares strategies for copying nested structures.
package main

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"os"
	"slices"

	gojson "github.com/goccy/go-json"

	"github.com/benchvs/benchvs/internal/bench"
	"github.com/benchvs/benchvs/internal/dataset"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 1000)
	size := bench.Param("BENCHVS_SIZE", 100)

	records := dataset.NewGenerator(11).Records(size)

	b := bench.New("Deep Copy Strategies")
	b.Note("iterations = %d, records = %d (each with a nested tag slice)",
		iters, size)

	b.Measure("slices.Clone (shallow!)", iters, func() {
		bench.Sink = slices.Clone(records)
	})

	var manual []dataset.Record

	b.Measure("manual field-wise copy", iters, func() {
		manual = copyRecords(records)
	})

	var viaJSON []dataset.Record

	b.Measure("encoding/json round trip", iters, func() {
		data, err := json.Marshal(records)
		if err != nil {
			bench.Fatalf("marshal: %v", err)
		}
		viaJSON = nil
		if err := json.Unmarshal(data, &viaJSON); err != nil {
			bench.Fatalf("unmarshal: %v", err)
		}
	})

	b.Measure("goccy/go-json round trip", iters, func() {
		data, err := gojson.Marshal(records)
		if err != nil {
			bench.Fatalf("goccy marshal: %v", err)
		}
		var out []dataset.Record
		if err := gojson.Unmarshal(data, &out); err != nil {
			bench.Fatalf("goccy unmarshal: %v", err)
		}
		bench.Sink = out
	})

	var viaGob []dataset.Record

	b.Measure("encoding/gob round trip", iters, func() {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(records); err != nil {
			bench.Fatalf("gob encode: %v", err)
		}
		viaGob = nil
		if err := gob.NewDecoder(&buf).Decode(&viaGob); err != nil {
			bench.Fatalf("gob decode: %v", err)
		}
	})

	// A deep copy must not share the nested slices.
	manual[0].Tags[0] = "mutated"
	if records[0].Tags[0] == "mutated" {
		bench.Fatalf("manual copy shares tag storage with the original")
	}

	if len(viaJSON) != size || len(viaGob) != size {
		bench.Fatalf("round trips lost records: json %d, gob %d, want %d",
			len(viaJSON), len(viaGob), size)
	}

	b.Guide(
		"slices.Clone copies the outer slice only; nested slices stay shared",
		"a hand-written copy is fastest and the only one the type checker verifies",
		"codec round trips are a lazy deep copy; gob handles unexported-free structs, json needs tags",
	)
	b.Print(os.Stdout)
}

func copyRecords(src []dataset.Record) []dataset.Record {
	out := make([]dataset.Record, len(src))

	for i, r := range src {
		r.Tags = slices.Clone(r.Tags)
		out[i] = r
	}

	return out
}
