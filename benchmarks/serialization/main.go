// Command serialization compares wire formats for the same payload:
// JSON (stdlib and goccy), gob, and TOML.
package main

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"

	"github.com/benchvs/benchvs/internal/bench"
	"github.com/benchvs/benchvs/internal/dataset"
)

// document wraps the records because TOML needs a table at top level.
type document struct {
	Records []dataset.Record `json:"records" toml:"records"`
}

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100)
	size := bench.Param("BENCHVS_SIZE", 1000)

	doc := document{Records: dataset.NewGenerator(23).Records(size)}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		bench.Fatalf("json fixture: %v", err)
	}

	tomlBytes, err := toml.Marshal(doc)
	if err != nil {
		bench.Fatalf("toml fixture: %v", err)
	}

	var gobBuf bytes.Buffer
	if err := gob.NewEncoder(&gobBuf).Encode(doc); err != nil {
		bench.Fatalf("gob fixture: %v", err)
	}

	b := bench.New("Serialization Formats")
	b.Note("iterations = %d, records = %d", iters, size)
	b.Note("payload sizes: json %dB, toml %dB, gob %dB",
		len(jsonBytes), len(tomlBytes), gobBuf.Len())

	b.Measure("encoding/json encode", iters, func() {
		out, err := json.Marshal(doc)
		if err != nil {
			bench.Fatalf("json encode: %v", err)
		}
		bench.Sink = out
	})

	b.Measure("goccy/go-json encode", iters, func() {
		out, err := gojson.Marshal(doc)
		if err != nil {
			bench.Fatalf("goccy encode: %v", err)
		}
		bench.Sink = out
	})

	b.Measure("encoding/gob encode", iters, func() {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(doc); err != nil {
			bench.Fatalf("gob encode: %v", err)
		}
		bench.Sink = buf.Len()
	})

	b.Measure("go-toml/v2 encode", iters, func() {
		out, err := toml.Marshal(doc)
		if err != nil {
			bench.Fatalf("toml encode: %v", err)
		}
		bench.Sink = out
	})

	var counts [4]int

	b.Measure("encoding/json decode", iters, func() {
		var d document
		if err := json.Unmarshal(jsonBytes, &d); err != nil {
			bench.Fatalf("json decode: %v", err)
		}
		counts[0] = len(d.Records)
	})

	b.Measure("goccy/go-json decode", iters, func() {
		var d document
		if err := gojson.Unmarshal(jsonBytes, &d); err != nil {
			bench.Fatalf("goccy decode: %v", err)
		}
		counts[1] = len(d.Records)
	})

	b.Measure("encoding/gob decode", iters, func() {
		var d document
		r := bytes.NewReader(gobBuf.Bytes())
		if err := gob.NewDecoder(r).Decode(&d); err != nil {
			bench.Fatalf("gob decode: %v", err)
		}
		counts[2] = len(d.Records)
	})

	b.Measure("go-toml/v2 decode", iters, func() {
		var d document
		if err := toml.Unmarshal(tomlBytes, &d); err != nil {
			bench.Fatalf("toml decode: %v", err)
		}
		counts[3] = len(d.Records)
	})

	for i := 1; i < len(counts); i++ {
		if counts[i] != counts[0] {
			bench.Fatalf("record count mismatch: format %d got %d, want %d",
				i, counts[i], counts[0])
		}
	}

	bench.Sink = counts

	b.Guide(
		"gob is compact and fast but Go-to-Go only; pick it for internal persistence",
		"goccy/go-json keeps JSON's interoperability at a fraction of the stdlib cost",
		"TOML is a configuration format; encoding bulk records with it is the wrong tool",
	)
	b.Print(os.Stdout)
}
