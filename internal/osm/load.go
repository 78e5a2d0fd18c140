package osm

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// elementSchema validates one JSONL input line before it is decoded into
// an Element. Geometry requirements depend on the declared type.
const elementSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "type", "tags"],
  "properties": {
    "id": {"type": "integer"},
    "type": {"enum": ["node", "way", "relation"]},
    "tags": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "at": {"$ref": "#/$defs/point"},
    "nodes": {"type": "array", "items": {"$ref": "#/$defs/point"}},
    "members": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["nodes"],
        "properties": {
          "role": {"type": "string"},
          "nodes": {"type": "array", "items": {"$ref": "#/$defs/point"}}
        }
      }
    }
  },
  "$defs": {
    "point": {
      "type": "object",
      "required": ["x", "z"],
      "properties": {
        "x": {"type": "integer"},
        "z": {"type": "integer"}
      }
    }
  }
}`

type rawElement struct {
	Element
	Type string `json:"type"`
}

var compiledSchema = jsonschema.MustCompileString("element.schema.json", elementSchema)

// Decode reads a JSONL stream of classified elements, validating each line
// against the element schema. Line numbers are 1-based in errors.
func Decode(r io.Reader) ([]Element, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	var out []Element
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("elements line %d: %w", line, err)
		}
		if err := compiledSchema.Validate(v); err != nil {
			return nil, fmt.Errorf("elements line %d: %w", line, err)
		}

		var re rawElement
		if err := json.Unmarshal(raw, &re); err != nil {
			return nil, fmt.Errorf("elements line %d: %w", line, err)
		}
		e := re.Element
		switch re.Type {
		case "node":
			e.Kind = KindNode
		case "way":
			e.Kind = KindWay
		case "relation":
			e.Kind = KindRelation
		}
		if e.Tags == nil {
			e.Tags = map[string]string{}
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("elements: %w", err)
	}
	return out, nil
}

// LoadFile reads a JSONL element file.
func LoadFile(path string) ([]Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
