package osm

import (
	"strings"
	"testing"
)

func TestDecodeElements(t *testing.T) {
	input := strings.Join([]string{
		`{"id":1,"type":"node","tags":{"natural":"tree"},"at":{"x":5,"z":7}}`,
		``,
		`{"id":2,"type":"way","tags":{"building":"yes"},"nodes":[{"x":0,"z":0},{"x":4,"z":0}]}`,
		`{"id":3,"type":"relation","tags":{"water":"lake"},"members":[{"role":"outer","nodes":[{"x":1,"z":1}]}]}`,
	}, "\n")

	elements, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(elements))
	}

	if elements[0].Kind != KindNode || elements[0].At.X != 5 || elements[0].At.Z != 7 {
		t.Fatalf("node decoded wrong: %+v", elements[0])
	}
	if elements[1].Kind != KindWay || len(elements[1].Nodes) != 2 {
		t.Fatalf("way decoded wrong: %+v", elements[1])
	}
	if elements[2].Kind != KindRelation || len(elements[2].Members) != 1 {
		t.Fatalf("relation decoded wrong: %+v", elements[2])
	}
	if elements[2].Members[0].Role != "outer" {
		t.Fatalf("member role lost: %+v", elements[2].Members[0])
	}
}

func TestDecodeRejectsSchemaViolations(t *testing.T) {
	cases := []string{
		`{"type":"way","tags":{}}`,                            // missing id
		`{"id":1,"type":"area","tags":{}}`,                    // unknown type
		`{"id":1,"type":"node","tags":{"height":12}}`,         // non-string tag value
		`{"id":1,"type":"node"}`,                              // missing tags
		`{"id":1,"type":"way","tags":{},"nodes":[{"x":1}]}`,   // point missing z
		`{"id":"1","type":"node","tags":{}}`,                  // string id
	}
	for _, line := range cases {
		if _, err := Decode(strings.NewReader(line)); err == nil {
			t.Fatalf("line %q passed validation", line)
		}
	}
}

func TestDecodeReportsLineNumber(t *testing.T) {
	input := "{\"id\":1,\"type\":\"node\",\"tags\":{}}\nnot json\n"
	_, err := Decode(strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("want line 2 in error, got %v", err)
	}
}

func TestTagHelpers(t *testing.T) {
	e := Element{Tags: map[string]string{"building": "yes"}}
	if !e.HasTag("building") || e.HasTag("highway") {
		t.Fatalf("HasTag wrong")
	}
	if e.Tag("building") != "yes" || e.Tag("missing") != "" {
		t.Fatalf("Tag wrong")
	}
	if !e.TagIs("building", "yes") || e.TagIs("building", "no") {
		t.Fatalf("TagIs wrong")
	}
}
