package osm

// Kind distinguishes the three classified element variants.
type Kind int

const (
	KindNode Kind = iota + 1
	KindWay
	KindRelation
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindWay:
		return "way"
	case KindRelation:
		return "relation"
	default:
		return "unknown"
	}
}

// Point is a horizontal grid coordinate, already projected from
// geographic coordinates upstream.
type Point struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Member is one constituent way of a relation.
type Member struct {
	Role  string  `json:"role"`
	Nodes []Point `json:"nodes"`
}

// Element is one classified geospatial feature. The classifier reads only
// ID, Kind and Tags; the geometry fields are consumed by the feature
// generators.
type Element struct {
	ID   int64             `json:"id"`
	Kind Kind              `json:"-"`
	Tags map[string]string `json:"tags"`

	// Node geometry.
	At Point `json:"at"`
	// Way geometry.
	Nodes []Point `json:"nodes,omitempty"`
	// Relation geometry.
	Members []Member `json:"members,omitempty"`
}

// HasTag reports whether the tag key is present.
func (e *Element) HasTag(key string) bool {
	_, ok := e.Tags[key]
	return ok
}

// Tag returns the tag value, or "" when absent.
func (e *Element) Tag(key string) string {
	return e.Tags[key]
}

// TagIs reports whether the tag is present with exactly the given value.
func (e *Element) TagIs(key, value string) bool {
	return e.Tags[key] == value
}
