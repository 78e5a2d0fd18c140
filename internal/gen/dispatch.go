package gen

import (
	"voxelatlas/internal/feature"
	"voxelatlas/internal/osm"
)

// route pairs a tag predicate with the generator it selects. Routes are
// evaluated in slice order and the first match wins; an element matching
// several predicates is routed only to the earliest one. That precedence
// is the contract, not any disjointness of the predicates.
type route struct {
	name     string
	match    func(e *osm.Element) bool
	generate feature.Generator
}

func hasTag(key string) func(e *osm.Element) bool {
	return func(e *osm.Element) bool { return e.HasTag(key) }
}

func hasAnyTag(keys ...string) func(e *osm.Element) bool {
	return func(e *osm.Element) bool {
		for _, k := range keys {
			if e.HasTag(k) {
				return true
			}
		}
		return false
	}
}

func tagIs(key, value string) func(e *osm.Element) bool {
	return func(e *osm.Element) bool { return e.TagIs(key, value) }
}

// wayRoutes is the fixed priority order for line/area features.
var wayRoutes = []route{
	{"building", hasAnyTag("building", "building:part"), feature.Buildings},
	{"highway", hasTag("highway"), feature.Highways},
	{"landuse", hasTag("landuse"), feature.Landuse},
	{"natural", hasTag("natural"), feature.Natural},
	{"amenity", hasTag("amenity"), feature.Amenities},
	{"leisure", hasTag("leisure"), feature.Leisure},
	{"barrier", hasTag("barrier"), feature.Barriers},
	{"waterway", hasTag("waterway"), feature.Waterways},
	{"bridge", hasTag("bridge"), feature.Bridges},
	{"railway", hasTag("railway"), feature.Railways},
	{"aeroway", hasAnyTag("aeroway", "area:aeroway"), feature.Aeroway},
	{"siding", tagIs("service", "siding"), feature.Siding},
}

// nodeRoutes is the fixed priority order for point features.
var nodeRoutes = []route{
	{"door", hasAnyTag("door", "entrance"), feature.Doors},
	{"tree", tagIs("natural", "tree"), feature.Natural},
	{"amenity", hasTag("amenity"), feature.Amenities},
	{"barrier", hasTag("barrier"), feature.Barriers},
	{"highway", hasTag("highway"), feature.Highways},
	{"tourism", hasTag("tourism"), feature.Tourisms},
}

// relationRoutes is the fixed priority order for relation features.
var relationRoutes = []route{
	{"building", hasAnyTag("building", "building:part"), feature.BuildingFromRelation},
	{"water", hasTag("water"), feature.WaterAreas},
	{"park", tagIs("leisure", "park"), feature.LeisureFromRelation},
}

func routesFor(kind osm.Kind) []route {
	switch kind {
	case osm.KindNode:
		return nodeRoutes
	case osm.KindWay:
		return wayRoutes
	case osm.KindRelation:
		return relationRoutes
	default:
		return nil
	}
}

// dispatch returns the first matching route for the element, or nil when
// no predicate matches (the element is silently skipped).
func dispatch(e *osm.Element) *route {
	routes := routesFor(e.Kind)
	for i := range routes {
		if routes[i].match(e) {
			return &routes[i]
		}
	}
	return nil
}
