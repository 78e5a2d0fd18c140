package feature

import (
	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/osm"
	"voxelatlas/internal/world"
)

// Landuse covers the footprint with a ground cover matching the landuse
// value.
func Landuse(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	cover := world.Grass
	switch e.Tag("landuse") {
	case "farmland", "farmyard", "allotments":
		cover = world.Dirt
	case "quarry", "landfill":
		cover = world.Gravel
	case "beach":
		cover = world.Sand
	}
	coverArea(ed, e.Nodes, or, cover)
}

// Natural handles natural features: single trees at nodes, water or
// greenery over areas.
func Natural(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	if e.Kind == osm.KindNode {
		plantTree(ed, e.At, or)
		return
	}
	switch e.Tag("natural") {
	case "water", "bay", "wetland":
		coverArea(ed, e.Nodes, or, world.Water)
	case "sand", "beach", "dune":
		coverArea(ed, e.Nodes, or, world.Sand)
	case "bare_rock", "scree":
		coverArea(ed, e.Nodes, or, world.Stone)
	default:
		coverArea(ed, e.Nodes, or, world.Grass)
	}
}

// Leisure covers parks, pitches and similar recreational areas.
func Leisure(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	coverArea(ed, e.Nodes, or, world.Grass)
}

// LeisureFromRelation covers park relations member by member.
func LeisureFromRelation(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	for _, m := range e.Members {
		if m.Role == "inner" {
			continue
		}
		coverArea(ed, m.Nodes, or, world.Grass)
	}
}

// WaterAreas floods relation water bodies.
func WaterAreas(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	for _, m := range e.Members {
		if m.Role == "inner" {
			continue
		}
		coverArea(ed, m.Nodes, or, world.Water)
	}
}

// Amenities marks amenity footprints with a paved pad.
func Amenities(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	if e.Kind == osm.KindNode {
		y := or.Level(e.At.X, e.At.Z)
		ed.SetBlock(world.Cobblestone, e.At.X, y, e.At.Z, nil, nil)
		return
	}
	coverArea(ed, e.Nodes, or, world.Cobblestone)
}

// coverArea writes the cover block at ground level across the outline's
// bounding box. Bounding-box fill is an intentional simplification over
// polygon scanline fill; concave footprints overcover slightly.
func coverArea(ed *world.Editor, nodes []osm.Point, or elevation.Oracle, cover world.Kind) {
	minX, minZ, maxX, maxZ, ok := bounds(nodes)
	if !ok {
		return
	}
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			ed.SetBlock(cover, x, or.Level(x, z), z, nil, nil)
		}
	}
}

func plantTree(ed *world.Editor, at osm.Point, or elevation.Oracle) {
	base := or.Level(at.X, at.Z)
	for y := base + 1; y <= base+4; y++ {
		ed.SetBlock(world.OakLog, at.X, y, at.Z, nil, nil)
	}
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := 4; dy <= 6; dy++ {
				if dx == 0 && dz == 0 && dy <= 4 {
					continue
				}
				ed.SetBlock(world.OakLeaves, at.X+dx, base+dy, at.Z+dz, nil, nil)
			}
		}
	}
}
