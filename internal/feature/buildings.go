package feature

import (
	"strconv"

	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/osm"
	"voxelatlas/internal/world"
)

const defaultWallHeight = 4

// Buildings raises walls along the element outline and lays a floor at
// the footprint's lowest grade. On sloped ground the floor sits below
// the higher columns' target elevation, and the terrain sweep seats its
// surface against it.
func Buildings(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	buildOutline(ed, e.Nodes, or, e)
}

// BuildingFromRelation builds every outer member outline of a
// multipolygon building relation.
func BuildingFromRelation(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	for _, m := range e.Members {
		if m.Role == "inner" {
			continue
		}
		buildOutline(ed, m.Nodes, or, e)
	}
}

func buildOutline(ed *world.Editor, nodes []osm.Point, or elevation.Oracle, e *osm.Element) {
	outline := path(nodes)
	if len(outline) == 0 {
		return
	}

	height := defaultWallHeight
	if lv, err := strconv.Atoi(e.Tag("building:levels")); err == nil && lv > 0 {
		height = lv * 3
	}

	base := lowestLevel(outline, or)

	for i, p := range outline {
		// Foundation at grade; the surface layer settles on it.
		ed.SetBlock(world.Cobblestone, p.X, base, p.Z, nil, nil)
		for y := base + 1; y <= base+height; y++ {
			kind := world.Brick
			// Window band every other column, above head height.
			if y == base+2 && i%2 == 1 {
				kind = world.Glass
			}
			ed.SetBlock(kind, p.X, y, p.Z, nil, nil)
		}
		ed.SetBlock(world.Planks, p.X, base+height+1, p.Z, nil, nil)
	}

	// Floor across the footprint bounding box.
	minX, minZ, maxX, maxZ, ok := bounds(outline)
	if !ok {
		return
	}
	ed.FillBlocks(world.Cobblestone, minX, base, minZ, maxX, base, maxZ, nil, nil)
}

// lowestLevel anchors a footprint on its lowest corner so walls stay
// plumb on sloped ground.
func lowestLevel(points []osm.Point, or elevation.Oracle) int {
	base := or.Level(points[0].X, points[0].Z)
	for _, p := range points[1:] {
		if l := or.Level(p.X, p.Z); l < base {
			base = l
		}
	}
	return base
}
