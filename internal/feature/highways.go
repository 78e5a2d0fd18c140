package feature

import (
	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/osm"
	"voxelatlas/internal/world"
)

// Highways paves roads and paths. Node highways (crossings, street
// furniture) become a single marker block.
func Highways(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	if e.Kind == osm.KindNode {
		y := or.Level(e.At.X, e.At.Z)
		ed.SetBlock(world.Cobblestone, e.At.X, y, e.At.Z, nil, nil)
		return
	}

	surface := world.Asphalt
	halfWidth := 1
	switch e.Tag("highway") {
	case "footway", "path", "track", "steps", "bridleway":
		surface = world.DirtPath
		halfWidth = 0
	case "motorway", "trunk", "primary":
		halfWidth = 2
	}

	paveWay(ed, e.Nodes, or, surface, halfWidth)
}

// Aeroway paves runways and taxiways wide and flat.
func Aeroway(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	paveWay(ed, e.Nodes, or, world.Asphalt, 3)
}

// Siding lays the narrow service track variant.
func Siding(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	paveWay(ed, e.Nodes, or, world.Gravel, 0)
}

func paveWay(ed *world.Editor, nodes []osm.Point, or elevation.Oracle, kind world.Kind, halfWidth int) {
	for _, p := range path(nodes) {
		y := or.Level(p.X, p.Z)
		for dx := -halfWidth; dx <= halfWidth; dx++ {
			for dz := -halfWidth; dz <= halfWidth; dz++ {
				ed.SetBlock(kind, p.X+dx, y, p.Z+dz, nil, nil)
			}
		}
	}
}
