package feature

import (
	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/osm"
	"voxelatlas/internal/world"
)

// Barriers raises fences or walls along the element.
func Barriers(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	post := world.Fence
	if v := e.Tag("barrier"); v == "wall" || v == "retaining_wall" || v == "city_wall" {
		post = world.Cobblestone
	}

	if e.Kind == osm.KindNode {
		y := or.Level(e.At.X, e.At.Z)
		ed.SetBlock(post, e.At.X, y+1, e.At.Z, nil, nil)
		return
	}
	for _, p := range path(e.Nodes) {
		y := or.Level(p.X, p.Z)
		ed.SetBlock(post, p.X, y+1, p.Z, nil, nil)
	}
}

// Waterways carve a shallow water channel along the way.
func Waterways(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	halfWidth := 0
	switch e.Tag("waterway") {
	case "river", "canal":
		halfWidth = 2
	case "stream", "ditch", "drain":
		halfWidth = 0
	}
	for _, p := range path(e.Nodes) {
		y := or.Level(p.X, p.Z)
		for dx := -halfWidth; dx <= halfWidth; dx++ {
			for dz := -halfWidth; dz <= halfWidth; dz++ {
				ed.SetBlock(world.Water, p.X+dx, y, p.Z+dz, nil, nil)
			}
		}
	}
}

// Railways lay a gravel bed with rails on top.
func Railways(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	for _, p := range path(e.Nodes) {
		y := or.Level(p.X, p.Z)
		ed.SetBlock(world.Gravel, p.X, y, p.Z, nil, nil)
		ed.SetBlock(world.Rail, p.X, y+1, p.Z, nil, nil)
	}
}

// Bridges is a routing placeholder: bridge-tagged ways are consumed by
// the dispatcher so they do not fall through to later categories, but no
// geometry is emitted yet. TODO: deck + pillar geometry once elevation
// profiles along a way are available.
func Bridges(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
}

// Doors punch a door block into whatever wall the node sits on.
func Doors(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	y := or.Level(e.At.X, e.At.Z)
	ed.SetBlock(world.Door, e.At.X, y+1, e.At.Z, []world.Kind{world.Brick, world.Glass, world.Planks}, nil)
}

// Tourisms place a signpost marker.
func Tourisms(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config) {
	y := or.Level(e.At.X, e.At.Z)
	ed.SetBlock(world.Fence, e.At.X, y+1, e.At.Z, nil, nil)
	ed.SetBlock(world.Sign, e.At.X, y+2, e.At.Z, nil, nil)
}
