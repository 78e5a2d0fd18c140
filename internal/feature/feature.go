// Package feature holds the per-tag-category geometry generators the
// classifier dispatches elements to. Each generator reads one element and
// writes block geometry into the world editor; none of them fail.
package feature

import (
	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/osm"
	"voxelatlas/internal/world"
)

// Generator turns one classified element into voxel geometry.
type Generator func(ed *world.Editor, e *osm.Element, or elevation.Oracle, cfg config.Config)

// line rasterizes the grid cells between two points (inclusive),
// standard integer Bresenham.
func line(a, b osm.Point) []osm.Point {
	dx := abs(b.X - a.X)
	dz := abs(b.Z - a.Z)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sz := 1
	if a.Z > b.Z {
		sz = -1
	}
	err := dx - dz

	var out []osm.Point
	x, z := a.X, a.Z
	for {
		out = append(out, osm.Point{X: x, Z: z})
		if x == b.X && z == b.Z {
			return out
		}
		e2 := 2 * err
		if e2 > -dz {
			err -= dz
			x += sx
		}
		if e2 < dx {
			err += dx
			z += sz
		}
	}
}

// path rasterizes a whole polyline.
func path(nodes []osm.Point) []osm.Point {
	if len(nodes) == 0 {
		return nil
	}
	out := []osm.Point{nodes[0]}
	for i := 1; i < len(nodes); i++ {
		seg := line(nodes[i-1], nodes[i])
		out = append(out, seg[1:]...)
	}
	return out
}

// bounds returns the axis-aligned bounding box of the points.
func bounds(nodes []osm.Point) (minX, minZ, maxX, maxZ int, ok bool) {
	if len(nodes) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, maxX = nodes[0].X, nodes[0].X
	minZ, maxZ = nodes[0].Z, nodes[0].Z
	for _, p := range nodes[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	return minX, minZ, maxX, maxZ, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
