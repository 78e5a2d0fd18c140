package gen

import (
	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/progress"
	"voxelatlas/internal/world"
)

// Spawn anchor: a flattened 21x21 platform guaranteeing a walkable start
// area regardless of computed terrain.
const (
	spawnExtent = 20
	spawnY      = -62
)

// synthesizeTerrain writes the layered ground for every column in
// [0, scaleX] x [0, scaleZ]. It runs after the feature generators so the
// surface can seat itself under already-placed structures instead of
// burying them.
func synthesizeTerrain(ed *world.Editor, or elevation.Oracle, cfg config.Config, phase *progress.Phase, steps *progress.Counter) {
	surface := world.Grass
	if cfg.Winter {
		surface = world.Snow
	}

	if or.ElevationEnabled() {
		synthesizeElevated(ed, or, cfg, surface, phase, steps)
	} else {
		synthesizeFlat(ed, or, cfg, surface, phase, steps)
	}
}

func synthesizeElevated(ed *world.Editor, or elevation.Oracle, cfg config.Config, surface world.Kind, phase *progress.Phase, steps *progress.Counter) {
	// Cache target elevations once; the oracle is consulted per column
	// only here, not during the sweep.
	levels := make([][]int, cfg.ScaleX+1)
	for x := 0; x <= cfg.ScaleX; x++ {
		row := make([]int, cfg.ScaleZ+1)
		for z := 0; z <= cfg.ScaleZ; z++ {
			row[z] = or.Level(x, z)
		}
		levels[x] = row
	}

	for x := 0; x <= cfg.ScaleX; x++ {
		for z := 0; z <= cfg.ScaleZ; z++ {
			target := levels[x][z]

			// Seat the surface under the lowest structure block in the
			// column, clamped to the target elevation. A structure built
			// entirely above the target is invisible to this search; the
			// cap is what bounds the scan.
			topY := target
			for y := world.MinY; y < target; y++ {
				if ed.BlockAt(x, y, z) {
					topY = y
					break
				}
			}

			ed.SetBlock(surface, x, topY, z, nil, nil)
			ed.SetBlock(world.Dirt, x, topY-1, z, nil, nil)
			ed.SetBlock(world.Dirt, x, topY-2, z, nil, nil)

			if cfg.FillGround {
				// The dirt cells above stay dirt; SetBlock never
				// overwrites occupied cells without a filter.
				if topY-2 >= world.MinY+1 {
					ed.FillBlocks(world.Stone, x, world.MinY+1, z, x, topY-2, z, nil, nil)
				}
				ed.SetBlock(world.Bedrock, x, world.MinY, z, nil, []world.Kind{world.Bedrock})
			}

			steps.Step()
			phase.Step()
		}
	}

	for x := 0; x <= spawnExtent; x++ {
		for z := 0; z <= spawnExtent; z++ {
			ed.SetBlock(surface, x, spawnY, z, nil, nil)
		}
	}
}

func synthesizeFlat(ed *world.Editor, or elevation.Oracle, cfg config.Config, surface world.Kind, phase *progress.Phase, steps *progress.Counter) {
	for x := 0; x <= cfg.ScaleX; x++ {
		for z := 0; z <= cfg.ScaleZ; z++ {
			level := or.Level(x, z)
			ed.SetBlock(surface, x, level, z, nil, nil)
			ed.SetBlock(world.Dirt, x, level-1, z, nil, nil)

			steps.Step()
			phase.Step()
		}
	}
}
