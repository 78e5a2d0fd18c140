package elevation

// Oracle maps a horizontal grid coordinate to a vertical level.
type Oracle interface {
	// Level returns the target elevation for the column at (x, z).
	Level(x, z int) int
	// ElevationEnabled reports whether real elevation data backs this
	// oracle; when false the terrain synthesizer runs in flat mode.
	ElevationEnabled() bool
}

// Flat is an oracle that returns one constant level everywhere.
type Flat struct {
	Y int
}

func (f Flat) Level(x, z int) int     { return f.Y }
func (f Flat) ElevationEnabled() bool { return false }

// Grid is a heightmap oracle over the grid extents. Lookups outside the
// sampled area clamp to the nearest edge sample.
type Grid struct {
	width  int // samples along x
	depth  int // samples along z
	levels []int
}

// NewGrid builds a heightmap for columns [0,width) x [0,depth) from the
// sample function.
func NewGrid(width, depth int, sample func(x, z int) int) *Grid {
	if width < 1 {
		width = 1
	}
	if depth < 1 {
		depth = 1
	}
	g := &Grid{
		width:  width,
		depth:  depth,
		levels: make([]int, width*depth),
	}
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			g.levels[x*depth+z] = sample(x, z)
		}
	}
	return g
}

func (g *Grid) Level(x, z int) int {
	x = clamp(x, 0, g.width-1)
	z = clamp(z, 0, g.depth-1)
	return g.levels[x*g.depth+z]
}

func (g *Grid) ElevationEnabled() bool { return true }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
