package world

// Vertical world bounds. MinY is the bedrock floor; the terrain
// synthesizer and the underground fill both anchor on it.
const (
	MinY = -64
	MaxY = 320
)

const (
	chunkSize   = 16
	sectionSize = chunkSize * chunkSize * chunkSize
)

type ChunkKey struct {
	CX int
	CZ int
}

// section holds a 16x16x16 cube of palette ids, indexed x fastest,
// then z, then y.
type section struct {
	Blocks []Kind
}

// Chunk is one 16x16 column of sections, keyed by section Y
// (floorDiv(y, 16)).
type Chunk struct {
	CX, CZ   int
	Sections map[int]*section
}

// Editor is the mutable world buffer: the single voxel sink one
// generation run writes into. Not safe for concurrent use; a run is
// single-threaded by design.
type Editor struct {
	outputDir string
	scaleX    int
	scaleZ    int

	chunks map[ChunkKey]*Chunk

	blocksWritten int
	persisted     bool
}

// NewEditor creates an empty world buffer that will persist under
// outputDir.
func NewEditor(outputDir string, scaleX, scaleZ int) *Editor {
	return &Editor{
		outputDir: outputDir,
		scaleX:    scaleX,
		scaleZ:    scaleZ,
		chunks:    map[ChunkKey]*Chunk{},
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func sectionIndex(x, y, z int) int {
	return mod(x, chunkSize) + mod(z, chunkSize)*chunkSize + mod(y, chunkSize)*chunkSize*chunkSize
}

func inBounds(y int) bool {
	return y >= MinY && y < MaxY
}

func (e *Editor) chunkAt(x, z int, create bool) *Chunk {
	key := ChunkKey{CX: floorDiv(x, chunkSize), CZ: floorDiv(z, chunkSize)}
	ch := e.chunks[key]
	if ch == nil && create {
		ch = &Chunk{CX: key.CX, CZ: key.CZ, Sections: map[int]*section{}}
		e.chunks[key] = ch
	}
	return ch
}

func (e *Editor) get(x, y, z int) Kind {
	if !inBounds(y) {
		return Air
	}
	ch := e.chunkAt(x, z, false)
	if ch == nil {
		return Air
	}
	sec := ch.Sections[floorDiv(y, chunkSize)]
	if sec == nil {
		return Air
	}
	return sec.Blocks[sectionIndex(x, y, z)]
}

func (e *Editor) put(k Kind, x, y, z int) {
	ch := e.chunkAt(x, z, true)
	sy := floorDiv(y, chunkSize)
	sec := ch.Sections[sy]
	if sec == nil {
		sec = &section{Blocks: make([]Kind, sectionSize)}
		ch.Sections[sy] = sec
	}
	i := sectionIndex(x, y, z)
	if sec.Blocks[i] == Air && k != Air {
		e.blocksWritten++
	}
	sec.Blocks[i] = k
}

// BlockAt reports whether a non-air block occupies (x, y, z).
func (e *Editor) BlockAt(x, y, z int) bool {
	return e.get(x, y, z) != Air
}

// KindAt returns the palette id at (x, y, z); Air for empty or
// out-of-range cells.
func (e *Editor) KindAt(x, y, z int) Kind {
	return e.get(x, y, z)
}

func contains(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

// SetBlock writes one block. An already occupied cell is left alone
// unless a whitelist lists the existing kind, or a blacklist is given and
// does not list it. Empty cells are always writable.
func (e *Editor) SetBlock(k Kind, x, y, z int, whitelist, blacklist []Kind) {
	if !inBounds(y) {
		return
	}
	existing := e.get(x, y, z)
	if existing != Air {
		replace := false
		if whitelist != nil {
			replace = contains(whitelist, existing)
		} else if blacklist != nil {
			replace = !contains(blacklist, existing)
		}
		if !replace {
			return
		}
	}
	e.put(k, x, y, z)
}

// FillBlocks writes the axis-aligned box spanning the two corners
// inclusive, applying SetBlock placement rules per cell.
func (e *Editor) FillBlocks(k Kind, x0, y0, z0, x1, y1, z1 int, whitelist, blacklist []Kind) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if z1 < z0 {
		z0, z1 = z1, z0
	}
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				e.SetBlock(k, x, y, z, whitelist, blacklist)
			}
		}
	}
}

// BlocksWritten returns how many previously empty cells have been filled.
func (e *Editor) BlocksWritten() int { return e.blocksWritten }

// ChunkCount returns the number of loaded chunks.
func (e *Editor) ChunkCount() int { return len(e.chunks) }
