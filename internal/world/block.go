package world

// Kind is a palette id for one block type.
type Kind uint16

const (
	Air Kind = iota
	Grass
	Dirt
	Stone
	Bedrock
	Snow
	Water
	Sand
	Gravel
	Sandstone
	Planks
	Cobblestone
	OakLog
	OakLeaves
	Fence
	Rail
	Asphalt
	DirtPath
	Door
	Glass
	Brick
	Sign
)

var kindNames = map[Kind]string{
	Air:         "air",
	Grass:       "grass_block",
	Dirt:        "dirt",
	Stone:       "stone",
	Bedrock:     "bedrock",
	Snow:        "snow_block",
	Water:       "water",
	Sand:        "sand",
	Gravel:      "gravel",
	Sandstone:   "sandstone",
	Planks:      "oak_planks",
	Cobblestone: "cobblestone",
	OakLog:      "oak_log",
	OakLeaves:   "oak_leaves",
	Fence:       "oak_fence",
	Rail:        "rail",
	Asphalt:     "black_concrete",
	DirtPath:    "dirt_path",
	Door:        "oak_door",
	Glass:       "glass",
	Brick:       "bricks",
	Sign:        "oak_sign",
}

func (k Kind) Name() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Palette returns the full id-to-name mapping, for the persisted palette
// table.
func Palette() map[Kind]string {
	out := make(map[Kind]string, len(kindNames))
	for k, n := range kindNames {
		out[k] = n
	}
	return out
}
