package elevation

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadGrid reads a heightmap file: a JSON array of rows, one row per x,
// each row one level per z. Ragged or empty input is rejected.
func LoadGrid(path string) (*Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]int
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("heightmap %s: %w", path, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("heightmap %s: empty grid", path)
	}
	depth := len(rows[0])
	for i, row := range rows {
		if len(row) != depth {
			return nil, fmt.Errorf("heightmap %s: row %d has %d samples, want %d", path, i, len(row), depth)
		}
	}

	return NewGrid(len(rows), depth, func(x, z int) int {
		return rows[x][z]
	}), nil
}
