package elevation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFlatOracle(t *testing.T) {
	f := Flat{Y: -62}
	if f.ElevationEnabled() {
		t.Fatalf("flat oracle must report elevation disabled")
	}
	if f.Level(0, 0) != -62 || f.Level(999, -5) != -62 {
		t.Fatalf("flat level not constant")
	}
}

func TestGridOracleClampsToEdges(t *testing.T) {
	g := NewGrid(3, 2, func(x, z int) int { return x*10 + z })
	if !g.ElevationEnabled() {
		t.Fatalf("grid oracle must report elevation enabled")
	}
	if got := g.Level(1, 1); got != 11 {
		t.Fatalf("Level(1,1) = %d, want 11", got)
	}
	if got := g.Level(-5, 0); got != 0 {
		t.Fatalf("Level clamps x low: %d", got)
	}
	if got := g.Level(99, 99); got != 21 {
		t.Fatalf("Level clamps high: %d, want 21", got)
	}
}

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heights.json")
	if err := os.WriteFile(path, []byte(`[[1,2,3],[4,5,6]]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	g, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := g.Level(1, 2); got != 6 {
		t.Fatalf("Level(1,2) = %d, want 6", got)
	}
}

func TestLoadGridRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heights.json")
	if err := os.WriteFile(path, []byte(`[[1,2],[3]]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadGrid(path); err == nil {
		t.Fatalf("ragged heightmap accepted")
	}
}

func TestLoadGridRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heights.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadGrid(path); err == nil {
		t.Fatalf("empty heightmap accepted")
	}
}
