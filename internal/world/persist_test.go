package world

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestPersistRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ed := NewEditor(dir, 10, 10)
	ed.SetBlock(Grass, 0, -62, 0, nil, nil)
	ed.SetBlock(Brick, 500, 10, -20, nil, nil)

	if err := ed.Persist(); err != nil {
		t.Fatalf("persist: %v", err)
	}

	// The two blocks land in different regions.
	matches, err := filepath.Glob(filepath.Join(dir, "region", "r.*.vxr"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("region files = %d, want 2 (%v)", len(matches), matches)
	}

	found := false
	for _, m := range matches {
		reg, err := ReadRegion(m)
		if err != nil {
			t.Fatalf("read region %s: %v", m, err)
		}
		if reg.Header.Version != 1 || reg.Header.Chunks != len(reg.Chunks) {
			t.Fatalf("bad header: %+v", reg.Header)
		}
		for _, ch := range reg.Chunks {
			if ch.CX == floorDiv(500, chunkSize) && ch.CZ == floorDiv(-20, chunkSize) {
				found = true
				if len(ch.Sections) != 1 {
					t.Fatalf("chunk sections = %d, want 1", len(ch.Sections))
				}
				sec := ch.Sections[0]
				if sec.Y != 0 {
					t.Fatalf("section y = %d, want 0", sec.Y)
				}
				if got := Kind(sec.Blocks[sectionIndex(500, 10, -20)]); got != Brick {
					t.Fatalf("persisted block = %v, want brick", got)
				}
			}
		}
	}
	if !found {
		t.Fatalf("chunk for (500,-20) not persisted")
	}
}

func TestPersistWritesIndex(t *testing.T) {
	dir := t.TempDir()
	ed := NewEditor(dir, 4, 4)
	ed.SetBlock(Grass, 0, 0, 0, nil, nil)

	if err := ed.Persist(); err != nil {
		t.Fatalf("persist: %v", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "index.db"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer db.Close()

	var runs int
	if err := db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}

	var regions, blocks int
	if err := db.QueryRow(`SELECT COUNT(*) FROM regions`).Scan(&regions); err != nil {
		t.Fatalf("count regions: %v", err)
	}
	if regions != 1 {
		t.Fatalf("regions = %d, want 1", regions)
	}
	if err := db.QueryRow(`SELECT blocks_written FROM runs`).Scan(&blocks); err != nil {
		t.Fatalf("blocks_written: %v", err)
	}
	if blocks != 1 {
		t.Fatalf("blocks_written = %d, want 1", blocks)
	}

	var palette int
	if err := db.QueryRow(`SELECT COUNT(*) FROM palette`).Scan(&palette); err != nil {
		t.Fatalf("count palette: %v", err)
	}
	if palette != len(Palette()) {
		t.Fatalf("palette rows = %d, want %d", palette, len(Palette()))
	}
}

func TestPersistTwiceFails(t *testing.T) {
	dir := t.TempDir()
	ed := NewEditor(dir, 0, 0)
	ed.SetBlock(Grass, 0, 0, 0, nil, nil)

	if err := ed.Persist(); err != nil {
		t.Fatalf("first persist: %v", err)
	}
	if err := ed.Persist(); err == nil {
		t.Fatalf("second persist must fail")
	}
}
