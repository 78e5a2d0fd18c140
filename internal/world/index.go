package world

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// runIndex is the SQLite read-model written alongside the region files.
// It exists for tooling (listing runs, mapping regions to files); the
// region files alone are sufficient to reconstruct the world.
type runIndex struct {
	db *sql.DB
}

type runRow struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	ScaleX        int
	ScaleZ        int
	Chunks        int
	BlocksWritten int
	Regions       int
}

func openIndex(path string) (*runIndex, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &runIndex{db: db}, nil
}

func (x *runIndex) Close() error { return x.db.Close() }

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			scale_x INTEGER NOT NULL,
			scale_z INTEGER NOT NULL,
			chunks INTEGER NOT NULL,
			blocks_written INTEGER NOT NULL,
			regions INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS regions (
			run_id TEXT NOT NULL,
			rx INTEGER NOT NULL,
			rz INTEGER NOT NULL,
			file TEXT NOT NULL,
			chunks INTEGER NOT NULL,
			PRIMARY KEY (run_id, rx, rz)
		);`,
		`CREATE TABLE IF NOT EXISTS palette (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (x *runIndex) insertRun(r runRow) error {
	_, err := x.db.Exec(
		`INSERT INTO runs (id, started_at, finished_at, scale_x, scale_z, chunks, blocks_written, regions)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.StartedAt.Format(time.RFC3339Nano),
		r.FinishedAt.Format(time.RFC3339Nano),
		r.ScaleX, r.ScaleZ, r.Chunks, r.BlocksWritten, r.Regions,
	)
	return err
}

func (x *runIndex) insertRegion(runID string, k RegionKey, file string, chunks int) error {
	_, err := x.db.Exec(
		`INSERT INTO regions (run_id, rx, rz, file, chunks) VALUES (?, ?, ?, ?, ?)`,
		runID, k.RX, k.RZ, file, chunks,
	)
	return err
}

func (x *runIndex) insertPalette() error {
	for id, name := range Palette() {
		if _, err := x.db.Exec(
			`INSERT OR REPLACE INTO palette (id, name) VALUES (?, ?)`,
			int(id), name,
		); err != nil {
			return err
		}
	}
	return nil
}
