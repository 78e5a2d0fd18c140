package world

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Regions group 32x32 chunks per file, mirroring the usual region layout
// of chunked world formats.
const regionChunks = 32

type RegionKey struct {
	RX int
	RZ int
}

type RegionHeader struct {
	Version int    `json:"version"`
	RunID   string `json:"run_id"`
	RX      int    `json:"rx"`
	RZ      int    `json:"rz"`
	Chunks  int    `json:"chunks"`
}

type SectionV1 struct {
	Y      int
	Blocks []uint16
}

type ChunkV1 struct {
	CX, CZ   int
	Sections []SectionV1
}

type RegionV1 struct {
	Header RegionHeader
	Chunks []ChunkV1
}

// Persist flushes the whole buffer to durable storage: one zstd-compressed
// region file per 32x32-chunk region under <out>/region, plus a SQLite run
// index. It must be called exactly once, after all writes.
func (e *Editor) Persist() error {
	if e.persisted {
		return fmt.Errorf("persist called twice")
	}
	e.persisted = true

	runID := uuid.NewString()
	started := time.Now().UTC()

	regionDir := filepath.Join(e.outputDir, "region")
	if err := os.MkdirAll(regionDir, 0o755); err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	regions := e.groupRegions()
	keys := make([]RegionKey, 0, len(regions))
	for k := range regions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].RX != keys[j].RX {
			return keys[i].RX < keys[j].RX
		}
		return keys[i].RZ < keys[j].RZ
	})

	idx, err := openIndex(filepath.Join(e.outputDir, "index.db"))
	if err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	defer idx.Close()

	for _, k := range keys {
		reg := regions[k]
		reg.Header = RegionHeader{
			Version: 1,
			RunID:   runID,
			RX:      k.RX,
			RZ:      k.RZ,
			Chunks:  len(reg.Chunks),
		}
		name := fmt.Sprintf("r.%d.%d.vxr", k.RX, k.RZ)
		path := filepath.Join(regionDir, name)
		if err := writeRegion(path, reg); err != nil {
			return fmt.Errorf("persist region %s: %w", name, err)
		}
		if err := idx.insertRegion(runID, k, name, len(reg.Chunks)); err != nil {
			return fmt.Errorf("persist index: %w", err)
		}
	}

	if err := idx.insertRun(runRow{
		ID:            runID,
		StartedAt:     started,
		FinishedAt:    time.Now().UTC(),
		ScaleX:        e.scaleX,
		ScaleZ:        e.scaleZ,
		Chunks:        len(e.chunks),
		BlocksWritten: e.blocksWritten,
		Regions:       len(keys),
	}); err != nil {
		return fmt.Errorf("persist index: %w", err)
	}
	if err := idx.insertPalette(); err != nil {
		return fmt.Errorf("persist index: %w", err)
	}
	return nil
}

func (e *Editor) groupRegions() map[RegionKey]*RegionV1 {
	regions := map[RegionKey]*RegionV1{}

	keys := make([]ChunkKey, 0, len(e.chunks))
	for k := range e.chunks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].CX != keys[j].CX {
			return keys[i].CX < keys[j].CX
		}
		return keys[i].CZ < keys[j].CZ
	})

	for _, ck := range keys {
		ch := e.chunks[ck]
		rk := RegionKey{RX: floorDiv(ck.CX, regionChunks), RZ: floorDiv(ck.CZ, regionChunks)}
		reg := regions[rk]
		if reg == nil {
			reg = &RegionV1{}
			regions[rk] = reg
		}

		cv := ChunkV1{CX: ch.CX, CZ: ch.CZ}
		sys := make([]int, 0, len(ch.Sections))
		for sy := range ch.Sections {
			sys = append(sys, sy)
		}
		sort.Ints(sys)
		for _, sy := range sys {
			sec := ch.Sections[sy]
			blocks := make([]uint16, len(sec.Blocks))
			for i, b := range sec.Blocks {
				blocks[i] = uint16(b)
			}
			cv.Sections = append(cv.Sections, SectionV1{Y: sy, Blocks: blocks})
		}
		reg.Chunks = append(reg.Chunks, cv)
	}
	return regions
}

func writeRegion(path string, reg *RegionV1) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer bw.Flush()

	hb, _ := json.Marshal(reg.Header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(reg); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// ReadRegion loads one region file back, for tooling and tests.
func ReadRegion(path string) (RegionV1, error) {
	var reg RegionV1
	f, err := os.Open(path)
	if err != nil {
		return reg, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return reg, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	// Header line is repeated inside the gob body; skip it.
	if _, err := br.ReadBytes('\n'); err != nil {
		return reg, err
	}
	if err := gob.NewDecoder(br).Decode(&reg); err != nil {
		return reg, fmt.Errorf("gob decode: %w", err)
	}
	return reg, nil
}
