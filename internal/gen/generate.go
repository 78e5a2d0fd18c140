// Package gen is the generation core: it routes classified elements to
// feature generators, synthesizes the layered ground beneath them, and
// persists the finished world.
package gen

import (
	"fmt"
	"io"
	"log"

	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/osm"
	"voxelatlas/internal/progress"
	"voxelatlas/internal/world"
)

// GUI percentage layout: the element phase spans 11-60, the ground phase
// 60-90; 100 marks successful completion only.
const (
	elementPhaseStart = 11.0
	elementPhaseSpan  = 49.0
	groundPhaseStart  = 60.0
	groundPhaseSpan   = 30.0
)

// Options carries the injected collaborators of one run. Zero values are
// safe: logging and progress default to no-ops.
type Options struct {
	Logger *log.Logger

	// Progress receives the coalesced percentage feed.
	Progress progress.Sink

	// Steps builds the interactive step counter sink for a phase, given
	// its total unit count. Nil disables the console channel.
	Steps func(total int, label string) progress.StepSink
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

func (o Options) steps(total int, label string) progress.StepSink {
	if o.Steps == nil {
		return nil
	}
	return o.Steps(total, label)
}

// GenerateWorld runs one full generation pass: classify and dispatch
// every element, sweep the ground, persist once. The only surfaced error
// is a persistence failure; it short-circuits before the terminal 100%
// notification.
func GenerateWorld(elements []osm.Element, cfg config.Config, or elevation.Oracle, ed *world.Editor, opts Options) error {
	logger := opts.logger()
	tracker := progress.NewTracker(opts.Progress)

	logger.Printf("processing %d elements", len(elements))
	if cfg.Terrain {
		tracker.Mark(10, "Fetching elevation...")
	}
	tracker.Mark(elementPhaseStart, "Processing terrain...")

	phase := tracker.Phase(elementPhaseSpan, len(elements))
	steps := progress.NewCounter(opts.steps(len(elements), "elements"), len(elements))

	for i := range elements {
		e := &elements[i]
		steps.Step()
		phase.Step()

		r := dispatch(e)
		if cfg.Debug {
			name := "(skipped)"
			if r != nil {
				name = r.name
			}
			logger.Printf("element %d (%s) -> %s", e.ID, e.Kind, name)
		}
		if r == nil {
			continue
		}
		r.generate(ed, e, or, cfg)
	}
	steps.Finish()

	columns := (cfg.ScaleX + 1) * (cfg.ScaleZ + 1)
	logger.Printf("generating ground (%d columns)", columns)
	tracker.Mark(groundPhaseStart, "Generating ground...")

	groundPhase := tracker.Phase(groundPhaseSpan, columns)
	groundSteps := progress.NewCounter(opts.steps(columns, "ground"), columns)
	synthesizeTerrain(ed, or, cfg, groundPhase, groundSteps)
	groundSteps.Finish()

	if err := ed.Persist(); err != nil {
		return fmt.Errorf("save world: %w", err)
	}

	tracker.Mark(100, "Done! World generation completed.")
	logger.Printf("done, world saved")
	return nil
}
