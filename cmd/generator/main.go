package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/schollz/progressbar/v3"

	"voxelatlas/internal/config"
	"voxelatlas/internal/elevation"
	"voxelatlas/internal/gen"
	"voxelatlas/internal/osm"
	"voxelatlas/internal/progress"
	"voxelatlas/internal/transport/progressws"
	"voxelatlas/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "run config yaml (optional; flags override)")
		elemPath   = flag.String("elements", "elements.jsonl", "classified element input (jsonl)")
		outDir     = flag.String("out", "", "world output directory")
		heightmap  = flag.String("heightmap", "", "heightmap json (required with -terrain)")

		terrain = flag.Bool("terrain", false, "elevation-aware ground generation")
		winter  = flag.Bool("winter", false, "snow surface layer")
		fill    = flag.Bool("fill", false, "fill underground with stone down to bedrock")
		debug   = flag.Bool("debug", false, "verbose per-element diagnostics")

		scaleX      = flag.Int("scale-x", -1, "grid extent along x")
		scaleZ      = flag.Int("scale-z", -1, "grid extent along z")
		groundLevel = flag.Int("ground-level", -999, "flat-mode ground elevation")

		progressListen = flag.String("progress-listen", "", "websocket progress feed listen address (optional)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[generator] ", log.LstdFlags|log.Lmicroseconds)

	cfg := config.Defaults()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatalf("load config: %v", err)
		}
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *terrain {
		cfg.Terrain = true
	}
	if *winter {
		cfg.Winter = true
	}
	if *fill {
		cfg.FillGround = true
	}
	if *debug {
		cfg.Debug = true
	}
	if *scaleX >= 0 {
		cfg.ScaleX = *scaleX
	}
	if *scaleZ >= 0 {
		cfg.ScaleZ = *scaleZ
	}
	if *groundLevel != -999 {
		cfg.GroundLevel = *groundLevel
	}
	if *progressListen != "" {
		cfg.ProgressListen = *progressListen
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	logger.Printf("[1/3] loading elements from %s", *elemPath)
	elements, err := osm.LoadFile(*elemPath)
	if err != nil {
		logger.Fatalf("load elements: %v", err)
	}

	var oracle elevation.Oracle
	if cfg.Terrain {
		if *heightmap == "" {
			logger.Fatalf("-terrain requires -heightmap")
		}
		grid, err := elevation.LoadGrid(*heightmap)
		if err != nil {
			logger.Fatalf("load heightmap: %v", err)
		}
		oracle = grid
	} else {
		oracle = elevation.Flat{Y: cfg.GroundLevel}
	}

	var guiSink progress.Sink
	if cfg.ProgressListen != "" {
		b := progressws.NewBroadcaster(logger)
		defer b.Close()
		mux := http.NewServeMux()
		mux.Handle("/v1/progress", b.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.ProgressListen, mux); err != nil {
				logger.Printf("progress feed: %v", err)
			}
		}()
		logger.Printf("progress feed on ws://%s/v1/progress", cfg.ProgressListen)
		guiSink = b
	}

	opts := gen.Options{
		Logger:   logger,
		Progress: guiSink,
		Steps: func(total int, label string) progress.StepSink {
			return barSink{progressbar.NewOptions(total,
				progressbar.OptionSetDescription(label),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(45),
				progressbar.OptionClearOnFinish(),
			)}
		},
	}

	editor := world.NewEditor(cfg.OutputDir, cfg.ScaleX, cfg.ScaleZ)

	logger.Printf("[2/3] generating world into %s", cfg.OutputDir)
	if err := gen.GenerateWorld(elements, cfg, oracle, editor, opts); err != nil {
		logger.Fatalf("generate: %v", err)
	}
	logger.Printf("[3/3] world generation completed")
}

type barSink struct {
	bar *progressbar.ProgressBar
}

func (s barSink) Add(n int) { _ = s.bar.Add(n) }
