package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the immutable per-run generation settings.
type Config struct {
	// OutputDir is the world output directory; region files and the run
	// index are written under it.
	OutputDir string `yaml:"output_dir"`

	// Terrain enables elevation-aware ground generation.
	Terrain bool `yaml:"terrain"`
	// Winter swaps the surface layer to snow.
	Winter bool `yaml:"winter"`
	// FillGround fills columns down to bedrock with stone.
	FillGround bool `yaml:"fill_ground"`
	// Debug enables verbose per-element diagnostics.
	Debug bool `yaml:"debug"`

	// ScaleX and ScaleZ are the horizontal grid extents; columns span
	// [0, ScaleX] x [0, ScaleZ] inclusive.
	ScaleX int `yaml:"scale_x"`
	ScaleZ int `yaml:"scale_z"`

	// GroundLevel is the flat-mode ground elevation.
	GroundLevel int `yaml:"ground_level"`

	// ProgressListen, when set, serves the websocket progress feed on this
	// address (e.g. "127.0.0.1:8091").
	ProgressListen string `yaml:"progress_listen"`
}

func Defaults() Config {
	return Config{
		OutputDir:   "./world",
		GroundLevel: -62,
	}
}

func Load(path string) (Config, error) {
	c := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.ScaleX < 0 || c.ScaleZ < 0 {
		return fmt.Errorf("scale_x/scale_z must be >= 0 (got %d, %d)", c.ScaleX, c.ScaleZ)
	}
	return nil
}
