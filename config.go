package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/olivierh59500/cloth-tear-go/cloth"
)

// Config is everything the game needs at startup.
type Config struct {
	Width, Height int
	Title         string

	Params cloth.Params
	Scene  cloth.SceneConfig
	Throw  cloth.ThrowPolicy

	DepthStep    float64 // pixels of depth per arrow key press
	WindStrength float64
	WindSeed     int64
}

// DefaultConfig returns the stock setup.
func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    720,
		Title:     "Cloth Simulation",
		Params:    cloth.DefaultParams(),
		Scene:     cloth.DefaultSceneConfig(),
		Throw:     cloth.ThrowFromCenter,
		DepthStep: 100,
		WindSeed:  1,
	}
}

// LoadConfig starts from DefaultConfig and applies CLOTH_* variables from the
// environment, falling back to envFile. A missing envFile is not an error.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = vars
			log.Printf("Loaded %d variables from %s", len(vars), envFile)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := cfg.apply(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// apply overrides fields from lookup and validates the result.
func (c *Config) apply(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"CLOTH_WIDTH", &c.Width},
		{"CLOTH_HEIGHT", &c.Height},
		{"CLOTH_GRID_SIZE", &c.Scene.GridSize},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"CLOTH_REST_LENGTH", &c.Scene.RestLength},
		{"CLOTH_STIFFNESS", &c.Scene.Stiffness},
		{"CLOTH_SPACING", &c.Scene.Spacing},
		{"CLOTH_SPAWN_MASS", &c.Scene.SpawnMass},
		{"CLOTH_SPAWN_SPEED", &c.Scene.SpawnSpeed},
		{"CLOTH_GRAVITY", &c.Params.Gravity},
		{"CLOTH_FRICTION", &c.Params.Friction},
		{"CLOTH_RESTITUTION", &c.Params.Restitution},
		{"CLOTH_BREAK_THRESHOLD", &c.Params.BreakThreshold},
		{"CLOTH_ATTRACT_K", &c.Params.AttractK},
		{"CLOTH_ATTRACT_EPSILON", &c.Params.AttractEpsilon},
		{"CLOTH_SCALE", &c.Params.Scale},
		{"CLOTH_DEPTH_STEP", &c.DepthStep},
		{"CLOTH_WIND", &c.WindStrength},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = x
	}

	if v, ok := lookup("CLOTH_TICK"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CLOTH_TICK: %w", err)
		}
		c.Params.TickPeriod = d
	}
	if v, ok := lookup("CLOTH_WIND_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("CLOTH_WIND_SEED: %w", err)
		}
		c.WindSeed = n
	}
	if v, ok := lookup("CLOTH_THROW"); ok {
		p, err := cloth.ParseThrowPolicy(v)
		if err != nil {
			return fmt.Errorf("CLOTH_THROW: %w", err)
		}
		c.Throw = p
	}
	if v, ok := lookup("CLOTH_TITLE"); ok {
		c.Title = v
	}

	return c.Validate()
}

// Validate checks the window and simulation settings.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if err := c.Params.Validate(); err != nil {
		return err
	}
	return c.Scene.Validate()
}

// TPS is the update rate matching the tick period.
func (c Config) TPS() int {
	tps := int(time.Second / c.Params.TickPeriod)
	if tps < 1 {
		return 1
	}
	return tps
}
