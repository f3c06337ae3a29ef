// Package config gathers game settings from defaults, the environment and
// command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	GridWidth      int
	GridHeight     int
	Skips          int
	HouseMaxExtent int
	Seed           int64
	ScoresDir      string
	ScreenWidth    int
	ScreenHeight   int
	FPS            int
	Mute           bool
}

func Default() Config {
	return Config{
		GridWidth:      15,
		GridHeight:     15,
		Skips:          3,
		HouseMaxExtent: 2,
		ScoresDir:      defaultScoresDir(),
		ScreenWidth:    1280,
		ScreenHeight:   960,
		FPS:            60,
	}
}

func defaultScoresDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "deathestate")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "deathestate")
	}
	return "."
}

// Load builds a Config from env and the given arguments (without the program
// name). Seed 0 is replaced by the current time.
func Load(args []string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("deathestate", flag.ContinueOnError)
	fs.IntVar(&cfg.GridWidth, "width", cfg.GridWidth, "grid width in tiles")
	fs.IntVar(&cfg.GridHeight, "height", cfg.GridHeight, "grid height in tiles")
	fs.IntVar(&cfg.Skips, "skips", cfg.Skips, "house skips per round")
	fs.IntVar(&cfg.HouseMaxExtent, "house-extent", cfg.HouseMaxExtent, "max house extent k, shapes fit in (2k-1)x(2k-1)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 for time based)")
	fs.StringVar(&cfg.ScoresDir, "scores", cfg.ScoresDir, "directory for the high score file")
	fs.IntVar(&cfg.ScreenWidth, "screen-width", cfg.ScreenWidth, "window width in pixels")
	fs.IntVar(&cfg.ScreenHeight, "screen-height", cfg.ScreenHeight, "window height in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frame rate")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	// empty variables count as unset
	lookup := func(key string) (string, bool) {
		v, ok := lookupEnv(key)
		return v, ok && v != ""
	}
	if v, ok := lookup("DE_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DE_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := lookup("DE_SKIPS"); ok {
		skips, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DE_SKIPS: %w", err)
		}
		c.Skips = skips
	}
	if v, ok := lookup("DE_SCORES"); ok {
		c.ScoresDir = v
	}
	if v, ok := lookup("DE_MUTE"); ok {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DE_MUTE: %w", err)
		}
		c.Mute = mute
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.GridWidth < 1 || c.GridHeight < 1 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.GridWidth, c.GridHeight))
	}
	if c.Skips < 0 {
		errs = append(errs, fmt.Errorf("skips %d must not be negative", c.Skips))
	}
	if c.HouseMaxExtent < 1 {
		errs = append(errs, fmt.Errorf("house extent %d must be at least 1", c.HouseMaxExtent))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	return errors.Join(errs...)
}
