// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the program configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the window and loop settings. The defaults reproduce
// the fixed behaviour of the program.
type Config struct {
	Width         int           `env:"MINIMALGUI_WIDTH" envDefault:"800"`
	Height        int           `env:"MINIMALGUI_HEIGHT" envDefault:"600"`
	Title         string        `env:"MINIMALGUI_TITLE" envDefault:"minimal-gui"`
	Samples       int           `env:"MINIMALGUI_SAMPLES" envDefault:"4"`
	VSync         bool          `env:"MINIMALGUI_VSYNC" envDefault:"true"`
	FrameInterval time.Duration `env:"MINIMALGUI_FRAME_INTERVAL" envDefault:"16ms"`
	// AssetsDir bypasses the asset folder search when set.
	AssetsDir string `env:"MINIMALGUI_ASSETS_DIR"`
	// FontPath is relative to the asset folder unless absolute. Empty
	// selects the bundled NotoSans path.
	FontPath string `env:"MINIMALGUI_FONT"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the program cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Samples < 0 {
		errs = append(errs, fmt.Errorf("samples %d must not be negative", c.Samples))
	}
	if c.FrameInterval < 0 {
		errs = append(errs, fmt.Errorf("frame interval %v must not be negative", c.FrameInterval))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
