// SPDX-License-Identifier: Unlicense OR MIT

// Command minimalgui opens a window with a button that rolls a
// six-sided die and shows the result.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"gioui.org/io/event"
	"gioui.org/widget/material"

	"github.com/minimal-gui/minimalgui/internal/app"
	"github.com/minimal-gui/minimalgui/internal/assets"
	"github.com/minimal-gui/minimalgui/internal/config"
	"github.com/minimal-gui/minimalgui/internal/dice"
	"github.com/minimal-gui/minimalgui/internal/display"
	"github.com/minimal-gui/minimalgui/internal/governor"
	"github.com/minimal-gui/minimalgui/internal/render"
	"github.com/minimal-gui/minimalgui/internal/ui"
)

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		os.Exit(app.ExitCode(err))
	}
}

func run() error {
	stdout := log.New(os.Stdout, "", 0)
	// Resolve the font before opening the window so a missing asset
	// never leaves a window behind.
	cfg, fnt, err := setup(stdout)
	if err != nil {
		return err
	}

	win, err := display.Open(display.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Title:   cfg.Title,
		Samples: cfg.Samples,
		VSync:   cfg.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	rend, err := render.New(render.Background)
	if err != nil {
		return err
	}
	defer rend.Release()

	th := material.NewTheme()
	th.Shaper = fnt.Shaper()
	view, err := ui.NewView(th)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a := app.New(app.Config{
		Window:   win,
		Renderer: rend,
		Governor: governor.New[event.Event](cfg.FrameInterval, nil),
		View:     view,
		Roller:   dice.NewRoller(nil),
		Logger:   stdout,
	})
	return a.Run()
}

// setup loads the configuration and the font, and reports the font
// on stdout.
func setup(stdout *log.Logger) (config.Config, *assets.Font, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	fnt, err := loadFont(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	stdout.Printf("Loaded font %q", fnt.Path)
	return cfg, fnt, nil
}

func loadFont(cfg config.Config) (*assets.Font, error) {
	path := cfg.FontPath
	if path == "" {
		path = assets.FontPath
	}
	if !filepath.IsAbs(path) {
		dir := cfg.AssetsDir
		if dir == "" {
			var err error
			dir, err = assets.FindDefault()
			if err != nil {
				return nil, err
			}
		}
		path = filepath.Join(dir, path)
	}
	return assets.LoadFont(path)
}
