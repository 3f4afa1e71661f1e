// SPDX-License-Identifier: Unlicense OR MIT

// Package app runs the dice roller's control loop: it pulls governed
// batches of window events, feeds them to the Gio input router,
// declares the widget tree and renders changed frames.
package app

import (
	"image"
	"log"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/minimal-gui/minimalgui/internal/dice"
	"github.com/minimal-gui/minimalgui/internal/display"
	"github.com/minimal-gui/minimalgui/internal/governor"
	"github.com/minimal-gui/minimalgui/internal/ui"
)

// Window is the display surface the loop drives.
type Window interface {
	governor.Source[event.Event]
	// Size returns the framebuffer size and the content scale.
	Size() (image.Point, float32)
	// Present shows the most recently rendered frame.
	Present()
}

// Renderer draws frame ops into the window's surface.
type Renderer interface {
	Render(frame *op.Ops, size image.Point) error
}

// App is the running program. Its state is owned by the loop
// goroutine.
type App struct {
	win  Window
	rend Renderer
	gov  *governor.Governor[event.Event]
	view *ui.View
	log  *log.Logger

	router input.Router
	ops    op.Ops
	state  dice.State
	roller *dice.Roller
	now    func() time.Time
}

// Config collects the collaborators of an App.
type Config struct {
	Window   Window
	Renderer Renderer
	Governor *governor.Governor[event.Event]
	View     *ui.View
	Roller   *dice.Roller
	Logger   *log.Logger
	// Now is the time source for layout contexts.
	Now func() time.Time
}

// New returns an App ready to Run.
func New(cfg Config) *App {
	gov := cfg.Governor
	if gov == nil {
		gov = governor.New[event.Event](0, nil)
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRoller(nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &App{
		win:    cfg.Window,
		rend:   cfg.Renderer,
		gov:    gov,
		view:   cfg.View,
		log:    logger,
		roller: roller,
		now:    now,
	}
}

// State returns the application state.
func (a *App) State() dice.State {
	return a.state
}

// Run loops until the window is closed or Escape is pressed. It
// returns the first rendering error.
func (a *App) Run() error {
	for {
		for _, e := range a.gov.Next(a.win) {
			if a.translate(e) {
				a.gov.NeedsUpdate()
			}
			if display.IsQuit(e) {
				return nil
			}
		}
		if err := a.frame(); err != nil {
			return err
		}
	}
}

// translate hands e to the UI and reports whether it did so.
func (a *App) translate(e event.Event) bool {
	switch e.(type) {
	case display.CloseEvent:
		return false
	case display.ResizeEvent:
		// The next frame reads the new size from the window.
		return true
	default:
		a.router.Queue(e)
		return true
	}
}

func (a *App) frame() error {
	size, scale := a.win.Size()
	a.ops.Reset()
	gtx := layout.Context{
		Ops:         &a.ops,
		Now:         a.now(),
		Source:      a.router.Source(),
		Metric:      unit.Metric{PxPerDp: scale, PxPerSp: scale},
		Constraints: layout.Exact(size),
	}
	f := a.view.Declare(gtx, &a.state, a.roller)
	for _, r := range f.Rolls {
		a.log.Printf("Rolled %d", r)
	}
	a.router.Frame(gtx.Ops)
	changed := f.Changed
	if t, ok := a.router.WakeupTime(); ok {
		// Animations and events the frame did not consume need
		// another pass.
		a.gov.WakeAt(t)
		changed = true
	}
	if !changed {
		return nil
	}
	if err := a.rend.Render(gtx.Ops, size); err != nil {
		return err
	}
	a.win.Present()
	return nil
}
