// SPDX-License-Identifier: Unlicense OR MIT

// Package display opens a GLFW window with an OpenGL context and turns
// its callbacks into Gio input events.
//
// GLFW requires its functions to be called from the main thread; the
// caller must lock the main goroutine with runtime.LockOSThread.
package display

import (
	"fmt"
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options configures a window.
type Options struct {
	Width, Height int
	Title         string
	// Samples is the multisample count; 0 disables multisampling.
	Samples int
	VSync   bool
}

// CloseEvent is emitted when the user asks to close the window.
type CloseEvent struct{}

// ResizeEvent is emitted when the framebuffer changes size.
type ResizeEvent struct {
	Size image.Point
}

func (CloseEvent) ImplementsEvent()  {}
func (ResizeEvent) ImplementsEvent() {}

// Window is a GLFW window whose OpenGL context is current on the
// calling thread.
type Window struct {
	win     *glfw.Window
	pending []event.Event

	start   time.Time
	pos     f32.Point
	buttons pointer.Buttons
}

// Open initializes GLFW and creates a window with a current OpenGL 3.3
// core context.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// Gio assumes a sRGB backbuffer.
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.Samples, opts.Samples)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: create window: %w", err)
	}
	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	w := &Window{win: win, start: time.Now()}
	w.registerCallbacks()
	return w, nil
}

// Pump processes window-system events and returns the events they
// produced. A zero timeout polls, a negative timeout waits for input,
// and a positive timeout waits at most that long.
func (w *Window) Pump(timeout time.Duration) []event.Event {
	switch {
	case timeout == 0:
		glfw.PollEvents()
	case timeout < 0:
		glfw.WaitEvents()
	default:
		glfw.WaitEventsTimeout(timeout.Seconds())
	}
	evts := w.pending
	w.pending = nil
	return evts
}

// Size returns the framebuffer size in pixels and the content scale.
func (w *Window) Size() (image.Point, float32) {
	width, height := w.win.GetFramebufferSize()
	scale, _ := w.win.GetContentScale()
	if scale <= 0 {
		scale = 1
	}
	return image.Pt(width, height), scale
}

// Present swaps the front and back buffers. GLFW panics on context
// errors, so Present itself has nothing to report.
func (w *Window) Present() {
	w.win.SwapBuffers()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) queue(e event.Event) {
	w.pending = append(w.pending, e)
}

func (w *Window) now() time.Duration {
	return time.Since(w.start)
}

func (w *Window) registerCallbacks() {
	w.win.SetCloseCallback(func(*glfw.Window) {
		w.queue(CloseEvent{})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue(ResizeEvent{Size: image.Pt(width, height)})
	})
	w.win.SetCursorPosCallback(func(win *glfw.Window, x, y float64) {
		w.pos = w.toFramebuffer(win, x, y)
		w.queue(pointer.Event{
			Kind:     pointer.Move,
			Source:   pointer.Mouse,
			Time:     w.now(),
			Buttons:  w.buttons,
			Position: w.pos,
		})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn := convertButton(b)
		var kind pointer.Kind
		switch action {
		case glfw.Press:
			kind = pointer.Press
			w.buttons |= btn
		case glfw.Release:
			kind = pointer.Release
			w.buttons &^= btn
		default:
			return
		}
		w.queue(pointer.Event{
			Kind:      kind,
			Source:    pointer.Mouse,
			Time:      w.now(),
			Buttons:   w.buttons,
			Position:  w.pos,
			Modifiers: convertMods(mods),
		})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.queue(pointer.Event{
			Kind:     pointer.Scroll,
			Source:   pointer.Mouse,
			Time:     w.now(),
			Buttons:  w.buttons,
			Position: w.pos,
			Scroll:   f32.Pt(float32(-xoff)*scrollScale, float32(-yoff)*scrollScale),
		})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if e, ok := convertKey(k, action, mods); ok {
			w.queue(e)
		}
	})
}

// toFramebuffer converts window coordinates to framebuffer pixels,
// which differ on high density displays.
func (w *Window) toFramebuffer(win *glfw.Window, x, y float64) f32.Point {
	ww, wh := win.GetSize()
	fw, fh := win.GetFramebufferSize()
	sx, sy := float32(1), float32(1)
	if ww > 0 && wh > 0 {
		sx, sy = float32(fw)/float32(ww), float32(fh)/float32(wh)
	}
	return f32.Pt(float32(x)*sx, float32(y)*sy)
}

// scrollScale converts GLFW scroll steps to pixels.
const scrollScale = 40
