// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/minimal-gui/minimalgui/internal/dice"
)

type harness struct {
	r     input.Router
	ops   op.Ops
	view  *View
	st    dice.State
	rolls *dice.Roller
}

func newHarness(t *testing.T, seq ...byte) *harness {
	t.Helper()
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	v, err := NewView(th)
	if err != nil {
		t.Fatal(err)
	}
	return &harness{view: v, rolls: dice.NewRoller(dice.NewBytes(seq...))}
}

func (h *harness) frame() Frame {
	h.ops.Reset()
	gtx := layout.Context{
		Ops:         &h.ops,
		Source:      h.r.Source(),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(800, 600)),
	}
	f := h.view.Declare(gtx, &h.st, h.rolls)
	h.r.Frame(gtx.Ops)
	return f
}

func (h *harness) click(at image.Point) {
	pos := f32.Pt(float32(at.X), float32(at.Y))
	h.r.Queue(
		pointer.Event{
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Kind:     pointer.Press,
			Position: pos,
		},
		pointer.Event{
			Source:   pointer.Mouse,
			Kind:     pointer.Release,
			Position: pos,
		},
	)
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

func TestDeclarationOrder(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 3; i++ {
		h.frame()
		got := h.view.Declared()
		if len(got) != len(Widgets) {
			t.Fatalf("frame %d: declared %v, want %v", i, got, Widgets)
		}
		for j, id := range Widgets {
			if got[j] != id {
				t.Errorf("frame %d: declaration %d is %v, want %v", i, j, got[j], id)
			}
		}
	}
}

func TestUnchangedFrame(t *testing.T) {
	h := newHarness(t)
	if f := h.frame(); !f.Changed {
		t.Error("first frame reported no change")
	}
	f := h.frame()
	if f.Changed {
		t.Error("identical second frame reported a change")
	}
	if len(f.Rolls) != 0 {
		t.Errorf("rolled %v without interaction", f.Rolls)
	}
	if h.st.Roll != 0 {
		t.Errorf("roll = %d, want 0", h.st.Roll)
	}
}

func TestClickRolls(t *testing.T) {
	h := newHarness(t, 7)
	h.frame()
	h.click(center(h.view.Bounds(RollButton)))
	f := h.frame()
	if len(f.Rolls) != 1 || f.Rolls[0] != 2 {
		t.Fatalf("rolls = %v, want [2]", f.Rolls)
	}
	if h.st.Roll != 2 {
		t.Errorf("state roll = %d, want 2", h.st.Roll)
	}
	if !f.Changed {
		t.Error("roll did not change the frame")
	}
}

func TestClickOutsideButton(t *testing.T) {
	h := newHarness(t, 7)
	h.frame()
	h.click(center(h.view.Bounds(Text)))
	if f := h.frame(); len(f.Rolls) != 0 {
		t.Errorf("click on the label rolled %v", f.Rolls)
	}
	if h.st.Roll != 0 {
		t.Errorf("roll = %d, want 0", h.st.Roll)
	}
}

func TestBounds(t *testing.T) {
	h := newHarness(t)
	h.frame()
	if got, want := h.view.Bounds(Canvas), image.Rect(0, 0, 800, 600); got != want {
		t.Errorf("canvas bounds = %v, want %v", got, want)
	}
	txt := h.view.Bounds(Text)
	if txt.Min != image.Pt(50, 30) {
		t.Errorf("text origin = %v, want (50,30)", txt.Min)
	}
	if txt.Empty() {
		t.Error("empty text bounds")
	}
	// A single digit is far narrower than the button.
	if txt.Dx() >= 200 {
		t.Errorf("text bounds %v span the canvas", txt)
	}
	btn := h.view.Bounds(RollButton)
	if btn.Size() != image.Pt(200, 50) {
		t.Errorf("button size = %v, want 200x50", btn.Size())
	}
	if btn.Min.X != 30 || btn.Min.Y != txt.Max.Y+45 {
		t.Errorf("button origin = %v, want (30,%d)", btn.Min, txt.Max.Y+45)
	}
	if got := h.view.Bounds(numWidgets); got != (image.Rectangle{}) {
		t.Errorf("unknown widget bounds = %v", got)
	}
}

func TestButtonKeepsSizeOnResize(t *testing.T) {
	h := newHarness(t)
	for _, sz := range []image.Point{image.Pt(800, 600), image.Pt(1920, 1080)} {
		h.ops.Reset()
		gtx := layout.Context{
			Ops:         &h.ops,
			Source:      h.r.Source(),
			Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
			Constraints: layout.Exact(sz),
		}
		h.view.Declare(gtx, &h.st, h.rolls)
		if got := h.view.Bounds(RollButton); got.Min.X != 30 || got.Max.X != 230 || got.Dy() != 50 {
			t.Errorf("%v window: button bounds = %v, want x 30..230, height 50", sz, got)
		}
	}
}

func TestResizeChanges(t *testing.T) {
	h := newHarness(t)
	h.frame()
	h.ops.Reset()
	gtx := layout.Context{
		Ops:         &h.ops,
		Source:      h.r.Source(),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(1024, 768)),
	}
	if f := h.view.Declare(gtx, &h.st, h.rolls); !f.Changed {
		t.Error("resize reported no change")
	}
}

func TestWidgetIDString(t *testing.T) {
	for id, want := range map[WidgetID]string{
		Canvas:      "canvas",
		Text:        "text",
		RollButton:  "roll_button",
		WidgetID(9): "WidgetID(9)",
	} {
		if got := id.String(); got != want {
			t.Errorf("%d: got %q, want %q", id, got, want)
		}
	}
}
