// SPDX-License-Identifier: Unlicense OR MIT

// Package ui declares the dice roller's widget tree. The tree is
// redeclared every frame; widget state that must survive between
// frames lives in a View.
package ui

import (
	"image"
	"image/color"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/minimal-gui/minimalgui/internal/dice"
)

// WidgetID identifies one of the widgets in the tree. The set is
// fixed; each identifier names the same widget for the whole run.
type WidgetID uint8

const (
	Canvas WidgetID = iota
	Text
	RollButton

	numWidgets
)

// Widgets lists every identifier in declaration order.
var Widgets = [numWidgets]WidgetID{Canvas, Text, RollButton}

func (id WidgetID) String() string {
	switch id {
	case Canvas:
		return "canvas"
	case Text:
		return "text"
	case RollButton:
		return "roll_button"
	default:
		return "WidgetID(" + strconv.Itoa(int(id)) + ")"
	}
}

// Layout constants, in device independent units.
const (
	canvasPad    = unit.Dp(30)
	textMargin   = unit.Dp(20)
	textSize     = unit.Sp(32)
	buttonGap    = unit.Dp(45)
	buttonWidth  = unit.Dp(200)
	buttonHeight = unit.Dp(50)
	buttonBorder = unit.Dp(2)
	iconGap      = unit.Dp(8)
)

var (
	canvasColor = color.NRGBA{R: 0x34, G: 0x65, B: 0xa4, A: 0xff}
	// textColor contrasts with canvasColor.
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	buttonColor = rgb(0.4, 0.75, 0.6)
	borderColor = color.NRGBA{A: 0xff}
	labelColor  = color.NRGBA{A: 0xff}
)

// ButtonLabel is the text on the roll button.
const ButtonLabel = "Roll d6"

// Frame reports the outcome of one declaration cycle.
type Frame struct {
	// Rolls lists the rolls made this frame, one per button
	// activation.
	Rolls []uint8
	// Changed is set when the declared tree differs from the
	// previous frame's.
	Changed bool
}

// signature captures everything that affects the drawn output.
type signature struct {
	roll    uint8
	size    image.Point
	pxPerDp float32
	pxPerSp float32
	hovered bool
	pressed bool
	focused bool
}

// View holds the widget state that persists across frames.
type View struct {
	theme  *material.Theme
	button widget.Clickable
	icon   *widget.Icon

	bounds   [numWidgets]image.Rectangle
	declared []WidgetID

	last    signature
	hasLast bool
}

// NewView returns a View drawing with th.
func NewView(th *material.Theme) (*View, error) {
	ic, err := widget.NewIcon(icons.PlacesCasino)
	if err != nil {
		return nil, err
	}
	return &View{
		theme:    th,
		icon:     ic,
		declared: make([]WidgetID, 0, numWidgets),
	}, nil
}

// Bounds returns the area id covered in the most recent frame, in
// window coordinates.
func (v *View) Bounds(id WidgetID) image.Rectangle {
	if id >= numWidgets {
		return image.Rectangle{}
	}
	return v.bounds[id]
}

// Declared returns the identifiers declared by the most recent frame,
// in order.
func (v *View) Declared() []WidgetID {
	return v.declared
}

// Declare processes the button's pending clicks, rolling r into st for
// each, and then declares the widget tree for st.
func (v *View) Declare(gtx layout.Context, st *dice.State, r *dice.Roller) Frame {
	var f Frame
	for v.button.Clicked(gtx) {
		f.Rolls = append(f.Rolls, r.Roll(st))
	}
	v.declared = v.declared[:0]
	v.layout(gtx, st)

	sig := signature{
		roll:    st.Roll,
		size:    gtx.Constraints.Max,
		pxPerDp: gtx.Metric.PxPerDp,
		pxPerSp: gtx.Metric.PxPerSp,
		hovered: v.button.Hovered(),
		pressed: v.button.Pressed(),
		focused: gtx.Focused(&v.button),
	}
	f.Changed = !v.hasLast || sig != v.last
	v.last, v.hasLast = sig, true
	return f
}

func (v *View) layout(gtx layout.Context, st *dice.State) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, canvasColor, clip.Rect{Max: size}.Op())
	v.declare(Canvas, image.Rectangle{Max: size})

	pad := gtx.Dp(canvasPad)
	origin := image.Pt(pad, pad)
	return layout.UniformInset(canvasPad).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		var textDims layout.Dimensions
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				// Widgets take their own size, not the canvas width.
				gtx.Constraints.Min = image.Point{}
				var label layout.Dimensions
				dims := layout.Inset{Left: textMargin}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					l := material.Label(v.theme, textSize, strconv.Itoa(int(st.Roll)))
					l.Color = textColor
					label = l.Layout(gtx)
					return label
				})
				textDims = dims
				at := origin.Add(image.Pt(gtx.Dp(textMargin), 0))
				v.declare(Text, image.Rectangle{Min: at, Max: at.Add(label.Size)})
				return dims
			}),
			layout.Rigid(layout.Spacer{Height: buttonGap}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{}
				sz := image.Pt(gtx.Dp(buttonWidth), gtx.Dp(buttonHeight))
				gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(sz))
				dims := v.layoutButton(gtx)
				at := origin.Add(image.Pt(0, textDims.Size.Y+gtx.Dp(buttonGap)))
				v.declare(RollButton, image.Rectangle{Min: at, Max: at.Add(dims.Size)})
				return dims
			}),
		)
	})
}

func (v *View) layoutButton(gtx layout.Context) layout.Dimensions {
	b := material.ButtonLayout(v.theme, &v.button)
	b.Background = buttonColor
	b.CornerRadius = 0
	border := widget.Border{Color: borderColor, Width: buttonBorder}
	return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return b.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return v.icon.Layout(gtx, labelColor)
				}),
				layout.Rigid(layout.Spacer{Width: iconGap}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					l := material.Body1(v.theme, ButtonLabel)
					l.Color = labelColor
					return l.Layout(gtx)
				}),
			)
		})
	})
}

func (v *View) declare(id WidgetID, bounds image.Rectangle) {
	v.bounds[id] = bounds
	v.declared = append(v.declared, id)
}

func rgb(r, g, b float32) color.NRGBA {
	return color.NRGBA{R: uint8(r*255 + .5), G: uint8(g*255 + .5), B: uint8(b*255 + .5), A: 0xff}
}
