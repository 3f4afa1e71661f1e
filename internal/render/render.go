// SPDX-License-Identifier: Unlicense OR MIT

// Package render draws Gio frames into the current OpenGL context.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/gpu"
	"gioui.org/op"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Background is the clear color behind every frame.
var Background = color.NRGBA{A: 0xff}

// Renderer draws frames with a Gio GPU bound to the OpenGL context
// current on the calling thread.
type Renderer struct {
	gpu   gpu.GPU
	clear [4]float32
}

// New loads the OpenGL functions and creates a GPU renderer. An OpenGL
// context must be current.
func New(clear color.NRGBA) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("render: gl init: %w", err)
	}
	// Enable sRGB.
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	g, err := gpu.New(gpu.OpenGL{})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Renderer{gpu: g, clear: linear(clear)}, nil
}

// Render clears the default framebuffer and draws frame into it.
func (r *Renderer) Render(frame *op.Ops, size image.Point) error {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := r.gpu.Frame(frame, gpu.OpenGLRenderTarget{}, size); err != nil {
		return fmt.Errorf("render: frame: %w", err)
	}
	return nil
}

// Release frees the GPU resources.
func (r *Renderer) Release() {
	r.gpu.Release()
}

// linear converts an sRGB color to the linear values glClearColor
// expects on an sRGB framebuffer.
func linear(c color.NRGBA) [4]float32 {
	return [4]float32{
		srgbToLinear(c.R),
		srgbToLinear(c.G),
		srgbToLinear(c.B),
		float32(c.A) / 0xff,
	}
}
