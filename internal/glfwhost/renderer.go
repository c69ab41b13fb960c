package glfwhost

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Norgate-AV/ovly/internal/ui"
)

type canvas struct {
	win *glfw.Window
}

func (c *canvas) Clear(col ui.Color) {
	w, h := c.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(col.R, col.G, col.B, col.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Finish presents the frame. GLFW reports swap failures by panicking.
func (c *canvas) Finish() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("swap buffers failed: %v", r)
		}
	}()

	c.win.SwapBuffers()
	return nil
}

// glRenderer draws ui.DrawData with the fixed-function pipeline.
type glRenderer struct {
	win     *glfw.Window
	texture uint32
}

func newRenderer(win *glfw.Window, font *ui.Font) (*glRenderer, error) {
	pixels, w, h := font.Atlas()
	if len(pixels) == 0 {
		return nil, errors.New("font atlas is empty")
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.ALPHA, int32(w), int32(h), 0, gl.ALPHA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return nil, fmt.Errorf("font texture upload failed: GL error 0x%04x", code)
	}

	return &glRenderer{win: win, texture: tex}, nil
}

func (r *glRenderer) Render(dd *ui.DrawData) error {
	if !dd.Valid() {
		return nil
	}

	fbW, fbH := r.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(dd.DisplaySize.X), float64(dd.DisplaySize.Y), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.BindTexture(gl.TEXTURE_2D, r.texture)

	for _, list := range dd.Lists {
		offset := 0
		for _, cmd := range list.Cmds {
			if cmd.Textured {
				gl.Enable(gl.TEXTURE_2D)
			} else {
				gl.Disable(gl.TEXTURE_2D)
			}

			gl.Begin(gl.TRIANGLES)
			for _, v := range list.Vertices[offset : offset+cmd.ElemCount] {
				gl.Color4f(v.Col.R, v.Col.G, v.Col.B, v.Col.A)
				if cmd.Textured {
					gl.TexCoord2f(v.UV.X, v.UV.Y)
				}
				gl.Vertex2f(v.Pos.X, v.Pos.Y)
			}
			gl.End()

			offset += cmd.ElemCount
		}
	}

	gl.Disable(gl.TEXTURE_2D)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw failed: GL error 0x%04x", code)
	}

	return nil
}
