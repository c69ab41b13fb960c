package ui

import (
	"math"

	"github.com/Norgate-AV/ovly/internal/geom"
)

// Vertex is one corner of a triangle. UV is only meaningful in textured commands.
type Vertex struct {
	Pos geom.Vec2
	UV  geom.Vec2
	Col Color
}

// DrawCmd is a run of triangles sharing the same texture binding.
// Textured commands sample the font atlas.
type DrawCmd struct {
	ElemCount int
	Textured  bool
}

// DrawList accumulates triangles for one layer.
type DrawList struct {
	Vertices []Vertex
	Cmds     []DrawCmd
	font     *Font
}

func newDrawList(font *Font) *DrawList {
	return &DrawList{font: font}
}

// Reset empties the list while keeping its buffers.
func (d *DrawList) Reset() {
	d.Vertices = d.Vertices[:0]
	d.Cmds = d.Cmds[:0]
}

// Empty reports whether the list has no geometry.
func (d *DrawList) Empty() bool {
	return len(d.Vertices) == 0
}

func (d *DrawList) push(textured bool, verts ...Vertex) {
	n := len(d.Cmds)
	if n == 0 || d.Cmds[n-1].Textured != textured {
		d.Cmds = append(d.Cmds, DrawCmd{Textured: textured})
		n++
	}

	d.Vertices = append(d.Vertices, verts...)
	d.Cmds[n-1].ElemCount += len(verts)
}

func (d *DrawList) quad(a, b, c, e geom.Vec2, col Color) {
	d.push(false,
		Vertex{Pos: a, Col: col}, Vertex{Pos: b, Col: col}, Vertex{Pos: c, Col: col},
		Vertex{Pos: a, Col: col}, Vertex{Pos: c, Col: col}, Vertex{Pos: e, Col: col},
	)
}

// AddRectFilled fills the rectangle [lo, hi).
func (d *DrawList) AddRectFilled(lo, hi geom.Vec2, col Color) {
	if col.A <= 0 || hi.X <= lo.X || hi.Y <= lo.Y {
		return
	}

	d.quad(lo, geom.Vec2{X: hi.X, Y: lo.Y}, hi, geom.Vec2{X: lo.X, Y: hi.Y}, col)
}

// AddRect outlines the rectangle with the given thickness, drawn inside it.
func (d *DrawList) AddRect(lo, hi geom.Vec2, col Color, thickness float32) {
	if thickness <= 0 {
		thickness = 1
	}

	t := thickness
	d.AddRectFilled(lo, geom.Vec2{X: hi.X, Y: lo.Y + t}, col)
	d.AddRectFilled(geom.Vec2{X: lo.X, Y: hi.Y - t}, hi, col)
	d.AddRectFilled(geom.Vec2{X: lo.X, Y: lo.Y + t}, geom.Vec2{X: lo.X + t, Y: hi.Y - t}, col)
	d.AddRectFilled(geom.Vec2{X: hi.X - t, Y: lo.Y + t}, geom.Vec2{X: hi.X, Y: hi.Y - t}, col)
}

// AddLine draws a segment as a thin quad.
func (d *DrawList) AddLine(a, b geom.Vec2, col Color, thickness float32) {
	if col.A <= 0 {
		return
	}

	if thickness <= 0 {
		thickness = 1
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	nx, ny := -dy/length*thickness/2, dx/length*thickness/2
	d.quad(
		geom.Vec2{X: a.X + nx, Y: a.Y + ny},
		geom.Vec2{X: b.X + nx, Y: b.Y + ny},
		geom.Vec2{X: b.X - nx, Y: b.Y - ny},
		geom.Vec2{X: a.X - nx, Y: a.Y - ny},
		col,
	)
}

// AddText draws a single line of text with its top-left corner at pos.
// Spaces advance without emitting geometry.
func (d *DrawList) AddText(pos geom.Vec2, col Color, text string) {
	if d.font == nil || col.A <= 0 {
		return
	}

	size := d.font.glyphSize()
	x := pos.X

	for _, r := range text {
		if r != ' ' {
			if uv0, uv1, ok := d.font.glyph(r); ok {
				lo := geom.Vec2{X: x, Y: pos.Y}
				hi := geom.Vec2{X: x + size.X, Y: pos.Y + size.Y}
				d.push(true,
					Vertex{Pos: lo, UV: uv0, Col: col},
					Vertex{Pos: geom.Vec2{X: hi.X, Y: lo.Y}, UV: geom.Vec2{X: uv1.X, Y: uv0.Y}, Col: col},
					Vertex{Pos: hi, UV: uv1, Col: col},
					Vertex{Pos: lo, UV: uv0, Col: col},
					Vertex{Pos: hi, UV: uv1, Col: col},
					Vertex{Pos: geom.Vec2{X: lo.X, Y: hi.Y}, UV: geom.Vec2{X: uv0.X, Y: uv1.Y}, Col: col},
				)
			}
		}
		x += d.font.Advance()
	}
}

// DrawData is everything the graphics backend needs for one frame.
type DrawData struct {
	DisplaySize   geom.Vec2
	Lists         []*DrawList
	TotalVertices int
}

// Valid reports whether there is anything to submit.
func (d *DrawData) Valid() bool {
	return d != nil && d.TotalVertices > 0
}
