package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/ovly/internal/geom"
)

var white = Color{R: 1, G: 1, B: 1, A: 1}

func TestFont_Metrics(t *testing.T) {
	t.Parallel()

	f := NewFont(1)
	assert.Equal(t, float32(13), f.LineHeight())
	assert.Equal(t, float32(7), f.Advance())
	assert.Equal(t, geom.Vec2{X: 21, Y: 13}, f.Measure("abc"))

	big := NewFont(2)
	assert.Equal(t, float32(26), big.LineHeight())
	assert.Equal(t, float32(14), big.Advance())

	assert.Equal(t, 1, NewFont(0).Scale(), "scale is at least one")
}

func TestFont_Atlas(t *testing.T) {
	t.Parallel()

	pixels, w, h := NewFont(1).Atlas()
	require.Positive(t, w)
	require.Positive(t, h)
	assert.Len(t, pixels, w*h)

	var lit int
	for _, p := range pixels {
		if p > 0 {
			lit++
		}
	}
	assert.Positive(t, lit)
}

func TestFont_GlyphFallback(t *testing.T) {
	t.Parallel()

	f := NewFont(1)
	uv0, uv1, ok := f.glyph('A')
	require.True(t, ok)
	assert.Less(t, uv0.Y, uv1.Y)
	assert.Greater(t, uv1.X, float32(0))

	_, _, ok = f.glyph('\U0001F600')
	assert.True(t, ok, "unknown runes use the replacement glyph")
}

func TestDrawList_RectFilled(t *testing.T) {
	t.Parallel()

	d := newDrawList(NewFont(1))
	d.AddRectFilled(geom.Vec2{}, geom.Vec2{X: 10, Y: 10}, white)

	assert.Len(t, d.Vertices, 6)
	require.Len(t, d.Cmds, 1)
	assert.Equal(t, 6, d.Cmds[0].ElemCount)
	assert.False(t, d.Cmds[0].Textured)
}

func TestDrawList_SkipsInvisible(t *testing.T) {
	t.Parallel()

	d := newDrawList(NewFont(1))
	d.AddRectFilled(geom.Vec2{}, geom.Vec2{X: 10, Y: 10}, Transparent)
	d.AddRectFilled(geom.Vec2{X: 5}, geom.Vec2{X: 5, Y: 10}, white)
	d.AddLine(geom.Vec2{X: 1, Y: 1}, geom.Vec2{X: 1, Y: 1}, white, 1)
	d.AddText(geom.Vec2{}, white, "   ")

	assert.True(t, d.Empty())
}

func TestDrawList_MergesCommands(t *testing.T) {
	t.Parallel()

	d := newDrawList(NewFont(1))
	d.AddRectFilled(geom.Vec2{}, geom.Vec2{X: 10, Y: 10}, white)
	d.AddRect(geom.Vec2{}, geom.Vec2{X: 10, Y: 10}, white, 1)
	d.AddText(geom.Vec2{}, white, "ab")
	d.AddText(geom.Vec2{Y: 20}, white, "c")
	d.AddLine(geom.Vec2{}, geom.Vec2{X: 10}, white, 2)

	require.Len(t, d.Cmds, 3)
	assert.Equal(t, DrawCmd{ElemCount: 30, Textured: false}, d.Cmds[0])
	assert.Equal(t, DrawCmd{ElemCount: 18, Textured: true}, d.Cmds[1])
	assert.Equal(t, DrawCmd{ElemCount: 6, Textured: false}, d.Cmds[2])

	var total int
	for _, c := range d.Cmds {
		total += c.ElemCount
	}
	assert.Len(t, d.Vertices, total)

	d.Reset()
	assert.True(t, d.Empty())
	assert.Empty(t, d.Cmds)
}

func TestDrawList_TextAdvances(t *testing.T) {
	t.Parallel()

	d := newDrawList(NewFont(1))
	d.AddText(geom.Vec2{X: 100, Y: 50}, white, "a b")

	require.Len(t, d.Vertices, 12)
	assert.Equal(t, geom.Vec2{X: 100, Y: 50}, d.Vertices[0].Pos)
	assert.Equal(t, geom.Vec2{X: 114, Y: 50}, d.Vertices[6].Pos, "space advances without geometry")
}
