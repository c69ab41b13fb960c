package ui

import (
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"

	"github.com/Norgate-AV/ovly/internal/geom"
)

// Font is a fixed-width bitmap font backed by a single alpha atlas.
type Font struct {
	face   *basicfont.Face
	scale  int
	pixels []byte
	width  int
	height int
}

// NewFont builds the 7x13 font, scaled by an integer factor so glyphs stay crisp.
func NewFont(scale int) *Font {
	if scale < 1 {
		scale = 1
	}

	f := &Font{face: basicfont.Face7x13, scale: scale}
	f.buildAtlas()
	return f
}

func (f *Font) buildAtlas() {
	b := f.face.Mask.Bounds()
	f.width, f.height = b.Dx(), b.Dy()
	f.pixels = make([]byte, f.width*f.height)

	if a, ok := f.face.Mask.(*image.Alpha); ok && a.Stride == f.width {
		copy(f.pixels, a.Pix)
		return
	}

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := color.AlphaModel.Convert(f.face.Mask.At(b.Min.X+x, b.Min.Y+y)).(color.Alpha)
			f.pixels[y*f.width+x] = c.A
		}
	}
}

// Atlas returns the 8-bit alpha atlas for upload to the graphics backend.
func (f *Font) Atlas() (pixels []byte, width, height int) {
	return f.pixels, f.width, f.height
}

// Scale returns the integer scale factor.
func (f *Font) Scale() int { return f.scale }

// LineHeight returns the height of one text line in pixels.
func (f *Font) LineHeight() float32 {
	return float32((f.face.Ascent + f.face.Descent) * f.scale)
}

// Advance returns the horizontal advance of one glyph.
func (f *Font) Advance() float32 {
	return float32(f.face.Advance * f.scale)
}

// Measure returns the size of a single line of text.
func (f *Font) Measure(s string) geom.Vec2 {
	return geom.Vec2{X: float32(utf8.RuneCountInString(s)) * f.Advance(), Y: f.LineHeight()}
}

// glyph returns the atlas UV rectangle of r, falling back to U+FFFD.
func (f *Font) glyph(r rune) (uv0, uv1 geom.Vec2, ok bool) {
	rowHeight := f.face.Ascent + f.face.Descent

	for _, rr := range [2]rune{r, utf8.RuneError} {
		for _, rng := range f.face.Ranges {
			if rr < rng.Low || rr >= rng.High {
				continue
			}

			y := (int(rr-rng.Low) + rng.Offset) * rowHeight
			uv0 = geom.Vec2{X: 0, Y: float32(y) / float32(f.height)}
			uv1 = geom.Vec2{
				X: float32(f.face.Width) / float32(f.width),
				Y: float32(y+rowHeight) / float32(f.height),
			}
			return uv0, uv1, true
		}
	}

	return uv0, uv1, false
}

// glyphSize returns the on-screen size of one glyph quad.
func (f *Font) glyphSize() geom.Vec2 {
	return geom.Vec2{
		X: float32(f.face.Width * f.scale),
		Y: f.LineHeight(),
	}
}
