package ui

// Color is a straight-alpha RGBA colour with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// Transparent is the clear colour of the overlay render target.
var Transparent = Color{}

// RGBA builds a Color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: float32(a) / 255}
}

// FromSlice builds a Color from a [r g b a] slice as stored in settings files.
// Missing components default to 1.
func FromSlice(v []float32) Color {
	c := Color{R: 1, G: 1, B: 1, A: 1}
	dst := []*float32{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(v) && i < len(dst); i++ {
		*dst[i] = clamp01(v[i])
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = clamp01(a)
	return c
}

func clamp01(v float32) float32 {
	return max(0, min(v, 1))
}
