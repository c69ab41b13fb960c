// Package geom holds the small geometry types shared by the overlay packages.
package geom

// Vec2 is a point or size in pixels.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an integer rectangle in virtual desktop coordinates.
// X and Y may be negative on multi-monitor setups.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// FromEdges builds a Rect from left/top/right/bottom edges as returned by Win32.
func FromEdges(left, top, right, bottom int32) Rect {
	return Rect{X: int(left), Y: int(top), W: int(right - left), H: int(bottom - top)}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= float32(r.X) && p.X < float32(r.Right()) &&
		p.Y >= float32(r.Y) && p.Y < float32(r.Bottom())
}

// Offset returns r relative to origin.
func (r Rect) Offset(origin Rect) Rect {
	return Rect{X: r.X - origin.X, Y: r.Y - origin.Y, W: r.W, H: r.H}
}
