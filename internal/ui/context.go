// Package ui is a small immediate-mode UI: the caller describes widgets every
// frame, and the context turns them into triangle lists plus the capture flags
// the overlay uses to decide whether it should take input.
package ui

import (
	"hash/fnv"

	"github.com/Norgate-AV/ovly/internal/geom"
)

// ID identifies a widget or window across frames.
type ID uint32

func hashID(seed ID, label string) ID {
	h := fnv.New32a()
	_, _ = h.Write([]byte{byte(seed), byte(seed >> 8), byte(seed >> 16), byte(seed >> 24)})
	_, _ = h.Write([]byte(label))
	id := ID(h.Sum32())
	if id == 0 {
		id = 1
	}
	return id
}

type window struct {
	id        ID
	title     string
	pos       geom.Vec2
	size      geom.Vec2
	bg        *DrawList
	fg        *DrawList
	lastFrame int

	cursor    geom.Vec2
	lineStart float32
	lineY     float32
	lineH     float32
	prevRight float32
	sameLine  bool
	contentHi geom.Vec2
}

func (w *window) rect() (lo, hi geom.Vec2) {
	return w.pos, w.pos.Add(w.size)
}

func (w *window) contains(p geom.Vec2) bool {
	lo, hi := w.rect()
	return p.X >= lo.X && p.X < hi.X && p.Y >= lo.Y && p.Y < hi.Y
}

// Context owns the UI state that survives between frames.
type Context struct {
	io    IO
	font  *Font
	style Style

	frameCount int
	background *DrawList
	windows    []*window // back to front
	byID       map[ID]*window
	hovered    *window

	hotID      ID
	activeID   ID
	keyboardID ID
	textCursor int

	dragging   *window
	dragOffset geom.Vec2

	drawData DrawData
}

// Option configures a Context.
type Option func(*Context)

// WithFontScale scales the built-in font by an integer factor.
func WithFontScale(scale int) Option {
	return func(c *Context) {
		c.font = NewFont(scale)
	}
}

// WithClipboard sets the clipboard used by text fields.
func WithClipboard(cb Clipboard) Option {
	return func(c *Context) {
		c.io.Clipboard = cb
	}
}

// WithStyle replaces the default theme.
func WithStyle(s Style) Option {
	return func(c *Context) {
		c.style = s
	}
}

// NewContext creates a UI context.
func NewContext(opts ...Option) *Context {
	c := &Context{
		style: DefaultStyle(),
		byID:  make(map[ID]*window),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.font == nil {
		c.font = NewFont(1)
	}

	c.background = newDrawList(c.font)
	return c
}

// IO returns the input/output state for backends to fill.
func (c *Context) IO() *IO { return &c.io }

// Font returns the font whose atlas the renderer must upload.
func (c *Context) Font() *Font { return c.font }

// Style returns the active theme.
func (c *Context) Style() *Style { return &c.style }

// FrameCount returns the number of frames started so far.
func (c *Context) FrameCount() int { return c.frameCount }

// NewFrame starts describing a frame. Widgets are added through the returned Frame.
func (c *Context) NewFrame() *Frame {
	c.frameCount++
	c.background.Reset()
	c.hotID = 0

	c.hovered = nil
	if c.io.MouseValid {
		for i := len(c.windows) - 1; i >= 0; i-- {
			if c.windows[i].contains(c.io.MousePos) {
				c.hovered = c.windows[i]
				break
			}
		}
	}

	if c.io.MouseClicked(MouseLeft) {
		if c.hovered != nil {
			c.bringToFront(c.hovered)
		} else {
			c.keyboardID = 0
		}
	}

	if c.dragging != nil {
		if c.io.MouseDown[MouseLeft] && c.io.MouseValid {
			c.dragging.pos = c.io.MousePos.Sub(c.dragOffset)
		} else if !c.io.MouseDown[MouseLeft] {
			c.dragging = nil
		}
	}

	return &Frame{ctx: c}
}

func (c *Context) bringToFront(w *window) {
	for i, other := range c.windows {
		if other == w {
			c.windows = append(c.windows[:i], c.windows[i+1:]...)
			c.windows = append(c.windows, w)
			return
		}
	}
}

// Render finishes the frame and returns its geometry. It also sets the
// capture flags on IO for the next activation decision.
func (c *Context) Render() *DrawData {
	c.drawData.DisplaySize = c.io.DisplaySize
	c.drawData.Lists = c.drawData.Lists[:0]
	c.drawData.TotalVertices = 0

	add := func(l *DrawList) {
		if l.Empty() {
			return
		}
		c.drawData.Lists = append(c.drawData.Lists, l)
		c.drawData.TotalVertices += len(l.Vertices)
	}

	add(c.background)

	overWindow := false
	for _, w := range c.windows {
		if w.lastFrame != c.frameCount {
			continue
		}
		add(w.bg)
		add(w.fg)

		if c.io.MouseValid && w.contains(c.io.MousePos) {
			overWindow = true
		}
	}

	if !c.io.MouseDown[MouseLeft] {
		c.activeID = 0
	}

	if c.dragging != nil && c.dragging.lastFrame != c.frameCount {
		c.dragging = nil
	}

	c.io.WantCaptureMouse = overWindow || c.activeID != 0 || c.dragging != nil
	c.io.WantCaptureKeyboard = c.keyboardID != 0

	c.io.endFrame()
	return &c.drawData
}

func (c *Context) window(title string, pos geom.Vec2) *window {
	id := hashID(0, title)
	if w, ok := c.byID[id]; ok {
		return w
	}

	w := &window{
		id:    id,
		title: title,
		pos:   pos,
		bg:    newDrawList(c.font),
		fg:    newDrawList(c.font),
	}
	c.byID[id] = w
	c.windows = append(c.windows, w)
	return w
}
