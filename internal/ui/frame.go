package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Norgate-AV/ovly/internal/geom"
)

// Frame is the widget API for one frame. Widgets must be called between
// Begin and End; outside a window they draw nothing and return false.
type Frame struct {
	ctx *Context
	win *window
}

// IO returns the frame's input state.
func (f *Frame) IO() *IO { return &f.ctx.io }

// Background returns a draw list rendered underneath every window.
func (f *Frame) Background() *DrawList { return f.ctx.background }

// Font returns the font used for text.
func (f *Frame) Font() *Font { return f.ctx.font }

// Window wraps body in Begin/End.
func (f *Frame) Window(title string, pos geom.Vec2, body func()) {
	f.Begin(title, pos)
	defer f.End()
	body()
}

func (f *Frame) titleHeight() float32 {
	return f.ctx.font.LineHeight() + 2*f.ctx.style.FramePadding.Y
}

// Begin opens a window. pos is used the first time the title is seen; after
// that the window keeps wherever it was dragged to.
func (f *Frame) Begin(title string, pos geom.Vec2) {
	if f.win != nil {
		f.End()
	}

	c := f.ctx
	st := &c.style
	w := c.window(title, pos)
	w.lastFrame = c.frameCount
	w.bg.Reset()
	w.fg.Reset()

	titleH := f.titleHeight()
	if c.hovered == w && c.io.MouseClicked(MouseLeft) && c.activeID == 0 &&
		c.io.MousePos.Y < w.pos.Y+titleH {
		c.dragging = w
		c.dragOffset = c.io.MousePos.Sub(w.pos)
	}

	w.cursor = geom.Vec2{X: w.pos.X + st.WindowPadding.X, Y: w.pos.Y + titleH + st.WindowPadding.Y}
	w.lineStart = w.cursor.X
	w.lineY = w.cursor.Y
	w.lineH = 0
	w.sameLine = false
	w.contentHi = geom.Vec2{
		X: w.pos.X + st.FramePadding.X + c.font.Measure(title).X,
		Y: w.pos.Y + titleH,
	}

	w.fg.AddText(w.pos.Add(st.FramePadding), st.Text, title)
	f.win = w
}

// End closes the current window and fixes its size to fit the content.
func (f *Frame) End() {
	w := f.win
	if w == nil {
		return
	}

	c := f.ctx
	st := &c.style
	w.size = geom.Vec2{
		X: w.contentHi.X + st.WindowPadding.X - w.pos.X,
		Y: w.contentHi.Y + st.WindowPadding.Y - w.pos.Y,
	}

	lo, hi := w.rect()
	titleBg := st.TitleBg
	if len(c.windows) > 0 && c.windows[len(c.windows)-1] == w {
		titleBg = st.TitleBgActive
	}

	w.bg.AddRectFilled(lo, hi, st.WindowBg)
	w.bg.AddRectFilled(lo, geom.Vec2{X: hi.X, Y: lo.Y + f.titleHeight()}, titleBg)
	w.bg.AddRect(lo, hi, st.Border, 1)
	f.win = nil
}

// SameLine places the next widget to the right of the previous one.
func (f *Frame) SameLine() {
	if f.win != nil {
		f.win.sameLine = true
	}
}

func (f *Frame) layout(size geom.Vec2) geom.Vec2 {
	w := f.win
	sp := f.ctx.style.ItemSpacing

	var lo geom.Vec2
	if w.sameLine {
		lo = geom.Vec2{X: w.prevRight + sp.X, Y: w.lineY}
		w.lineH = max(w.lineH, size.Y)
	} else {
		lo = geom.Vec2{X: w.lineStart, Y: w.cursor.Y}
		w.lineY = lo.Y
		w.lineH = size.Y
	}

	w.sameLine = false
	w.prevRight = lo.X + size.X
	w.cursor.Y = w.lineY + w.lineH + sp.Y
	w.contentHi.X = max(w.contentHi.X, lo.X+size.X)
	w.contentHi.Y = max(w.contentHi.Y, w.lineY+w.lineH)
	return lo
}

func (f *Frame) hoverable(id ID, lo, hi geom.Vec2) bool {
	c := f.ctx
	if c.hovered != f.win || c.dragging != nil || !c.io.MouseValid {
		return false
	}

	if c.activeID != 0 && c.activeID != id {
		return false
	}

	p := c.io.MousePos
	if p.X < lo.X || p.X >= hi.X || p.Y < lo.Y || p.Y >= hi.Y {
		return false
	}

	c.hotID = id
	return true
}

// press tracks a click that starts and ends on the same widget.
func (f *Frame) press(id ID, hovered bool) (held, released bool) {
	c := f.ctx
	if hovered && c.io.MouseClicked(MouseLeft) {
		c.activeID = id
	}

	held = c.activeID == id && c.io.MouseDown[MouseLeft]
	released = hovered && c.activeID == id && c.io.MouseReleased(MouseLeft)
	return held, released
}

// Text draws one or more lines of text.
func (f *Frame) Text(text string) {
	f.TextColored(f.ctx.style.Text, text)
}

// TextColored draws text in col.
func (f *Frame) TextColored(col Color, text string) {
	if f.win == nil {
		return
	}

	for _, line := range strings.Split(text, "\n") {
		lo := f.layout(f.ctx.font.Measure(line))
		f.win.fg.AddText(lo, col, line)
	}
}

// Separator draws a horizontal rule across the window.
func (f *Frame) Separator() {
	w := f.win
	if w == nil {
		return
	}

	width := w.size.X - 2*f.ctx.style.WindowPadding.X
	if width <= 0 {
		width = 100
	}

	f.win.sameLine = false
	lo := f.layout(geom.Vec2{X: width, Y: 1})
	w.fg.AddLine(lo, geom.Vec2{X: lo.X + width, Y: lo.Y}, f.ctx.style.Separator, 1)
}

// Button draws a push button and reports a completed click.
func (f *Frame) Button(label string) bool {
	w := f.win
	if w == nil {
		return false
	}

	st := &f.ctx.style
	size := f.ctx.font.Measure(label).Add(st.FramePadding).Add(st.FramePadding)
	lo := f.layout(size)
	hi := lo.Add(size)

	id := hashID(w.id, label)
	hovered := f.hoverable(id, lo, hi)
	held, clicked := f.press(id, hovered)

	col := st.Button
	switch {
	case held && hovered:
		col = st.ButtonActive
	case hovered:
		col = st.ButtonHovered
	}

	w.fg.AddRectFilled(lo, hi, col)
	w.fg.AddText(lo.Add(st.FramePadding), st.Text, label)
	return clicked
}

// Checkbox toggles *v on click and reports whether it changed.
func (f *Frame) Checkbox(label string, v *bool) bool {
	w := f.win
	if w == nil {
		return false
	}

	st := &f.ctx.style
	box := f.ctx.font.LineHeight() + 2*st.FramePadding.Y
	text := f.ctx.font.Measure(label)
	lo := f.layout(geom.Vec2{X: box + st.ItemSpacing.X + text.X, Y: box})
	boxHi := lo.Add(geom.Vec2{X: box, Y: box})

	id := hashID(w.id, label)
	hovered := f.hoverable(id, lo, geom.Vec2{X: boxHi.X + st.ItemSpacing.X + text.X, Y: boxHi.Y})
	_, clicked := f.press(id, hovered)
	if clicked {
		*v = !*v
	}

	col := st.FrameBg
	if hovered {
		col = st.FrameHovered
	}

	w.fg.AddRectFilled(lo, boxHi, col)
	if *v {
		inset := geom.Vec2{X: box / 4, Y: box / 4}
		w.fg.AddRectFilled(lo.Add(inset), boxHi.Sub(inset), st.CheckMark)
	}
	w.fg.AddText(geom.Vec2{X: boxHi.X + st.ItemSpacing.X, Y: lo.Y + st.FramePadding.Y}, st.Text, label)
	return clicked
}

// SliderInt edits *v within [lo, hi] by dragging.
func (f *Frame) SliderInt(label string, v *int, lo, hi int) bool {
	w := f.win
	if w == nil || hi <= lo {
		return false
	}

	st := &f.ctx.style
	height := f.ctx.font.LineHeight() + 2*st.FramePadding.Y
	text := f.ctx.font.Measure(label)
	pos := f.layout(geom.Vec2{X: st.SliderWidth + st.ItemSpacing.X + text.X, Y: height})
	frameHi := pos.Add(geom.Vec2{X: st.SliderWidth, Y: height})

	id := hashID(w.id, label)
	hovered := f.hoverable(id, pos, frameHi)
	held, _ := f.press(id, hovered)

	changed := false
	if held {
		t := clamp01((f.ctx.io.MousePos.X - pos.X) / st.SliderWidth)
		nv := lo + int(t*float32(hi-lo)+0.5)
		if nv != *v {
			*v = nv
			changed = true
		}
	}
	*v = max(lo, min(*v, hi))

	col := st.FrameBg
	if hovered || held {
		col = st.FrameHovered
	}
	w.fg.AddRectFilled(pos, frameHi, col)

	grabW := float32(10)
	t := float32(*v-lo) / float32(hi-lo)
	gx := pos.X + t*(st.SliderWidth-grabW)
	w.fg.AddRectFilled(geom.Vec2{X: gx, Y: pos.Y + 2}, geom.Vec2{X: gx + grabW, Y: frameHi.Y - 2}, st.SliderGrab)

	value := strconv.Itoa(*v)
	vw := f.ctx.font.Measure(value).X
	w.fg.AddText(geom.Vec2{X: pos.X + (st.SliderWidth-vw)/2, Y: pos.Y + st.FramePadding.Y}, st.Text, value)
	w.fg.AddText(geom.Vec2{X: frameHi.X + st.ItemSpacing.X, Y: pos.Y + st.FramePadding.Y}, st.Text, label)
	return changed
}

// InputText edits a single-line string. maxLen limits the rune count when
// positive. It reports whether *buf changed this frame.
func (f *Frame) InputText(label string, buf *string, maxLen int) bool {
	w := f.win
	if w == nil {
		return false
	}

	c := f.ctx
	st := &c.style
	height := c.font.LineHeight() + 2*st.FramePadding.Y
	text := c.font.Measure(label)
	pos := f.layout(geom.Vec2{X: st.SliderWidth + st.ItemSpacing.X + text.X, Y: height})
	frameHi := pos.Add(geom.Vec2{X: st.SliderWidth, Y: height})

	id := hashID(w.id, label)
	hovered := f.hoverable(id, pos, frameHi)
	if hovered && c.io.MouseClicked(MouseLeft) {
		c.activeID = id
		c.keyboardID = id
	} else if c.keyboardID == id && c.io.MouseClicked(MouseLeft) && !hovered {
		c.keyboardID = 0
	}

	focused := c.keyboardID == id
	changed := false
	if focused {
		changed = f.editText(buf, maxLen)
	}

	col := st.FrameBg
	if hovered || focused {
		col = st.FrameHovered
	}
	w.fg.AddRectFilled(pos, frameHi, col)

	// Show the tail of the text when it does not fit.
	visible := *buf
	room := int((st.SliderWidth - 2*st.FramePadding.X) / c.font.Advance())
	if n := utf8.RuneCountInString(visible); room > 0 && n > room-1 {
		runes := []rune(visible)
		visible = string(runes[n-(room-1):])
	}

	textPos := pos.Add(st.FramePadding)
	w.fg.AddText(textPos, st.Text, visible)
	if focused {
		x := textPos.X + c.font.Measure(visible).X
		w.fg.AddLine(geom.Vec2{X: x, Y: textPos.Y}, geom.Vec2{X: x, Y: textPos.Y + c.font.LineHeight()}, st.TextCursor, 1)
	}
	w.fg.AddText(geom.Vec2{X: frameHi.X + st.ItemSpacing.X, Y: textPos.Y}, st.Text, label)
	return changed
}

func (f *Frame) editText(buf *string, maxLen int) bool {
	c := f.ctx
	io := &c.io
	before := *buf

	insert := func(s string) {
		for _, r := range s {
			if r < 0x20 || r == 0x7f {
				continue
			}
			if maxLen > 0 && utf8.RuneCountInString(*buf) >= maxLen {
				return
			}
			*buf += string(r)
		}
	}

	switch {
	case io.KeyCtrl && io.KeyPressed(KeyV):
		if io.Clipboard != nil {
			if s, err := io.Clipboard.Text(); err == nil {
				insert(s)
			}
		}
	case io.KeyCtrl && io.KeyPressed(KeyC):
		if io.Clipboard != nil {
			_ = io.Clipboard.SetText(*buf)
		}
	case io.KeyCtrl && io.KeyPressed(KeyX):
		if io.Clipboard != nil && io.Clipboard.SetText(*buf) == nil {
			*buf = ""
		}
	case io.KeyPressed(KeyBackspace):
		if _, size := utf8.DecodeLastRuneInString(*buf); size > 0 {
			*buf = (*buf)[:len(*buf)-size]
		}
	case io.KeyPressed(KeyEnter), io.KeyPressed(KeyEscape):
		c.keyboardID = 0
	}

	if !io.KeyCtrl {
		insert(string(io.InputChars))
	}

	return *buf != before
}
