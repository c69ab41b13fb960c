// Package glfwhost creates the overlay window, its OpenGL context and its
// event pump with GLFW.
package glfwhost

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Norgate-AV/ovly/internal/bridge"
	"github.com/Norgate-AV/ovly/internal/event"
	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/timing"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// Options configures the backend.
type Options struct {
	Log logger.Logger
	// Native wraps the created window's OS handle in the OS window API.
	// When nil, or when the platform has no handle, the window is driven
	// through GLFW only.
	Native func(handle uintptr) (interfaces.NativeWindow, error)
}

// Backend implements interfaces.Backend with GLFW.
type Backend struct {
	opts        Options
	initialised bool
}

func NewBackend(opts Options) *Backend {
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}
	return &Backend{opts: opts}
}

func (b *Backend) init() error {
	if b.initialised {
		return nil
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialise GLFW: %w", err)
	}

	b.initialised = true
	return nil
}

// Monitors returns the bounds of every connected monitor, primary first.
func (b *Backend) Monitors() ([]geom.Rect, error) {
	if err := b.init(); err != nil {
		return nil, err
	}

	var out []geom.Rect
	add := func(m *glfw.Monitor) {
		mode := m.GetVideoMode()
		if mode == nil {
			return
		}

		x, y := m.GetPos()
		out = append(out, geom.Rect{X: x, Y: y, W: mode.Width, H: mode.Height})
	}

	primary := glfw.GetPrimaryMonitor()
	if primary != nil {
		add(primary)
	}

	for _, m := range glfw.GetMonitors() {
		if m != primary {
			add(m)
		}
	}

	return out, nil
}

// Open creates the hidden overlay window and makes its GL context current.
func (b *Backend) Open(opts interfaces.WindowOptions) (interfaces.Host, error) {
	if err := b.init(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Floating, glfw.True)
	glfw.WindowHint(glfw.FocusOnShow, glfw.False)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(opts.Bounds.W, opts.Bounds.H, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	win.SetPos(opts.Bounds.X, opts.Bounds.Y)
	win.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to initialise OpenGL: %w", err)
	}

	b.opts.Log.Debug("OpenGL context created", slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	native, err := b.native(win)
	if err != nil {
		win.Destroy()
		return nil, err
	}

	h := &Host{
		win:    win,
		native: native,
		queue:  event.NewQueue(pump{}, timing.FrameInterval(opts.FrameRate), nil),
		log:    b.opts.Log,
	}
	h.bridge = bridge.New(h.size)
	h.installCallbacks()
	return h, nil
}

func (b *Backend) native(win *glfw.Window) (interfaces.NativeWindow, error) {
	handle := nativeHandle(win)
	if b.opts.Native == nil || handle == 0 {
		return newPortableWindow(win), nil
	}

	native, err := b.opts.Native(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to attach to native window: %w", err)
	}
	return native, nil
}

type pump struct{}

func (pump) WaitTimeout(d time.Duration) { glfw.WaitEventsTimeout(d.Seconds()) }

func (pump) Wake() { glfw.PostEmptyEvent() }

// Host is an open GLFW overlay window.
type Host struct {
	win    *glfw.Window
	native interfaces.NativeWindow
	queue  *event.Queue
	bridge *bridge.Bridge
	font   uint32
	log    logger.Logger
}

func (h *Host) Window() interfaces.NativeWindow { return h.native }
func (h *Host) Events() interfaces.EventSource  { return h.queue }
func (h *Host) Canvas() interfaces.Canvas       { return &canvas{win: h.win} }
func (h *Host) Platform() interfaces.Platform   { return h.bridge }
func (h *Host) Relay() interfaces.InputRelay    { return &cursorRelay{win: h.win} }

// NewRenderer uploads the font atlas and returns the GL renderer.
func (h *Host) NewRenderer(font *ui.Font) (interfaces.Renderer, error) {
	r, err := newRenderer(h.win, font)
	if err != nil {
		return nil, err
	}

	h.font = r.texture
	return r, nil
}

// Close destroys the window and shuts GLFW down.
func (h *Host) Close() {
	if h.win == nil {
		return
	}

	if h.font != 0 {
		gl.DeleteTextures(1, &h.font)
	}

	h.bridge.Detach()
	h.win.Destroy()
	h.win = nil
	glfw.Terminate()
}

func (h *Host) size() geom.Vec2 {
	w, ht := h.win.GetSize()
	return geom.Vec2{X: float32(w), Y: float32(ht)}
}

func (h *Host) installCallbacks() {
	q := h.queue

	h.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		q.Push(event.Event{Kind: event.CursorMoved, X: x, Y: y})
	})

	h.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		q.Push(event.Event{Kind: event.MouseButton, Button: int(b), Pressed: a == glfw.Press})
	})

	h.win.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		q.Push(event.Event{Kind: event.MouseWheel, X: x, Y: y})
	})

	h.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, mods glfw.ModifierKey) {
		key, ok := keyMap[k]
		if !ok {
			return
		}

		q.Push(event.Event{
			Kind:    event.Key,
			KeyCode: int(key),
			Pressed: a != glfw.Release,
			Ctrl:    mods&glfw.ModControl != 0,
			Shift:   mods&glfw.ModShift != 0,
		})
	})

	h.win.SetCharCallback(func(_ *glfw.Window, r rune) {
		q.Push(event.Event{Kind: event.Char, Rune: r})
	})

	h.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		q.Push(event.Event{Kind: event.Focused, Pressed: focused})
	})

	h.win.SetSizeCallback(func(_ *glfw.Window, w, ht int) {
		q.Push(event.Event{Kind: event.Resized, X: float64(w), Y: float64(ht)})
	})

	h.win.SetCloseCallback(func(w *glfw.Window) {
		w.SetShouldClose(false)
		q.Push(event.Of(event.CloseRequested))
	})
}

// cursorRelay is the portable input relay. It polls the cursor so hover
// works while the window is click-through.
type cursorRelay struct {
	win *glfw.Window
}

func (r *cursorRelay) Update(_ interfaces.NativeWindow, io *ui.IO) {
	x, y := r.win.GetCursorPos()
	w, h := r.win.GetSize()

	if x < 0 || y < 0 || x >= float64(w) || y >= float64(h) {
		io.InvalidateMouse()
		return
	}

	io.SetMousePos(float32(x), float32(y))
}
