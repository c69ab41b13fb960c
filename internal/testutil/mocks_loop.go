package testutil

import (
	"errors"
	"fmt"

	"github.com/Norgate-AV/ovly/internal/event"
	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// MockEventSource emulates an OS event pump. Every iteration delivers
// NewEvents, any events injected for that frame, MainEventsCleared and, if a
// redraw was requested, RedrawRequested.
type MockEventSource struct {
	NextCalls      int
	RedrawRequests int
	WakeCalls      int
	Frames         int
	// MaxFrames ends the run with CloseRequested so a broken loop cannot spin forever.
	MaxFrames int

	injected      map[int][]event.Event
	queue         []event.Event
	pendingRedraw bool
	journal       *Journal
}

func NewMockEventSource() *MockEventSource {
	return &MockEventSource{
		MaxFrames: 1000,
		injected:  make(map[int][]event.Event),
	}
}

func (m *MockEventSource) Next() event.Event {
	m.NextCalls++

	if len(m.queue) > 0 {
		ev := m.queue[0]
		m.queue = m.queue[1:]
		return ev
	}

	if m.pendingRedraw {
		m.pendingRedraw = false
		return event.Of(event.RedrawRequested)
	}

	m.Frames++
	if m.MaxFrames > 0 && m.Frames > m.MaxFrames {
		return event.Of(event.CloseRequested)
	}

	m.journal.Add(fmt.Sprintf("frame %d", m.Frames))
	m.queue = append(m.queue, m.injected[m.Frames]...)
	m.queue = append(m.queue, event.Of(event.MainEventsCleared))
	return event.Of(event.NewEvents)
}

func (m *MockEventSource) RequestRedraw() {
	m.journal.Add("events.RequestRedraw")
	m.RedrawRequests++
	m.pendingRedraw = true
}

func (m *MockEventSource) Wake() {
	m.WakeCalls++
}

// WithEventsAt delivers evs during frame n (1-based), after NewEvents.
func (m *MockEventSource) WithEventsAt(n int, evs ...event.Event) *MockEventSource {
	m.injected[n] = append(m.injected[n], evs...)
	return m
}

func (m *MockEventSource) WithMaxFrames(n int) *MockEventSource {
	m.MaxFrames = n
	return m
}

func (m *MockEventSource) WithJournal(j *Journal) *MockEventSource {
	m.journal = j
	return m
}

// MockPlatform records platform bridge calls.
type MockPlatform struct {
	PrepareFrameCalls  int
	PrepareRenderCalls int
	HandledEvents      []event.Event
	PrepareFrameErr    error
	DisplaySize        geom.Vec2

	journal *Journal
}

func NewMockPlatform() *MockPlatform {
	return &MockPlatform{
		DisplaySize:   geom.Vec2{X: 1920, Y: 1080},
		HandledEvents: []event.Event{},
	}
}

func (m *MockPlatform) PrepareFrame(io *ui.IO) error {
	m.journal.Add("platform.PrepareFrame")
	m.PrepareFrameCalls++
	io.DisplaySize = m.DisplaySize
	return m.PrepareFrameErr
}

func (m *MockPlatform) PrepareRender(*ui.IO) {
	m.journal.Add("platform.PrepareRender")
	m.PrepareRenderCalls++
}

func (m *MockPlatform) HandleEvent(_ *ui.IO, ev event.Event) {
	m.HandledEvents = append(m.HandledEvents, ev)
}

func (m *MockPlatform) WithPrepareFrameError(err error) *MockPlatform {
	m.PrepareFrameErr = err
	return m
}

func (m *MockPlatform) WithJournal(j *Journal) *MockPlatform {
	m.journal = j
	return m
}

// MockCanvas records clears and presents.
type MockCanvas struct {
	ClearCalls  []ui.Color
	FinishCalls int
	// FinishErrAt fails the nth Finish call (1-based) when FinishErr is set.
	FinishErrAt int
	FinishErr   error

	journal *Journal
}

func NewMockCanvas() *MockCanvas {
	return &MockCanvas{ClearCalls: []ui.Color{}}
}

func (m *MockCanvas) Clear(c ui.Color) {
	m.journal.Add("canvas.Clear")
	m.ClearCalls = append(m.ClearCalls, c)
}

func (m *MockCanvas) Finish() error {
	m.journal.Add("canvas.Finish")
	m.FinishCalls++
	if m.FinishErr != nil && (m.FinishErrAt == 0 || m.FinishErrAt == m.FinishCalls) {
		return m.FinishErr
	}
	return nil
}

func (m *MockCanvas) WithFinishError(at int, err error) *MockCanvas {
	m.FinishErrAt = at
	m.FinishErr = err
	return m
}

func (m *MockCanvas) WithJournal(j *Journal) *MockCanvas {
	m.journal = j
	return m
}

// MockRenderer counts submitted frames and keeps the distinct vertex colours
// of the last one.
type MockRenderer struct {
	RenderCalls  int
	LastVertices int
	LastColors   []ui.Color
	RenderErrAt  int
	RenderErr    error

	journal *Journal
}

func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) Render(dd *ui.DrawData) error {
	m.journal.Add("renderer.Render")
	m.RenderCalls++
	if dd != nil {
		m.LastVertices = dd.TotalVertices
		m.LastColors = m.LastColors[:0]
		seen := make(map[ui.Color]bool)
		for _, l := range dd.Lists {
			for _, v := range l.Vertices {
				if !seen[v.Col] {
					seen[v.Col] = true
					m.LastColors = append(m.LastColors, v.Col)
				}
			}
		}
	}

	if m.RenderErr != nil && (m.RenderErrAt == 0 || m.RenderErrAt == m.RenderCalls) {
		return m.RenderErr
	}
	return nil
}

// WithRenderError fails the nth Render call (1-based), or every call when at is 0.
func (m *MockRenderer) WithRenderError(at int, err error) *MockRenderer {
	m.RenderErrAt = at
	m.RenderErr = err
	return m
}

func (m *MockRenderer) WithJournal(j *Journal) *MockRenderer {
	m.journal = j
	return m
}

// MockHost bundles the loop mocks behind interfaces.Host.
type MockHost struct {
	Win         *MockNativeWindow
	Ev          *MockEventSource
	Cnv         *MockCanvas
	Plat        *MockPlatform
	InputRelay  *MockInputRelay
	Rend        *MockRenderer
	RendererErr error
	ClosedCalls int
}

func NewMockHost() *MockHost {
	return &MockHost{
		Win:        NewMockNativeWindow(),
		Ev:         NewMockEventSource(),
		Cnv:        NewMockCanvas(),
		Plat:       NewMockPlatform(),
		InputRelay: NewMockInputRelay(),
		Rend:       NewMockRenderer(),
	}
}

func (m *MockHost) Window() interfaces.NativeWindow { return m.Win }
func (m *MockHost) Events() interfaces.EventSource  { return m.Ev }
func (m *MockHost) Canvas() interfaces.Canvas       { return m.Cnv }
func (m *MockHost) Platform() interfaces.Platform   { return m.Plat }
func (m *MockHost) Relay() interfaces.InputRelay    { return m.InputRelay }
func (m *MockHost) Close()                          { m.ClosedCalls++ }

func (m *MockHost) NewRenderer(*ui.Font) (interfaces.Renderer, error) {
	if m.RendererErr != nil {
		return nil, m.RendererErr
	}
	return m.Rend, nil
}

func (m *MockHost) WithRendererError(err error) *MockHost {
	m.RendererErr = err
	return m
}

// MockBackend hands out a MockHost.
type MockBackend struct {
	MonitorList []geom.Rect
	MonitorsErr error
	OpenErr     error
	Host        *MockHost
	OpenCalls   []interfaces.WindowOptions

	journal *Journal
}

// ErrMockOpen is a generic window creation failure.
var ErrMockOpen = errors.New("mock: cannot create window")

func NewMockBackend() *MockBackend {
	return &MockBackend{
		MonitorList: []geom.Rect{{W: 1920, H: 1080}, {X: 1920, W: 2560, H: 1440}},
		Host:        NewMockHost(),
		OpenCalls:   []interfaces.WindowOptions{},
	}
}

func (m *MockBackend) Monitors() ([]geom.Rect, error) {
	m.journal.Add("backend.Monitors")
	return m.MonitorList, m.MonitorsErr
}

func (m *MockBackend) Open(opts interfaces.WindowOptions) (interfaces.Host, error) {
	m.journal.Add("backend.Open")
	m.OpenCalls = append(m.OpenCalls, opts)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return m.Host, nil
}

func (m *MockBackend) WithMonitors(monitors ...geom.Rect) *MockBackend {
	m.MonitorList = monitors
	return m
}

func (m *MockBackend) WithOpenError(err error) *MockBackend {
	m.OpenErr = err
	return m
}

func (m *MockBackend) WithJournal(j *Journal) *MockBackend {
	m.journal = j
	m.Host.Win.WithJournal(j)
	m.Host.Ev.WithJournal(j)
	m.Host.Cnv.WithJournal(j)
	m.Host.Plat.WithJournal(j)
	m.Host.InputRelay.WithJournal(j)
	m.Host.Rend.WithJournal(j)
	return m
}
