package testutil

import (
	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/style"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// MockNativeWindow records all calls for verification
type MockNativeWindow struct {
	HandleValue     uintptr
	StyleValue      style.Style
	ExStyleValue    style.ExStyle
	BoundsValue     geom.Rect
	SetStyleCalls   []style.Style
	SetExStyleCalls []style.ExStyle
	SetActiveCalls  int
	ShowCalls       int
	TopmostCalls    int
	ShadowCalls     int
	BlurRegions     []geom.Rect
	SetBoundsCalls  []geom.Rect

	SetExStyleErr error
	SetActiveErr  error
	BlurErr       error

	journal *Journal
}

func NewMockNativeWindow() *MockNativeWindow {
	return &MockNativeWindow{
		HandleValue: 0x1234,
		BoundsValue: geom.Rect{W: 1920, H: 1080},
	}
}

func (m *MockNativeWindow) Handle() uintptr { return m.HandleValue }

func (m *MockNativeWindow) Style() style.Style { return m.StyleValue }

func (m *MockNativeWindow) SetStyle(s style.Style) error {
	m.journal.Add("window.SetStyle")
	m.SetStyleCalls = append(m.SetStyleCalls, s)
	m.StyleValue = s
	return nil
}

func (m *MockNativeWindow) ExStyle() style.ExStyle { return m.ExStyleValue }

func (m *MockNativeWindow) SetExStyle(s style.ExStyle) error {
	m.journal.Add("window.SetExStyle")
	m.SetExStyleCalls = append(m.SetExStyleCalls, s)
	if m.SetExStyleErr != nil {
		return m.SetExStyleErr
	}

	m.ExStyleValue = s
	return nil
}

func (m *MockNativeWindow) SetActive() error {
	m.journal.Add("window.SetActive")
	m.SetActiveCalls++
	return m.SetActiveErr
}

func (m *MockNativeWindow) Show() {
	m.journal.Add("window.Show")
	m.ShowCalls++
}

func (m *MockNativeWindow) SetTopmost() error {
	m.journal.Add("window.SetTopmost")
	m.TopmostCalls++
	return nil
}

func (m *MockNativeWindow) EnableBlurBehind(region geom.Rect) error {
	m.journal.Add("window.EnableBlurBehind")
	m.BlurRegions = append(m.BlurRegions, region)
	return m.BlurErr
}

func (m *MockNativeWindow) DisableShadow() error {
	m.journal.Add("window.DisableShadow")
	m.ShadowCalls++
	return nil
}

func (m *MockNativeWindow) Bounds() geom.Rect { return m.BoundsValue }

func (m *MockNativeWindow) SetBounds(r geom.Rect) error {
	m.SetBoundsCalls = append(m.SetBoundsCalls, r)
	m.BoundsValue = r
	return nil
}

// Helper methods for fluent configuration
func (m *MockNativeWindow) WithExStyle(s style.ExStyle) *MockNativeWindow {
	m.ExStyleValue = s
	return m
}

func (m *MockNativeWindow) WithBounds(r geom.Rect) *MockNativeWindow {
	m.BoundsValue = r
	return m
}

func (m *MockNativeWindow) WithSetExStyleError(err error) *MockNativeWindow {
	m.SetExStyleErr = err
	return m
}

func (m *MockNativeWindow) WithBlurError(err error) *MockNativeWindow {
	m.BlurErr = err
	return m
}

func (m *MockNativeWindow) WithJournal(j *Journal) *MockNativeWindow {
	m.journal = j
	return m
}

// MockTargetTracker returns a fixed snapshot and counts updates.
type MockTargetTracker struct {
	Snap        interfaces.TargetSnapshot
	UpdateCalls int
	// OnUpdate runs on each Update, e.g. to reposition the overlay.
	OnUpdate func(w interfaces.NativeWindow)

	journal *Journal
}

func NewMockTargetTracker(title string) *MockTargetTracker {
	return &MockTargetTracker{
		Snap: interfaces.TargetSnapshot{
			Title:  title,
			Bounds: geom.Rect{X: 100, Y: 100, W: 800, H: 600},
			Alive:  true,
		},
	}
}

func (m *MockTargetTracker) Update(w interfaces.NativeWindow) {
	m.journal.Add("tracker.Update")
	m.UpdateCalls++
	if m.OnUpdate != nil {
		m.OnUpdate(w)
	}
}

func (m *MockTargetTracker) Snapshot() interfaces.TargetSnapshot {
	return m.Snap
}

func (m *MockTargetTracker) WithSnapshot(s interfaces.TargetSnapshot) *MockTargetTracker {
	m.Snap = s
	return m
}

func (m *MockTargetTracker) WithJournal(j *Journal) *MockTargetTracker {
	m.journal = j
	return m
}

// MockInputRelay counts updates and optionally drives the UI input state.
type MockInputRelay struct {
	UpdateCalls int
	// OnUpdate runs on each Update with the UI input state.
	OnUpdate func(io *ui.IO)

	journal *Journal
}

func NewMockInputRelay() *MockInputRelay {
	return &MockInputRelay{}
}

func (m *MockInputRelay) Update(_ interfaces.NativeWindow, io *ui.IO) {
	m.journal.Add("relay.Update")
	m.UpdateCalls++
	if m.OnUpdate != nil {
		m.OnUpdate(io)
	}
}

func (m *MockInputRelay) WithOnUpdate(fn func(io *ui.IO)) *MockInputRelay {
	m.OnUpdate = fn
	return m
}

func (m *MockInputRelay) WithJournal(j *Journal) *MockInputRelay {
	m.journal = j
	return m
}

// MockAlerter records shown errors.
type MockAlerter struct {
	Calls []AlertCall
}

type AlertCall struct {
	Title   string
	Message string
}

func NewMockAlerter() *MockAlerter {
	return &MockAlerter{Calls: []AlertCall{}}
}

func (m *MockAlerter) ShowError(title, message string) {
	m.Calls = append(m.Calls, AlertCall{Title: title, Message: message})
}
