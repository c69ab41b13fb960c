// Package style models the native window style words of the overlay as
// bitmask value types. Values match the Win32 WS_* and WS_EX_* constants so
// they can be written to GWL_STYLE and GWL_EXSTYLE unchanged.
package style

import "strings"

// Style is the GWL_STYLE word.
type Style uint32

// ExStyle is the GWL_EXSTYLE word.
type ExStyle uint32

const (
	Popup        Style = 0x80000000
	Visible      Style = 0x10000000
	ClipSiblings Style = 0x04000000
)

const (
	Topmost     ExStyle = 0x00000008
	Transparent ExStyle = 0x00000020
	ToolWindow  ExStyle = 0x00000080
	Layered     ExStyle = 0x00080000
	NoActivate  ExStyle = 0x08000000
)

// inputBits are the only extended bits the activation state machine may toggle.
const inputBits = Transparent | NoActivate

// OverlayStyle returns popup | visible | clip-siblings.
func OverlayStyle() Style {
	return Popup | Visible | ClipSiblings
}

// OverlayExStyle returns the initial, fully click-through extended style.
func OverlayExStyle() ExStyle {
	return Layered | Transparent | ToolWindow | NoActivate
}

func (s Style) Popup() bool        { return s&Popup != 0 }
func (s Style) Visible() bool      { return s&Visible != 0 }
func (s Style) ClipSiblings() bool { return s&ClipSiblings != 0 }

func (e ExStyle) Layered() bool { return e&Layered != 0 }

// InputTransparent reports whether mouse input passes through the window.
func (e ExStyle) InputTransparent() bool { return e&Transparent != 0 }
func (e ExStyle) ToolWindow() bool       { return e&ToolWindow != 0 }
func (e ExStyle) NoActivate() bool       { return e&NoActivate != 0 }
func (e ExStyle) Topmost() bool          { return e&Topmost != 0 }

// With returns e with flags set.
func (e ExStyle) With(flags ExStyle) ExStyle { return e | flags }

// Without returns e with flags cleared.
func (e ExStyle) Without(flags ExStyle) ExStyle { return e &^ flags }

// Activated returns the style for an overlay that accepts input: the
// input-transparent and no-activate bits are cleared, everything else is kept.
// Layered is always forced on.
func (e ExStyle) Activated() ExStyle {
	return e.Without(inputBits).With(Layered)
}

// Deactivated returns the click-through style: input-transparent and
// no-activate set. Layered is always forced on.
func (e ExStyle) Deactivated() ExStyle {
	return e.With(inputBits | Layered)
}

// ForCapture picks Activated or Deactivated.
func (e ExStyle) ForCapture(active bool) ExStyle {
	if active {
		return e.Activated()
	}
	return e.Deactivated()
}

var styleNames = []struct {
	bit  Style
	name string
}{
	{Popup, "popup"},
	{Visible, "visible"},
	{ClipSiblings, "clipsiblings"},
}

var exStyleNames = []struct {
	bit  ExStyle
	name string
}{
	{Topmost, "topmost"},
	{Transparent, "transparent"},
	{ToolWindow, "toolwindow"},
	{Layered, "layered"},
	{NoActivate, "noactivate"},
}

func (s Style) String() string {
	var parts []string
	for _, n := range styleNames {
		if s&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return join(parts)
}

func (e ExStyle) String() string {
	var parts []string
	for _, n := range exStyleNames {
		if e&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return join(parts)
}

func join(parts []string) string {
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
