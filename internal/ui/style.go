package ui

import "github.com/Norgate-AV/ovly/internal/geom"

// Style holds the colours and spacing used by the built-in widgets.
type Style struct {
	WindowPadding geom.Vec2
	ItemSpacing   geom.Vec2
	FramePadding  geom.Vec2
	SliderWidth   float32

	Text          Color
	TextDisabled  Color
	WindowBg      Color
	TitleBg       Color
	TitleBgActive Color
	Border        Color
	FrameBg       Color
	FrameHovered  Color
	Button        Color
	ButtonHovered Color
	ButtonActive  Color
	CheckMark     Color
	SliderGrab    Color
	Separator     Color
	TextCursor    Color
}

// DefaultStyle returns a dark, translucent theme.
func DefaultStyle() Style {
	return Style{
		WindowPadding: geom.Vec2{X: 8, Y: 8},
		ItemSpacing:   geom.Vec2{X: 8, Y: 4},
		FramePadding:  geom.Vec2{X: 4, Y: 3},
		SliderWidth:   140,

		Text:          RGBA(230, 230, 230, 255),
		TextDisabled:  RGBA(128, 128, 128, 255),
		WindowBg:      RGBA(15, 15, 15, 235),
		TitleBg:       RGBA(10, 10, 10, 255),
		TitleBgActive: RGBA(41, 74, 122, 255),
		Border:        RGBA(110, 110, 128, 128),
		FrameBg:       RGBA(41, 74, 122, 138),
		FrameHovered:  RGBA(66, 150, 250, 102),
		Button:        RGBA(66, 150, 250, 102),
		ButtonHovered: RGBA(66, 150, 250, 255),
		ButtonActive:  RGBA(15, 135, 250, 255),
		CheckMark:     RGBA(66, 150, 250, 255),
		SliderGrab:    RGBA(61, 133, 224, 255),
		Separator:     RGBA(110, 110, 128, 128),
		TextCursor:    RGBA(230, 230, 230, 255),
	}
}
