package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Norgate-AV/ovly/internal/ui"
)

var keyMap = map[glfw.Key]ui.Key{
	glfw.KeyTab:       ui.KeyTab,
	glfw.KeyLeft:      ui.KeyLeft,
	glfw.KeyRight:     ui.KeyRight,
	glfw.KeyUp:        ui.KeyUp,
	glfw.KeyDown:      ui.KeyDown,
	glfw.KeyHome:      ui.KeyHome,
	glfw.KeyEnd:       ui.KeyEnd,
	glfw.KeyInsert:    ui.KeyInsert,
	glfw.KeyDelete:    ui.KeyDelete,
	glfw.KeyBackspace: ui.KeyBackspace,
	glfw.KeyEnter:     ui.KeyEnter,
	glfw.KeyKPEnter:   ui.KeyEnter,
	glfw.KeyEscape:    ui.KeyEscape,
	glfw.KeyPause:     ui.KeyPause,
	glfw.KeyA:         ui.KeyA,
	glfw.KeyC:         ui.KeyC,
	glfw.KeyV:         ui.KeyV,
	glfw.KeyX:         ui.KeyX,
	glfw.KeyF1:        ui.KeyF1,
	glfw.KeyF2:        ui.KeyF2,
	glfw.KeyF3:        ui.KeyF3,
	glfw.KeyF4:        ui.KeyF4,
	glfw.KeyF5:        ui.KeyF5,
	glfw.KeyF6:        ui.KeyF6,
	glfw.KeyF7:        ui.KeyF7,
	glfw.KeyF8:        ui.KeyF8,
	glfw.KeyF9:        ui.KeyF9,
	glfw.KeyF10:       ui.KeyF10,
	glfw.KeyF11:       ui.KeyF11,
	glfw.KeyF12:       ui.KeyF12,
}
