//go:build windows

package windows

import (
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procSetActiveWindow          = user32.NewProc("SetActiveWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")

	dwmapi                        = windows.NewLazySystemDLL("dwmapi.dll")
	procDwmEnableBlurBehindWindow = dwmapi.NewProc("DwmEnableBlurBehindWindow")
	procDwmSetWindowAttribute     = dwmapi.NewProc("DwmSetWindowAttribute")

	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	DWM_BB_ENABLE     = 0x00000001
	DWM_BB_BLURREGION = 0x00000002

	DWMWA_NCRENDERING_POLICY = 2
	DWMNCRP_DISABLED         = 1
)

// Virtual key codes lxn/win does not name.
const (
	VK_A = 0x41
	VK_C = 0x43
	VK_V = 0x56
	VK_X = 0x58
)

type DWM_BLURBEHIND struct {
	DwFlags                uint32
	FEnable                int32
	HRgnBlur               uintptr
	FTransitionOnMaximized int32
}
