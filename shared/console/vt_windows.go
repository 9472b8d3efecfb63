//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableColors turns on virtual terminal processing for stdout so the
// escape sequences of the table renderer and spinner are interpreted.
func EnableColors() {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}

	_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
