package handoff

import (
	"os"
	"runtime"
)

// DisplayAvailable reports whether a display-server connection is present
// in the environment. The GUI owns the final decision, so an absent
// display is worth a warning but never blocks the handoff.
func DisplayAvailable() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
