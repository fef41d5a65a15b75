//go:build !windows
// +build !windows

package handoff

import (
	"os"
	"os/exec"
	"syscall"
)

// Launch replaces the launcher process with the GUI command, resolved on
// the current (already activated) search path, passing the residual
// arguments and the full process environment through unmodified. On
// success it never returns: the GUI's exit code and signal behavior
// become the process's observable behavior.
func Launch(command string, arguments []string) (err error) {
	var executablePath string
	if executablePath, err = exec.LookPath(command); err != nil {
		return
	}
	return syscall.Exec(executablePath, append([]string{command}, arguments...), os.Environ())
}
