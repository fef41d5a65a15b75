//go:build windows
// +build windows

package handoff

import (
	"os"
	"os/exec"
)

// Launch starts the GUI command and forwards its exit code. True process
// replacement is unavailable on this platform, so the launcher stays in
// the tree as a transparent parent: stdio and environment are inherited,
// and the child's exit code becomes the launcher's.
func Launch(command string, arguments []string) (err error) {
	process := exec.Command(command, arguments...)
	process.Stdin = os.Stdin
	process.Stdout = os.Stdout
	process.Stderr = os.Stderr
	if err = process.Start(); err != nil {
		return
	}
	runErr := process.Wait()
	if exitError, ok := runErr.(*exec.ExitError); ok {
		os.Exit(exitError.ExitCode())
	}
	if runErr != nil {
		return runErr
	}
	os.Exit(0)
	return
}
