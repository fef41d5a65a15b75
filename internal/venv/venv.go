package venv

import (
	"os"
	"os/exec"
	"path/filepath"

	"accela.dev/launcher/internal/folder"
	"github.com/sirupsen/logrus"
)

// Reporter mirrors messages to the console and, when available, to the
// desktop notification facility.
type Reporter interface {
	Info(message string)
	Warn(message string)
	Error(message string)
}

// CommandRunner executes an external program and blocks until it exits.
type CommandRunner func(name string, arguments ...string) error

func defaultCommandRunner(name string, arguments ...string) error {
	process := exec.Command(name, arguments...)
	process.Stdout = os.Stdout
	process.Stderr = os.Stderr
	return process.Run()
}

// Engine creates, detects and activates the isolated runtime environment
// the GUI runs in.
type Engine struct {
	BasePath string
	Python   string
	Run      CommandRunner
	reporter Reporter
}

func NewEngine(basePath string, python string, reporter Reporter) (instance *Engine, err error) {
	instance = &Engine{
		BasePath: basePath,
		Python:   python,
		Run:      defaultCommandRunner,
		reporter: reporter,
	}
	return
}

func (engine *Engine) environmentPath() string {
	return filepath.Join(engine.BasePath, folder.ENVIRONMENT)
}

func (engine *Engine) manifestPath() string {
	return filepath.Join(engine.BasePath, folder.MANIFEST)
}

// Detected reports whether a previously completed creation left both the
// environment directory and its activation marker on disk.
func (engine *Engine) Detected() bool {
	if _, err := os.Stat(engine.environmentPath()); os.IsNotExist(err) {
		return false
	}
	if _, err := os.Stat(folder.ActivationMarker(engine.environmentPath())); os.IsNotExist(err) {
		return false
	}
	return true
}

// Create runs the interpreter's environment module. An existing directory
// is upgraded in place rather than removed first.
func (engine *Engine) Create() (err error) {
	engine.reporter.Info("Creating the environment")
	if err = engine.Run(engine.Python, "-m", "venv", engine.environmentPath()); err != nil {
		logrus.Error("Environment creation failed")
		logrus.Errorf("%+v", err)
		return
	}
	return
}

// Install resolves the dependency manifest into the environment through
// the environment's own package installer. A missing manifest is not a
// failure: it is reported and installation is skipped. The message is a
// warning only when the user explicitly asked for setup; on the implicit
// creation path the run already carries the missing-environment warning.
func (engine *Engine) Install(explicit bool) (err error) {
	if _, statErr := os.Stat(engine.manifestPath()); os.IsNotExist(statErr) {
		if explicit {
			engine.reporter.Warn("No dependency manifest found, skipping installation")
		} else {
			engine.reporter.Info("No dependency manifest found, skipping installation")
		}
		return
	}
	engine.reporter.Info("Installing dependencies")
	installer := filepath.Join(folder.BinPath(engine.environmentPath()), "pip")
	if err = engine.Run(installer, "install", "-r", engine.manifestPath()); err != nil {
		logrus.Error("Dependency installation failed")
		logrus.Errorf("%+v", err)
		return
	}
	return
}

// Activate points the process environment at the isolated environment so
// that every later child process, the final handoff included, resolves
// the environment's interpreter and entry points first.
func (engine *Engine) Activate() (err error) {
	var environmentPath string
	if environmentPath, err = filepath.Abs(engine.environmentPath()); err != nil {
		logrus.Error("Cannot get the absolute environment path")
		logrus.Errorf("%+v", err)
		return
	}
	if err = os.Setenv("VIRTUAL_ENV", environmentPath); err != nil {
		return
	}
	searchPath := folder.BinPath(environmentPath)
	if currentSearchPath := os.Getenv("PATH"); currentSearchPath != "" {
		searchPath = searchPath + string(os.PathListSeparator) + currentSearchPath
	}
	if err = os.Setenv("PATH", searchPath); err != nil {
		return
	}
	// PYTHONHOME would override the isolated interpreter's own layout
	os.Unsetenv("PYTHONHOME")
	return
}

// Ensure realizes the environment contract: forced (re)creation when
// requested, activation of a detected environment otherwise, and creation
// as the fallback when nothing usable is on disk. Creation or installation
// failure is fatal to the caller.
func (engine *Engine) Ensure(setupRequested bool) (created bool, err error) {
	if !setupRequested {
		if engine.Detected() {
			engine.reporter.Info("Activating the existing environment")
			err = engine.Activate()
			return
		}
		engine.reporter.Warn("No environment found, creating one")
	}

	var lock *creationLock
	if lock, err = acquireCreationLock(engine.BasePath); err != nil {
		logrus.Error("Another launcher instance is setting up the environment")
		logrus.Errorf("%+v", err)
		return
	}
	defer lock.release()

	if err = engine.Create(); err != nil {
		return
	}
	created = true
	if err = engine.Activate(); err != nil {
		return
	}
	err = engine.Install(setupRequested)
	return
}
