package venv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"accela.dev/launcher/internal/folder"
	"accela.dev/launcher/internal/venv"
	"github.com/stretchr/testify/assert"
)

type recordingReporter struct {
	infos    []string
	warnings []string
	errors   []string
}

func (reporter *recordingReporter) Info(message string)  { reporter.infos = append(reporter.infos, message) }
func (reporter *recordingReporter) Warn(message string)  { reporter.warnings = append(reporter.warnings, message) }
func (reporter *recordingReporter) Error(message string) { reporter.errors = append(reporter.errors, message) }

type recordingRunner struct {
	invocations [][]string
	fail        bool
}

func (runner *recordingRunner) run(name string, arguments ...string) error {
	runner.invocations = append(runner.invocations, append([]string{name}, arguments...))
	if runner.fail {
		return os.ErrPermission
	}
	return nil
}

func saveProcessEnvironment(t *testing.T) {
	searchPath, searchPathSet := os.LookupEnv("PATH")
	virtualEnv, virtualEnvSet := os.LookupEnv("VIRTUAL_ENV")
	t.Cleanup(func() {
		if searchPathSet {
			os.Setenv("PATH", searchPath)
		} else {
			os.Unsetenv("PATH")
		}
		if virtualEnvSet {
			os.Setenv("VIRTUAL_ENV", virtualEnv)
		} else {
			os.Unsetenv("VIRTUAL_ENV")
		}
	})
}

func newTestEngine(t *testing.T) (engine *venv.Engine, reporter *recordingReporter, runner *recordingRunner) {
	saveProcessEnvironment(t)
	reporter = &recordingReporter{}
	runner = &recordingRunner{}
	engine, err := venv.NewEngine(t.TempDir(), "python3", reporter)
	assert.NoError(t, err)
	engine.Run = runner.run
	return
}

func placeEnvironment(t *testing.T, basePath string) {
	markerPath := folder.ActivationMarker(filepath.Join(basePath, folder.ENVIRONMENT))
	assert.NoError(t, os.MkdirAll(filepath.Dir(markerPath), 0755))
	assert.NoError(t, os.WriteFile(markerPath, []byte{}, 0644))
}

func placeManifest(t *testing.T, basePath string) {
	manifestPath := filepath.Join(basePath, folder.MANIFEST)
	assert.NoError(t, os.WriteFile(manifestPath, []byte("requests\n"), 0644))
}

func TestEnsureWithoutEnvironmentOrManifest(t *testing.T) {
	engine, reporter, runner := newTestEngine(t)

	created, err := engine.Ensure(false)
	assert.NoError(t, err)
	assert.True(t, created)

	// A single warning for the missing environment, no installer call
	assert.Len(t, reporter.warnings, 1)
	assert.Len(t, runner.invocations, 1)
	assert.Equal(t, []string{"python3", "-m", "venv",
		filepath.Join(engine.BasePath, folder.ENVIRONMENT)}, runner.invocations[0])
}

func TestEnsureActivatesExistingEnvironment(t *testing.T) {
	engine, reporter, runner := newTestEngine(t)
	placeEnvironment(t, engine.BasePath)

	created, err := engine.Ensure(false)
	assert.NoError(t, err)
	assert.False(t, created)

	// Activation only: nothing runs, nothing is warned about
	assert.Empty(t, runner.invocations)
	assert.Empty(t, reporter.warnings)

	environmentPath, _ := filepath.Abs(filepath.Join(engine.BasePath, folder.ENVIRONMENT))
	assert.Equal(t, environmentPath, os.Getenv("VIRTUAL_ENV"))
	assert.True(t, strings.HasPrefix(os.Getenv("PATH"), folder.BinPath(environmentPath)))
}

func TestEnsureForcedRecreation(t *testing.T) {
	engine, _, runner := newTestEngine(t)
	placeEnvironment(t, engine.BasePath)
	placeManifest(t, engine.BasePath)

	created, err := engine.Ensure(true)
	assert.NoError(t, err)
	assert.True(t, created)

	// Creation then installation, even though an environment already exists
	assert.Len(t, runner.invocations, 2)
	assert.Equal(t, "python3", runner.invocations[0][0])
	assert.Equal(t, "install", runner.invocations[1][1])
}

func TestEnsureForcedWithoutManifestWarns(t *testing.T) {
	engine, reporter, runner := newTestEngine(t)

	created, err := engine.Ensure(true)
	assert.NoError(t, err)
	assert.True(t, created)

	assert.Len(t, reporter.warnings, 1)
	assert.Len(t, runner.invocations, 1)
}

func TestEnsureCreationFailureIsFatal(t *testing.T) {
	engine, _, runner := newTestEngine(t)
	runner.fail = true

	created, err := engine.Ensure(true)
	assert.Error(t, err)
	assert.False(t, created)

	// The creation lock must be released on failure
	_, statErr := os.Stat(filepath.Join(engine.BasePath, folder.ENVIRONMENT_LOCK))
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsureRefusesConcurrentCreation(t *testing.T) {
	engine, _, runner := newTestEngine(t)
	lockPath := filepath.Join(engine.BasePath, folder.ENVIRONMENT_LOCK)
	assert.NoError(t, os.WriteFile(lockPath, []byte("1"), 0644))

	_, err := engine.Ensure(true)
	assert.Error(t, err)
	assert.Empty(t, runner.invocations)
}

func TestEnsureReleasesLockAfterCompletion(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	_, err := engine.Ensure(true)
	assert.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(engine.BasePath, folder.ENVIRONMENT_LOCK))
	assert.True(t, os.IsNotExist(statErr))
}
