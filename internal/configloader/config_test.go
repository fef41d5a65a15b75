package configloader_test

import (
	"os"
	"testing"

	"accela.dev/launcher/internal/configloader"
)

// Test default configuration loading
func TestLoadDefaultConfiguration(t *testing.T) {
	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "info" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "info")
	}
	if configuration.GuiCommand != "accela" {
		t.Errorf("Default GUI command is \"%s\", not \"%s\"", configuration.GuiCommand, "accela")
	}
	if configuration.Python != "python3" {
		t.Errorf("Default interpreter is \"%s\", not \"%s\"", configuration.Python, "python3")
	}
}

// Test environment variables configuration loading
func TestLoadEnvironmentVariablesConfiguration(t *testing.T) {
	os.Setenv("LOG_LEVEL", "LOG_LEVEL")
	defer os.Unsetenv("LOG_LEVEL")

	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "LOG_LEVEL" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "LOG_LEVEL")
	}
}
