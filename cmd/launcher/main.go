package main

import (
	"os"

	"accela.dev/launcher/internal/cli"
	"accela.dev/launcher/internal/configloader"
	"accela.dev/launcher/internal/handoff"
	"accela.dev/launcher/internal/history"
	"accela.dev/launcher/internal/notifier"
	"accela.dev/launcher/internal/settings"
	"accela.dev/launcher/internal/venv"
	"github.com/sirupsen/logrus"
)

const APPLICATION_NAME = "accela-launcher"
const NOTIFICATION_TITLE = "ACCELA Launcher"

func main() {
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, "")
	if err != nil {
		logrus.Fatal(err)
	}
	logLevel, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	reporter := notifier.NewReporter(notifier.Probe(), NOTIFICATION_TITLE)
	invocation := cli.Parse(os.Args[1:])

	engine, err := venv.NewEngine(".", configuration.Python, reporter)
	if err != nil {
		reporter.Error("Cannot initialize the environment engine: " + err.Error())
		os.Exit(1)
	}
	environmentCreated, err := engine.Ensure(invocation.SetupRequested)
	if err != nil {
		reporter.Error("Environment setup failed: " + err.Error())
		os.Exit(1)
	}

	if err = settings.Sync(".", map[string]interface{}{
		"environment_path": os.Getenv("VIRTUAL_ENV"),
		"gui_command":      configuration.GuiCommand,
		"interpreter":      configuration.Python,
	}); err != nil {
		logrus.Warn("Cannot write the launcher settings")
		logrus.Warnf("%+v", err)
	}

	recordLaunch(invocation, environmentCreated)

	if !handoff.DisplayAvailable() {
		reporter.Warn("No display server detected, the GUI may fail to start")
	}

	if err = handoff.Launch(configuration.GuiCommand, invocation.Passthrough); err != nil {
		reporter.Error("Cannot launch " + configuration.GuiCommand + ": " + err.Error())
		os.Exit(1)
	}
}

// recordLaunch stores the invocation in the local history. History is
// best-effort: a failure here must never block the handoff.
func recordLaunch(invocation cli.Invocation, environmentCreated bool) {
	store := history.Store{BasePath: "."}
	if err := store.Open(); err != nil {
		logrus.Warn("Cannot open the launch history")
		logrus.Warnf("%+v", err)
		return
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		logrus.Warn("Cannot migrate the launch history")
		logrus.Warnf("%+v", err)
		return
	}
	if err := store.Record(invocation.Passthrough, invocation.SetupRequested, environmentCreated); err != nil {
		logrus.Warn("Cannot record the launch")
		logrus.Warnf("%+v", err)
	}
}
