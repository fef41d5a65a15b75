package notifier

import (
	"os/exec"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type Urgency string

const (
	URGENCY_NORMAL   Urgency = "normal"
	URGENCY_CRITICAL Urgency = "critical"
)

// Notifications stay on screen for a fixed amount of time
const NOTIFICATION_TIMEOUT = 5 * time.Second

const NOTIFIER_EXECUTABLE = "notify-send"

// Notifier delivers a best-effort desktop notification. Implementations
// must never propagate delivery failures to the caller.
type Notifier interface {
	Notify(urgency Urgency, title string, body string)
}

type desktopNotifier struct {
	executablePath string
}

func (notifier *desktopNotifier) Notify(urgency Urgency, title string, body string) {
	timeout := strconv.FormatInt(NOTIFICATION_TIMEOUT.Milliseconds(), 10)
	process := exec.Command(notifier.executablePath,
		"-t", timeout,
		"-u", string(urgency),
		title, body)
	if err := process.Run(); err != nil {
		logrus.Debug("Notification delivery failed")
		logrus.Debugf("%+v", err)
	}
}

type noopNotifier struct{}

func (notifier *noopNotifier) Notify(_ Urgency, _ string, _ string) {}

// Probe resolves the desktop notification executable on the search path.
// A missing executable is not an error: console output simply loses its
// desktop counterpart for the rest of the process lifetime.
func Probe() Notifier {
	executablePath, err := exec.LookPath(NOTIFIER_EXECUTABLE)
	if err != nil {
		logrus.Debug("No notification executable found, console output only")
		return &noopNotifier{}
	}
	return &desktopNotifier{executablePath: executablePath}
}
