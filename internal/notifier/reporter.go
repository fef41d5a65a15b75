package notifier

import "github.com/sirupsen/logrus"

// Reporter writes every message to the console and mirrors it to the
// desktop when a notifier is available. Urgency escalates with the level:
// errors are delivered as critical notifications.
type Reporter struct {
	notifier Notifier
	title    string
}

func NewReporter(notifier Notifier, title string) (instance *Reporter) {
	instance = &Reporter{
		notifier: notifier,
		title:    title,
	}
	return
}

func (reporter *Reporter) Info(message string) {
	logrus.Info(message)
	reporter.notifier.Notify(URGENCY_NORMAL, reporter.title, message)
}

func (reporter *Reporter) Warn(message string) {
	logrus.Warn(message)
	reporter.notifier.Notify(URGENCY_NORMAL, reporter.title, message)
}

func (reporter *Reporter) Error(message string) {
	logrus.Error(message)
	reporter.notifier.Notify(URGENCY_CRITICAL, reporter.title, message)
}
