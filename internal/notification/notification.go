// Package notification raises desktop notifications through beeep. postview
// uses it to report background failures (a rejected delete or comment) that
// the user might otherwise miss.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/postview/internal/logger"
)

// AppName is the notification title.
const AppName = "postview"

type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the platform notifier (tests).
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default.
	err := notifier(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// BackgroundFailure reports a request that failed after the UI moved on.
func BackgroundFailure(message string) error {
	return Send(AppName, message)
}
