// SPDX-License-Identifier: EPL-2.0

package session

import "time"

// Severity of a user-facing notification.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// Notifier receives user-facing rejection and status messages. The
// timeout is a display-duration hint; implementations may ignore it.
// Rejections are reported here and returned as errors; they never abort
// the process and never leave partial state behind.
type Notifier interface {
	Notify(message string, severity Severity, timeout time.Duration)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Severity, time.Duration) {}

// notifyTimeout is the display hint attached to every message.
const notifyTimeout = 5 * time.Second
