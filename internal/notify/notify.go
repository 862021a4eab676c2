package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string
}

// Notifier sends desktop notifications via notify-send. It implements
// the pomodoro store's Alerter interface. The enabled gate is read on
// every send, so a settings change applies to the next notification
// without any refresh call.
type Notifier struct {
	enabled func() bool
}

// NewNotifier creates a notifier with notifications enabled
func NewNotifier() *Notifier {
	return &Notifier{enabled: func() bool { return true }}
}

// GateWith installs a live enabled check. A nil check keeps the
// current gate.
func (n *Notifier) GateWith(enabled func() bool) {
	if enabled != nil {
		n.enabled = enabled
	}
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled() {
		return nil
	}

	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "focusboard")
	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// WorkComplete announces a finished work session. Fire-and-forget: the
// pomodoro store does not care whether the notification landed.
func (n *Notifier) WorkComplete(linkedTaskID string, minutes int) {
	body := fmt.Sprintf("%d minutes of focus. Time for a break.", minutes)
	_ = n.Send(Notification{
		Title:   "Pomodoro complete!",
		Body:    body,
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "alarm-symbolic",
	})
}

// BreakComplete announces the end of a break
func (n *Notifier) BreakComplete() {
	_ = n.Send(Notification{
		Title:   "Break over",
		Body:    "Time to get back to work!",
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "appointment-soon-symbolic",
	})
}
