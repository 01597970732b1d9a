package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

const notificationTTL = 5 * time.Second

type Notification struct {
	Message string
	Emoji   string
	ShownAt time.Time
}

// NotificationManager shows queued banners one at a time, each for
// notificationTTL.
type NotificationManager struct {
	queue []Notification
	now   func() time.Time
}

func NewNotificationManager() *NotificationManager {
	return &NotificationManager{now: time.Now}
}

// Push queues a banner. It is shown immediately if the queue was empty.
func (nm *NotificationManager) Push(message, emoji string) {
	n := Notification{Message: message, Emoji: emoji}
	if len(nm.queue) == 0 {
		n.ShownAt = nm.now()
	}
	nm.queue = append(nm.queue, n)
}

// SetMessage shows a transient informational notification.
func (nm *NotificationManager) SetMessage(msg string) {
	nm.Push(msg, "")
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if len(nm.queue) == 0 {
		return nil
	}
	if nm.now().Sub(nm.queue[0].ShownAt) > notificationTTL {
		return nil
	}
	return &nm.queue[0]
}

// Pending is the number of queued notifications, the visible one included.
func (nm *NotificationManager) Pending() int {
	return len(nm.queue)
}

// Expire drops the head once shown long enough and starts the next one.
// Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if len(nm.queue) == 0 || nm.now().Sub(nm.queue[0].ShownAt) <= notificationTTL {
		return
	}
	nm.queue = nm.queue[1:]
	if len(nm.queue) > 0 {
		nm.queue[0].ShownAt = nm.now()
	}
}

func (nm *NotificationManager) RenderBanner(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(theme.ColorMauve)

	text := n.Message
	if n.Emoji != "" {
		text = n.Emoji + " " + text
	}
	return style.Render(text)
}
