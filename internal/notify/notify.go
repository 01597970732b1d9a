// Package notify delivers milestone messages outside the TUI.
package notify

import (
	"strings"
	"sync/atomic"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// AppName is the title of desktop notifications.
const AppName = "Claude Carbon Tracker"

// Desktop shows milestone messages as OS notifications.
type Desktop struct {
	send   func(title, body string) error
	logger zerolog.Logger
}

// NewDesktop returns a Desktop notifier backed by beeep.
func NewDesktop(logger zerolog.Logger) *Desktop {
	return &Desktop{
		send: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
		logger: logger.With().Str("component", "notify").Logger(),
	}
}

// Notify sends the notification. Failures are logged.
func (d *Desktop) Notify(message, emoji string) {
	body := strings.Join(strings.Fields(emoji+" "+message), " ")
	if err := d.send(AppName, body); err != nil {
		d.logger.Warn().Err(err).Msg("Desktop notification failed")
	}
}

// Log writes milestone messages to the logger.
type Log struct {
	logger zerolog.Logger
}

// NewLog returns a Log notifier.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger.With().Str("component", "notify").Logger()}
}

func (l *Log) Notify(message, emoji string) {
	l.logger.Info().Str("emoji", emoji).Msg(message)
}

// Notifier matches tracker.Notifier without importing it.
type Notifier interface {
	Notify(message, emoji string)
}

// Multi fans a message out to several notifiers in order.
type Multi []Notifier

func (m Multi) Notify(message, emoji string) {
	for _, n := range m {
		if n != nil {
			n.Notify(message, emoji)
		}
	}
}

// Channel forwards notifications to a buffered channel without blocking.
// Messages arriving while the buffer is full are dropped.
type Channel struct {
	C chan Message
}

// Message is one milestone notification.
type Message struct {
	Text  string
	Emoji string
}

// NewChannel returns a Channel with the given buffer size.
func NewChannel(size int) *Channel {
	if size < 1 {
		size = 1
	}
	return &Channel{C: make(chan Message, size)}
}

func (c *Channel) Notify(message, emoji string) {
	select {
	case c.C <- Message{Text: message, Emoji: emoji}:
	default:
	}
}

// Switch gates another notifier. It starts enabled.
type Switch struct {
	next     Notifier
	disabled atomic.Bool
}

// NewSwitch wraps next.
func NewSwitch(next Notifier) *Switch {
	return &Switch{next: next}
}

func (s *Switch) SetEnabled(enabled bool) { s.disabled.Store(!enabled) }

func (s *Switch) Enabled() bool { return !s.disabled.Load() }

func (s *Switch) Notify(message, emoji string) {
	if s.next == nil || s.disabled.Load() {
		return
	}
	s.next.Notify(message, emoji)
}
