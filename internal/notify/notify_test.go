package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct{ got []string }

func (r *recorder) Notify(message, emoji string) { r.got = append(r.got, emoji+message) }

func TestDesktop_FormatsBodyAndLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	d := NewDesktop(zerolog.New(&buf))

	var title, body string
	d.send = func(t, b string) error {
		title, body = t, b
		return errors.New("no dbus")
	}
	d.Notify("You've used\n 0.025 kg", "☕")

	assert.Equal(t, AppName, title)
	assert.Equal(t, "☕ You've used 0.025 kg", body)
	assert.Contains(t, buf.String(), "Desktop notification failed")
	assert.Contains(t, buf.String(), `"component":"notify"`)
}

func TestLog_WritesMessage(t *testing.T) {
	var buf bytes.Buffer
	NewLog(zerolog.New(&buf)).Notify("Milestone", "🌍")

	assert.Contains(t, buf.String(), `"message":"Milestone"`)
	assert.Contains(t, buf.String(), `"emoji":"🌍"`)
}

func TestMulti_FansOutInOrder(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Multi{a, nil, b}.Notify("x", "1")

	assert.Equal(t, []string{"1x"}, a.got)
	assert.Equal(t, []string{"1x"}, b.got)
}

func TestChannel_DropsWhenFull(t *testing.T) {
	c := NewChannel(1)
	c.Notify("first", "a")
	c.Notify("second", "b")

	require.Len(t, c.C, 1)
	msg := <-c.C
	assert.Equal(t, Message{Text: "first", Emoji: "a"}, msg)
}

func TestSwitch_GatesDelivery(t *testing.T) {
	r := &recorder{}
	s := NewSwitch(r)
	require.True(t, s.Enabled())

	s.Notify("one", "a")
	s.SetEnabled(false)
	s.Notify("two", "b")
	s.SetEnabled(true)
	s.Notify("three", "c")

	assert.Equal(t, []string{"aone", "cthree"}, r.got)
	assert.NotPanics(t, func() { NewSwitch(nil).Notify("ignored", "") })
}
