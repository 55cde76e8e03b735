// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are run to completion on the
// test goroutine, one message at a time, so assertions see a settled model.
// Animation Cmds (cursor blink, spinner frames) sleep on timers; they are
// abandoned after a short wait and their messages never reach the model, so
// animated models render their first frame.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds Cmd chains so a self-rescheduling model cannot hang
// a test.
const MaxDrainDepth = 100

// Fake service calls and message factories return in microseconds; the
// shortest animation timer is a spinner frame at ~100ms.
const cmdTimeout = 10 * time.Millisecond

// Driver owns a model and feeds it messages.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg comes out of a Cmd. The real
	// runtime swallows that message, so models rarely record it themselves.
	Quitting bool
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Init is not run until DrainInit.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send runs msg through Update and drains what it returns. Nothing is
// delivered after the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

var namedKeys = map[string]tea.KeyMsg{
	"enter":     {Type: tea.KeyEnter},
	"esc":       {Type: tea.KeyEsc},
	"ctrl+c":    {Type: tea.KeyCtrlC},
	"up":        {Type: tea.KeyUp},
	"down":      {Type: tea.KeyDown},
	"left":      {Type: tea.KeyLeft},
	"right":     {Type: tea.KeyRight},
	"tab":       {Type: tea.KeyTab},
	"shift+tab": {Type: tea.KeyShiftTab},
	"pgdown":    {Type: tea.KeyPgDown},
	"pgup":      {Type: tea.KeyPgUp},
	"space":     {Type: tea.KeySpace, Runes: []rune{' '}},
}

// KeyMsg builds the message for a key name as tea.KeyMsg.String() spells
// it ("enter", "shift+tab", "space"), or for a single character.
func KeyMsg(name string) (tea.KeyMsg, error) {
	if k, ok := namedKeys[name]; ok {
		return k, nil
	}
	if r := []rune(name); len(r) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: r}, nil
	}
	return tea.KeyMsg{}, fmt.Errorf("teatest: unknown key %q", name)
}

// Press sends each key in order. An unknown key name fails the test.
func (d *Driver) Press(keys ...string) {
	d.T.Helper()
	for _, name := range keys {
		k, err := KeyMsg(name)
		if err != nil {
			d.T.Fatal(err)
		}
		d.Send(k)
	}
}

// Type sends s one rune at a time, as a user typing would.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: gave up draining after %d chained Cmds", MaxDrainDepth)
		return
	}

	switch msg := run(cmd).(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			d.drain(c, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		if isAnimationTick(msg) {
			return
		}
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.drain(next, depth+1)
	}
}

// run executes cmd, returning nil if it has not finished within cmdTimeout.
func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isAnimationTick matches bubbles cursor blink messages (some unexported)
// and spinner.TickMsg.
func isAnimationTick(msg tea.Msg) bool {
	name := fmt.Sprintf("%T", msg)
	return strings.Contains(strings.ToLower(name), "blink") || name == "spinner.TickMsg"
}
