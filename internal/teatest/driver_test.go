package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoMsg string

type blinkMsg struct{}

// recorder keeps every message it sees and answers "go" with a Cmd chain.
type recorder struct {
	seen []string
}

func (r *recorder) Init() tea.Cmd { return func() tea.Msg { return echoMsg("init") } }

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case echoMsg:
		r.seen = append(r.seen, string(msg))
	case blinkMsg:
		r.seen = append(r.seen, "blink")
	case tea.KeyMsg:
		r.seen = append(r.seen, msg.String())
		switch msg.String() {
		case "g":
			return r, tea.Batch(
				func() tea.Msg { return echoMsg("a") },
				func() tea.Msg { return echoMsg("b") },
			)
		case "s":
			return r, func() tea.Msg {
				time.Sleep(200 * time.Millisecond)
				return echoMsg("late")
			}
		case "b":
			return r, func() tea.Msg { return blinkMsg{} }
		case "q":
			return r, tea.Quit
		}
	}
	return r, nil
}

func (r *recorder) View() string { return "" }

func TestDriver_DrainsInitAndBatches(t *testing.T) {
	m := &recorder{}
	d := New(t, m)
	d.DrainInit()
	d.Press("g")

	assert.Equal(t, []string{"init", "g", "a", "b"}, m.seen)
}

func TestDriver_SlowCmdIsDropped(t *testing.T) {
	m := &recorder{}
	d := New(t, m)
	d.Press("s")

	assert.Equal(t, []string{"s"}, m.seen)
}

func TestDriver_AnimationTicksAreDropped(t *testing.T) {
	m := &recorder{}
	d := New(t, m)
	d.Press("b")

	assert.Equal(t, []string{"b"}, m.seen)
}

func TestDriver_QuitStopsDelivery(t *testing.T) {
	m := &recorder{}
	d := New(t, m)
	d.Press("q")
	require.True(t, d.Quitting)

	d.Press("g")
	assert.Equal(t, []string{"q"}, m.seen)
}

func TestKeyMsg(t *testing.T) {
	for _, name := range []string{"enter", "shift+tab", "ctrl+c", "r", "한"} {
		k, err := KeyMsg(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, k.String(), name)
	}

	space, err := KeyMsg("space")
	require.NoError(t, err)
	assert.Equal(t, tea.KeySpace, space.Type)

	_, err = KeyMsg("hyper+x")
	assert.Error(t, err)
}
