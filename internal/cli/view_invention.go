package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
	"github.com/jangyunsu11/UniversityPrepApp/internal/controller"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// ideasLoadedMsg carries a finished idea generation back to the view.
type ideasLoadedMsg struct {
	ticket controller.Ticket
	out    generation.Outcome[domain.InventionIdea]
}

// inventionView collects a theme and brainstorms competition ideas.
type inventionView struct {
	state   *SharedState
	ctl     *controller.Invention
	input   textinput.Model
	spinner spinner.Model
}

func newInventionView(state *SharedState) *inventionView {
	ti := textinput.New()
	ti.Placeholder = formatter.InventionInputHint
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return &inventionView{
		state:   state,
		ctl:     controller.NewInvention(),
		input:   ti,
		spinner: newSpinner(),
	}
}

func (v *inventionView) ID() ViewID { return ViewInvention }
func (v *inventionView) Title() string { return ViewInvention.TabLabel() }
func (v *inventionView) Unmount() { v.ctl.Abandon() }
func (v *inventionView) Init() tea.Cmd { return textinput.Blink }

// CapturesInput reports whether the theme input has focus.
func (v *inventionView) CapturesInput() bool { return v.input.Focused() }

func (v *inventionView) ShortHelp() []key.Binding {
	if v.input.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "아이디어 생성")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done typing")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "아이디어 생성")),
		key.NewBinding(key.WithKeys("i", "/"), key.WithHelp("i", "edit theme")),
	}
}

func (v *inventionView) generate() tea.Cmd {
	v.ctl.SetContext(v.input.Value())
	t, ok := v.ctl.Begin()
	if !ok {
		return nil
	}
	svc := v.state.App.Generation
	theme := v.ctl.Context()
	load := func() tea.Msg {
		return ideasLoadedMsg{ticket: t, out: svc.Ideas(context.Background(), theme)}
	}
	return tea.Batch(load, v.spinner.Tick)
}

func (v *inventionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ideasLoadedMsg:
		v.ctl.Complete(msg.ticket, msg.out)
		return v, nil

	case spinner.TickMsg:
		if !v.ctl.Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			v.input.Width = min(msg.Width-10, 80)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return v, v.generate()
		case tea.KeyEsc:
			v.input.Blur()
			return v, nil
		}
		if !v.input.Focused() {
			switch msg.String() {
			case "i", "/":
				return v, v.input.Focus()
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *inventionView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header(formatter.InventionTitle) + "\n")
	b.WriteString(formatter.Dim("AI 기술을 활용한 창의적인 발명 아이디어를 생성합니다.") + "\n\n")
	b.WriteString(v.input.View() + "\n")
	b.WriteString(formatter.Dim("* 100개의 아이디어를 생성하므로 시간이 조금 걸릴 수 있습니다.") + "\n\n")

	if v.ctl.Loading() {
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim(formatter.InventionLoading) + "\n")
		return b.String()
	}
	b.WriteString(formatter.FormatIdeaList(v.ctl.Records()))
	return b.String()
}
