package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
	"github.com/jangyunsu11/UniversityPrepApp/internal/controller"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// roadmapLoadedMsg carries a finished roadmap generation back to the view.
type roadmapLoadedMsg struct {
	ticket controller.Ticket
	out    generation.Outcome[domain.RoadmapItem]
}

// roadmapView shows the annual roadmap. It generates once on mount.
type roadmapView struct {
	state   *SharedState
	ctl     *controller.Roadmap
	cursor  int
	spinner spinner.Model
}

func newRoadmapView(state *SharedState) *roadmapView {
	return &roadmapView{
		state:   state,
		ctl:     controller.NewRoadmap(),
		spinner: newSpinner(),
	}
}

func (v *roadmapView) ID() ViewID { return ViewRoadmap }
func (v *roadmapView) Title() string { return ViewRoadmap.TabLabel() }
func (v *roadmapView) Unmount() { v.ctl.Abandon() }
func (v *roadmapView) Init() tea.Cmd { return v.start(v.ctl.AutoStart()) }
func (v *roadmapView) regenerate() tea.Cmd { return v.start(v.ctl.Begin()) }

func (v *roadmapView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "AI 재설계")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
	}
}

// start dispatches the generation for t. ok=false means a request is
// already in flight and nothing is sent.
func (v *roadmapView) start(t controller.Ticket, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	svc := v.state.App.Generation
	load := func() tea.Msg {
		return roadmapLoadedMsg{ticket: t, out: svc.Roadmap(context.Background())}
	}
	return tea.Batch(load, v.spinner.Tick)
}

func (v *roadmapView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		if v.ctl.Complete(msg.ticket, msg.out) {
			v.clampCursor()
		}
		return v, nil

	case spinner.TickMsg:
		if !v.ctl.Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return v, v.regenerate()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.ctl.Records())-1 {
				v.cursor++
			}
		case " ", "space", "x":
			items := v.ctl.Sorted()
			if v.cursor < len(items) {
				v.ctl.ToggleComplete(items[v.cursor].Month)
			}
		}
	}
	return v, nil
}

func (v *roadmapView) clampCursor() {
	if n := len(v.ctl.Records()); v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
}

func (v *roadmapView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if msg := v.ctl.ErrorMessage(); msg != "" {
		b.WriteString("  " + formatter.FormatBanner(msg) + "\n\n")
	}

	items := v.ctl.Records()
	switch {
	case v.ctl.Loading() && len(items) == 0:
		b.WriteString(formatter.Header(formatter.RoadmapTitle) + "\n\n")
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim(formatter.RoadmapLoading) + "\n")
		return b.String()
	case v.ctl.Loading():
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim("생성 중...") + "\n")
	}

	if len(items) == 0 && !v.ctl.Loading() {
		b.WriteString(formatter.Header(formatter.RoadmapTitle) + "\n\n")
		b.WriteString("  " + formatter.Dim("r: 로드맵 생성") + "\n")
		return b.String()
	}

	b.WriteString(formatter.FormatRoadmap(items, v.cursor))
	return b.String()
}

// newSpinner returns the spinner shared by all generation views.
func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
}
