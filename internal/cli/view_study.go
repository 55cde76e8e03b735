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

// studyLoadedMsg carries a finished curriculum generation back to the view.
type studyLoadedMsg struct {
	ticket controller.Ticket
	out    generation.Outcome[domain.StudyResource]
}

// studyView picks a level and builds a curriculum for it.
type studyView struct {
	state   *SharedState
	ctl     *controller.Study
	spinner spinner.Model
}

func newStudyView(state *SharedState) *studyView {
	return &studyView{
		state:   state,
		ctl:     controller.NewStudy(),
		spinner: newSpinner(),
	}
}

func (v *studyView) ID() ViewID { return ViewStudy }
func (v *studyView) Title() string { return ViewStudy.TabLabel() }
func (v *studyView) Unmount() { v.ctl.Abandon() }
func (v *studyView) Init() tea.Cmd { return nil }

func (v *studyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "level")),
		key.NewBinding(key.WithKeys("enter", "g"), key.WithHelp("enter", "플랜 생성하기")),
	}
}

// shiftLevel moves the selected level by delta, clamped to the ends.
func (v *studyView) shiftLevel(delta int) {
	levels := domain.Difficulties()
	idx := 0
	for i, l := range levels {
		if l == v.ctl.Level() {
			idx = i
		}
	}
	idx = min(max(idx+delta, 0), len(levels)-1)
	v.ctl.SetLevel(levels[idx])
}

func (v *studyView) generate() tea.Cmd {
	t, ok := v.ctl.Begin()
	if !ok {
		return nil
	}
	svc := v.state.App.Generation
	level := v.ctl.Level()
	load := func() tea.Msg {
		return studyLoadedMsg{ticket: t, out: svc.Study(context.Background(), level)}
	}
	return tea.Batch(load, v.spinner.Tick)
}

func (v *studyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case studyLoadedMsg:
		v.ctl.Complete(msg.ticket, msg.out)
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
		case "left", "h":
			v.shiftLevel(-1)
		case "right", "l":
			v.shiftLevel(1)
		case "enter", "g":
			return v, v.generate()
		}
	}
	return v, nil
}

func (v *studyView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header(formatter.StudyTitle) + "\n")
	b.WriteString(formatter.Dim("현재 수준에 맞는 맞춤형 AI 학습 커리큘럼을 제공합니다.") + "\n\n")
	b.WriteString(formatter.FormatLevelSelector(v.ctl.Level()) + "\n\n")

	if v.ctl.Loading() {
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim(formatter.StudyLoading) + "\n")
		return b.String()
	}
	b.WriteString(formatter.FormatStudyList(v.ctl.Level(), v.ctl.Records()))
	return b.String()
}
