package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI.
// It owns the tab bar and exactly one mounted view.
type appModel struct {
	state    *SharedState
	view     View
	quitting bool

	// Scrollable viewport around the active view's output.
	contentVP viewport.Model
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	vp := viewport.New(0, 0)
	vp.KeyMap = contentViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state:     state,
		view:      newTabView(state, ViewRoadmap),
		contentVP: vp,
	}
}

// newTabView builds a fresh view, with a fresh controller, for tab id.
func newTabView(state *SharedState, id ViewID) View {
	switch id {
	case ViewInvention:
		return newInventionView(state)
	case ViewStudy:
		return newStudyView(state)
	default:
		return newRoadmapView(state)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.contentVP.Width = msg.Width
		m.contentVP.Height = m.state.ContentHeight()
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.contentVP.SetContent(m.view.View())
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd

	case switchTabMsg:
		return m.mount(msg.tab)
	}

	// Generation results, spinner ticks and cursor blinks go to the view.
	return m.forward(msg)
}

// mount unmounts the current view and replaces it with a fresh one.
func (m appModel) mount(id ViewID) (tea.Model, tea.Cmd) {
	m.view.Unmount()
	m.view = newTabView(m.state, id)
	m.contentVP.GotoTop()
	return m, m.view.Init()
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.view.Update(msg)
	m.view = updated.(View)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Tab cycling works even while a text input has focus.
	switch msg.Type {
	case tea.KeyTab:
		return m, switchTab(nextTab(m.view.ID(), 1))
	case tea.KeyShiftTab:
		return m, switchTab(nextTab(m.view.ID(), -1))
	}

	if viewCapturesInput(m.view) {
		return m.forward(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "1":
		return m, switchTab(ViewRoadmap)
	case "2":
		return m, switchTab(ViewInvention)
	case "3":
		return m, switchTab(ViewStudy)
	}

	if isContentScrollKey(msg) {
		m.contentVP.SetContent(m.view.View())
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	content := m.view.View()
	if m.state.Height > 0 {
		vp := m.contentVP
		vp.SetContent(content)
		content = vp.View()
	}
	sections = append(sections, content)

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("uniprep")
	breadcrumb := " " + formatter.Dim("›") + " " + formatter.Dim(m.view.Title())

	var tabs []string
	for _, id := range viewIDs {
		label := fmt.Sprintf("%d %s", int(id)+1, id.TabLabel())
		if id == m.view.ID() {
			tabs = append(tabs, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(" "+label+" "))
		}
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + breadcrumb + "\n" + strings.Join(tabs, " ") + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.view.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	hints = append(hints, formatter.Dim("tab: switch"))
	if !viewCapturesInput(m.view) {
		hints = append(hints, formatter.Dim("q: quit"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(formatter.ColorDim))
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// nextTab returns the tab delta positions away from id, wrapping around.
func nextTab(id ViewID, delta int) ViewID {
	n := len(viewIDs)
	return viewIDs[((int(id)+delta)%n+n)%n]
}

// contentViewportKeyMap returns a restricted keymap for the content viewport.
// Arrow keys are left to the views, which use them for selection.
func contentViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

// isContentScrollKey returns true if the key should scroll the content
// viewport rather than reach the active view.
func isContentScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/1/2/3).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
