package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// switchTabMsg mounts a fresh view for the given tab.
type switchTabMsg struct {
	tab ViewID
}

// switchTab returns a tea.Cmd that switches to tab.
func switchTab(tab ViewID) tea.Cmd {
	return func() tea.Msg { return switchTabMsg{tab: tab} }
}
