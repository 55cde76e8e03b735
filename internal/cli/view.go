package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
)

// ViewID identifies each tab of the TUI, in tab-bar order.
type ViewID int

const (
	ViewRoadmap ViewID = iota
	ViewInvention
	ViewStudy
)

// viewIDs lists the tabs left to right.
var viewIDs = []ViewID{ViewRoadmap, ViewInvention, ViewStudy}

// TabLabel is the text shown for the tab in the tab bar.
func (id ViewID) TabLabel() string {
	switch id {
	case ViewRoadmap:
		return "2026 로드맵"
	case ViewInvention:
		return "3월 발명"
	case ViewStudy:
		return "AI 학습"
	default:
		return "?"
	}
}

// Kind maps the tab to its generation view kind.
func (id ViewID) Kind() domain.ViewKind {
	switch id {
	case ViewInvention:
		return domain.ViewInvention
	case ViewStudy:
		return domain.ViewStudy
	default:
		return domain.ViewRoadmap
	}
}

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view

	// Unmount is called when the tab is switched away. Any in-flight
	// generation is abandoned and its late response dropped.
	Unmount()
}

// inputCapturer is implemented by views that own a text input. While
// CapturesInput reports true, printable keys go to the view instead of
// the global bindings.
type inputCapturer interface {
	CapturesInput() bool
}
