package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// chromeLines is the number of lines used by header, tab bar and status bar.
const chromeLines = 5

// ContentHeight returns the number of lines available for the active view.
func (s *SharedState) ContentHeight() int {
	h := s.Height - chromeLines
	if h < 5 {
		return 5
	}
	return h
}
