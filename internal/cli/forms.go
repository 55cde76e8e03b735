package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
)

// uniprepHuhTheme returns a huh theme matching the formatter palette.
func uniprepHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// ideaContextForm asks for the invention theme. Blank is allowed.
func ideaContextForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("관심 분야나 해결하고 싶은 문제").
				Description("비워두면 일반적인 AI 아이디어를 생성합니다.").
				Placeholder(formatter.InventionInputHint).
				CharLimit(200).
				Value(value),
		),
	).WithTheme(uniprepHuhTheme()).WithShowHelp(false)
}

// levelOptions returns one select option per difficulty level.
func levelOptions() []huh.Option[domain.Difficulty] {
	opts := make([]huh.Option[domain.Difficulty], 0, 3)
	for _, d := range domain.Difficulties() {
		opts = append(opts, huh.NewOption(string(d), d))
	}
	return opts
}

// levelForm asks for the study level.
func levelForm(value *domain.Difficulty) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Difficulty]().
				Title("학습 레벨").
				Options(levelOptions()...).
				Value(value),
		),
	).WithTheme(uniprepHuhTheme()).WithShowHelp(false)
}
