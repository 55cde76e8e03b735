package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/jangyunsu11/UniversityPrepApp/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to all services used by CLI commands.
type App struct {
	Generation generation.Service

	// Runs is the generation history. Nil disables the history command.
	Runs repository.RunRepo

	Log *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// startSpinner shows a spinner on stderr for interactive runs only.
func (a *App) startSpinner(cmd *cobra.Command, msg string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), msg)
}

// NewRootCmd creates the top-level "uniprep" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "uniprep",
		Short: "AI planner for the 2026 university-prep year",
		Long: `uniprep generates an annual admissions roadmap, invention-competition
ideas and a study curriculum with a generative model.

Run without arguments in a terminal to open the interactive planner.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	// Parsed by main before the App is built; declared here for help output.
	root.PersistentFlags().String("config", "", "Path to config file (default ~/.uniprep/config.yaml)")
	root.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on host:port")

	root.AddCommand(
		newRoadmapCmd(app),
		newIdeasCmd(app),
		newStudyCmd(app),
		newPromptCmd(app),
		newSchemaCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	app.logger().Info("tui started")
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
