package cli

import (
	"fmt"

	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
	"github.com/jangyunsu11/UniversityPrepApp/internal/controller"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roadmap",
		Short: "Generate the 2026 month-by-month admissions roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := controller.NewRoadmap()
			t, _ := ctl.Begin()

			stop := app.startSpinner(cmd, formatter.RoadmapLoading)
			out := app.Generation.Roadmap(cmd.Context())
			stop()
			ctl.Complete(t, out)

			w := cmd.OutOrStdout()
			if msg := ctl.ErrorMessage(); msg != "" {
				fmt.Fprintln(w, formatter.FormatBanner(msg))
				return nil
			}
			fmt.Fprint(w, formatter.FormatRoadmap(ctl.Records(), -1))
			return nil
		},
	}
}

func newIdeasCmd(app *App) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:     "ideas",
		Aliases: []string{"invention"},
		Short:   "Brainstorm 100 invention-competition ideas",
		Long: `Brainstorm invention ideas for the March competition.

The theme is free text. When --context is omitted on a terminal you are
asked for it; a blank theme asks for general AI ideas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("context") && app.interactive() {
				if err := ideaContextForm(&theme).Run(); err != nil {
					return fmt.Errorf("reading theme: %w", err)
				}
			}

			ctl := controller.NewInvention()
			ctl.SetContext(theme)
			t, _ := ctl.Begin()

			stop := app.startSpinner(cmd, formatter.InventionLoading)
			out := app.Generation.Ideas(cmd.Context(), ctl.Context())
			stop()
			ctl.Complete(t, out)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIdeas(ctl.Records()))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "context", "", "Interest area or problem to solve")

	return cmd
}

func newStudyCmd(app *App) *cobra.Command {
	var levelFlag string

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Build a five-topic AI study curriculum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := domain.DifficultyBeginner
			switch {
			case cmd.Flags().Changed("level"):
				l, err := domain.ParseDifficulty(levelFlag)
				if err != nil {
					return err
				}
				level = l
			case app.interactive():
				if err := levelForm(&level).Run(); err != nil {
					return fmt.Errorf("reading level: %w", err)
				}
			}

			ctl := controller.NewStudy()
			ctl.SetLevel(level)
			t, _ := ctl.Begin()

			stop := app.startSpinner(cmd, formatter.StudyLoading)
			out := app.Generation.Study(cmd.Context(), ctl.Level())
			stop()
			ctl.Complete(t, out)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudy(ctl.Level(), ctl.Records()))
			return nil
		},
	}

	cmd.Flags().StringVar(&levelFlag, "level", string(domain.DifficultyBeginner), "Beginner, Intermediate or Advanced")

	return cmd
}
