package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jangyunsu11/UniversityPrepApp/internal/cli/formatter"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/jangyunsu11/UniversityPrepApp/internal/repository"
	"github.com/spf13/cobra"
)

// errHistoryDisabled is returned when no run store is wired.
var errHistoryDisabled = errors.New("generation history is not available")

// runScanLimit bounds the prefix search; retention keeps fewer rows.
const runScanLimit = 1000

// resolveRun finds a run by full ID or by a unique ID prefix, such as the
// eight characters the history table shows.
func resolveRun(ctx context.Context, runs repository.RunRepo, input string) (*generation.Run, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("run ID is required")
	}

	run, err := runs.GetByID(ctx, input)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	recent, err := runs.ListRecent(ctx, runScanLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	var matches []generation.Run
	for _, r := range recent {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("run %q: %w", input, repository.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("run ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var view string

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recent generation runs, or show one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Runs == nil {
				return errHistoryDisabled
			}
			if len(args) == 1 {
				run, err := resolveRun(cmd.Context(), app.Runs, args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunDetail(*run))
				return nil
			}
			if limit <= 0 {
				return fmt.Errorf("invalid --limit %d: must be positive", limit)
			}

			var kind domain.ViewKind
			if view != "" {
				k, err := domain.ParseViewKind(view)
				if err != nil {
					return err
				}
				kind = k
			}

			ctx := cmd.Context()
			runs, err := app.Runs.ListRecent(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing runs: %w", err)
			}
			if kind != "" {
				filtered := runs[:0]
				for _, r := range runs {
					if r.View == kind {
						filtered = append(filtered, r)
					}
				}
				runs = filtered
			}

			counts, err := app.Runs.CountByStatus(ctx, kind)
			if err != nil {
				return fmt.Errorf("counting runs: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, formatter.Header("Generation history"))
			fmt.Fprint(w, formatter.FormatHistory(runs))
			fmt.Fprintln(w, formatter.FormatHistorySummary(counts.OK, counts.Failed))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().StringVar(&view, "view", "", "Only show runs for roadmap, ideas or study")

	return cmd
}
