package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/llm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// exportDoc is the JSON document written by the export command. A view
// that failed has an empty collection and an entry in Errors.
type exportDoc struct {
	GeneratedAt time.Time              `json:"generatedAt"`
	Level       domain.Difficulty      `json:"level"`
	Context     string                 `json:"context"`
	Roadmap     []domain.RoadmapItem   `json:"roadmap"`
	Ideas       []domain.InventionIdea `json:"ideas"`
	Study       []domain.StudyResource `json:"study"`
	Errors      map[string]string      `json:"errors,omitempty"`
}

func newExportCmd(app *App) *cobra.Command {
	var theme, levelFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate all three views concurrently and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := domain.ParseDifficulty(levelFlag)
			if err != nil {
				return err
			}

			doc := exportDoc{
				GeneratedAt: time.Now().UTC(),
				Level:       level,
				Context:     theme,
			}
			var roadmapErr, ideasErr, studyErr error

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				out := app.Generation.Roadmap(ctx)
				doc.Roadmap, roadmapErr = domain.SortRoadmap(out.Records), out.Err
				return nil
			})
			g.Go(func() error {
				out := app.Generation.Ideas(ctx, theme)
				doc.Ideas, ideasErr = out.Records, out.Err
				return nil
			})
			g.Go(func() error {
				out := app.Generation.Study(ctx, level)
				doc.Study, studyErr = out.Records, out.Err
				return nil
			})

			stop := app.startSpinner(cmd, "3개의 뷰를 생성하는 중...")
			err = g.Wait()
			stop()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			for kind, e := range map[domain.ViewKind]error{
				domain.ViewRoadmap:   roadmapErr,
				domain.ViewInvention: ideasErr,
				domain.ViewStudy:     studyErr,
			} {
				if e == nil {
					continue
				}
				if doc.Errors == nil {
					doc.Errors = make(map[string]string)
				}
				doc.Errors[string(kind)] = llm.ErrorCode(e)
			}
			app.logger().Info("export finished",
				zap.Int("roadmap", len(doc.Roadmap)),
				zap.Int("ideas", len(doc.Ideas)),
				zap.Int("study", len(doc.Study)),
				zap.Int("failed_views", len(doc.Errors)))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "context", "", "Idea theme")
	cmd.Flags().StringVar(&levelFlag, "level", string(domain.DifficultyBeginner), "Study level")

	return cmd
}
