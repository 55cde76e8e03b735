package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/prompt"
	"github.com/jangyunsu11/UniversityPrepApp/internal/schema"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	var theme, level string

	cmd := &cobra.Command{
		Use:       "prompt <roadmap|ideas|study>",
		Short:     "Print the prompt sent to the model for a view",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"roadmap", "ideas", "study"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseViewKind(args[0])
			if err != nil {
				return err
			}

			var param string
			switch kind {
			case domain.ViewInvention:
				param = theme
			case domain.ViewStudy:
				param = level
			}

			text, err := prompt.Build(kind, param)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "context", "", "Idea theme (ideas only)")
	cmd.Flags().StringVar(&level, "level", "", "Study level (study only, default Beginner)")

	return cmd
}

// schemaDoc is the printed form of one descriptor.
type schemaDoc struct {
	ID     string          `json:"id"`
	View   domain.ViewKind `json:"view"`
	Fields []schema.Field  `json:"fields"`
	Schema map[string]any  `json:"jsonSchema"`
}

func newSchemaCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [roadmap|ideas|study]",
		Short: "Print the declared output schema for one or all views",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := schema.All()
			if len(args) == 1 {
				kind, err := domain.ParseViewKind(args[0])
				if err != nil {
					return err
				}
				d, err := schema.For(kind)
				if err != nil {
					return err
				}
				descs = []schema.Descriptor{d}
			}

			docs := make([]schemaDoc, 0, len(descs))
			for _, d := range descs {
				docs = append(docs, schemaDoc{
					ID:     d.ID(),
					View:   d.Kind,
					Fields: d.Fields,
					Schema: d.JSONSchema(),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(docs); err != nil {
				return fmt.Errorf("encoding schema: %w", err)
			}
			return nil
		},
	}
}
