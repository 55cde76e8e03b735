package generation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/prompt"
	"github.com/jangyunsu11/UniversityPrepApp/internal/schema"
	"go.uber.org/zap"
)

// Service runs the three planning flows.
type Service interface {
	// Roadmap generates the annual roadmap.
	Roadmap(ctx context.Context) Outcome[domain.RoadmapItem]

	// Ideas brainstorms invention ideas for the given theme.
	Ideas(ctx context.Context, ideaContext string) Outcome[domain.InventionIdea]

	// Study builds a curriculum at the given level. An empty level means
	// Beginner.
	Study(ctx context.Context, level domain.Difficulty) Outcome[domain.StudyResource]
}

type service struct {
	inv *Invoker
}

// NewService creates a Service on top of inv.
func NewService(inv *Invoker) Service {
	return &service{inv: inv}
}

func (s *service) Roadmap(ctx context.Context) Outcome[domain.RoadmapItem] {
	return Generate[domain.RoadmapItem](ctx, s.inv, domain.ViewRoadmap, prompt.Roadmap(), schema.Roadmap())
}

func (s *service) Ideas(ctx context.Context, ideaContext string) Outcome[domain.InventionIdea] {
	return Generate[domain.InventionIdea](ctx, s.inv, domain.ViewInvention, prompt.Ideas(ideaContext), schema.Invention())
}

func (s *service) Study(ctx context.Context, level domain.Difficulty) Outcome[domain.StudyResource] {
	if level == "" {
		level = domain.DifficultyBeginner
	}
	if !level.IsValid() {
		err := fmt.Errorf("invalid level %q", level)
		s.inv.log.Error("generation rejected", zap.String("view", string(domain.ViewStudy)), zap.Error(err))
		return Outcome[domain.StudyResource]{Records: []domain.StudyResource{}, Err: err, RunID: uuid.NewString()}
	}
	return Generate[domain.StudyResource](ctx, s.inv, domain.ViewStudy, prompt.Study(level), schema.Study())
}
