package controller

import (
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// Study owns the curriculum view.
type Study struct {
	base[domain.StudyResource]
	level domain.Difficulty
}

// NewStudy returns an idle study controller at Beginner level.
func NewStudy() *Study { return &Study{level: domain.DifficultyBeginner} }

// SetLevel changes the level used by the next request only. Loaded
// resources are left as they are. Invalid levels are ignored.
func (s *Study) SetLevel(l domain.Difficulty) bool {
	if !l.IsValid() {
		return false
	}
	s.level = l
	return true
}

// Level returns the level the next request will use.
func (s *Study) Level() domain.Difficulty { return s.level }

// Begin starts a request.
func (s *Study) Begin() (Ticket, bool) { return s.begin() }

// Complete applies the outcome of the request identified by t.
func (s *Study) Complete(t Ticket, out generation.Outcome[domain.StudyResource]) bool {
	return s.complete(t, out)
}
