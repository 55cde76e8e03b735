package controller

import (
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// Invention owns the idea brainstorm. An empty collection after a request
// is the only failure signal.
type Invention struct {
	base[domain.InventionIdea]
	context string
}

// NewInvention returns an idle invention controller.
func NewInvention() *Invention { return &Invention{} }

// SetContext sets the free-text theme for the next request.
func (v *Invention) SetContext(s string) { v.context = s }

// Context returns the theme as typed; blanks are substituted at prompt time.
func (v *Invention) Context() string { return v.context }

// Begin starts a request.
func (v *Invention) Begin() (Ticket, bool) { return v.begin() }

// Complete applies the outcome of the request identified by t.
func (v *Invention) Complete(t Ticket, out generation.Outcome[domain.InventionIdea]) bool {
	return v.complete(t, out)
}
