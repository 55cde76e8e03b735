package controller

import (
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// RoadmapErrorMessage is shown when roadmap generation fails.
const RoadmapErrorMessage = "로드맵을 생성하는 중 문제가 발생했습니다. 다시 시도해주세요."

// Roadmap owns the annual roadmap. It is the only view with a distinct
// error state.
type Roadmap struct {
	base[domain.RoadmapItem]
	autoStarted bool
	err         string
}

// NewRoadmap returns an idle roadmap controller.
func NewRoadmap() *Roadmap { return &Roadmap{} }

// AutoStart begins the mount-time request. It fires at most once per
// controller and only while the collection is empty.
func (r *Roadmap) AutoStart() (Ticket, bool) {
	if r.autoStarted || len(r.records) > 0 {
		return "", false
	}
	t, ok := r.Begin()
	if ok {
		r.autoStarted = true
	}
	return t, ok
}

// Begin starts a request and clears any previous error.
func (r *Roadmap) Begin() (Ticket, bool) {
	t, ok := r.begin()
	if ok {
		r.err = ""
	}
	return t, ok
}

// Complete applies the outcome of the request identified by t. A failed
// outcome still replaces the collection and also sets the error message.
func (r *Roadmap) Complete(t Ticket, out generation.Outcome[domain.RoadmapItem]) bool {
	if !r.complete(t, out) {
		return false
	}
	if !out.OK() {
		r.err = RoadmapErrorMessage
	}
	return true
}

// ErrorMessage returns the user-facing error message, or "" when none.
func (r *Roadmap) ErrorMessage() string { return r.err }

// ToggleComplete flips completion for month without any generation call.
func (r *Roadmap) ToggleComplete(month int) {
	r.records = domain.ToggleComplete(r.records, month)
}

// Sorted returns the collection ordered by month for rendering.
func (r *Roadmap) Sorted() []domain.RoadmapItem {
	return domain.SortRoadmap(r.records)
}
