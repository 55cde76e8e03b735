// Package controller holds the per-view generation state machines. The
// controllers are UI-agnostic: callers start a request with Begin, run the
// generation themselves, and hand the outcome back with Complete.
package controller

import (
	"github.com/google/uuid"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// Ticket identifies one in-flight generation request.
type Ticket string

func newTicket() Ticket { return Ticket(uuid.NewString()) }

// base is the Idle -> Loading -> Loaded machine shared by every view.
type base[T any] struct {
	loading  bool
	records  []T
	inflight Ticket
}

// Loading reports whether a request is in flight. Triggers are refused
// while it is set.
func (b *base[T]) Loading() bool { return b.loading }

// Records returns the current collection in stored order.
func (b *base[T]) Records() []T { return b.records }

// Abandon forgets the in-flight request. A response arriving later for
// it is dropped.
func (b *base[T]) Abandon() {
	b.loading = false
	b.inflight = ""
}

func (b *base[T]) begin() (Ticket, bool) {
	if b.loading {
		return "", false
	}
	b.loading = true
	b.inflight = newTicket()
	return b.inflight, true
}

// complete replaces the collection wholesale if t is the in-flight ticket.
func (b *base[T]) complete(t Ticket, out generation.Outcome[T]) bool {
	if !b.loading || t == "" || t != b.inflight {
		return false
	}
	b.loading = false
	b.inflight = ""
	b.records = out.Records
	if b.records == nil {
		b.records = []T{}
	}
	return true
}
