// Package repo owns the trip collection for the trip manager.
// The store keeps records in process memory only; nothing survives a restart.
// No business rules live here, only ordering, id allocation and matching.
package repo

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/tripman/internal/domain"
)

// TripRepo defines the store operations for Trips.
// The service layer depends on this interface, not the concrete in-memory
// implementation, which allows the service to be unit-tested with a mock.
//
// Every method is total: none of them can fail on well-formed input, so none
// of them return an error.
type TripRepo interface {
	// Create allocates the next id, appends the trip to the end of the
	// collection and returns it.
	Create(destination, date string, price float64) domain.Trip

	// All returns every trip in creation order. The slice is never nil.
	All() []domain.Trip

	// Find returns the trips matching c in creation order. The slice is never nil.
	Find(c domain.Criteria) []domain.Trip

	// UpdateMatching applies p to every trip matching c and returns how many
	// were updated. Ids and positions are preserved.
	UpdateMatching(c domain.Criteria, p domain.TripPatch) int

	// DeleteMatching removes every trip matching c and returns how many were
	// removed. The relative order of the survivors is preserved.
	DeleteMatching(c domain.Criteria) int
}

// memTripRepo is the in-memory implementation of TripRepo.
// The mutex makes it safe behind the HTTP server; the menu drives it from a
// single goroutine.
type memTripRepo struct {
	mu     sync.RWMutex
	log    *slog.Logger
	trips  []domain.Trip
	nextID int
}

// NewTripRepo constructs an empty TripRepo whose first trip gets id 1.
// Each call returns an independent store; there is no shared global state.
func NewTripRepo(log *slog.Logger) TripRepo {
	if log == nil {
		log = slog.Default()
	}
	return &memTripRepo{
		log:    log.With("store", uuid.NewString()),
		trips:  []domain.Trip{},
		nextID: 1,
	}
}

func (r *memTripRepo) Create(destination, date string, price float64) domain.Trip {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := domain.Trip{
		ID:          r.nextID,
		Destination: destination,
		Date:        date,
		Price:       price,
	}
	r.nextID++
	r.trips = append(r.trips, t)

	r.log.Debug("repo: trip appended", "id", t.ID, "size", len(r.trips))
	return t
}

func (r *memTripRepo) All() []domain.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Trip, len(r.trips))
	copy(out, r.trips)
	return out
}

func (r *memTripRepo) Find(c domain.Criteria) []domain.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Trip{}
	for _, t := range r.trips {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (r *memTripRepo) UpdateMatching(c domain.Criteria, p domain.TripPatch) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i := range r.trips {
		if c.Matches(r.trips[i]) {
			r.trips[i] = p.Apply(r.trips[i])
			n++
		}
	}

	r.log.Debug("repo: trips updated", "count", n)
	return n
}

// DeleteMatching builds the surviving slice in a single forward pass instead
// of removing elements while iterating, so adjacent matches are never skipped.
func (r *memTripRepo) DeleteMatching(c domain.Criteria) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]domain.Trip, 0, len(r.trips))
	for _, t := range r.trips {
		if !c.Matches(t) {
			kept = append(kept, t)
		}
	}
	n := len(r.trips) - len(kept)
	r.trips = kept

	r.log.Debug("repo: trips deleted", "count", n, "size", len(r.trips))
	return n
}
