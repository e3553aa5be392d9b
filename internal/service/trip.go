// Package service contains the business logic for the trip manager.
// Services validate inputs, enforce business rules, and orchestrate store calls.
// Services depend on the repo interface, not the in-memory implementation.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/pkordes/tripman/internal/domain"
	"github.com/pkordes/tripman/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
	log  *slog.Logger
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// A nil logger falls back to slog.Default().
func NewTripService(r repo.TripRepo, log *slog.Logger) *TripService {
	if log == nil {
		log = slog.Default()
	}
	return &TripService{repo: r, log: log}
}

// Create validates and stores a new trip. The ID of the argument is ignored;
// the store assigns the next one.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validatePrice(trip.Price); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	created := s.repo.Create(trip.Destination, trip.Date, trip.Price)
	s.log.InfoContext(ctx, "trip created", "id", created.ID)
	return created, nil
}

// GetByID returns the live trip with the given id.
// Returns domain.ErrNotFound if it never existed or has been deleted.
func (s *TripService) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	found := s.repo.Find(domain.Criteria{ID: &id})
	if len(found) == 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrNotFound)
	}
	return found[0], nil
}

// List returns all trips in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips := s.repo.All()
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Find returns the trips matching c in creation order. An empty Criteria
// returns every trip.
func (s *TripService) Find(ctx context.Context, c domain.Criteria) ([]domain.Trip, error) {
	trips := s.repo.Find(c)
	s.log.DebugContext(ctx, "trips searched", "matches", len(trips))
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// UpdateMatching applies p to every trip matching c and returns the count.
// A zero count means nothing matched and is not an error.
// Returns domain.ErrValidation if p carries a negative price.
func (s *TripService) UpdateMatching(ctx context.Context, c domain.Criteria, p domain.TripPatch) (int, error) {
	if p.Price != nil {
		if err := validatePrice(*p.Price); err != nil {
			return 0, fmt.Errorf("service.TripService.UpdateMatching: %w", err)
		}
	}
	n := s.repo.UpdateMatching(c, p)
	s.log.InfoContext(ctx, "trips updated", "count", n)
	return n, nil
}

// DeleteMatching removes every trip matching c and returns the count.
// A zero count means nothing matched and is not an error.
func (s *TripService) DeleteMatching(ctx context.Context, c domain.Criteria) (int, error) {
	n := s.repo.DeleteMatching(c)
	s.log.InfoContext(ctx, "trips deleted", "count", n)
	return n, nil
}

// validatePrice enforces the non-negative price convention.
func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: price must be a finite number", domain.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}
