// Package handler implements the HTTP handlers for the trip manager API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, export.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/tripman/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Find(ctx context.Context, c domain.Criteria) ([]domain.Trip, error)
	UpdateMatching(ctx context.Context, c domain.Criteria, p domain.TripPatch) (int, error)
	DeleteMatching(ctx context.Context, c domain.Criteria) (int, error)
}

// Server holds the dependencies shared by every endpoint.
// Wire it in main via server.Handler().
type Server struct {
	trips    TripServicer
	validate *validator.Validate
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:    trips,
		validate: newValidator(),
		log:      log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Handler returns the chi router with every endpoint registered.
// Cross-cutting middleware (request id, logging, CORS, body limit) is applied
// by the caller so tests can exercise the routes in isolation.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/export", s.GetExport)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Patch("/", s.UpdateTrips)
		r.Delete("/", s.DeleteTrips)
		r.Get("/{id}", s.GetTrip)
	})

	return r
}

// newValidator returns a validator that reports fields by their JSON name,
// so error messages match what the client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
