package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/tripman/internal/domain"
)

// tripResponse is the JSON representation of a trip.
type tripResponse struct {
	ID          int     `json:"id"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}

// createTripRequest is the body of POST /trips. Pointers let the validator
// tell a missing field from a zero value.
type createTripRequest struct {
	Destination *string  `json:"destination" validate:"required"`
	Date        *string  `json:"date" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
}

// updateTripsRequest is the body of PATCH /trips. Omitted fields keep their
// current value on every matched trip.
type updateTripsRequest struct {
	Destination *string  `json:"destination,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type updatedResponse struct {
	Updated int `json:"updated"`
}

type deletedResponse struct {
	Deleted int `json:"deleted"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if status, err := decodeBody(r, &body); err != nil {
		writeJSON(w, status, requestOrBadBody(status, err))
		return
	}
	if err := s.validate.Struct(body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(fieldErrors(err)))
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		Destination: *body.Destination,
		Date:        *body.Date,
		Price:       *body.Price,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Without query parameters it lists every trip; with any of ?id=, ?destination=,
// ?price=, ?date= it returns only the trips matching all of them.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	c, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody(err.Error()))
		return
	}

	var trips []domain.Trip
	if c.IsEmpty() {
		trips, err = s.trips.List(r.Context())
	} else {
		trips, err = s.trips.Find(r.Context(), c)
	}
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripsToResponse(trips))
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripIDFromPath(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody(err.Error()))
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrips handles PATCH /trips.
// The query selects the trips, the body carries the new values.
func (s *Server) UpdateTrips(w http.ResponseWriter, r *http.Request) {
	c, ok := s.requireCriteria(w, r)
	if !ok {
		return
	}

	var body updateTripsRequest
	if status, err := decodeBody(r, &body); err != nil {
		writeJSON(w, status, requestOrBadBody(status, err))
		return
	}
	patch := domain.TripPatch{
		Destination: body.Destination,
		Date:        body.Date,
		Price:       body.Price,
	}
	if patch.IsEmpty() {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("at least one of destination, date, price is required"))
		return
	}

	n, err := s.trips.UpdateMatching(r.Context(), c, patch)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
}

// DeleteTrips handles DELETE /trips.
func (s *Server) DeleteTrips(w http.ResponseWriter, r *http.Request) {
	c, ok := s.requireCriteria(w, r)
	if !ok {
		return
	}

	n, err := s.trips.DeleteMatching(r.Context(), c)
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse{Deleted: n})
}

// requireCriteria binds the query criteria for a bulk mutation and rejects an
// empty filter, which would otherwise match every trip.
func (s *Server) requireCriteria(w http.ResponseWriter, r *http.Request) (domain.Criteria, bool) {
	c, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody(err.Error()))
		return domain.Criteria{}, false
	}
	if c.IsEmpty() {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("at least one of id, destination, price, date is required"))
		return domain.Criteria{}, false
	}
	return c, true
}

// --- mapping helpers --------------------------------------------------------

// requestOrBadBody picks the error body matching the status decodeBody chose.
func requestOrBadBody(status int, err error) errorResponse {
	if status == http.StatusUnprocessableEntity {
		return requestBody(err.Error())
	}
	return badRequestBody(err.Error())
}

// tripToResponse converts a domain.Trip into its JSON representation.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		Date:        t.Date,
		Price:       t.Price,
	}
}

// tripsToResponse always returns a non-nil slice so the body is [] rather than null.
func tripsToResponse(trips []domain.Trip) []tripResponse {
	out := make([]tripResponse, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}
