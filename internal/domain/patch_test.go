package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/tripman/internal/domain"
)

func TestTripPatch_Apply_OnlyPresentFields(t *testing.T) {
	got := domain.TripPatch{Price: domain.Ptr(1600.0)}.Apply(baliTrip())

	assert.Equal(t, domain.Trip{ID: 1, Destination: "Bali", Date: "2024-05-01", Price: 1600.0}, got)
}

func TestTripPatch_Apply_AllFields(t *testing.T) {
	p := domain.TripPatch{
		Destination: domain.Ptr("Rome"),
		Date:        domain.Ptr("2024-06-10"),
		Price:       domain.Ptr(0.0),
	}

	got := p.Apply(baliTrip())

	assert.Equal(t, domain.Trip{ID: 1, Destination: "Rome", Date: "2024-06-10", Price: 0}, got)
}

func TestTripPatch_Apply_EmptyStringIsAValue(t *testing.T) {
	got := domain.TripPatch{Destination: domain.Ptr("")}.Apply(baliTrip())

	assert.Equal(t, "", got.Destination)
	assert.Equal(t, "2024-05-01", got.Date)
}

func TestTripPatch_IsEmpty(t *testing.T) {
	assert.True(t, domain.TripPatch{}.IsEmpty())
	assert.False(t, domain.TripPatch{Date: domain.Ptr("")}.IsEmpty())
}
