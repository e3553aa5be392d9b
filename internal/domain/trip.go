// Package domain contains the core data types for the trip manager.
// This package has no third-party dependencies and is imported by every other
// internal package (repo, service, handler, cli).
package domain

// Trip is the single record managed by the store.
// ID is assigned by the store on creation and never changes afterwards.
// Date is kept as opaque text (expected "YYYY-MM-DD") and is never parsed.
type Trip struct {
	ID          int     `json:"id"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}

// Ptr returns a pointer to v. It keeps Criteria and TripPatch literals short:
//
//	domain.Criteria{Destination: domain.Ptr("Bali")}
func Ptr[T any](v T) *T {
	return &v
}
