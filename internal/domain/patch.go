package domain

// TripPatch carries the new values for an update. A nil field keeps the
// value currently stored on the trip. ID is deliberately absent: ids are
// immutable.
type TripPatch struct {
	Destination *string
	Date        *string
	Price       *float64
}

// IsEmpty reports whether the patch would leave every trip unchanged.
func (p TripPatch) IsEmpty() bool {
	return p.Destination == nil && p.Date == nil && p.Price == nil
}

// Apply returns t with every present field of p overwritten.
// The ID of t is always preserved.
func (p TripPatch) Apply(t Trip) Trip {
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	return t
}
