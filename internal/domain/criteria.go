package domain

import (
	"math"
	"strings"
)

// PriceTolerance is the maximum absolute difference at which a stored price
// still matches a price criterion.
const PriceTolerance = 0.01

// priceSlack absorbs binary rounding so that decimal prices exactly
// PriceTolerance apart (100.00 vs 100.01) still match.
const priceSlack = 1e-9

// Criteria selects trips for search, update and delete.
// A nil field is absent and places no constraint on the trip. A non-nil field
// is present even when it points at a zero value: {Price: Ptr(0.0)} selects
// free trips, it does not mean "any price".
type Criteria struct {
	ID          *int
	Destination *string
	Price       *float64
	Date        *string
}

// IsEmpty reports whether no field is present. An empty Criteria matches
// every trip.
func (c Criteria) IsEmpty() bool {
	return c.ID == nil && c.Destination == nil && c.Price == nil && c.Date == nil
}

// Matches reports whether t satisfies every present field of c.
//
//   - ID: exact equality.
//   - Destination, Date: equality after trimming leading and trailing spaces
//     on both sides. No case folding.
//   - Price: |t.Price - c.Price| <= PriceTolerance.
func (c Criteria) Matches(t Trip) bool {
	if c.ID != nil && t.ID != *c.ID {
		return false
	}
	if c.Destination != nil && trimSpaces(t.Destination) != trimSpaces(*c.Destination) {
		return false
	}
	if c.Price != nil && !PriceMatches(t.Price, *c.Price) {
		return false
	}
	if c.Date != nil && trimSpaces(t.Date) != trimSpaces(*c.Date) {
		return false
	}
	return true
}

// PriceMatches reports whether two prices are equal within PriceTolerance.
func PriceMatches(a, b float64) bool {
	return math.Abs(a-b) <= PriceTolerance+priceSlack
}

// trimSpaces strips leading and trailing ASCII spaces only; tabs and other
// whitespace are significant.
func trimSpaces(s string) string {
	return strings.Trim(s, " ")
}
