package types

import "time"

// AnyTripId distinguishes a one-off trip (a bare TripId, valid on a single
// specific day) from a recurring trip (a TripId plus the day its first
// departure starts on). The routing engine only ever keys its internal maps
// on the dense TripId defined in ids.go; AnyTripId exists purely at the
// PreprocessingInput boundary, where a caller may supply either kind.
//
// Recurring-trip expansion (turning a base TripId + service calendar into
// concrete per-day instances) is a preprocessing concern, not the core
// engine's.
type AnyTripId struct {
	Base      TripId
	Recurring bool
	StartDay  time.Time // only meaningful if Recurring
}

// IsRecurring reports whether this identity carries a starting day.
func (a AnyTripId) IsRecurring() bool {
	return a.Recurring
}

// OneOff builds a one-off trip identity.
func OneOff(id TripId) AnyTripId {
	return AnyTripId{Base: id}
}

// RecurringTrip builds a recurring trip identity starting on day.
func RecurringTrip(id TripId, day time.Time) AnyTripId {
	return AnyTripId{Base: id, Recurring: true, StartDay: day}
}
