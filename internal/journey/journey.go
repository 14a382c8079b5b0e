// Package journey implements the Leg and Journey value types described in
// spec.md §3 ("Leg", "Journey"). It is grounded on
// original_source/routing/src/journey.rs, translated from Rust's enum/
// debug_assert! idiom into a Go sum type (interface + two concrete leg
// kinds) and a constructor that validates chain continuity and acyclicity.
package journey

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyJourney is returned when a Journey is constructed with no legs.
var ErrEmptyJourney = errors.New("journey: must have at least one leg")

// ErrBrokenChain is returned when adjacent legs don't share a stop.
var ErrBrokenChain = errors.New("journey: legs do not form a continuous chain")

// ErrCyclicJourney is returned when a journey would revisit a stop it
// already departed from.
var ErrCyclicJourney = errors.New("journey: revisits a stop it already left")

// Leg is the sum type of Ride and Transfer described in spec.md §3. The
// routing engine's concrete instantiation (types.StopId, types.TripId)
// lives in package raptor as raptor.Ride and raptor.Transfer, which
// implement this package's Journey machinery through the RideLike
// interface below rather than embedding this package's types directly —
// that keeps the Journey invariants reusable without forcing every caller
// onto one concrete leg representation.

// LegLike is the minimal interface the Journey invariants need: knowing a
// leg's start/end stop (for chain-continuity and acyclicity checks) is
// enough, the concrete leg type is otherwise opaque to this package.
type LegLike[S comparable] interface {
	StartStop() S
	EndStop() S
}

// RideLike additionally reports whether a leg is a ride and, if so, its
// fixed boarding/alight times — needed for departure()/arrival() below.
type RideLike[S comparable] interface {
	LegLike[S]
	IsRide() bool
	BoardingTime() time.Time
	AlightTime() time.Time
	TransferDuration() time.Duration
}

// Journey is an ordered, non-empty sequence of legs satisfying chain
// continuity (spec.md §3 invariant 1) and acyclicity (invariant 2).
type Journey[S comparable, L RideLike[S]] struct {
	legs []L
}

// New validates and constructs a Journey. It always checks chain
// continuity; per spec.md §3 invariant 2, cyclic input is rejected
// ("the constructor must reject obviously cyclic inputs"), not merely
// asserted in debug builds, since Go has no separate debug/release mode
// for library code shipped to other callers.
func New[S comparable, L RideLike[S]](legs []L) (Journey[S, L], error) {
	if len(legs) == 0 {
		return Journey[S, L]{}, ErrEmptyJourney
	}

	seen := make(map[S]struct{}, len(legs))
	for i, leg := range legs {
		if i > 0 {
			if legs[i-1].EndStop() != leg.StartStop() {
				return Journey[S, L]{}, fmt.Errorf("%w: leg %d ends at %v, leg %d starts at %v",
					ErrBrokenChain, i-1, legs[i-1].EndStop(), i, leg.StartStop())
			}
		}
		if _, dup := seen[leg.StartStop()]; dup {
			return Journey[S, L]{}, fmt.Errorf("%w: stop %v", ErrCyclicJourney, leg.StartStop())
		}
		seen[leg.StartStop()] = struct{}{}
	}

	// The loop above only ever checks leg-start stops, so a journey that
	// returns to its own departure stop on its closing leg (e.g. [Ride
	// A->B, Ride B->A]) would otherwise slip through: every start stop is
	// still unique even though the walked path repeats A. The invariant
	// is over the full stop sequence, so the final leg's end stop needs
	// the same check.
	last := legs[len(legs)-1].EndStop()
	if _, dup := seen[last]; dup {
		return Journey[S, L]{}, fmt.Errorf("%w: stop %v", ErrCyclicJourney, last)
	}

	return Journey[S, L]{legs: legs}, nil
}

// Legs returns the ordered legs of the journey.
func (j Journey[S, L]) Legs() []L {
	return j.legs
}

// DepartureStop returns the stop the journey starts at.
func (j Journey[S, L]) DepartureStop() S {
	return j.legs[0].StartStop()
}

// ArrivalStop returns the stop the journey ends at.
func (j Journey[S, L]) ArrivalStop() S {
	return j.legs[len(j.legs)-1].EndStop()
}

// Departure implements spec.md §3 invariant 3: if any Ride exists, the
// first ride's boarding time minus the sum of leading transfer durations;
// otherwise the journey is walk-only and has no fixed departure.
func (j Journey[S, L]) Departure() (time.Time, bool) {
	var leading time.Duration
	for _, leg := range j.legs {
		if leg.IsRide() {
			return leg.BoardingTime().Add(-leading), true
		}
		leading += leg.TransferDuration()
	}
	return time.Time{}, false
}

// Arrival implements spec.md §3 invariant 4: if any Ride exists, the last
// ride's alight time plus the sum of trailing transfer durations.
func (j Journey[S, L]) Arrival() (time.Time, bool) {
	var trailing time.Duration
	for i := len(j.legs) - 1; i >= 0; i-- {
		leg := j.legs[i]
		if leg.IsRide() {
			return leg.AlightTime().Add(trailing), true
		}
		trailing += leg.TransferDuration()
	}
	return time.Time{}, false
}

// ArrivalWhenStartingAt implements spec.md §3 invariant 5.
func (j Journey[S, L]) ArrivalWhenStartingAt(t time.Time) (time.Time, bool) {
	if dep, hasDep := j.Departure(); hasDep {
		if dep.Before(t) {
			return time.Time{}, false
		}
		return j.Arrival()
	}

	var total time.Duration
	for _, leg := range j.legs {
		total += leg.TransferDuration()
	}
	return t.Add(total), true
}
