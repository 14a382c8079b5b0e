package raptor

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// backtraceCandidate pairs a feasible round's Journey with the arrival
// time it's ranked by, so Backtrace can pick the best one by the
// documented tiebreak order instead of by map-iteration order.
type backtraceCandidate struct {
	journey Journey
	arrival time.Time
}

// betterCandidate reports whether a should be preferred over b per
// spec.md's tiebreak order: earliest arrival_when_starting_at, then
// fewer legs, then lexicographically by the vector of leg boarding
// times (zero for Transfer legs, which carry no boarding time).
func betterCandidate(a, b backtraceCandidate) bool {
	if !a.arrival.Equal(b.arrival) {
		return a.arrival.Before(b.arrival)
	}

	aLegs, bLegs := a.journey.Legs(), b.journey.Legs()
	if len(aLegs) != len(bLegs) {
		return len(aLegs) < len(bLegs)
	}

	for i := range aLegs {
		at, bt := aLegs[i].BoardingTime(), bLegs[i].BoardingTime()
		if !at.Equal(bt) {
			return at.Before(bt)
		}
	}
	return false
}

// Backtrace reconstructs the fastest Journey to target out of every round
// recorded in the connection index, picking the one with the earliest
// arrival_when_starting_at(departure), ties broken deterministically by
// betterCandidate rather than by the order Go happens to range over
// ConnectionIndex's rounds map in. Matches original_source's
// RaptorState::backtrace.
func (s *State) Backtrace(target types.StopId, departure time.Time) (Journey, error) {
	rounds, ok := s.ConnectionIndex[target]
	if !ok {
		return Journey{}, ErrNoRouteFound
	}

	var best *backtraceCandidate

	for k := range rounds {
		j, ok := s.extractJourney(k, target)
		if !ok {
			continue
		}
		arrival, feasible := j.ArrivalWhenStartingAt(departure)
		if !feasible {
			continue
		}
		candidate := backtraceCandidate{journey: j, arrival: arrival}
		if best == nil || betterCandidate(candidate, *best) {
			best = &candidate
		}
	}

	if best == nil {
		return Journey{}, ErrNoRouteFound
	}
	return best.journey, nil
}

// extractJourney walks the connection index backward from target at round
// k toward the journey's start, discarding candidates where an earlier
// ride would arrive after a later ride's recorded departure (the
// "latest-admissible-arrival" feasibility check). Matches
// original_source's RaptorState::extract_journey.
func (s *State) extractJourney(k int, target types.StopId) (Journey, bool) {
	var legs []Leg

	currDest := target
	var boundTime *time.Time

	for {
		roundLegs, ok := s.ConnectionIndex[currDest]
		if !ok {
			break
		}
		leg, ok := roundLegs[k]
		if !ok {
			break
		}

		switch l := leg.(type) {
		case Ride:
			k--
			if boundTime != nil && l.AlightTime_.After(*boundTime) {
				return Journey{}, false
			}
			dep := l.BoardingTime_
			boundTime = &dep
		case Transfer:
			if boundTime != nil {
				adjusted := boundTime.Add(-l.Duration)
				boundTime = &adjusted
			}
		}

		currDest = leg.StartStop()
		legs = append(legs, leg)
	}

	if len(legs) == 0 {
		return Journey{}, false
	}

	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}

	journey, err := NewJourney(legs)
	if err != nil {
		return Journey{}, false
	}
	return journey, true
}

// BacktraceAll reconstructs the fastest Journey to every stop in the
// index, discarding stops with no route found. Matches original_source's
// RaptorAlgorithm::backtrace_all.
func (idx *Index) BacktraceAll(s *State, departure time.Time) ([]Journey, error) {
	var journeys []Journey
	for _, stop := range idx.Stops {
		j, err := s.Backtrace(stop, departure)
		if err != nil {
			continue
		}
		journeys = append(journeys, j)
	}
	if len(journeys) == 0 {
		return nil, ErrNoRouteFound
	}
	return journeys, nil
}
