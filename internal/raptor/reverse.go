package raptor

import (
	"sort"
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// LatestDeparture answers "what's the latest I can leave start and still
// arrive at target by latestArrival?" — Supplemented Feature #1 (see
// SPEC_FULL.md), grounded on original_source's
// algorithms/queries/latest_departure.rs and generalizing
// LiamMartens-go-raptor's SimpleRaptorArriveBy, which already runs its
// own algorithm in reverse-time, to this engine's dense-stop-id index.
//
// It runs the ordinary earliest-arrival RAPTOR scan over a time-reversed
// copy of the index (every line direction and timestamp mirrored around
// latestArrival) and un-reverses the resulting journey. Reversing
// timestamps around a fixed point is an involution
// (reverseTimeAround(r, reverseTimeAround(r, t)) == t),
// which is what makes converting the answer back straightforward.
func (idx *Index) LatestDeparture(start, target types.StopId, latestArrival time.Time) (Journey, error) {
	if err := idx.validateStop(start); err != nil {
		return Journey{}, err
	}
	if err := idx.validateStop(target); err != nil {
		return Journey{}, err
	}
	if start == target {
		return Journey{}, ErrNoRouteFound
	}

	rev := idx.reversed(latestArrival)

	state, err := rev.Run(target, &start, latestArrival)
	if err != nil {
		return Journey{}, err
	}
	revJourney, err := state.Backtrace(start, latestArrival)
	if err != nil {
		return Journey{}, err
	}

	return unreverseJourney(revJourney, latestArrival)
}

func reverseTimeAround(reference, t time.Time) time.Time {
	return reference.Add(reference.Sub(t))
}

// reversed builds a time-mirrored copy of idx around reference: every
// line's stop sequence is reversed, and every arrival/departure timestamp
// is reflected through reference, so running the forward round loop over
// it answers reverse-time (latest-departure) questions with the same
// code. Transfer durations are reused as-is; for an asymmetric
// FixedMatrix provider this is an approximation (see DESIGN.md).
func (idx *Index) reversed(reference time.Time) *Index {
	rev := &Index{
		Stops:              idx.Stops,
		StopsByLine:        make(map[types.LineId][]types.StopId, len(idx.StopsByLine)),
		LinesByStop:        make(map[types.StopId][]LineStop, len(idx.LinesByStop)),
		Arrivals:           make(map[tripStop]time.Time),
		Departures:         make(map[tripStop]time.Time),
		TripsByLineAndStop: make(map[lineStop][]TripDeparture),
		TripLine:           idx.TripLine,
		TransferProvider:   idx.TransferProvider,
	}

	for line, stops := range idx.StopsByLine {
		n := len(stops)
		reversedStops := make([]types.StopId, n)
		for i, s := range stops {
			reversedStops[n-1-i] = s
		}
		rev.StopsByLine[line] = reversedStops
		for i, s := range reversedStops {
			rev.LinesByStop[s] = append(rev.LinesByStop[s], LineStop{Line: line, SeqNum: types.SeqNum(i)})
		}
	}

	// A forward departure becomes a reversed arrival (the stop was
	// "not last", so in the reversed trip it is "not first").
	for ts, dep := range idx.Departures {
		rev.Arrivals[ts] = reverseTimeAround(reference, dep)
	}
	// A forward arrival becomes a reversed departure.
	for ts, arr := range idx.Arrivals {
		rev.Departures[ts] = reverseTimeAround(reference, arr)
	}

	for ts, revDep := range rev.Departures {
		line := idx.TripLine[ts.Trip]
		key := lineStop{Line: line, Stop: ts.Stop}
		rev.TripsByLineAndStop[key] = append(rev.TripsByLineAndStop[key], TripDeparture{Departure: revDep, Trip: ts.Trip})
	}
	for key, trips := range rev.TripsByLineAndStop {
		sort.Slice(trips, func(i, j int) bool {
			if trips[i].Departure.Equal(trips[j].Departure) {
				return trips[i].Trip < trips[j].Trip
			}
			return trips[i].Departure.Before(trips[j].Departure)
		})
		rev.TripsByLineAndStop[key] = trips
	}

	return rev
}

// unreverseJourney converts a journey found in reverse-time space back
// into a real, forward-chronological Journey: legs are reordered and each
// leg's stops/times are un-reflected around reference.
func unreverseJourney(rev Journey, reference time.Time) (Journey, error) {
	revLegs := rev.Legs()
	n := len(revLegs)
	realLegs := make([]Leg, n)

	for i, rl := range revLegs {
		var real Leg
		switch l := rl.(type) {
		case Ride:
			real = Ride{
				Trip:          l.Trip,
				BoardingStop:  l.AlightStop,
				AlightStop:    l.BoardingStop,
				BoardingTime_: reverseTimeAround(reference, l.AlightTime_),
				AlightTime_:   reverseTimeAround(reference, l.BoardingTime_),
			}
		case Transfer:
			real = Transfer{Start: l.End, End: l.Start, Duration: l.Duration}
		}
		realLegs[n-1-i] = real
	}

	return NewJourney(realLegs)
}
