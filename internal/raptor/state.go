package raptor

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// infinity stands in for the RAPTOR paper's tau values of +infinity: no
// arrival has been found yet. Grounded on original_source's use of
// DateTime::<Utc>::MAX_UTC.
var infinity = time.Unix(1<<62, 0).UTC()

// connectionIndex is keyed by stop, then by round number k, recording
// which leg last updated that stop's arrival time in round k. Matches
// original_source state.rs's ConnectionIndex type alias.
type connectionIndex map[types.StopId]map[int]Leg

// State is the mutable per-query RAPTOR state described in spec.md §4.F:
// τ_k (round-k arrivals), τ* (best-known arrivals, for pruning) and the
// connection index used to backtrace a Journey once the scan completes.
type State struct {
	K int

	kArrivals    [][]time.Time // kArrivals[k][stop]
	bestArrivals []time.Time   // bestArrivals[stop]

	ConnectionIndex connectionIndex
}

// InitState builds round-0 state: every stop at infinity except start,
// which is set to departure. Matches original_source's RaptorState::init.
func InitState(numStops int, start types.StopId, departure time.Time) *State {
	initial := make([]time.Time, numStops)
	for i := range initial {
		if types.StopId(i) == start {
			initial[i] = departure
		} else {
			initial[i] = infinity
		}
	}

	best := make([]time.Time, numStops)
	copy(best, initial)

	return &State{
		K:               0,
		kArrivals:       [][]time.Time{initial},
		bestArrivals:    best,
		ConnectionIndex: make(connectionIndex),
	}
}

// NewRound starts round k+1, carrying forward round k's arrivals as an
// upper bound (this round can only improve on them).
func (s *State) NewRound() {
	s.K++
	prev := s.kArrivals[len(s.kArrivals)-1]
	next := make([]time.Time, len(prev))
	copy(next, prev)
	s.kArrivals = append(s.kArrivals, next)
}

// Tau returns τ_k(stop), the current round's earliest arrival.
func (s *State) Tau(stop types.StopId) time.Time {
	return s.kArrivals[s.K][stop]
}

// PreviousTau returns τ_(k-1)(stop).
func (s *State) PreviousTau(stop types.StopId) time.Time {
	return s.kArrivals[s.K-1][stop]
}

// BestArrival returns τ*(stop), the best arrival found in any round so
// far — used for target pruning.
func (s *State) BestArrival(stop types.StopId) time.Time {
	return s.bestArrivals[stop]
}

// SetRide records that stop `end` was reached in round K by riding trip
// from start, departing at departure and arriving at newArrival.
func (s *State) SetRide(start, end types.StopId, departure, newArrival time.Time, trip types.TripId) {
	prevTau := s.kArrivals[s.K][end]
	s.kArrivals[s.K][end] = newArrival
	if newArrival.Before(prevTau) {
		s.bestArrivals[end] = newArrival
	} else {
		s.bestArrivals[end] = prevTau
	}

	if s.ConnectionIndex[end] == nil {
		s.ConnectionIndex[end] = make(map[int]Leg)
	}
	s.ConnectionIndex[end][s.K] = Ride{
		Trip:          trip,
		BoardingStop:  start,
		AlightStop:    end,
		BoardingTime_: departure,
		AlightTime_:   newArrival,
	}
}

// SetTransfer records that stop `end` was reached in round K by walking
// from start for duration.
func (s *State) SetTransfer(start, end types.StopId, duration time.Duration) {
	afterTransfer := s.kArrivals[s.K][start].Add(duration)
	s.kArrivals[s.K][end] = afterTransfer
	s.bestArrivals[end] = afterTransfer

	if s.ConnectionIndex[end] == nil {
		s.ConnectionIndex[end] = make(map[int]Leg)
	}
	s.ConnectionIndex[end][s.K] = Transfer{Start: start, End: end, Duration: duration}
}
