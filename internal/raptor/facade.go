package raptor

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// validateStop reports ErrUnknownStop if stop falls outside the index's
// known stop range.
func (idx *Index) validateStop(stop types.StopId) error {
	if int(stop) >= idx.NumStops() {
		return ErrUnknownStop
	}
	return nil
}

// QueryEarliestArrival answers spec.md §4.J's Single×EarliestArrival
// query: the fastest journey from start to target departing at or after
// departure. A start equal to target is defined to have no route: a
// journey must contain at least one leg (see package journey), so there
// is nothing to find.
func (idx *Index) QueryEarliestArrival(start, target types.StopId, departure time.Time) (Journey, error) {
	if err := idx.validateStop(start); err != nil {
		return Journey{}, err
	}
	if err := idx.validateStop(target); err != nil {
		return Journey{}, err
	}
	if start == target {
		return Journey{}, ErrNoRouteFound
	}

	state, err := idx.Run(start, &target, departure)
	if err != nil {
		return Journey{}, err
	}
	return state.Backtrace(target, departure)
}

// QueryEarliestArrivalMultiple answers Multiple×EarliestArrival as a
// genuine batch (Supplemented Feature #2): the round loop runs once and
// backtraces to every requested target, instead of literally calling
// QueryEarliestArrival once per target (which would redundantly rerun the
// scan). The semantic contract — equivalent to repeated Single queries —
// is unchanged; only the amount of shared work differs.
func (idx *Index) QueryEarliestArrivalMultiple(start types.StopId, targets []types.StopId, departure time.Time) ([]Journey, error) {
	if err := idx.validateStop(start); err != nil {
		return nil, err
	}
	state, err := idx.Run(start, nil, departure)
	if err != nil {
		return nil, err
	}

	var journeys []Journey
	for _, target := range targets {
		j, err := state.Backtrace(target, departure)
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

// QueryEarliestArrivalAll answers All×EarliestArrival: the fastest journey
// from start to every reachable stop.
func (idx *Index) QueryEarliestArrivalAll(start types.StopId, departure time.Time) ([]Journey, error) {
	if err := idx.validateStop(start); err != nil {
		return nil, err
	}
	state, err := idx.Run(start, nil, departure)
	if err != nil {
		return nil, err
	}
	return idx.BacktraceAll(state, departure)
}

// QueryRange answers Single×Range: the Pareto set of distinct journeys
// from start to target across [earliestDeparture, earliestDeparture+window].
func (idx *Index) QueryRange(start, target types.StopId, earliestDeparture time.Time, window time.Duration) ([]Journey, error) {
	if err := idx.validateStop(start); err != nil {
		return nil, err
	}
	if err := idx.validateStop(target); err != nil {
		return nil, err
	}
	if start == target {
		return nil, ErrNoRouteFound
	}
	return idx.RunRange(start, &target, earliestDeparture, window)
}

// QueryRangeAll answers All×Range: the Pareto set of journeys from start
// to every reachable stop across the departure window.
func (idx *Index) QueryRangeAll(start types.StopId, earliestDeparture time.Time, window time.Duration) ([]Journey, error) {
	return idx.RunRange(start, nil, earliestDeparture, window)
}
