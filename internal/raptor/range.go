package raptor

import (
	"fmt"
	"strings"
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// journeyKey produces a stable dedup key for a Journey. Go slices aren't
// comparable, so a Pareto-set of journeys (original_source's
// HashSet<Journey>) is modeled here as a map keyed on each journey's leg
// sequence instead of relying on Journey itself being hashable.
func journeyKey(j Journey) string {
	var b strings.Builder
	for _, leg := range j.Legs() {
		fmt.Fprintf(&b, "%s|", leg.String())
	}
	return b.String()
}

// RunRange drives repeated earliest-arrival queries across
// [earliestDeparture, earliestDeparture+window], collecting the Pareto
// set of distinct journeys found. After each successful query it advances
// the departure to one second past the journey actually found — a
// deliberate simplification (it can skip a faster departure that exists
// strictly between the query time and the found journey's departure)
// documented in spec.md and kept here rather than "fixed", matching
// original_source's run_range `// TODO: find a better way than this hack`.
func (idx *Index) RunRange(start types.StopId, target *types.StopId, earliestDeparture time.Time, window time.Duration) ([]Journey, error) {
	lastDeparture := earliestDeparture.Add(window)

	found := make(map[string]Journey)
	departure := earliestDeparture

	for !departure.After(lastDeparture) {
		state, err := idx.Run(start, target, departure)
		if err != nil {
			return nil, err
		}

		if target != nil {
			journey, err := state.Backtrace(*target, departure)
			if err != nil {
				break
			}
			journeyDeparture, ok := journey.Departure()
			if !ok {
				journeyDeparture = departure
			}
			if !journeyDeparture.After(lastDeparture) {
				found[journeyKey(journey)] = journey
			}
			departure = journeyDeparture.Add(time.Second)
			continue
		}

		journeys, err := idx.BacktraceAll(state, departure)
		if err != nil {
			break
		}

		var earliestNew *time.Time
		for _, j := range journeys {
			jDep, ok := j.Departure()
			if !ok {
				jDep = departure
			}
			if jDep.After(lastDeparture) {
				continue
			}
			found[journeyKey(j)] = j
			if earliestNew == nil || jDep.Before(*earliestNew) {
				d := jDep
				earliestNew = &d
			}
		}

		if earliestNew == nil {
			break
		}
		departure = earliestNew.Add(time.Second)
	}

	if len(found) == 0 {
		return nil, ErrNoRouteFound
	}

	out := make([]Journey, 0, len(found))
	for _, j := range found {
		out = append(out, j)
	}
	return out, nil
}
