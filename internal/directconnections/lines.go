package directconnections

import (
	"fmt"
	"sort"
	"strings"

	"github.com/evanholt/transitraptor/internal/types"
)

// Build turns a PreprocessingInput's stop_times into a DirectConnections:
// trips sharing an identical ordered stop sequence are grouped into a
// single Line, matching original_source's create_line_table (sort by
// stop_sequence, group by trip_id, group by the resulting stop_id list,
// assign a row index as line_id, then flatten back to per-visit rows).
func Build(input PreprocessingInput) (DirectConnections, error) {
	byTrip := make(map[types.TripId][]StopTimeRecord)
	for _, st := range input.StopTimes {
		byTrip[st.Trip] = append(byTrip[st.Trip], st)
	}

	tripIDs := make([]types.TripId, 0, len(byTrip))
	for trip := range byTrip {
		tripIDs = append(tripIDs, trip)
	}
	sort.Slice(tripIDs, func(i, j int) bool { return tripIDs[i] < tripIDs[j] })

	for _, trip := range tripIDs {
		visits := byTrip[trip]
		sort.Slice(visits, func(i, j int) bool { return visits[i].Sequence < visits[j].Sequence })
		if err := validateSequence(trip, visits); err != nil {
			return DirectConnections{}, err
		}
	}

	lineOfSequence := make(map[string]types.LineId)
	tripsByLine := make(map[types.LineId][]types.TripId)
	var nextLine types.LineId

	for _, trip := range tripIDs {
		key := sequenceKey(byTrip[trip])
		line, ok := lineOfSequence[key]
		if !ok {
			line = nextLine
			nextLine++
			lineOfSequence[key] = line
		}
		tripsByLine[line] = append(tripsByLine[line], trip)
	}

	var visits []StopVisit
	for line := types.LineId(0); line < nextLine; line++ {
		for _, trip := range tripsByLine[line] {
			for _, st := range byTrip[trip] {
				visits = append(visits, StopVisit{
					Line:      line,
					Trip:      trip,
					Stop:      st.Stop,
					Sequence:  st.Sequence,
					Arrival:   st.Arrival,
					Departure: st.Departure,
				})
			}
		}
	}

	return DirectConnections{
		Lines:         visits,
		StopIncidence: buildStopIncidence(visits),
	}, nil
}

func validateSequence(trip types.TripId, visits []StopTimeRecord) error {
	for i := 1; i < len(visits); i++ {
		if visits[i].Sequence == visits[i-1].Sequence {
			return fmt.Errorf("directconnections: trip %v has duplicate stop_sequence %v", trip, visits[i].Sequence)
		}
	}
	return nil
}

// sequenceKey is the identity two trips must share to belong to the same
// line: their ordered list of stop ids.
func sequenceKey(visits []StopTimeRecord) string {
	var b strings.Builder
	for _, v := range visits {
		fmt.Fprintf(&b, "%d,", uint32(v.Stop))
	}
	return b.String()
}

// buildStopIncidence is the Go equivalent of create_stop_incidence_table:
// for each stop, every (line, sequence position) it participates in.
func buildStopIncidence(visits []StopVisit) map[types.StopId][]Incidence {
	out := make(map[types.StopId][]Incidence)
	seen := make(map[types.StopId]map[types.LineId]bool)
	for _, v := range visits {
		if seen[v.Stop] == nil {
			seen[v.Stop] = make(map[types.LineId]bool)
		}
		if seen[v.Stop][v.Line] {
			continue
		}
		seen[v.Stop][v.Line] = true
		out[v.Stop] = append(out[v.Stop], Incidence{Line: v.Line, SeqNum: v.Sequence})
	}
	return out
}
