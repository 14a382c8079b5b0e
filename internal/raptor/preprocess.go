package raptor

import (
	"sort"
	"time"

	"github.com/evanholt/transitraptor/internal/directconnections"
	"github.com/evanholt/transitraptor/internal/types"
)

// Build constructs an Index from a flattened lines table (the output of
// package directconnections) and a transfer provider, matching
// original_source's RaptorAlgorithm::preprocess: it derives stops_by_line,
// lines_by_stops, arrivals, departures and trips_by_line_and_stop from the
// line table sorted by (line_id, trip_id, stop_sequence).
func Build(stops []types.StopId, dc directconnections.DirectConnections, provider TransferProvider) (*Index, error) {
	visits := append([]directconnections.StopVisit(nil), dc.Lines...)
	sort.Slice(visits, func(i, j int) bool {
		a, b := visits[i], visits[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Trip != b.Trip {
			return a.Trip < b.Trip
		}
		return a.Sequence < b.Sequence
	})

	idx := &Index{
		Stops:              append([]types.StopId(nil), stops...),
		StopsByLine:        make(map[types.LineId][]types.StopId),
		LinesByStop:        make(map[types.StopId][]LineStop),
		Arrivals:           make(map[tripStop]time.Time),
		Departures:         make(map[tripStop]time.Time),
		TripsByLineAndStop: make(map[lineStop][]TripDeparture),
		TripLine:           make(map[types.TripId]types.LineId),
		TransferProvider:   provider,
	}

	seenLineStop := make(map[types.LineId]map[types.StopId]bool)

	for _, v := range visits {
		if seenLineStop[v.Line] == nil {
			seenLineStop[v.Line] = make(map[types.StopId]bool)
		}
		if !seenLineStop[v.Line][v.Stop] {
			seenLineStop[v.Line][v.Stop] = true
			idx.StopsByLine[v.Line] = append(idx.StopsByLine[v.Line], v.Stop)
			idx.LinesByStop[v.Stop] = append(idx.LinesByStop[v.Stop], LineStop{Line: v.Line, SeqNum: v.Sequence})
		}

		idx.TripLine[v.Trip] = v.Line

		ts := tripStop{Trip: v.Trip, Stop: v.Stop}
		idx.Arrivals[ts] = v.Arrival
		idx.Departures[ts] = v.Departure

		ls := lineStop{Line: v.Line, Stop: v.Stop}
		idx.TripsByLineAndStop[ls] = append(idx.TripsByLineAndStop[ls], TripDeparture{Departure: v.Departure, Trip: v.Trip})
	}

	for ls, trips := range idx.TripsByLineAndStop {
		sort.Slice(trips, func(i, j int) bool {
			if trips[i].Departure.Equal(trips[j].Departure) {
				return trips[i].Trip < trips[j].Trip
			}
			return trips[i].Departure.Before(trips[j].Departure)
		})
		idx.TripsByLineAndStop[ls] = trips
	}
	return idx, nil
}
