// Package raptor implements the RAPTOR (Round-based Public Transit
// Optimized Router) timetable routing engine described in spec.md §4.E-J.
// It is grounded primarily on original_source/routing/src/raptor/{mod,
// preprocessing,routing,state}.rs, the Rust implementation this spec was
// distilled from, with the round-loop's Go shape (map-based indices,
// explicit error returns) cross-checked against
// KhalidEchchahid-transit-app/backend/internal/routing/raptor.go and the
// teacher's SimpleRaptorDepartAt/ArriveBy dispatch in mod.go.
package raptor

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// LineStop records a line's visit to a stop at a sequence position, the
// entry stored per-stop in LinesByStop.
type LineStop struct {
	Line   types.LineId
	SeqNum types.SeqNum
}

// TripDeparture records a trip's departure time at a stop; the engine
// expects each per-(line,stop) slice sorted ascending by Departure so
// earliest-trip lookups can short-circuit.
type TripDeparture struct {
	Departure time.Time
	Trip      types.TripId
}

// Index is the preprocessed RAPTOR index described in spec.md §4.E: every
// lookup table the round-based scan needs, built once from a timetable and
// then queried repeatedly.
type Index struct {
	// Stops is the dense list of every stop id the index knows about —
	// its length is num_stops.
	Stops []types.StopId

	// StopsByLine maps a line to its ordered stop sequence.
	StopsByLine map[types.LineId][]types.StopId
	// LinesByStop maps a stop to every (line, position) pair it
	// participates in.
	LinesByStop map[types.StopId][]LineStop

	// Arrivals/Departures record a trip's arrival/departure time at a
	// stop it visits.
	Arrivals   map[tripStop]time.Time
	Departures map[tripStop]time.Time

	// TripsByLineAndStop lists, for each (line, stop), every trip's
	// departure from that stop sorted ascending by time — enabling
	// earliest-trip binary/linear scan during the line-scanning stage.
	TripsByLineAndStop map[lineStop][]TripDeparture

	// TripLine maps a trip to the single line it belongs to. Used by
	// the latest-departure query's time-reversal construction.
	TripLine map[types.TripId]types.LineId

	// TransferProvider answers stop-to-stop walking queries; see
	// package transfers.
	TransferProvider TransferProvider
}

type tripStop struct {
	Trip types.TripId
	Stop types.StopId
}

type lineStop struct {
	Line types.LineId
	Stop types.StopId
}

// TransferProvider is the subset of transfers.Provider the RAPTOR core
// needs, expressed locally so Build accepts any implementation rather
// than requiring the concrete transfers.Provider type (same as
// original_source's Box<dyn TransferProvider>). Package transfers is
// still imported by core.go, but only to recognize transfers.ErrOutOfReach.
type TransferProvider interface {
	LowerBoundDuration(start, end types.StopId) (time.Duration, error)
	Duration(start, end types.StopId) (time.Duration, error)
	TransfersFrom(start types.StopId) []types.StopId
}

// NumStops reports how many stops the index covers.
func (idx *Index) NumStops() int {
	return len(idx.Stops)
}

// EarliestTrip selects the earliest trip of line departing from stop at or
// after "after", matching original_source's earliest_trip.
func (idx *Index) EarliestTrip(line types.LineId, stop types.StopId, after time.Time) (types.TripId, bool) {
	trips := idx.TripsByLineAndStop[lineStop{Line: line, Stop: stop}]
	for _, td := range trips {
		if !td.Departure.Before(after) {
			return td.Trip, true
		}
	}
	return 0, false
}

// StopsOnLineAfter returns the stops on line starting at (and including)
// stop, in line order, matching original_source's stops_on_line_after.
func (idx *Index) StopsOnLineAfter(line types.LineId, stop types.StopId) []types.StopId {
	stops := idx.StopsByLine[line]
	for i, s := range stops {
		if s == stop {
			return stops[i:]
		}
	}
	return nil
}
