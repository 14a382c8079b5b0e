// Package directconnections implements spec.md §4.D: grouping trips that
// share an identical ordered stop sequence into Lines, and answering
// direct (no-transfer) connection queries over those lines. It is grounded
// on original_source/routing/src/direct_connections.rs.
//
// The original builds this with polars LazyFrames (group_by/explode over
// dataframes); no repo in the retrieval pack uses a dataframe library in
// Go, so this package uses plain slices and maps instead — see DESIGN.md
// for that justification. The externally observable shape (a flattened
// per-stop-visit table keyed by line_id/trip_id/stop_sequence) is kept
// identical to the original's "lines" table.
package directconnections

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// StopRecord is one row of the PreprocessingInput stops table.
type StopRecord struct {
	Stop types.StopId
	Lat  float64
	Lon  float64
}

// TripRecord is one row of the PreprocessingInput trips table. Service
// carries either a one-off or recurring trip identity (supplemented
// feature: see types.AnyTripId), even though the routing engine only ever
// keys its internal maps on Trip.
type TripRecord struct {
	Trip    types.TripId
	Service types.AnyTripId
}

// StopTimeRecord is one row of the PreprocessingInput stop_times table:
// a single scheduled visit of a trip to a stop.
type StopTimeRecord struct {
	Trip      types.TripId
	Stop      types.StopId
	Sequence  types.SeqNum
	Arrival   time.Time
	Departure time.Time
}

// PreprocessingInput is the caller-supplied timetable ready to be turned
// into a RAPTOR index: the stops, trips and stop_times tables of
// original_source's PreprocessingInput. It has no services (calendar)
// table; service-day information is not carried into the engine.
type PreprocessingInput struct {
	Stops     []StopRecord
	Trips     []TripRecord
	StopTimes []StopTimeRecord
}

// StopVisit is one flattened row of the lines table: a trip's visit to a
// stop, tagged with the line it has been assigned to. This is the Go
// equivalent of the original's single "lines" dataframe with columns
// line_id/trip_id/stop_id/stop_sequence/arrival_time/departure_time.
type StopVisit struct {
	Line      types.LineId
	Trip      types.TripId
	Stop      types.StopId
	Sequence  types.SeqNum
	Arrival   time.Time
	Departure time.Time
}

// Incidence records that a line passes through a stop at a given sequence
// position, the row shape of the original's stop_incidence table.
type Incidence struct {
	Line     types.LineId
	SeqNum   types.SeqNum
}

// DirectConnections holds the flattened lines table and the per-stop
// incidence index built from it.
type DirectConnections struct {
	Lines         []StopVisit
	StopIncidence map[types.StopId][]Incidence
}
