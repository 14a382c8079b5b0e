// Package types holds the strongly-typed identifiers shared across the
// timetable-routing engine. Stop IDs are dense and contiguous in [0, N);
// trip, line and sequence numbers need not be.
package types

import "fmt"

// StopId identifies a boarding/alighting location. Values consumed by the
// routing engine are dense and contiguous in [0, N), N being the stop count.
type StopId uint32

func (s StopId) String() string {
	return fmt.Sprintf("s:%d", uint32(s))
}

// TripId identifies a single scheduled run of a vehicle. May be sparse.
type TripId uint32

func (t TripId) String() string {
	return fmt.Sprintf("t:%d", uint32(t))
}

// LineId identifies an equivalence class of trips sharing the same ordered
// stop sequence.
type LineId uint32

func (l LineId) String() string {
	return fmt.Sprintf("l:%d", uint32(l))
}

// SeqNum is the position of a stop along a line, ascending from 0.
type SeqNum uint32
