package transfers

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// NoOp is a walk-free transfer provider: it offers no reachability and
// panics if asked for an actual duration. Useful for pure-ride timetables
// and for constructing a RaptorIndex before a real transfer provider is
// wired in, matching original_source/routing/src/transfers/noop.rs's
// unimplemented!() duration methods.
type NoOp struct{}

func (NoOp) LowerBoundDuration(start, end types.StopId) (time.Duration, error) {
	panic("transfers: NoOp provider cannot compute durations")
}

func (NoOp) Duration(start, end types.StopId) (time.Duration, error) {
	panic("transfers: NoOp provider cannot compute durations")
}

func (NoOp) TransfersFrom(start types.StopId) []types.StopId {
	return nil
}

func (NoOp) TransfersBetween(start, end types.StopId) ([]Leg, error) {
	return []Leg{}, nil
}
