package raptor

import (
	"fmt"
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// Leg is the engine's concrete instantiation of the sum type described in
// spec.md §3 ("Leg"): either a Ride (aboard a scheduled trip) or a
// Transfer (on foot). It satisfies package journey's RideLike constraint,
// so journey.Journey[types.StopId, Leg] is the Journey type the rest of
// this package works with.
type Leg interface {
	StartStop() types.StopId
	EndStop() types.StopId
	IsRide() bool
	BoardingTime() time.Time
	AlightTime() time.Time
	TransferDuration() time.Duration
	String() string
}

// Ride is a leg taken aboard trip, boarding at BoardingStop and alighting
// at AlightStop.
type Ride struct {
	Trip         types.TripId
	BoardingStop types.StopId
	AlightStop   types.StopId
	BoardingTime_ time.Time
	AlightTime_   time.Time
}

func (r Ride) StartStop() types.StopId          { return r.BoardingStop }
func (r Ride) EndStop() types.StopId             { return r.AlightStop }
func (r Ride) IsRide() bool                      { return true }
func (r Ride) BoardingTime() time.Time           { return r.BoardingTime_ }
func (r Ride) AlightTime() time.Time             { return r.AlightTime_ }
func (r Ride) TransferDuration() time.Duration   { return 0 }
func (r Ride) String() string {
	return fmt.Sprintf("Ride{trip:%v, %v@%s -> %v@%s}",
		r.Trip, r.BoardingStop, r.BoardingTime_.Format(time.RFC3339), r.AlightStop, r.AlightTime_.Format(time.RFC3339))
}

// Transfer is a foot leg between two stops of a fixed duration.
type Transfer struct {
	Start    types.StopId
	End      types.StopId
	Duration time.Duration
}

func (t Transfer) StartStop() types.StopId        { return t.Start }
func (t Transfer) EndStop() types.StopId           { return t.End }
func (t Transfer) IsRide() bool                    { return false }
func (t Transfer) BoardingTime() time.Time         { return time.Time{} }
func (t Transfer) AlightTime() time.Time           { return time.Time{} }
func (t Transfer) TransferDuration() time.Duration { return t.Duration }
func (t Transfer) String() string {
	return fmt.Sprintf("Transfer{%v -> %v, %s}", t.Start, t.End, t.Duration)
}
