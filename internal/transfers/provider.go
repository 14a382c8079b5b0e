// Package transfers implements the TransferProvider capability described in
// spec.md §4.C, grounded on original_source/routing/src/transfers/{mod,
// crow_fly,fixed_time,noop}.rs. Go has no trait objects, so the provider
// boundary is a plain interface; each original Rust implementation becomes
// one file in this package.
package transfers

import (
	"errors"
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// ErrStopNotFound is returned when a provider is asked about a stop it has
// no coordinates/row for.
var ErrStopNotFound = errors.New("transfers: stop not found")

// ErrOutOfReach is returned when a transfer would exceed the provider's
// configured walking cap.
var ErrOutOfReach = errors.New("transfers: out of reach")

// Leg is the minimal view of a transfer leg this package produces, and the
// element type TransfersBetween returns. It carries the same fields as
// package raptor's Transfer leg, but is defined here so this package
// doesn't import raptor (which imports transfers, not the other way
// around).
type Leg struct {
	Start    types.StopId
	End      types.StopId
	Duration time.Duration
}

// Provider is the capability every transfer source in the engine offers:
// stop-to-stop walking time, a reachability set and concrete transfer legs.
// Implementations: CrowFly (haversine estimate), FixedMatrix (precomputed
// lookup table) and NoOp (walk-free networks).
type Provider interface {
	// LowerBoundDuration returns a duration never greater than the true
	// walking time between start and end; used by the RAPTOR core to
	// short-circuit transfer scanning without computing the exact value.
	LowerBoundDuration(start, end types.StopId) (time.Duration, error)
	// Duration returns the actual walking time between start and end.
	Duration(start, end types.StopId) (time.Duration, error)
	// TransfersFrom lists the candidate transfer targets from start,
	// excluding start itself. A listed stop is not necessarily reachable:
	// CrowFly and FixedMatrix list every other stop, and Duration decides
	// (CrowFly reports ErrOutOfReach past its walking cap).
	TransfersFrom(start types.StopId) []types.StopId
	// TransfersBetween returns the concrete transfer leg(s) connecting
	// start to end.
	TransfersBetween(start, end types.StopId) ([]Leg, error)
}
