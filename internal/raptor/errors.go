package raptor

import "errors"

// ErrNoRouteFound is returned when a query cannot reach its target(s) at
// all, matching original_source's QueryError::NoRouteFound.
var ErrNoRouteFound = errors.New("raptor: no route found")

// ErrUnknownStop is returned when a query references a stop id outside
// the index's stop range, matching common::types::errors::UnknownStopIdError.
var ErrUnknownStop = errors.New("raptor: unknown stop id")
