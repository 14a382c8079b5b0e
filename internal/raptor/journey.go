package raptor

import (
	"github.com/evanholt/transitraptor/internal/journey"
	"github.com/evanholt/transitraptor/internal/types"
)

// Journey is the engine's instantiation of package journey's generic
// Journey type, fixed to types.StopId stops and this package's Leg sum
// type.
type Journey = journey.Journey[types.StopId, Leg]

// NewJourney validates and builds a Journey from an ordered leg sequence.
func NewJourney(legs []Leg) (Journey, error) {
	return journey.New[types.StopId, Leg](legs)
}
