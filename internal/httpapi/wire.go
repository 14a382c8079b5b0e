// Wire-format conversions implementing spec.md §6's EXTERNAL INTERFACES:
// stop ids serialize as "s:<n>" strings, journeys serialize as an ordered
// list of tagged leg objects with RFC3339 instants.
package httpapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/evanholt/transitraptor/internal/raptor"
	"github.com/evanholt/transitraptor/internal/types"
)

// parseStopID parses the "s:<n>" wire format spec.md §6 specifies for
// query parameters.
func parseStopID(s string) (types.StopId, error) {
	n, ok := strings.CutPrefix(s, "s:")
	if !ok {
		return 0, fmt.Errorf("stop id %q must be in the form s:<n>", s)
	}
	v, err := strconv.ParseUint(n, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("stop id %q: %w", s, err)
	}
	return types.StopId(v), nil
}

// WireLeg is one leg of a WireJourney: a tagged object distinguishing a
// ride from a transfer, per spec.md §6's "{ kind: "ride"|"transfer", … }".
type WireLeg struct {
	Kind          string `json:"kind"`
	Trip          string `json:"trip,omitempty"`
	BoardingStop  string `json:"boarding_stop,omitempty"`
	AlightStop    string `json:"alight_stop,omitempty"`
	BoardingTime  string `json:"boarding_time,omitempty"`
	AlightTime    string `json:"alight_time,omitempty"`
	Start         string `json:"start,omitempty"`
	End           string `json:"end,omitempty"`
	DurationSecs  float64 `json:"duration_seconds,omitempty"`
}

// WireJourney is the JSON serialization of a raptor.Journey.
type WireJourney struct {
	Legs      []WireLeg `json:"legs"`
	Departure *string   `json:"departure,omitempty"`
	Arrival   *string   `json:"arrival,omitempty"`
}

func rfc3339(t time.Time) string { return t.Format(time.RFC3339) }

func toWireJourney(j raptor.Journey) WireJourney {
	var wj WireJourney
	for _, leg := range j.Legs() {
		switch l := leg.(type) {
		case raptor.Ride:
			wj.Legs = append(wj.Legs, WireLeg{
				Kind:         "ride",
				Trip:         l.Trip.String(),
				BoardingStop: l.BoardingStop.String(),
				AlightStop:   l.AlightStop.String(),
				BoardingTime: rfc3339(l.BoardingTime()),
				AlightTime:   rfc3339(l.AlightTime()),
			})
		case raptor.Transfer:
			wj.Legs = append(wj.Legs, WireLeg{
				Kind:         "transfer",
				Start:        l.Start.String(),
				End:          l.End.String(),
				DurationSecs: l.Duration.Seconds(),
			})
		}
	}
	if dep, ok := j.Departure(); ok {
		s := rfc3339(dep)
		wj.Departure = &s
	}
	if arr, ok := j.Arrival(); ok {
		s := rfc3339(arr)
		wj.Arrival = &s
	}
	return wj
}

// EarliestArrivalResponse is EA-Single's and latest-departure's success
// shape.
type EarliestArrivalResponse struct {
	Journey WireJourney `json:"journey"`
}

// MultipleResponse is the Supplemented Feature #2 batch response shape,
// also used for EA-All.
type MultipleResponse struct {
	Journeys []WireJourney `json:"journeys"`
}

// RangeResponse is Range-Single/Range-All's success shape.
type RangeResponse struct {
	Journeys []WireJourney `json:"journeys"`
}
