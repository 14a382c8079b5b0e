package httpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanholt/transitraptor/internal/raptor"
	"github.com/evanholt/transitraptor/internal/types"
)

func sec(n int) time.Time { return time.Unix(0, 0).UTC().Add(time.Duration(n) * time.Second) }

func TestParseStopID(t *testing.T) {
	id, err := parseStopID("s:42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	_, err = parseStopID("42")
	assert.Error(t, err)

	_, err = parseStopID("s:not-a-number")
	assert.Error(t, err)
}

func TestParseStopIDList(t *testing.T) {
	ids, err := parseStopIDList("s:1, s:2,s:3")
	require.NoError(t, err)
	assert.Equal(t, []types.StopId{1, 2, 3}, ids)
}

func TestToWireJourneyTagsLegsAndComputesDeparture(t *testing.T) {
	j, err := raptor.NewJourney([]raptor.Leg{
		raptor.Ride{Trip: 1, BoardingStop: 0, AlightStop: 1, BoardingTime_: sec(100), AlightTime_: sec(500)},
		raptor.Transfer{Start: 1, End: 2, Duration: 10 * time.Second},
		raptor.Ride{Trip: 2, BoardingStop: 2, AlightStop: 3, BoardingTime_: sec(1000), AlightTime_: sec(1500)},
	})
	require.NoError(t, err)

	wj := toWireJourney(j)
	require.Len(t, wj.Legs, 3)

	assert.Equal(t, "ride", wj.Legs[0].Kind)
	assert.Equal(t, "s:0", wj.Legs[0].BoardingStop)
	assert.Equal(t, "s:1", wj.Legs[0].AlightStop)

	assert.Equal(t, "transfer", wj.Legs[1].Kind)
	assert.Equal(t, "s:1", wj.Legs[1].Start)
	assert.Equal(t, "s:2", wj.Legs[1].End)
	assert.Equal(t, 10.0, wj.Legs[1].DurationSecs)

	assert.Equal(t, "ride", wj.Legs[2].Kind)

	require.NotNil(t, wj.Departure)
	assert.Equal(t, sec(100).Format(time.RFC3339), *wj.Departure)
	require.NotNil(t, wj.Arrival)
	assert.Equal(t, sec(1500).Format(time.RFC3339), *wj.Arrival)
}
