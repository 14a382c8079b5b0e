package directconnections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanholt/transitraptor/internal/types"
)

func sec(s int) time.Time {
	return time.Unix(0, 0).UTC().Add(time.Duration(s) * time.Second)
}

// buildFixture mirrors original_source's preprocessing.rs test_preprocessing
// fixture: trip 0 visits stops 0,1,2; trip 2 visits stops 3,4 and shares no
// sequence with trip 0; trip 3 visits 0,1,2,3,4 (same leading sequence as
// trip 0 plus extra stops, so it must NOT be grouped with trip 0).
func buildFixture(t *testing.T) DirectConnections {
	input := PreprocessingInput{
		StopTimes: []StopTimeRecord{
			{Trip: 0, Stop: 0, Sequence: 0, Arrival: sec(0), Departure: sec(0)},
			{Trip: 0, Stop: 1, Sequence: 1, Arrival: sec(10), Departure: sec(11)},
			{Trip: 0, Stop: 2, Sequence: 2, Arrival: sec(20), Departure: sec(21)},

			{Trip: 1, Stop: 0, Sequence: 0, Arrival: sec(100), Departure: sec(100)},
			{Trip: 1, Stop: 1, Sequence: 1, Arrival: sec(110), Departure: sec(111)},
			{Trip: 1, Stop: 2, Sequence: 2, Arrival: sec(120), Departure: sec(121)},

			{Trip: 2, Stop: 3, Sequence: 0, Arrival: sec(0), Departure: sec(0)},
			{Trip: 2, Stop: 4, Sequence: 1, Arrival: sec(10), Departure: sec(11)},

			{Trip: 3, Stop: 0, Sequence: 0, Arrival: sec(0), Departure: sec(0)},
			{Trip: 3, Stop: 1, Sequence: 1, Arrival: sec(10), Departure: sec(11)},
			{Trip: 3, Stop: 2, Sequence: 2, Arrival: sec(20), Departure: sec(21)},
			{Trip: 3, Stop: 3, Sequence: 3, Arrival: sec(30), Departure: sec(31)},
			{Trip: 3, Stop: 4, Sequence: 4, Arrival: sec(40), Departure: sec(41)},
		},
	}
	dc, err := Build(input)
	require.NoError(t, err)
	return dc
}

func TestBuildGroupsIdenticalSequencesIntoOneLine(t *testing.T) {
	dc := buildFixture(t)

	linesOfTrip := map[types.TripId]types.LineId{}
	for _, v := range dc.Lines {
		linesOfTrip[v.Trip] = v.Line
	}

	assert.Equal(t, linesOfTrip[0], linesOfTrip[1], "trips 0 and 1 share an identical stop sequence")
	assert.NotEqual(t, linesOfTrip[0], linesOfTrip[2], "trip 2 visits a disjoint set of stops")
	assert.NotEqual(t, linesOfTrip[0], linesOfTrip[3], "trip 3's sequence is a superset, not identical")
}

func TestQueryDirectRespectsSequenceOrder(t *testing.T) {
	dc := buildFixture(t)

	forward := dc.QueryDirect(0, 2)
	assert.NotEmpty(t, forward)

	backward := dc.QueryDirect(2, 0)
	assert.Empty(t, backward, "stop 2 comes after stop 0 on every line, so there is no direct connection back")
}

func TestQueryDirectEarliestAfterPicksEarliestDeparture(t *testing.T) {
	dc := buildFixture(t)

	visit, ok := dc.QueryDirectEarliestAfter(0, 2, sec(50))
	require.True(t, ok)
	assert.Equal(t, sec(100), visit.Departure)
}

func TestQueryDirectEarliestAfterNoneFound(t *testing.T) {
	dc := buildFixture(t)

	_, ok := dc.QueryDirectEarliestAfter(0, 2, sec(1000))
	assert.False(t, ok)
}

func TestQueryDirectFindsConnectionSpanningMoreStops(t *testing.T) {
	dc := buildFixture(t)

	// Trip 3's line visits 0,1,2,3,4 in order, so 0 and 4 are directly
	// connected even though no trip on the 0,1,2-only line reaches stop 4.
	assert.NotEmpty(t, dc.QueryDirect(0, 4))
}
