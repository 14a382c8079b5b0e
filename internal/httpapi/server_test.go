package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanholt/transitraptor/internal/directconnections"
	"github.com/evanholt/transitraptor/internal/raptor"
	"github.com/evanholt/transitraptor/internal/transfers"
	"github.com/evanholt/transitraptor/internal/types"
)

// buildCase1Index builds the two-stop/one-line/one-trip fixture used
// throughout the raptor package's own tests (stop 0 --trip 0--> stop 1,
// departs 100s, arrives 500s), via the real directconnections.Build +
// raptor.Build pipeline rather than hand-assembling an Index.
func buildCase1Index(t *testing.T) *raptor.Index {
	t.Helper()

	input := directconnections.PreprocessingInput{
		Stops: []directconnections.StopRecord{{Stop: 0}, {Stop: 1}},
		Trips: []directconnections.TripRecord{{Trip: 0, Service: types.OneOff(0)}},
		StopTimes: []directconnections.StopTimeRecord{
			{Trip: 0, Stop: 0, Sequence: 0, Arrival: sec(100), Departure: sec(100)},
			{Trip: 0, Stop: 1, Sequence: 1, Arrival: sec(500), Departure: sec(500)},
		},
	}

	dc, err := directconnections.Build(input)
	require.NoError(t, err)

	idx, err := raptor.Build([]types.StopId{0, 1}, dc, transfers.NoOp{})
	require.NoError(t, err)
	return idx
}

func TestHandleEarliestArrivalSingle(t *testing.T) {
	srv := httptest.NewServer(NewServer(buildCase1Index(t), nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/routing?start=s:0&target=s:1&earliest_departure=" + sec(0).Format(time.RFC3339))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out EarliestArrivalResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Journey.Legs, 1)
	assert.Equal(t, "ride", out.Journey.Legs[0].Kind)
	assert.Equal(t, "s:0", out.Journey.Legs[0].BoardingStop)
	assert.Equal(t, "s:1", out.Journey.Legs[0].AlightStop)
}

func TestHandleEarliestArrivalNoRouteFoundIs404(t *testing.T) {
	srv := httptest.NewServer(NewServer(buildCase1Index(t), nil).Router())
	defer srv.Close()

	// Querying after the only trip's departure leaves stop 1 unreachable.
	resp, err := http.Get(srv.URL + "/api/v1/routing?start=s:0&target=s:1&earliest_departure=" + sec(1000).Format(time.RFC3339))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleEarliestArrivalBadStopIDIs400(t *testing.T) {
	srv := httptest.NewServer(NewServer(buildCase1Index(t), nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/routing?start=not-a-stop&target=s:1&earliest_departure=" + sec(0).Format(time.RFC3339))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleHealth(t *testing.T) {
	srv := httptest.NewServer(NewServer(buildCase1Index(t), nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
