package journey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLeg is a minimal concrete RideLike[int] used only by this package's
// own tests, mirroring the shape raptor.Ride/raptor.Transfer present to
// the journey machinery in production.
type testLeg struct {
	start, end time.Time
	from, to   int
	ride       bool
}

func (l testLeg) StartStop() int                  { return l.from }
func (l testLeg) EndStop() int                     { return l.to }
func (l testLeg) IsRide() bool                     { return l.ride }
func (l testLeg) BoardingTime() time.Time          { return l.start }
func (l testLeg) AlightTime() time.Time            { return l.end }
func (l testLeg) TransferDuration() time.Duration  { return l.end.Sub(l.start) }

func ride(from, to int, dep, arr time.Time) testLeg {
	return testLeg{from: from, to: to, start: dep, end: arr, ride: true}
}

func walk(from, to int, dep time.Time, d time.Duration) testLeg {
	return testLeg{from: from, to: to, start: dep, end: dep.Add(d)}
}

var epoch = time.Unix(0, 0).UTC()

func at(seconds int) time.Time {
	return epoch.Add(time.Duration(seconds) * time.Second)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New[int, testLeg](nil)
	require.ErrorIs(t, err, ErrEmptyJourney)
}

func TestNewRejectsBrokenChain(t *testing.T) {
	legs := []testLeg{
		ride(0, 1, at(0), at(10)),
		ride(2, 3, at(20), at(30)), // does not start at stop 1
	}
	_, err := New[int, testLeg](legs)
	require.ErrorIs(t, err, ErrBrokenChain)
}

func TestNewRejectsRevisitedStop(t *testing.T) {
	legs := []testLeg{
		ride(0, 1, at(0), at(10)),
		ride(1, 0, at(20), at(30)),
		ride(0, 2, at(40), at(50)),
	}
	_, err := New[int, testLeg](legs)
	require.ErrorIs(t, err, ErrCyclicJourney)
}

// S6: [Ride A->B, Ride B->A] — every leg-start stop is unique (A, B each
// appear once), but the walked path revisits A on the closing leg.
func TestNewRejectsClosingLegThatRevisitsDeparture(t *testing.T) {
	legs := []testLeg{
		ride(0, 1, at(0), at(10)),
		ride(1, 0, at(20), at(30)),
	}
	_, err := New[int, testLeg](legs)
	require.ErrorIs(t, err, ErrCyclicJourney)
}

func TestDepartureArrivalSingleRide(t *testing.T) {
	legs := []testLeg{ride(0, 1, at(100), at(200))}
	j, err := New[int, testLeg](legs)
	require.NoError(t, err)

	dep, ok := j.Departure()
	require.True(t, ok)
	assert.Equal(t, at(100), dep)

	arr, ok := j.Arrival()
	require.True(t, ok)
	assert.Equal(t, at(200), arr)
}

func TestDepartureSubtractsLeadingTransfer(t *testing.T) {
	legs := []testLeg{
		walk(0, 1, at(80), 20*time.Second), // walk finishing at boarding
		ride(1, 2, at(100), at(200)),
	}
	j, err := New[int, testLeg](legs)
	require.NoError(t, err)

	dep, ok := j.Departure()
	require.True(t, ok)
	assert.Equal(t, at(80), dep)
}

func TestArrivalAddsTrailingTransfer(t *testing.T) {
	legs := []testLeg{
		ride(0, 1, at(100), at(200)),
		walk(1, 2, at(200), 30*time.Second),
	}
	j, err := New[int, testLeg](legs)
	require.NoError(t, err)

	arr, ok := j.Arrival()
	require.True(t, ok)
	assert.Equal(t, at(230), arr)
}

func TestWalkOnlyJourneyHasNoFixedDeparture(t *testing.T) {
	legs := []testLeg{walk(0, 1, at(50), 10*time.Second)}
	j, err := New[int, testLeg](legs)
	require.NoError(t, err)

	_, ok := j.Departure()
	assert.False(t, ok)
	_, ok = j.Arrival()
	assert.False(t, ok)
}

func TestArrivalWhenStartingAtRideJourney(t *testing.T) {
	legs := []testLeg{ride(0, 1, at(100), at(200))}
	j, err := New[int, testLeg](legs)
	require.NoError(t, err)

	arr, ok := j.ArrivalWhenStartingAt(at(50))
	require.True(t, ok)
	assert.Equal(t, at(200), arr)
}

func TestArrivalWhenStartingAtTooLateIsInfeasible(t *testing.T) {
	legs := []testLeg{ride(0, 1, at(100), at(200))}
	j, err := New[int, testLeg](legs)
	require.NoError(t, err)

	_, ok := j.ArrivalWhenStartingAt(at(150))
	assert.False(t, ok)
}

func TestArrivalWhenStartingAtWalkOnlyAddsDuration(t *testing.T) {
	legs := []testLeg{walk(0, 1, at(0), 45*time.Second)}
	j, err := New[int, testLeg](legs)
	require.NoError(t, err)

	arr, ok := j.ArrivalWhenStartingAt(at(1000))
	require.True(t, ok)
	assert.Equal(t, at(1045), arr)
}
