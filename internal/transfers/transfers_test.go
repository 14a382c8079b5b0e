package transfers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanholt/transitraptor/internal/types"
)

func TestCrowFlyTransfersFromExcludesSelf(t *testing.T) {
	p := NewCrowFly([]StopCoord{{Lat: 48.0, Lon: 9.0}, {Lat: 10.0, Lon: 42.0}}, 0, 0)

	from0 := p.TransfersFrom(0)
	assert.Contains(t, from0, types.StopId(1))
	assert.NotContains(t, from0, types.StopId(0))

	from1 := p.TransfersFrom(1)
	assert.Contains(t, from1, types.StopId(0))
}

func TestCrowFlyOutOfReach(t *testing.T) {
	// These two coordinates are thousands of km apart, far past any
	// realistic walking cap.
	p := NewCrowFly([]StopCoord{{Lat: 48.0, Lon: 9.0}, {Lat: 10.0, Lon: 42.0}}, 0, 0)

	_, err := p.Duration(0, 1)
	require.ErrorIs(t, err, ErrOutOfReach)
}

func TestCrowFlyUnknownStop(t *testing.T) {
	p := NewCrowFly([]StopCoord{{Lat: 48.0, Lon: 9.0}}, 0, 0)

	_, err := p.Duration(0, 5)
	require.ErrorIs(t, err, ErrStopNotFound)
}

func TestCrowFlyWithinReachProducesTransferLeg(t *testing.T) {
	// Two points ~100m apart at the equator.
	p := NewCrowFly([]StopCoord{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.0009}}, 5, time.Hour)

	legs, err := p.TransfersBetween(0, 1)
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, types.StopId(0), legs[0].Start)
	assert.Equal(t, types.StopId(1), legs[0].End)
	assert.Greater(t, legs[0].Duration, time.Duration(0))
}

func TestFixedMatrixAllowsAsymmetricDurations(t *testing.T) {
	matrix := [][]time.Duration{
		{0, 2 * time.Minute},
		{5 * time.Minute, 0},
	}
	p := NewFixedMatrix(matrix)

	d01, err := p.Duration(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d01)

	d10, err := p.Duration(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, d10)
}

func TestFixedMatrixTransfersFromExcludesSelf(t *testing.T) {
	p := NewFixedMatrix([][]time.Duration{
		{0, time.Minute, time.Minute},
		{time.Minute, 0, time.Minute},
		{time.Minute, time.Minute, 0},
	})

	from1 := p.TransfersFrom(1)
	assert.ElementsMatch(t, []types.StopId{0, 2}, from1)
}

func TestNoOpHasNoReachability(t *testing.T) {
	p := NoOp{}
	assert.Nil(t, p.TransfersFrom(0))

	legs, err := p.TransfersBetween(0, 1)
	require.NoError(t, err)
	assert.Empty(t, legs)
}

func TestNoOpDurationPanics(t *testing.T) {
	p := NoOp{}
	assert.Panics(t, func() {
		_, _ = p.Duration(0, 1)
	})
}
