package transfers

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// FixedMatrix returns precalculated, hard-coded transfer durations from a
// lookup table instead of computing them. Useful for testing or when
// transfer times are already known. Because it is a plain table, it allows
// asymmetric durations (start->end differs from end->start), matching
// original_source/routing/src/transfers/fixed_time.rs.
type FixedMatrix struct {
	durations [][]time.Duration // square, indexed [start][end]
}

// NewFixedMatrix wraps a square NxN duration matrix. The caller owns the
// invariant that every row has the same length as the number of rows.
func NewFixedMatrix(durations [][]time.Duration) *FixedMatrix {
	return &FixedMatrix{durations: durations}
}

func (p *FixedMatrix) lookup(start, end types.StopId) (time.Duration, bool) {
	si, ei := int(start), int(end)
	if si < 0 || si >= len(p.durations) {
		return 0, false
	}
	row := p.durations[si]
	if ei < 0 || ei >= len(row) {
		return 0, false
	}
	return row[ei], true
}

func (p *FixedMatrix) LowerBoundDuration(start, end types.StopId) (time.Duration, error) {
	return p.Duration(start, end)
}

func (p *FixedMatrix) Duration(start, end types.StopId) (time.Duration, error) {
	d, ok := p.lookup(start, end)
	if !ok {
		return 0, ErrStopNotFound
	}
	return d, nil
}

func (p *FixedMatrix) TransfersFrom(start types.StopId) []types.StopId {
	out := make([]types.StopId, 0, len(p.durations))
	for i := range p.durations {
		id := types.StopId(i)
		if id != start {
			out = append(out, id)
		}
	}
	return out
}

func (p *FixedMatrix) TransfersBetween(start, end types.StopId) ([]Leg, error) {
	d, err := p.Duration(start, end)
	if err != nil {
		return nil, err
	}
	return []Leg{{Start: start, End: end, Duration: d}}, nil
}
