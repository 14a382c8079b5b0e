package directconnections

import (
	"time"

	"github.com/evanholt/transitraptor/internal/types"
)

// CommonLine is one line that passes through both `from` and `to`, in that
// order, carrying the sequence positions needed to tell a forward ride
// apart from a backward one.
type CommonLine struct {
	Line          types.LineId
	FromSeqNum    types.SeqNum
	ToSeqNum      types.SeqNum
}

// QueryDirect returns every line connecting from to to without a transfer,
// in the correct direction (from's sequence position strictly precedes
// to's), matching original_source's query_direct.
func (dc DirectConnections) QueryDirect(from, to types.StopId) []CommonLine {
	fromLines := make(map[types.LineId]types.SeqNum, len(dc.StopIncidence[from]))
	for _, inc := range dc.StopIncidence[from] {
		fromLines[inc.Line] = inc.SeqNum
	}

	var out []CommonLine
	for _, inc := range dc.StopIncidence[to] {
		fromSeq, ok := fromLines[inc.Line]
		if !ok {
			continue
		}
		if fromSeq < inc.SeqNum {
			out = append(out, CommonLine{Line: inc.Line, FromSeqNum: fromSeq, ToSeqNum: inc.SeqNum})
		}
	}
	return out
}

// QueryDirectEarliestAfter returns the earliest direct connection from to
// to departing at or after departure, or false if none exists. Matches
// original_source's query_direct_earliest_after.
func (dc DirectConnections) QueryDirectEarliestAfter(from, to types.StopId, departure time.Time) (StopVisit, bool) {
	common := dc.QueryDirect(from, to)
	if len(common) == 0 {
		return StopVisit{}, false
	}
	wanted := make(map[types.LineId]bool, len(common))
	for _, c := range common {
		wanted[c.Line] = true
	}

	var best StopVisit
	found := false
	for _, v := range dc.Lines {
		if !wanted[v.Line] || v.Stop != from {
			continue
		}
		if v.Departure.Before(departure) {
			continue
		}
		if !found || v.Departure.Before(best.Departure) {
			best = v
			found = true
		}
	}
	return best, found
}
