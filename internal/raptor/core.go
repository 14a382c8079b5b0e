package raptor

import (
	"errors"
	"time"

	"github.com/evanholt/transitraptor/internal/transfers"
	"github.com/evanholt/transitraptor/internal/types"
)

// queueEntry is one (line, boarding stop) pair scanned in round k's
// second stage.
type queueEntry struct {
	Line types.LineId
	Stop types.StopId
}

// buildQueue collects, for every marked stop, each line serving it, then
// keeps only the earliest (lowest sequence number) marked stop per line —
// boarding there covers every later stop on the same line in one scan.
// Matches original_source's build_queue.
func (idx *Index) buildQueue(markedStops map[types.StopId]struct{}) map[queueEntry]struct{} {
	queue := make(map[queueEntry]struct{})
	bestSeqOnLine := make(map[types.LineId]types.SeqNum)
	stopOnLine := make(map[types.LineId]types.StopId)

	for stopA := range markedStops {
		for _, ls := range idx.LinesByStop[stopA] {
			if best, ok := bestSeqOnLine[ls.Line]; !ok || ls.SeqNum < best {
				bestSeqOnLine[ls.Line] = ls.SeqNum
				stopOnLine[ls.Line] = stopA
			}
		}
	}

	for line, stop := range stopOnLine {
		queue[queueEntry{Line: line, Stop: stop}] = struct{}{}
	}
	return queue
}

// Run executes the RAPTOR round loop described in spec.md §4.G, starting
// at start and departing no earlier than departure. If target is non-nil,
// its τ* is used for target pruning during line scanning (spec's "local
// and target pruning"). Grounded on original_source's RaptorAlgorithm::run.
func (idx *Index) Run(start types.StopId, target *types.StopId, departure time.Time) (*State, error) {
	state := InitState(idx.NumStops(), start, departure)
	marked := map[types.StopId]struct{}{start: {}}

	for len(marked) > 0 {
		state.NewRound()

		queue := idx.buildQueue(marked)
		marked = make(map[types.StopId]struct{})

		// SECOND STAGE: scan lines.
		for entry := range queue {
			var boardingStop *types.StopId
			var trip *types.TripId

			for _, bStop := range idx.StopsOnLineAfter(entry.Line, entry.Stop) {
				if trip != nil {
					bArrival, ok := idx.Arrivals[tripStop{Trip: *trip, Stop: bStop}]
					if !ok {
						bArrival = infinity
					}
					bestBArrival := state.BestArrival(bStop)
					bestTargetArrival := infinity
					if target != nil {
						bestTargetArrival = state.BestArrival(*target)
					}

					if bArrival.Before(minTime(bestBArrival, bestTargetArrival)) {
						boardingDeparture, ok := idx.Departures[tripStop{Trip: *trip, Stop: *boardingStop}]
						if !ok {
							boardingDeparture = infinity
						}
						state.SetRide(*boardingStop, bStop, boardingDeparture, bArrival, *trip)
						marked[bStop] = struct{}{}
					}
				}

				var bDeparture time.Time
				if trip != nil {
					if d, ok := idx.Departures[tripStop{Trip: *trip, Stop: bStop}]; ok {
						bDeparture = d
					} else {
						bDeparture = infinity
					}
				} else {
					bDeparture = infinity
				}

				prevBArrival := state.PreviousTau(bStop)

				if !prevBArrival.After(bDeparture) {
					if nextTrip, ok := idx.EarliestTrip(entry.Line, bStop, prevBArrival); ok {
						trip = &nextTrip
						stop := bStop
						boardingStop = &stop
					}
				}
			}
		}

		// THIRD STAGE: scan transfers. Iterate over a snapshot of the
		// stops marked by line-scanning; transfer targets are added to
		// the live `marked` set (not the snapshot) so they seed next
		// round's queue without also being scanned for transfers this
		// round, matching original_source's marked_stops.clone() split.
		provider := idx.TransferProvider
		lineMarked := make([]types.StopId, 0, len(marked))
		for stop := range marked {
			lineMarked = append(lineMarked, stop)
		}
		for _, start := range lineMarked {
			for _, end := range provider.TransfersFrom(start) {
				maxDuration := state.Tau(end).Sub(state.Tau(start))

				lowerBound, err := provider.LowerBoundDuration(start, end)
				if err != nil {
					if errors.Is(err, transfers.ErrOutOfReach) {
						continue
					}
					return nil, err
				}
				if lowerBound < maxDuration {
					actual, err := provider.Duration(start, end)
					if err != nil {
						if errors.Is(err, transfers.ErrOutOfReach) {
							continue
						}
						return nil, err
					}
					if actual < maxDuration {
						state.SetTransfer(start, end, actual)
					}
				}

				marked[end] = struct{}{}
			}
		}
	}

	return state, nil
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
