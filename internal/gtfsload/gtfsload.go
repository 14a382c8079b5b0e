// Package gtfsload adapts an already-parsed GTFS feed
// (github.com/patrickbr/gtfsparser) into the engine's PreprocessingInput
// and a transfer matrix — Supplemented Feature #6 (see SPEC_FULL.md).
//
// This is pure in-memory mapping of a feed the caller has already parsed
// and decided belongs to one service day; it is not the fetch/unzip/
// validate/merge pipeline, which stays out of scope per spec.md §1. It is
// grounded on LiamMartens-go-raptor's raptor_test.go, which builds the
// same stop/transfer/trip tables inline as test fixtures (including the
// parent/child station transfer expansion): this package promotes that
// loop into a reusable loader rather than leaving it duplicated per test.
package gtfsload

import (
	"math"
	"sort"
	"time"

	"github.com/patrickbr/gtfsparser"
	"github.com/patrickbr/gtfsparser/gtfs"

	"github.com/evanholt/transitraptor/internal/directconnections"
	"github.com/evanholt/transitraptor/internal/sliceiter"
	"github.com/evanholt/transitraptor/internal/transfers"
	"github.com/evanholt/transitraptor/internal/types"
)

// unreachableTransfer fills every cell of the transfer matrix that
// transfers.txt never mentions. It must be the true maximum time.Duration
// rather than merely "a long one" — Run's pruning arithmetic compares this
// against a tau difference that itself saturates at the same maximum when
// the target stop hasn't been reached yet (time.Time.Sub is documented to
// cap at the largest representable Duration instead of overflowing); a
// smaller sentinel would then look like an improvement over "unreached"
// and wrongly admit a transfer the feed never declared. See DESIGN.md.
const unreachableTransfer = time.Duration(math.MaxInt64)

// Options restricts and anchors ingestion of a feed.
type Options struct {
	// ServiceIDs restricts ingestion to trips whose calendar service id
	// is a member of this set. A nil or empty set loads every trip in the
	// feed, the right default for a feed already filtered down to one
	// active service (e.g. a single preprocessed day's extract).
	ServiceIDs map[string]bool

	// Day anchors the feed's seconds-since-midnight stop_times to real
	// timestamps: stop_time N seconds becomes Day plus N seconds. GTFS
	// allows times past 24:00:00 for trips that run past midnight, which
	// this addition handles without special-casing since it is just more
	// seconds added to Day. Defaults to the Unix epoch (UTC) if zero,
	// matching the convention the raptor package's own tests use for
	// fixture timestamps.
	Day time.Time
}

func (o Options) day() time.Time {
	if o.Day.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return o.Day
}

// IDs is the bidirectional mapping between a GTFS feed's string
// identifiers and the dense numeric identifiers the routing engine
// consumes, so a caller can translate a query expressed in GTFS stop ids
// into the engine's StopId space and translate answers back.
type IDs struct {
	StopByGTFS map[string]types.StopId
	GTFSByStop map[types.StopId]string
	TripByGTFS map[string]types.TripId
	GTFSByTrip map[types.TripId]string
}

// StopID translates a GTFS stop id into the dense StopId space.
func (ids *IDs) StopID(gtfsID string) (types.StopId, bool) {
	s, ok := ids.StopByGTFS[gtfsID]
	return s, ok
}

// Load converts feed into a PreprocessingInput plus a FixedMatrix built
// from transfers.txt (parent/child stations expanded into transfers
// between every pair of children, matching raptor_test.go's
// parent_child_stations_by_id loop), and the id mapping used to get there.
func Load(feed *gtfsparser.Feed, opts Options) (directconnections.PreprocessingInput, *transfers.FixedMatrix, *IDs, error) {
	ids := &IDs{
		StopByGTFS: make(map[string]types.StopId),
		GTFSByStop: make(map[types.StopId]string),
		TripByGTFS: make(map[string]types.TripId),
		GTFSByTrip: make(map[types.TripId]string),
	}

	// Rebuilt by Stop.Id rather than relied on as a map key directly,
	// matching raptor_test.go's own all_stops_by_id rebuild loop.
	stopsByID := make(map[string]*gtfs.Stop, len(feed.Stops))
	for _, stop := range feed.Stops {
		stopsByID[stop.Id] = stop
	}

	stopGTFSIDs := make([]string, 0, len(stopsByID))
	for id := range stopsByID {
		stopGTFSIDs = append(stopGTFSIDs, id)
	}
	sort.Strings(stopGTFSIDs)

	var input directconnections.PreprocessingInput
	for i, gid := range stopGTFSIDs {
		stop := stopsByID[gid]
		sid := types.StopId(i)
		ids.StopByGTFS[gid] = sid
		ids.GTFSByStop[sid] = gid
		input.Stops = append(input.Stops, directconnections.StopRecord{
			Stop: sid,
			Lat:  stop.Lat,
			Lon:  stop.Lon,
		})
	}

	parentChildren := make(map[string][]string)
	for gid, stop := range stopsByID {
		if stop.Parent_station != nil {
			parentChildren[stop.Parent_station.Id] = append(parentChildren[stop.Parent_station.Id], gid)
		}
	}

	n := len(stopGTFSIDs)
	matrix := make([][]time.Duration, n)
	for i := range matrix {
		row := make([]time.Duration, n)
		for j := range row {
			row[j] = unreachableTransfer
		}
		matrix[i] = row
	}

	for fromTo, transfer := range feed.Transfers {
		fromCandidates, fromHasChildren := parentChildren[fromTo.From_stop.Id]
		toCandidates, toHasChildren := parentChildren[fromTo.To_stop.Id]
		if !fromHasChildren {
			fromCandidates = []string{fromTo.From_stop.Id}
		}
		if !toHasChildren {
			toCandidates = []string{fromTo.To_stop.Id}
		}

		for _, fromGID := range fromCandidates {
			for _, toGID := range toCandidates {
				if fromGID == toGID {
					continue
				}
				fromID, ok := ids.StopByGTFS[fromGID]
				if !ok {
					continue
				}
				toID, ok := ids.StopByGTFS[toGID]
				if !ok {
					continue
				}
				matrix[fromID][toID] = time.Duration(transfer.Min_transfer_time) * time.Second
			}
		}
	}

	// Rebuilt by Trip.Id for the same reason stops are: raptor_test.go
	// never indexes feed.Trips by its range key either, only by the
	// fields on the trip value itself.
	tripsByID := make(map[string]*gtfs.Trip)
	for _, trip := range feed.Trips {
		if len(opts.ServiceIDs) > 0 && !opts.ServiceIDs[trip.Service.Id()] {
			continue
		}
		tripsByID[trip.Id] = trip
	}

	tripGTFSIDs := make([]string, 0, len(tripsByID))
	for id := range tripsByID {
		tripGTFSIDs = append(tripGTFSIDs, id)
	}
	sort.Strings(tripGTFSIDs)

	day := opts.day()

	for i, gid := range tripGTFSIDs {
		trip := tripsByID[gid]
		tid := types.TripId(i + 1)
		ids.TripByGTFS[gid] = tid
		ids.GTFSByTrip[tid] = gid
		input.Trips = append(input.Trips, directconnections.TripRecord{
			Trip:    tid,
			Service: types.OneOff(tid),
		})

		sorted := append([]gtfs.StopTime(nil), trip.StopTimes...)
		sort.Slice(sorted, func(a, b int) bool { return sorted[a].Sequence() < sorted[b].Sequence() })

		it := sliceiter.New(sorted, false)
		for it.HasNext() {
			st := it.Next()
			stopID, ok := ids.StopByGTFS[st.Stop().Id]
			if !ok {
				continue
			}
			input.StopTimes = append(input.StopTimes, directconnections.StopTimeRecord{
				Trip:      tid,
				Stop:      stopID,
				Sequence:  types.SeqNum(st.Sequence()),
				Arrival:   day.Add(time.Duration(st.Arrival_time().SecondsSinceMidnight()) * time.Second),
				Departure: day.Add(time.Duration(st.Departure_time().SecondsSinceMidnight()) * time.Second),
			})
		}
	}

	return input, transfers.NewFixedMatrix(matrix), ids, nil
}
