// Package httpapi is the plain query API (Supplemented Feature #7):
// GET /api/v1/routing. spec.md §6 treats the server as "out of scope" only
// for visualization (the original's visualization/ crate); the query
// facade itself is in scope and is implemented here with chi, grounded on
// KhalidEchchahid-transit-app/backend's main.go router setup
// (chi + go-chi/chi/v5/middleware + rs/cors), generalized from that
// repo's Postgres-backed handler to calling straight into internal/raptor's
// in-memory Index.
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/evanholt/transitraptor/internal/logging"
	"github.com/evanholt/transitraptor/internal/metrics"
	"github.com/evanholt/transitraptor/internal/raptor"
	"github.com/evanholt/transitraptor/internal/types"
)

// Server answers HTTP routing queries against one immutable *raptor.Index,
// matching spec.md §5's "the RAPTOR index is immutable after construction
// and shared read-only across queries (no locking required)".
type Server struct {
	idx    *raptor.Index
	logger *slog.Logger
}

// NewServer builds a Server over idx. A nil logger defaults to a discard
// logger (see internal/logging), so embedding this package doesn't force
// callers to wire one up.
func NewServer(idx *raptor.Index, logger *slog.Logger) *Server {
	return &Server{idx: idx, logger: logging.OrDefault(logger)}
}

// Router builds the chi router: recovery, timeout and metrics middleware, permissive
// CORS on the query endpoints (matching transit-app's cors.Options, which
// opens every origin for a read-only public query API), and the
// /api/v1/routing family of routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/routing", s.handleEarliestArrival)
		r.Get("/routing/range", s.handleRange)
		r.Get("/routing/latest-departure", s.handleLatestDeparture)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleEarliestArrival answers spec.md §4.J's (EarliestArrival) x
// (Single|Multiple|All). Query params: start=s:<n> (required),
// earliest_departure=RFC3339 (required), target=s:<n> (Single),
// targets=s:<n>,s:<m> (Multiple, Supplemented Feature #2), or neither
// (All).
func (s *Server) handleEarliestArrival(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	startStop, err := parseStopID(q.Get("start"))
	if err != nil {
		errBadRequest(w, err.Error())
		return
	}
	departure, err := time.Parse(time.RFC3339, q.Get("earliest_departure"))
	if err != nil {
		errBadRequest(w, "earliest_departure must be RFC3339: "+err.Error())
		return
	}

	switch {
	case q.Get("target") != "":
		target, err := parseStopID(q.Get("target"))
		if err != nil {
			errBadRequest(w, err.Error())
			return
		}
		j, err := s.idx.QueryEarliestArrival(startStop, target, departure)
		metrics.ObserveQuery("earliest_arrival", start, err)
		if err != nil {
			writeQueryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, EarliestArrivalResponse{Journey: toWireJourney(j)})

	case q.Get("targets") != "":
		targets, err := parseStopIDList(q.Get("targets"))
		if err != nil {
			errBadRequest(w, err.Error())
			return
		}
		journeys, err := s.idx.QueryEarliestArrivalMultiple(startStop, targets, departure)
		metrics.ObserveQuery("earliest_arrival_multiple", start, err)
		if err != nil {
			writeQueryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MultipleResponse{Journeys: toWireJourneys(journeys)})

	default:
		journeys, err := s.idx.QueryEarliestArrivalAll(startStop, departure)
		metrics.ObserveQuery("earliest_arrival_all", start, err)
		if err != nil {
			writeQueryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MultipleResponse{Journeys: toWireJourneys(journeys)})
	}
}

// handleRange answers (Range) x (Single|All). Query params:
// start=s:<n>, earliest_departure=unix-seconds, range=seconds (all
// required), target=s:<n> (Single) or omitted (All), per spec.md §6.
func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	startStop, err := parseStopID(q.Get("start"))
	if err != nil {
		errBadRequest(w, err.Error())
		return
	}
	departure, err := parseUnixSeconds(q.Get("earliest_departure"))
	if err != nil {
		errBadRequest(w, err.Error())
		return
	}
	window, err := parseSecondsDuration(q.Get("range"))
	if err != nil {
		errBadRequest(w, err.Error())
		return
	}

	if target := q.Get("target"); target != "" {
		targetStop, err := parseStopID(target)
		if err != nil {
			errBadRequest(w, err.Error())
			return
		}
		journeys, err := s.idx.QueryRange(startStop, targetStop, departure, window)
		metrics.ObserveQuery("range", start, err)
		if err != nil {
			writeQueryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RangeResponse{Journeys: toWireJourneys(journeys)})
		return
	}

	journeys, err := s.idx.QueryRangeAll(startStop, departure, window)
	metrics.ObserveQuery("range_all", start, err)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RangeResponse{Journeys: toWireJourneys(journeys)})
}

// handleLatestDeparture answers Supplemented Feature #1: "what's the
// latest I can leave start and still arrive at target by
// latest_arrival?" Query params: start=s:<n>, target=s:<n>,
// latest_arrival=RFC3339.
func (s *Server) handleLatestDeparture(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	startStop, err := parseStopID(q.Get("start"))
	if err != nil {
		errBadRequest(w, err.Error())
		return
	}
	targetStop, err := parseStopID(q.Get("target"))
	if err != nil {
		errBadRequest(w, err.Error())
		return
	}
	latestArrival, err := time.Parse(time.RFC3339, q.Get("latest_arrival"))
	if err != nil {
		errBadRequest(w, "latest_arrival must be RFC3339: "+err.Error())
		return
	}

	j, err := s.idx.LatestDeparture(startStop, targetStop, latestArrival)
	metrics.ObserveQuery("latest_departure", start, err)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EarliestArrivalResponse{Journey: toWireJourney(j)})
}

func toWireJourneys(journeys []raptor.Journey) []WireJourney {
	out := make([]WireJourney, 0, len(journeys))
	for _, j := range journeys {
		out = append(out, toWireJourney(j))
	}
	return out
}

func parseStopIDList(csv string) ([]types.StopId, error) {
	parts := strings.Split(csv, ",")
	out := make([]types.StopId, 0, len(parts))
	for _, p := range parts {
		id, err := parseStopID(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func parseUnixSeconds(s string) (time.Time, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0).UTC(), nil
}

func parseSecondsDuration(s string) (time.Duration, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
