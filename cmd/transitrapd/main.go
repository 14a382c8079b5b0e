// Command transitrapd is the RAPTOR timetable routing service:
// preprocesses a GTFS feed once at startup into an immutable raptor.Index
// and serves spec.md §6's query API over it. Grounded on the pack's
// general preference for a cobra root command reading config via viper
// (internal/config), the Go-idiomatic analogue of original_source's
// clap-based bootstrap_config.rs.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/patrickbr/gtfsparser"
	"github.com/spf13/cobra"

	"github.com/evanholt/transitraptor/internal/config"
	"github.com/evanholt/transitraptor/internal/directconnections"
	"github.com/evanholt/transitraptor/internal/gtfsload"
	"github.com/evanholt/transitraptor/internal/httpapi"
	"github.com/evanholt/transitraptor/internal/logging"
	"github.com/evanholt/transitraptor/internal/raptor"
	"github.com/evanholt/transitraptor/internal/transfers"
	"github.com/evanholt/transitraptor/internal/types"
)

var (
	gtfsPath  string
	serviceID string
)

func main() {
	root := &cobra.Command{
		Use:   "transitrapd",
		Short: "RAPTOR timetable routing service",
		RunE:  run,
	}
	root.PersistentFlags().StringVar(&gtfsPath, "gtfs", "", "path to a GTFS feed (zip or directory) to preprocess at startup")
	root.PersistentFlags().StringVar(&serviceID, "service-id", "", "restrict ingestion to this GTFS calendar service id (all trips if empty)")
	root.MarkPersistentFlagRequired("gtfs")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	feed := gtfsparser.NewFeed()
	if err := feed.Parse(gtfsPath); err != nil {
		return fmt.Errorf("parse gtfs feed: %w", err)
	}

	opts := gtfsload.Options{}
	if serviceID != "" {
		opts.ServiceIDs = map[string]bool{serviceID: true}
	}

	input, fixedMatrix, ids, err := gtfsload.Load(feed, opts)
	if err != nil {
		return fmt.Errorf("load gtfs feed: %w", err)
	}
	logger.Info("loaded gtfs feed", "stops", len(input.Stops), "trips", len(input.Trips), "stop_times", len(input.StopTimes))

	dc, err := directconnections.Build(input)
	if err != nil {
		return fmt.Errorf("build direct connections: %w", err)
	}
	logger.Info("built direct connections", "lines", countLines(dc))

	provider, err := buildTransferProvider(cfg.Transfers, input, fixedMatrix)
	if err != nil {
		return fmt.Errorf("build transfer provider: %w", err)
	}

	stops := make([]types.StopId, len(input.Stops))
	for i, st := range input.Stops {
		stops[i] = st.Stop
	}

	idx, err := raptor.Build(stops, dc, provider)
	if err != nil {
		return fmt.Errorf("build raptor index: %w", err)
	}
	logger.Info("raptor index ready", "stops", idx.NumStops(), "known_gtfs_stops", len(ids.GTFSByStop))

	server := httpapi.NewServer(idx, logger)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	logger.Info("listening", "addr", cfg.Server.Addr)
	return httpServer.ListenAndServe()
}

func countLines(dc directconnections.DirectConnections) int {
	seen := make(map[types.LineId]bool)
	for _, v := range dc.Lines {
		seen[v.Line] = true
	}
	return len(seen)
}

func buildTransferProvider(cfg config.TransfersConfig, input directconnections.PreprocessingInput, fixedMatrix *transfers.FixedMatrix) (raptor.TransferProvider, error) {
	switch cfg.Provider {
	case "none":
		return transfers.NoOp{}, nil
	case "fixed-matrix":
		return fixedMatrix, nil
	default:
		coords := make([]transfers.StopCoord, len(input.Stops))
		for _, s := range input.Stops {
			coords[int(s.Stop)] = transfers.StopCoord{Lat: s.Lat, Lon: s.Lon}
		}
		return transfers.NewCrowFly(coords, cfg.WalkingSpeedKmh, cfg.MaxWalkingDuration()), nil
	}
}
