package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/stop-router/config"
	"github.com/theoremus-urban-solutions/stop-router/formatter"
	"github.com/theoremus-urban-solutions/stop-router/graph"
	"github.com/theoremus-urban-solutions/stop-router/gtfs"
	"github.com/theoremus-urban-solutions/stop-router/gtfsrt"
	"github.com/theoremus-urban-solutions/stop-router/planner"
)

// app is one configured planner plus the output builder
type app struct {
	planner *planner.Planner
	rb      *formatter.ResponseBuilder
}

func newApp(ctx context.Context, cfg *config.AppConfig, rb *formatter.ResponseBuilder) (*app, error) {
	feed, err := loadFeed(ctx, cfg.Feed)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}

	policy, err := graph.ParsePolicy(cfg.Routing.Policy)
	if err != nil {
		return nil, err
	}
	opts := []planner.Option{
		planner.WithNameRules(gtfs.NameRules{
			UpperCase:      cfg.Search.UpperCase,
			DirectionFlags: cfg.Search.DirectionFlags,
		}),
		planner.WithCostRules(gtfs.CostRules{
			Hop:                  cfg.Costs.Hop,
			Transfer:             cfg.Costs.Transfer,
			TimedTransferDivisor: cfg.Costs.TimedTransferDivisor,
		}),
		planner.WithPolicy(policy),
		planner.WithCacheSize(cfg.Routing.CacheSize),
	}

	if cfg.Realtime.TripUpdatesURL != "" || cfg.Realtime.ServiceAlertsURL != "" {
		client := gtfsrt.NewClient(time.Duration(cfg.Realtime.TimeoutMS) * time.Millisecond)
		d, err := client.Load(ctx, cfg.Realtime.TripUpdatesURL, cfg.Realtime.ServiceAlertsURL, time.Now().Unix())
		if err != nil {
			return nil, fmt.Errorf("load realtime: %w", err)
		}
		log.Info().Int("alerts", len(d.Alerts())).Bool("empty", d.Empty()).Msg("realtime disruptions loaded")
		opts = append(opts, planner.WithExclusions(d))
	}

	p, err := planner.New(feed, opts...)
	if err != nil {
		return nil, err
	}
	return &app{planner: p, rb: rb}, nil
}

// loadFeed prefers a readable gob cache and writes one after a fresh parse
func loadFeed(ctx context.Context, fc config.FeedConfig) (*gtfs.Feed, error) {
	if fc.CachePath != "" {
		if _, err := os.Stat(fc.CachePath); err == nil {
			feed, err := gtfs.LoadFeedFromFile(fc.CachePath)
			if err == nil {
				log.Info().Str("path", fc.CachePath).Msg("feed loaded from cache")
				return feed, nil
			}
			log.Warn().Err(err).Str("path", fc.CachePath).Msg("feed cache unreadable, reparsing")
		}
	}

	feed, err := gtfs.LoadFromPath(ctx, fc.Path)
	if err != nil {
		return nil, err
	}
	if fc.CachePath != "" {
		if err := gtfs.SaveFeedToFile(feed, fc.CachePath); err != nil {
			log.Warn().Err(err).Str("path", fc.CachePath).Msg("failed to write feed cache")
		}
	}
	return feed, nil
}

func (a *app) dispatch(call string, o *options) ([]byte, error) {
	switch call {
	case "route":
		if o.from == "" || o.to == "" {
			return nil, fmt.Errorf("route needs -from and -to")
		}
		r, err := a.planner.Route(o.from, o.to)
		if err != nil {
			return nil, err
		}
		return a.rb.Route(r)
	case "search":
		ms, err := a.planner.SearchStops(o.query)
		if err != nil {
			return nil, err
		}
		return a.rb.Matches(ms)
	case "match":
		ms, err := a.planner.MatchStops(o.query)
		if err != nil {
			return nil, err
		}
		return a.rb.Matches(ms)
	case "prefix":
		name, err := a.planner.LongestPrefix(o.query)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return a.rb.Matches(nil)
		}
		ms, err := a.planner.SearchStops(name)
		if err != nil {
			return nil, err
		}
		return a.rb.Matches(ms[:1])
	case "arrivals":
		as, err := a.planner.Arrivals(o.at)
		if err != nil {
			return nil, err
		}
		return a.rb.Arrivals(as)
	}
	return nil, fmt.Errorf("unknown call %q", call)
}
