package planner

import (
	"github.com/theoremus-urban-solutions/stop-router/graph"
	"github.com/theoremus-urban-solutions/stop-router/gtfs"
)

// Options configures a Planner
type Options struct {
	Names      gtfs.NameRules
	Costs      gtfs.CostRules
	Policy     graph.Policy
	CacheSize  int // 0 disables the route cache
	Exclusions gtfs.Exclusions
}

// Option mutates Options
type Option func(*Options)

// DefaultOptions returns the default name and cost rules, FinalizeOnPop and
// a 256 entry route cache
func DefaultOptions() Options {
	return Options{
		Names:     gtfs.DefaultNameRules(),
		Costs:     gtfs.DefaultCostRules(),
		Policy:    graph.FinalizeOnPop,
		CacheSize: 256,
	}
}

// WithNameRules sets how stop names are normalized for search
func WithNameRules(r gtfs.NameRules) Option {
	return func(o *Options) { o.Names = r }
}

// WithCostRules sets the edge weight rules
func WithCostRules(r gtfs.CostRules) Option {
	return func(o *Options) { o.Costs = r }
}

// WithPolicy selects the shortest-path relaxation policy
func WithPolicy(p graph.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithCacheSize bounds the route cache. Negative sizes are treated as 0.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.CacheSize = n
	}
}

// WithExclusions removes closed stops and skipped calls from the network
func WithExclusions(ex gtfs.Exclusions) Option {
	return func(o *Options) { o.Exclusions = ex }
}
