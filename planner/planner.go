package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/stop-router/graph"
	"github.com/theoremus-urban-solutions/stop-router/gtfs"
	"github.com/theoremus-urban-solutions/stop-router/tst"
)

// Planner answers stop searches and routing queries over one feed.
// It is not safe for concurrent use.
type Planner struct {
	feed    *gtfs.Feed
	opts    Options
	names   *tst.Trie[[]int] // normalized name -> indices into feed.Stops
	byName  map[string]int   // lower-cased raw name -> first stop index
	network *gtfs.Network
	routes  gcache.Cache // nil when disabled
}

// New builds the trie and the network from feed
func New(feed *gtfs.Feed, opts ...Option) (*Planner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Planner{
		feed:   feed,
		opts:   o,
		names:  tst.New[[]int](),
		byName: make(map[string]int, len(feed.Stops)),
	}
	if err := p.indexNames(); err != nil {
		return nil, err
	}

	nw, err := feed.BuildNetwork(o.Costs, o.Exclusions)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	p.network = nw

	if o.CacheSize > 0 {
		p.routes = gcache.New(o.CacheSize).LRU().Build()
	}

	log.Info().
		Int("names", p.names.Len()).
		Int("stops", len(feed.Stops)).
		Str("policy", o.Policy.String()).
		Int("cache_size", o.CacheSize).
		Msg("planner ready")
	return p, nil
}

// indexNames inserts every stop under its normalized name in file order
func (p *Planner) indexNames() error {
	for i, s := range p.feed.Stops {
		raw := strings.ToLower(strings.TrimSpace(s.Name))
		if _, seen := p.byName[raw]; !seen {
			p.byName[raw] = i
		}

		key := p.opts.Names.Normalize(s.Name)
		if key == "" {
			continue
		}
		ids, _, err := p.names.Get(key)
		if errors.Is(err, tst.ErrInvalidKey) {
			log.Warn().Str("stop_id", s.ID).Msg("stop name is not valid UTF-8, left out of search")
			continue
		}
		if err != nil {
			return err
		}
		if err := p.names.Put(key, append(ids, i)); err != nil {
			return err
		}
	}
	return nil
}

// Network exposes the routing graph
func (p *Planner) Network() *gtfs.Network { return p.network }

// Feed returns the feed the planner was built from
func (p *Planner) Feed() *gtfs.Feed { return p.feed }

func (p *Planner) matches(keys []string) []StopMatch {
	if len(keys) == 0 {
		return nil
	}
	out := make([]StopMatch, 0, len(keys))
	for _, k := range keys {
		idx, _, _ := p.names.Get(k)
		m := StopMatch{Name: k, Stops: make([]gtfs.Stop, len(idx))}
		for j, i := range idx {
			m.Stops[j] = p.feed.Stops[i]
		}
		out = append(out, m)
	}
	return out
}

// SearchStops returns the stops whose normalized name starts with prefix,
// ordered by name
func (p *Planner) SearchStops(prefix string) ([]StopMatch, error) {
	q := p.opts.Names.NormalizeQuery(prefix)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	keys, err := p.names.KeysWithPrefix(q)
	if err != nil {
		return nil, err
	}
	return p.matches(keys), nil
}

// MatchStops returns the stops whose normalized name matches pattern, where
// '.' stands for any one character
func (p *Planner) MatchStops(pattern string) ([]StopMatch, error) {
	q := p.opts.Names.NormalizeQuery(pattern)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	return p.matches(p.names.KeysThatMatch(q)), nil
}

// LongestPrefix returns the longest normalized stop name that is a prefix of
// query, or ""
func (p *Planner) LongestPrefix(query string) (string, error) {
	q := p.opts.Names.NormalizeQuery(query)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return p.names.LongestPrefixOf(q)
}

// resolve finds a stop by raw name, then by normalized name
func (p *Planner) resolve(name string) (int, bool) {
	if i, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return i, true
	}
	key := p.opts.Names.Normalize(name)
	if key == "" {
		return 0, false
	}
	idx, ok, _ := p.names.Get(key)
	if !ok || len(idx) == 0 {
		return 0, false
	}
	return idx[0], true
}

// Route finds the lowest-cost path between two stops given by name. When a
// name is shared by several stops the first one in stops.txt is used.
func (p *Planner) Route(startName, endName string) (*Route, error) {
	from, okFrom := p.resolve(startName)
	to, okTo := p.resolve(endName)
	switch {
	case !okFrom && !okTo:
		return nil, fmt.Errorf("%w: %q; %w: %q", ErrStartNotFound, startName, ErrEndNotFound, endName)
	case !okFrom:
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startName)
	case !okTo:
		return nil, fmt.Errorf("%w: %q", ErrEndNotFound, endName)
	}
	return p.RouteByID(p.feed.Stops[from].ID, p.feed.Stops[to].ID)
}

func routeKey(fromID, toID string) string { return fromID + "\x00" + toID }

// RouteByID finds the lowest-cost path between two stop ids
func (p *Planner) RouteByID(fromID, toID string) (*Route, error) {
	u, okFrom := p.network.Vertex(fromID)
	v, okTo := p.network.Vertex(toID)
	switch {
	case !okFrom && !okTo:
		return nil, fmt.Errorf("%w: %q; %w: %q", ErrStartNotFound, fromID, ErrEndNotFound, toID)
	case !okFrom:
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, fromID)
	case !okTo:
		return nil, fmt.Errorf("%w: %q", ErrEndNotFound, toID)
	}

	key := routeKey(fromID, toID)
	if p.routes != nil {
		if cached, err := p.routes.Get(key); err == nil {
			if r, ok := cached.(*Route); ok {
				log.Debug().Str("from", fromID).Str("to", toID).Msg("route cache hit")
				return r.clone(), nil
			}
		}
	}

	path, err := p.network.Graph.ShortestPath(u, v, graph.WithPolicy(p.opts.Policy))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	r := p.toRoute(u, v, path)

	if p.routes != nil {
		_ = p.routes.Set(key, r.clone())
	}
	return r, nil
}

func (p *Planner) toRoute(u, v int, path *graph.Path) *Route {
	r := &Route{
		From: p.feed.Stops[u],
		To:   p.feed.Stops[v],
	}
	if path == nil {
		return r
	}
	r.Reachable = true
	r.Total = path.Total
	r.Legs = make([]Leg, len(path.Steps))
	for i, s := range path.Steps {
		r.Legs[i] = Leg{
			FromIndex:  s.From,
			ToIndex:    s.To,
			FromStopID: p.feed.Stops[s.From].ID,
			ToStopID:   p.feed.Stops[s.To].ID,
			FromName:   p.feed.Stops[s.From].Name,
			ToName:     p.feed.Stops[s.To].Name,
			Cost:       s.Cost,
		}
	}
	return r
}

// Arrivals lists the trips arriving somewhere at hhmmss
func (p *Planner) Arrivals(hhmmss string) ([]Arrival, error) {
	trips, err := p.feed.TripsByArrivalTime(hhmmss)
	if err != nil {
		return nil, err
	}
	out := make([]Arrival, len(trips))
	for i, t := range trips {
		out[i] = Arrival{TripID: t.TripID, At: p.stops(t.At), Stops: p.stops(t.StopIDs)}
	}
	return out, nil
}

func (p *Planner) stops(ids []string) []gtfs.Stop {
	out := make([]gtfs.Stop, 0, len(ids))
	for _, id := range ids {
		if s, ok := p.feed.GetStop(id); ok {
			out = append(out, s)
		} else {
			out = append(out, gtfs.Stop{ID: id})
		}
	}
	return out
}
