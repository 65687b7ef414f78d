/*
Package planner composes the stop-name trie and the routing graph built from
one GTFS feed and answers the router's queries.

	p, err := planner.New(feed, planner.WithPolicy(graph.FirstEnqueueWins))
	matches, _ := p.SearchStops("hastings")
	route, err := p.Route("Main St Station", "Joyce Station")

Names are resolved case-insensitively against the raw stop_name first and
the normalized name second. Route answers are kept in an LRU keyed by the
resolved stop ids.
*/
package planner
