package formatter

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/stop-router/gtfs"
	"github.com/theoremus-urban-solutions/stop-router/planner"
)

func routeText(r *planner.Route) []byte {
	var b strings.Builder
	if !r.Reachable {
		fmt.Fprintf(&b, "No path route exists between %s and %s\n", r.From.Name, r.To.Name)
		return []byte(b.String())
	}
	for _, l := range r.Legs {
		fmt.Fprintf(&b, "from index %d to index %d with cost of %s  (%s %s -> %s %s)\n",
			l.FromIndex, l.ToIndex, formatCost(l.Cost), l.FromStopID, l.FromName, l.ToStopID, l.ToName)
	}
	fmt.Fprintf(&b, "total cost: %s\n", formatCost(r.Total))
	return []byte(b.String())
}

func matchesText(ms []planner.StopMatch) []byte {
	if len(ms) == 0 {
		return []byte("No results have been found\n")
	}
	var b strings.Builder
	for _, m := range ms {
		ids := make([]string, len(m.Stops))
		for i, s := range m.Stops {
			ids[i] = s.ID
		}
		fmt.Fprintf(&b, "%s\t%s\n", m.Name, strings.Join(ids, ","))
	}
	return []byte(b.String())
}

func stopNames(stops []gtfs.Stop) string {
	names := make([]string, len(stops))
	for i, s := range stops {
		names[i] = s.Name
		if names[i] == "" {
			names[i] = s.ID
		}
	}
	return strings.Join(names, " -> ")
}

func arrivalsText(as []planner.Arrival) []byte {
	if len(as) == 0 {
		return []byte("No trips exist with this arrival time\n")
	}
	var b strings.Builder
	for _, a := range as {
		at := make([]string, len(a.At))
		for i, s := range a.At {
			at[i] = s.Name
		}
		fmt.Fprintf(&b, "trip %s arrives at %s\n  %s\n", a.TripID, strings.Join(at, ", "), stopNames(a.Stops))
	}
	return []byte(b.String())
}
