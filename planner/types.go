package planner

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/stop-router/gtfs"
)

// Sentinel errors
var (
	ErrStopNotFound  = errors.New("stop not found")
	ErrStartNotFound = fmt.Errorf("start %w", ErrStopNotFound)
	ErrEndNotFound   = fmt.Errorf("end %w", ErrStopNotFound)
	ErrEmptyQuery    = errors.New("planner: empty query")
)

// StopMatch is one normalized name found by a search and the stops carrying it
type StopMatch struct {
	Name  string      `json:"name"`
	Stops []gtfs.Stop `json:"stops"`
}

// Leg is one edge of a route
type Leg struct {
	FromIndex  int     `json:"from_index"`
	ToIndex    int     `json:"to_index"`
	FromStopID string  `json:"from_stop_id"`
	ToStopID   string  `json:"to_stop_id"`
	FromName   string  `json:"from_name"`
	ToName     string  `json:"to_name"`
	Cost       float64 `json:"cost"`
}

// Route is the answer to a routing query. Reachable is false when no path
// exists, in which case Legs is empty and Total is 0.
type Route struct {
	From      gtfs.Stop `json:"from"`
	To        gtfs.Stop `json:"to"`
	Reachable bool      `json:"reachable"`
	Legs      []Leg     `json:"legs"`
	Total     float64   `json:"total_cost"`
}

// clone copies r so cached answers never share Legs with callers
func (r *Route) clone() *Route {
	c := *r
	if r.Legs != nil {
		c.Legs = append([]Leg(nil), r.Legs...)
	}
	return &c
}

// StopIDs returns the visited stops in order, or nil when unreachable
func (r *Route) StopIDs() []string {
	if !r.Reachable {
		return nil
	}
	if len(r.Legs) == 0 {
		return []string{r.From.ID}
	}
	out := make([]string, 0, len(r.Legs)+1)
	out = append(out, r.Legs[0].FromStopID)
	for _, l := range r.Legs {
		out = append(out, l.ToStopID)
	}
	return out
}

// Arrival is a trip arriving somewhere at the requested time
type Arrival struct {
	TripID string      `json:"trip_id"`
	At     []gtfs.Stop `json:"arriving_at"`
	Stops  []gtfs.Stop `json:"stops"`
}
