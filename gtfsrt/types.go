package gtfsrt

// RTAlert is the part of a GTFS-RT Alert the router reads
type RTAlert struct {
	ID       string   `json:"id"`
	Header   string   `json:"header,omitempty"`
	Effect   string   `json:"effect"`
	Start    int64    `json:"start,omitempty"` // 0 when open
	End      int64    `json:"end,omitempty"`   // 0 when open
	RouteIDs []string `json:"route_ids,omitempty"`
	StopIDs  []string `json:"stop_ids,omitempty"`
	TripIDs  []string `json:"trip_ids,omitempty"`
}

// ActiveAt reports whether the alert window contains the unix time ts.
// A zero ts matches every alert.
func (a RTAlert) ActiveAt(ts int64) bool {
	if ts == 0 {
		return true
	}
	if a.Start != 0 && ts < a.Start {
		return false
	}
	if a.End != 0 && ts > a.End {
		return false
	}
	return true
}
