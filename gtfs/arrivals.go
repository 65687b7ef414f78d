package gtfs

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/theoremus-urban-solutions/stop-router/utils"
)

// TripMatch is a trip that arrives somewhere at the requested time
type TripMatch struct {
	TripID  string   `json:"trip_id"`
	StopIDs []string `json:"stop_ids"` // every stop of the trip in stop_sequence order
	At      []string `json:"arriving_at"`
}

// TripsByArrivalTime returns the trips with at least one stop_time arriving
// at hhmmss. Times compare per field, so "7:05:00" matches "07:05:00".
// Rows whose arrival_time is not a valid clock time, such as the
// after-midnight "25:10:00", never match.
func (f *Feed) TripsByArrivalTime(hhmmss string) ([]TripMatch, error) {
	want, err := utils.ParseClock(hhmmss)
	if err != nil {
		return nil, fmt.Errorf("arrival time: %w", err)
	}
	var out []TripMatch
	for _, trip := range f.tripOrder {
		var m *TripMatch
		for _, r := range f.tripRows[trip] {
			st := f.StopTimes[r]
			c, err := utils.ParseClock(st.ArrivalTime)
			if err != nil || c != want {
				continue
			}
			if m == nil {
				m = &TripMatch{TripID: trip}
			}
			m.At = append(m.At, st.StopID)
		}
		if m == nil {
			continue
		}
		for _, r := range f.tripRows[trip] {
			m.StopIDs = append(m.StopIDs, f.StopTimes[r].StopID)
		}
		out = append(out, *m)
	}
	sort.SliceStable(out, func(i, j int) bool { return tripLess(out[i].TripID, out[j].TripID) })
	return out, nil
}

// tripLess orders numeric ids numerically and everything else lexically,
// numbers first
func tripLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
