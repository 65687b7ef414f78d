package gtfs

import "sort"

// reindex rebuilds the lookup maps after Stops or StopTimes change
func (f *Feed) reindex() {
	f.stopIdx = make(map[string]int, len(f.Stops))
	for i, s := range f.Stops {
		if _, dup := f.stopIdx[s.ID]; !dup {
			f.stopIdx[s.ID] = i
		}
	}
	f.tripOrder = f.tripOrder[:0]
	f.tripRows = map[string][]int{}
	for i, st := range f.StopTimes {
		if _, seen := f.tripRows[st.TripID]; !seen {
			f.tripOrder = append(f.tripOrder, st.TripID)
		}
		f.tripRows[st.TripID] = append(f.tripRows[st.TripID], i)
	}
	for _, rows := range f.tripRows {
		sort.SliceStable(rows, func(i, j int) bool {
			return f.StopTimes[rows[i]].Sequence < f.StopTimes[rows[j]].Sequence
		})
	}
}

// GetStop returns the stop with the given stop_id
func (f *Feed) GetStop(stopID string) (Stop, bool) {
	i, ok := f.stopIdx[stopID]
	if !ok {
		return Stop{}, false
	}
	return f.Stops[i], true
}

// GetStopName returns the stop_name for stopID or ""
func (f *Feed) GetStopName(stopID string) string {
	s, _ := f.GetStop(stopID)
	return s.Name
}

// TripIDs returns trip ids in the order they first appear in stop_times.txt
func (f *Feed) TripIDs() []string {
	out := make([]string, len(f.tripOrder))
	copy(out, f.tripOrder)
	return out
}

// TripStopTimes returns the stop times of a trip ordered by stop_sequence
func (f *Feed) TripStopTimes(tripID string) []StopTime {
	rows := f.tripRows[tripID]
	out := make([]StopTime, len(rows))
	for i, r := range rows {
		out[i] = f.StopTimes[r]
	}
	return out
}
