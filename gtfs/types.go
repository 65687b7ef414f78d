package gtfs

import "errors"

// Sentinel errors returned while loading a feed
var (
	ErrMissingFile   = errors.New("gtfs: required file missing from feed")
	ErrMissingColumn = errors.New("gtfs: required column missing")
)

// Stop is one row of stops.txt
type Stop struct {
	ID   string  `json:"stop_id"`
	Code string  `json:"stop_code,omitempty"`
	Name string  `json:"stop_name"`
	Desc string  `json:"stop_desc,omitempty"`
	Lat  float64 `json:"stop_lat"`
	Lon  float64 `json:"stop_lon"`
}

// StopTime is one row of stop_times.txt
type StopTime struct {
	TripID        string `json:"trip_id"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	StopID        string `json:"stop_id"`
	Sequence      int    `json:"stop_sequence"`
}

// Transfer is one row of transfers.txt
type Transfer struct {
	FromStopID      string `json:"from_stop_id"`
	ToStopID        string `json:"to_stop_id"`
	Type            int    `json:"transfer_type"`
	MinTransferTime int    `json:"min_transfer_time"` // -1 when absent
}

// Transfer types from the GTFS reference
const (
	TransferRecommended = 0
	TransferTimed       = 1
	TransferMinTime     = 2
	TransferNotPossible = 3
)

// Feed holds the parsed rows in file order
type Feed struct {
	Stops     []Stop
	StopTimes []StopTime
	Transfers []Transfer

	stopIdx   map[string]int   // stop_id -> index in Stops
	tripOrder []string         // trip ids in first-seen order
	tripRows  map[string][]int // trip_id -> StopTimes indices sorted by stop_sequence
}
