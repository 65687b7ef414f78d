package gtfsrt

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/proto"
)

// Disruptions collects closed stops, cancelled trips and skipped calls
type Disruptions struct {
	at int64 // unix seconds alerts must be active at, 0 for any

	closedStops   map[string]struct{}
	canceledTrips map[string]struct{}
	skipped       map[string]map[string]struct{} // trip_id -> stop_id
	alerts        []RTAlert
}

// NewDisruptions returns an empty set. Alerts are applied only when active at
// the unix time at; pass 0 to apply every alert regardless of its window.
func NewDisruptions(at int64) *Disruptions {
	return &Disruptions{
		at:            at,
		closedStops:   map[string]struct{}{},
		canceledTrips: map[string]struct{}{},
		skipped:       map[string]map[string]struct{}{},
	}
}

// Decode builds Disruptions from raw TripUpdates and Alerts payloads.
// Either may be empty.
func Decode(tripUpdates, alerts []byte, at int64) (*Disruptions, error) {
	d := NewDisruptions(at)
	if len(tripUpdates) > 0 {
		if err := d.LoadTripUpdates(tripUpdates); err != nil {
			return nil, fmt.Errorf("trip updates: %w", err)
		}
	}
	if len(alerts) > 0 {
		if err := d.LoadAlerts(alerts); err != nil {
			return nil, fmt.Errorf("service alerts: %w", err)
		}
	}
	return d, nil
}

func unmarshal(b []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, err
	}
	return &fm, nil
}

// LoadTripUpdates reads a TripUpdates feed
func (d *Disruptions) LoadTripUpdates(b []byte) error {
	fm, err := unmarshal(b)
	if err != nil {
		return err
	}
	d.AddTripUpdates(fm)
	return nil
}

// AddTripUpdates records SKIPPED stop_time_updates and CANCELED trips
func (d *Disruptions) AddTripUpdates(fm *gtfsrtpb.FeedMessage) {
	skipped := 0
	for _, e := range fm.GetEntity() {
		tu := e.GetTripUpdate()
		if tu == nil || tu.GetTrip().GetTripId() == "" {
			continue
		}
		tripID := tu.GetTrip().GetTripId()
		if tu.GetTrip().GetScheduleRelationship() == gtfsrtpb.TripDescriptor_CANCELED {
			d.canceledTrips[tripID] = struct{}{}
			continue
		}
		for _, stu := range tu.GetStopTimeUpdate() {
			if stu.GetStopId() == "" || stu.GetScheduleRelationship() != gtfsrtpb.TripUpdate_StopTimeUpdate_SKIPPED {
				continue
			}
			m := d.skipped[tripID]
			if m == nil {
				m = map[string]struct{}{}
				d.skipped[tripID] = m
			}
			m[stu.GetStopId()] = struct{}{}
			skipped++
		}
	}
	log.Debug().
		Int("entities", len(fm.GetEntity())).
		Int("skipped_stop_times", skipped).
		Int("canceled_trips", len(d.canceledTrips)).
		Msg("trip updates applied")
}

// LoadAlerts reads a Service Alerts feed
func (d *Disruptions) LoadAlerts(b []byte) error {
	fm, err := unmarshal(b)
	if err != nil {
		return err
	}
	d.AddAlerts(fm)
	return nil
}

// AddAlerts keeps every alert and applies the active NO_SERVICE ones:
// informed stops close, informed trips are cancelled. Route-wide alerts are
// kept for display only.
func (d *Disruptions) AddAlerts(fm *gtfsrtpb.FeedMessage) {
	for _, e := range fm.GetEntity() {
		a := e.GetAlert()
		if a == nil {
			continue
		}
		ra := RTAlert{
			ID:     e.GetId(),
			Header: translatedText(a.GetHeaderText()),
			Effect: a.GetEffect().String(),
		}
		if ap := a.GetActivePeriod(); len(ap) > 0 {
			ra.Start = int64(ap[0].GetStart())
			ra.End = int64(ap[0].GetEnd())
		}
		for _, ie := range a.GetInformedEntity() {
			if ie.GetStopId() != "" {
				ra.StopIDs = append(ra.StopIDs, ie.GetStopId())
			}
			if tid := ie.GetTrip().GetTripId(); tid != "" {
				ra.TripIDs = append(ra.TripIDs, tid)
			}
			// route-only entity
			if ie.GetRouteId() != "" && ie.GetStopId() == "" && ie.GetTrip() == nil {
				ra.RouteIDs = append(ra.RouteIDs, ie.GetRouteId())
			}
		}
		d.alerts = append(d.alerts, ra)

		if a.GetEffect() != gtfsrtpb.Alert_NO_SERVICE || !ra.ActiveAt(d.at) {
			continue
		}
		for _, sid := range ra.StopIDs {
			d.closedStops[sid] = struct{}{}
		}
		for _, tid := range ra.TripIDs {
			d.canceledTrips[tid] = struct{}{}
		}
	}
	log.Debug().
		Int("alerts", len(d.alerts)).
		Int("closed_stops", len(d.closedStops)).
		Msg("service alerts applied")
}

func translatedText(ts *gtfsrtpb.TranslatedString) string {
	tr := ts.GetTranslation()
	if len(tr) == 0 {
		return ""
	}
	for _, t := range tr {
		if t.GetLanguage() == "" || t.GetLanguage() == "en" {
			return t.GetText()
		}
	}
	return tr[0].GetText()
}

// StopClosed reports a stop closed by an active NO_SERVICE alert
func (d *Disruptions) StopClosed(stopID string) bool {
	_, ok := d.closedStops[stopID]
	return ok
}

// StopTimeSkipped reports a call marked SKIPPED or belonging to a cancelled
// trip
func (d *Disruptions) StopTimeSkipped(tripID, stopID string) bool {
	if _, ok := d.canceledTrips[tripID]; ok {
		return true
	}
	_, ok := d.skipped[tripID][stopID]
	return ok
}

// TripCanceled reports a trip cancelled by TripUpdates or an alert
func (d *Disruptions) TripCanceled(tripID string) bool {
	_, ok := d.canceledTrips[tripID]
	return ok
}

// Alerts returns every decoded alert, active or not, in feed order
func (d *Disruptions) Alerts() []RTAlert { return d.alerts }

// Empty reports whether nothing would be excluded
func (d *Disruptions) Empty() bool {
	return len(d.closedStops) == 0 && len(d.canceledTrips) == 0 && len(d.skipped) == 0
}
