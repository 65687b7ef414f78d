// Package gtfsrt decodes GTFS-Realtime protobuf feeds into the disruptions
// the router applies before it builds its network.
//
// Two feed types are read:
//   - Trip Updates: stop_time_updates marked SKIPPED and CANCELED trips
//   - Service Alerts: NO_SERVICE alerts that inform a stop or a trip
//
// The main type is Disruptions, which satisfies gtfs.Exclusions.
package gtfsrt
