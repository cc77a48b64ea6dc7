// Package nyct fetches the NYCT subway GTFS-Realtime trip-update feeds and
// maps stop-time updates at the reference station's platforms into raw
// records for the arrivals pipeline.
//
// NYCT platform stop IDs end in N or S for the uptown and downtown tracks,
// so the configured stop mapping doubles as the direction hint: an update
// at an uptown platform is tagged "Northbound", a downtown one "Southbound",
// and the pipeline's normal headsign parsing does the rest. GTFS-RT arrival
// times come from live vehicle tracking and are treated as predictions.
package nyct
