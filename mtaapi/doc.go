// Package mtaapi fetches upcoming arrivals from the MTA
// arrivals-and-departures JSON API (the same API the official MTA app uses)
// and maps them into provider-agnostic raw records for the arrivals
// pipeline.
//
// The API is queried by location (latitude, longitude, radius) and returns
// every arrival near the reference station. Records are pre-filtered to the
// configured platform stop per line and direction before the pipeline runs,
// so trains passing other stations inside the radius are excluded.
package mtaapi
