package arrivals

import "strings"

// Direction is the direction of travel relative to the reference station.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionUptown
	DirectionDowntown
)

// String returns the lowercase direction name used in logs and output keys.
func (d Direction) String() string {
	switch d {
	case DirectionUptown:
		return "uptown"
	case DirectionDowntown:
		return "downtown"
	}
	return "unknown"
}

// ParseDirection determines the direction of travel from a free-text
// headsign or heading hint. Matching is a case-insensitive substring test:
// "uptown" or "north" means uptown, "downtown" or "south" means downtown.
// Anything else is DirectionUnknown and the record is discarded downstream.
func ParseDirection(headsign string) Direction {
	h := strings.ToLower(headsign)
	if strings.Contains(h, "uptown") || strings.Contains(h, "north") {
		return DirectionUptown
	}
	if strings.Contains(h, "downtown") || strings.Contains(h, "south") {
		return DirectionDowntown
	}
	return DirectionUnknown
}

// RawRecord is the provider-agnostic inbound shape: one arrival event as
// reported by a feed, before any validation. Feed providers map their wire
// formats into this struct; the pipeline never sees provider schemas.
type RawRecord struct {
	Line     string // route short name, e.g. "F", "6"
	TripID   string // opaque identifier for one physical vehicle run
	Headsign string // free-text direction hint
	StopID   string // platform stop the record refers to

	// Arrival instants in epoch milliseconds. Zero means absent.
	// PredictedMillis is a live estimate from vehicle tracking,
	// ScheduledMillis the static timetable fallback.
	PredictedMillis int64
	ScheduledMillis int64
}

// ArrivalRecord is the canonical record produced by Normalize and consumed
// by Dedupe. After Dedupe at most one record exists per
// (Line, Direction, TripID) key.
type ArrivalRecord struct {
	Line           string
	Direction      Direction
	TripID         string
	MinutesFromNow int  // >= 0, clamped
	HasPrediction  bool // true when a live predicted instant was used
}

// LineEstimate is the final output, one per requested line. Uptown and
// Downtown hold ascending minute counts, at most Options.MaxArrivals each.
// Both slices are always non-nil; an empty slice means no data survived for
// that direction.
type LineEstimate struct {
	Line     string `json:"line"`
	Uptown   []int  `json:"uptown"`
	Downtown []int  `json:"downtown"`
}

// Options are the selection policy knobs. The two historical feed parsers
// hard-coded diverging values for these; they are explicit configuration so
// one pipeline serves every provider.
type Options struct {
	// MinUsefulMinutes is the imminent threshold: arrivals strictly below
	// it are filtered out as not actionable for a waiting rider.
	MinUsefulMinutes int

	// MergeDistanceMinutes is the proximity-merge threshold: a value whose
	// gap to the last kept value is below it is treated as the same train
	// reported twice with jitter.
	MergeDistanceMinutes int

	// MaxArrivals caps how many arrivals are kept per direction.
	MaxArrivals int
}

// DefaultOptions returns the production selection policy.
func DefaultOptions() Options {
	return Options{
		MinUsefulMinutes:     1,
		MergeDistanceMinutes: 2,
		MaxArrivals:          3,
	}
}
