package arrivals

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// millisIn returns an epoch-millisecond instant the given number of minutes
// after testNow.
func millisIn(minutes int) int64 {
	return testNow.Add(time.Duration(minutes) * time.Minute).UnixMilli()
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		headsign string
		expected Direction
	}{
		{"Uptown & The Bronx", DirectionUptown},
		{"Northbound", DirectionUptown},
		{"UPTOWN", DirectionUptown},
		{"Downtown & Brooklyn", DirectionDowntown},
		{"southbound", DirectionDowntown},
		{"Jamaica Center", DirectionUnknown},
		{"", DirectionUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.headsign, func(t *testing.T) {
			if got := ParseDirection(tc.headsign); got != tc.expected {
				t.Errorf("ParseDirection(%q) = %v, expected %v", tc.headsign, got, tc.expected)
			}
		})
	}
}

func TestNormalize_PredictedOverScheduled(t *testing.T) {
	raw := []RawRecord{{
		Line:            "F",
		TripID:          "trip-1",
		Headsign:        "Uptown",
		PredictedMillis: millisIn(7),
		ScheduledMillis: millisIn(4),
	}}

	recs := Normalize(raw, []string{"F"}, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].MinutesFromNow != 7 {
		t.Errorf("expected predicted instant (7 min), got %d", recs[0].MinutesFromNow)
	}
	if !recs[0].HasPrediction {
		t.Error("expected HasPrediction=true when predicted instant used")
	}
}

func TestNormalize_ScheduledFallback(t *testing.T) {
	raw := []RawRecord{{
		Line:            "F",
		TripID:          "trip-1",
		Headsign:        "Downtown",
		ScheduledMillis: millisIn(4),
	}}

	recs := Normalize(raw, []string{"F"}, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].MinutesFromNow != 4 {
		t.Errorf("expected 4 minutes from scheduled instant, got %d", recs[0].MinutesFromNow)
	}
	if recs[0].HasPrediction {
		t.Error("expected HasPrediction=false for schedule-only record")
	}
}

func TestNormalize_ClampsPastArrivals(t *testing.T) {
	raw := []RawRecord{{
		Line:            "6",
		TripID:          "trip-1",
		Headsign:        "Uptown",
		PredictedMillis: millisIn(-5),
	}}

	recs := Normalize(raw, []string{"6"}, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].MinutesFromNow != 0 {
		t.Errorf("past arrival should clamp to 0, got %d", recs[0].MinutesFromNow)
	}
}

func TestNormalize_FloorsPartialMinutes(t *testing.T) {
	raw := []RawRecord{{
		Line:            "F",
		TripID:          "trip-1",
		Headsign:        "Uptown",
		PredictedMillis: testNow.Add(90 * time.Second).UnixMilli(),
	}}

	recs := Normalize(raw, []string{"F"}, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].MinutesFromNow != 1 {
		t.Errorf("90s away should floor to 1 minute, got %d", recs[0].MinutesFromNow)
	}
}

func TestNormalize_DiscardsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		rec  RawRecord
	}{
		{"line not requested", RawRecord{Line: "Z", TripID: "t", Headsign: "Uptown", PredictedMillis: millisIn(5)}},
		{"unknown direction", RawRecord{Line: "F", TripID: "t", Headsign: "Coney Island", PredictedMillis: millisIn(5)}},
		{"missing trip id", RawRecord{Line: "F", Headsign: "Uptown", PredictedMillis: millisIn(5)}},
		{"no instants", RawRecord{Line: "F", TripID: "t", Headsign: "Uptown"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recs := Normalize([]RawRecord{tc.rec}, []string{"F"}, testNow)
			if len(recs) != 0 {
				t.Errorf("expected record to be discarded, got %+v", recs)
			}
		})
	}
}

func TestNormalize_BadRecordDoesNotAbortRest(t *testing.T) {
	raw := []RawRecord{
		{Line: "F", TripID: "", Headsign: "Uptown", PredictedMillis: millisIn(3)},
		{Line: "F", TripID: "good", Headsign: "Uptown", PredictedMillis: millisIn(5)},
	}

	recs := Normalize(raw, []string{"F"}, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected the valid record to survive, got %d records", len(recs))
	}
	if recs[0].TripID != "good" {
		t.Errorf("expected trip %q, got %q", "good", recs[0].TripID)
	}
}
