package arrivals

import "time"

// Normalize maps raw provider records into canonical ArrivalRecords.
//
// Records are discarded when their line is not in the requested set, their
// direction hint is unrecognizable, their trip ID is empty, or neither
// arrival instant is present. The predicted instant wins over the scheduled
// one when it is non-zero. Minutes are the truncated difference against now,
// clamped so an arrival in the past reads as 0, never negative.
//
// now must be sampled once per pipeline invocation and held constant for
// every record; resampling mid-computation would make the imminent filter
// inconsistent across records.
func Normalize(raw []RawRecord, lines []string, now time.Time) []ArrivalRecord {
	requested := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		requested[l] = struct{}{}
	}

	out := make([]ArrivalRecord, 0, len(raw))
	for _, r := range raw {
		if _, ok := requested[r.Line]; !ok {
			continue
		}
		dir := ParseDirection(r.Headsign)
		if dir == DirectionUnknown {
			continue
		}
		if r.TripID == "" {
			continue
		}
		minutes, hasPrediction, ok := minutesFromNow(r, now)
		if !ok {
			continue
		}
		out = append(out, ArrivalRecord{
			Line:           r.Line,
			Direction:      dir,
			TripID:         r.TripID,
			MinutesFromNow: minutes,
			HasPrediction:  hasPrediction,
		})
	}
	return out
}

// minutesFromNow picks the arrival instant (predicted when present and
// positive, scheduled otherwise) and converts it to whole minutes from now.
func minutesFromNow(r RawRecord, now time.Time) (minutes int, hasPrediction bool, ok bool) {
	instantMillis := r.ScheduledMillis
	if r.PredictedMillis > 0 {
		instantMillis = r.PredictedMillis
		hasPrediction = true
	}
	if instantMillis == 0 {
		return 0, false, false
	}

	arrival := time.UnixMilli(instantMillis)
	minutes = int(arrival.Sub(now).Seconds() / 60)
	if minutes < 0 {
		minutes = 0
	}
	return minutes, hasPrediction, true
}
