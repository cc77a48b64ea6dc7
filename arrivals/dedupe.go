package arrivals

// tripKey identifies one physical train arrival across partial feed updates.
type tripKey struct {
	line      string
	direction Direction
	tripID    string
}

// Dedupe collapses records referring to the same physical train into one
// record per (line, direction, trip ID). Upstream feeds emit multiple
// partial updates for a trip; the survivor is chosen by a total order:
// a record carrying a live prediction outranks a schedule-only one, and
// among equals the smaller minute count wins.
//
// Dedupe is idempotent: running it over its own output is a no-op.
func Dedupe(records []ArrivalRecord) []ArrivalRecord {
	best := make(map[tripKey]ArrivalRecord, len(records))
	order := make([]tripKey, 0, len(records))

	for _, rec := range records {
		key := tripKey{rec.Line, rec.Direction, rec.TripID}
		existing, seen := best[key]
		if !seen {
			best[key] = rec
			order = append(order, key)
			continue
		}
		if outranks(rec, existing) {
			best[key] = rec
		}
	}

	out := make([]ArrivalRecord, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// outranks reports whether a should replace b as the representative for
// their shared trip key.
func outranks(a, b ArrivalRecord) bool {
	if a.HasPrediction != b.HasPrediction {
		return a.HasPrediction
	}
	return a.MinutesFromNow < b.MinutesFromNow
}
