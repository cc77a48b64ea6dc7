package arrivals

import "time"

// Run executes the full pipeline over already-fetched raw records:
// Normalize, Dedupe, Select. It never fails; data-quality problems degrade
// toward empty sequences at the finest granularity possible (per record,
// then per direction, then per line), never the whole call.
func Run(raw []RawRecord, lines []string, now time.Time, opts Options) []LineEstimate {
	return Select(Dedupe(Normalize(raw, lines, now)), lines, opts)
}
