package arrivals

import "sort"

// Select reduces deduplicated records to the final per-line estimates.
// Trip identity is discarded here; only (line, direction) grouping remains.
//
// The output has exactly one entry per requested line, in the caller's
// requested order, duplicates included. A line with no matching records
// still produces an entry with two empty sequences, which signals "no data"
// as opposed to an absent line.
func Select(records []ArrivalRecord, lines []string, opts Options) []LineEstimate {
	type directions struct {
		uptown   []int
		downtown []int
	}
	byLine := make(map[string]*directions)

	for _, rec := range records {
		d := byLine[rec.Line]
		if d == nil {
			d = &directions{}
			byLine[rec.Line] = d
		}
		switch rec.Direction {
		case DirectionUptown:
			d.uptown = append(d.uptown, rec.MinutesFromNow)
		case DirectionDowntown:
			d.downtown = append(d.downtown, rec.MinutesFromNow)
		}
	}

	out := make([]LineEstimate, 0, len(lines))
	for _, line := range lines {
		est := LineEstimate{Line: line, Uptown: []int{}, Downtown: []int{}}
		if d, ok := byLine[line]; ok {
			est.Uptown = selectUseful(d.uptown, opts)
			est.Downtown = selectUseful(d.downtown, opts)
		}
		out = append(out, est)
	}
	return out
}

// selectUseful applies the selection policy to one direction's minute
// counts: sort ascending, drop imminent arrivals, merge near-duplicates,
// cap to the soonest few.
func selectUseful(minutes []int, opts Options) []int {
	if len(minutes) == 0 {
		return []int{}
	}

	sorted := make([]int, len(minutes))
	copy(sorted, minutes)
	sort.Ints(sorted)

	useful := make([]int, 0, len(sorted))
	for _, m := range sorted {
		if m >= opts.MinUsefulMinutes {
			useful = append(useful, m)
		}
	}

	// Every arrival is imminent. Riders still want to know a train is at
	// the platform, so keep the single closest one rather than going empty.
	if len(useful) == 0 {
		return []int{sorted[0]}
	}

	merged := make([]int, 0, len(useful))
	for _, m := range useful {
		if len(merged) == 0 || abs(m-merged[len(merged)-1]) >= opts.MergeDistanceMinutes {
			merged = append(merged, m)
		}
	}

	if len(merged) > opts.MaxArrivals {
		merged = merged[:opts.MaxArrivals]
	}
	return merged
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
