package mtaapi

import (
	"mta/subway-arrivals/arrivals"
	"mta/subway-arrivals/config"
)

// RawRecords maps API entries into pipeline raw records, keeping only
// entries at the configured platform stop for their line and direction.
// The location query covers everything within the radius, so without this
// filter a train at a neighboring station would show up as arriving here.
//
// Entries for lines without a stop mapping pass through unfiltered; entries
// whose direction cannot be determined are dropped, since there is no
// platform to match them against (the pipeline would discard them anyway).
func RawRecords(items []ArrivalAndDeparture, stops map[string]config.StopPair) []arrivals.RawRecord {
	out := make([]arrivals.RawRecord, 0, len(items))
	for _, item := range items {
		if pair, ok := stops[item.RouteShortName]; ok {
			expected := ""
			switch arrivals.ParseDirection(item.TripHeadsign) {
			case arrivals.DirectionUptown:
				expected = pair.Uptown
			case arrivals.DirectionDowntown:
				expected = pair.Downtown
			default:
				continue
			}
			if expected != "" && item.StopID != expected {
				continue
			}
		}
		out = append(out, arrivals.RawRecord{
			Line:            item.RouteShortName,
			TripID:          item.TripID,
			Headsign:        item.TripHeadsign,
			StopID:          item.StopID,
			PredictedMillis: item.PredictedArrivalTime,
			ScheduledMillis: item.ScheduledArrivalTime,
		})
	}
	return out
}
