package nyct

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"mta/subway-arrivals/arrivals"
	"mta/subway-arrivals/config"
)

// ParseRawRecords unmarshals a GTFS-RT feed message and returns one raw
// record per stop-time update at a configured platform stop. Updates at
// other stops, updates without an arrival time, and trip-less entities are
// skipped.
func ParseRawRecords(data []byte, stops map[string]config.StopPair) ([]arrivals.RawRecord, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("failed to parse GTFS-RT feed: %w", err)
	}

	hints := directionHints(stops)

	var out []arrivals.RawRecord
	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || tu.Trip == nil || tu.Trip.TripId == nil {
			continue
		}
		var line string
		if tu.Trip.RouteId != nil {
			line = *tu.Trip.RouteId
		}
		for _, stu := range tu.StopTimeUpdate {
			if stu.StopId == nil {
				continue
			}
			hint, ok := hints[*stu.StopId]
			if !ok {
				continue
			}
			if stu.Arrival == nil || stu.Arrival.Time == nil || *stu.Arrival.Time == 0 {
				continue
			}
			out = append(out, arrivals.RawRecord{
				Line:            line,
				TripID:          *tu.Trip.TripId,
				Headsign:        hint,
				StopID:          *stu.StopId,
				PredictedMillis: *stu.Arrival.Time * 1000,
			})
		}
	}
	return out, nil
}

// directionHints inverts the per-line stop mapping into stop ID → direction
// hint, phrased so the pipeline's headsign parsing recognizes it.
func directionHints(stops map[string]config.StopPair) map[string]string {
	hints := make(map[string]string, len(stops)*2)
	for _, pair := range stops {
		if pair.Uptown != "" {
			hints[pair.Uptown] = "Northbound"
		}
		if pair.Downtown != "" {
			hints[pair.Downtown] = "Southbound"
		}
	}
	return hints
}
