package mtaapi

// ArrivalAndDeparture is one entry of the arrivals-and-departures response.
// Only the fields the pipeline consumes are decoded; timestamps are epoch
// milliseconds and zero when the API omits them.
type ArrivalAndDeparture struct {
	RouteShortName       string `json:"routeShortName"`
	TripID               string `json:"tripId"`
	TripHeadsign         string `json:"tripHeadsign"`
	StopID               string `json:"stopId"`
	PredictedArrivalTime int64  `json:"predictedArrivalTime"`
	ScheduledArrivalTime int64  `json:"scheduledArrivalTime"`
}

// Response is the envelope of arrivals-and-departures-for-location.json.
type Response struct {
	Data struct {
		Entry struct {
			ArrivalsAndDepartures []ArrivalAndDeparture `json:"arrivalsAndDepartures"`
		} `json:"entry"`
	} `json:"data"`
}
