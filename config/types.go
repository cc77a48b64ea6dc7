package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// PipelineConfig contains the arrival-selection policy knobs. The historical
// feed parsers hard-coded diverging values; here they are explicit so both
// providers run through one pipeline.
type PipelineConfig struct {
	MinUsefulMinutes     int `yaml:"minUsefulMinutes" validate:"gte=0"`
	MergeDistanceMinutes int `yaml:"mergeDistanceMinutes" validate:"gte=0"`
	MaxArrivals          int `yaml:"maxArrivals" validate:"gte=0"`
}

// StopPair holds the two platform stop IDs of the reference station for one
// line, one per direction.
type StopPair struct {
	Uptown   string `yaml:"uptown"`
	Downtown string `yaml:"downtown"`
}

// MTAConfig configures the MTA arrivals-and-departures JSON API provider.
type MTAConfig struct {
	ArrivalsURL      string              `yaml:"arrivalsURL" validate:"omitempty,url"`
	APIKey           string              `yaml:"apiKey"`
	Latitude         float64             `yaml:"latitude"`
	Longitude        float64             `yaml:"longitude"`
	RadiusMeters     int                 `yaml:"radiusMeters" validate:"gte=0"`
	LookaheadMinutes int                 `yaml:"lookaheadMinutes" validate:"gte=0"`
	MaxCount         int                 `yaml:"maxCount" validate:"gte=0"`
	TimeoutMS        int                 `yaml:"timeoutMS" validate:"gte=0"`
	Stops            map[string]StopPair `yaml:"stops"`
}

// NYCTFeed is one GTFS-Realtime feed endpoint and the lines it carries.
type NYCTFeed struct {
	URL   string   `yaml:"url" validate:"required,url"`
	Lines []string `yaml:"lines" validate:"required"`
}

// NYCTConfig configures the NYCT GTFS-Realtime provider.
type NYCTConfig struct {
	APIKey    string              `yaml:"apiKey"`
	TimeoutMS int                 `yaml:"timeoutMS" validate:"gte=0"`
	Feeds     []NYCTFeed          `yaml:"feeds" validate:"dive"`
	Stops     map[string]StopPair `yaml:"stops"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Provider string         `yaml:"provider" validate:"omitempty,oneof=mta nyct"`
	Lines    []string       `yaml:"lines"`
	MTA      MTAConfig      `yaml:"mta"`
	NYCT     NYCTConfig     `yaml:"nyct"`
}
