package config

// FeedConfig locates the GTFS static feed
type FeedConfig struct {
	Path      string `yaml:"path" validate:"required"` // directory, .zip file or http(s) URL
	CachePath string `yaml:"cachePath"`                // optional gob cache of the parsed feed
}

// RealtimeConfig contains optional GTFS-Realtime feed locations
type RealtimeConfig struct {
	TripUpdatesURL   string `yaml:"tripUpdatesURL" validate:"omitempty,url|file"`
	ServiceAlertsURL string `yaml:"serviceAlertsURL" validate:"omitempty,url|file"`
	TimeoutMS        int    `yaml:"timeoutMS" validate:"gte=0"`
}

// CostConfig contains the edge weight rules applied while building the network
type CostConfig struct {
	Hop                  float64 `yaml:"hop" validate:"gte=0"`
	Transfer             float64 `yaml:"transfer" validate:"gte=0"`
	TimedTransferDivisor float64 `yaml:"timedTransferDivisor" validate:"gt=0"`
}

// SearchConfig contains stop name normalization rules
type SearchConfig struct {
	UpperCase      bool     `yaml:"upperCase"`
	DirectionFlags []string `yaml:"directionFlags" validate:"dive,required"`
}

// RoutingConfig contains shortest-path settings
type RoutingConfig struct {
	Policy    string `yaml:"policy" validate:"omitempty,oneof=finalize-on-pop first-enqueue-wins"`
	CacheSize int    `yaml:"cacheSize" validate:"gte=0"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level   string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Console bool   `yaml:"console"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Feed     FeedConfig     `yaml:"feed" validate:"required"`
	Realtime RealtimeConfig `yaml:"realtime"`
	Costs    CostConfig     `yaml:"costs"`
	Search   SearchConfig   `yaml:"search"`
	Routing  RoutingConfig  `yaml:"routing"`
	Log      LogConfig      `yaml:"log"`
}
