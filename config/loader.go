package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are tried in order by Load when no path is given
var DefaultPaths = []string{"config.yml", "./configs/config.yml"}

// ErrNoConfigFile is returned when none of the candidate paths exist
var ErrNoConfigFile = errors.New("config: no config file found")

// Default returns the configuration used for unset fields
func Default() *AppConfig {
	return &AppConfig{
		Feed: FeedConfig{Path: "."},
		Realtime: RealtimeConfig{
			TimeoutMS: 10000,
		},
		Costs: CostConfig{
			Hop:                  1,
			Transfer:             2,
			TimedTransferDivisor: 100,
		},
		Search: SearchConfig{
			UpperCase:      true,
			DirectionFlags: []string{"NB", "SB", "EB", "WB"},
		},
		Routing: RoutingConfig{
			Policy:    "finalize-on-pop",
			CacheSize: 256,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads the first existing file among paths (DefaultPaths when empty),
// overlays it on Default and validates the result.
func Load(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: tried %v: %v", ErrNoConfigFile, paths, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags on cfg
func Validate(cfg *AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
