// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every data source location is a configuration value so the router can be
// pointed at any feed, or at in-memory fixtures in tests.
package config
