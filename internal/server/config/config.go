// Package config handles configuration for the server,
// including defaults, JSON overlay, environment variables and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the user admin server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST endpoint.
//   - DatabaseDSN: SQLite database location (file path or URI).
//   - ReadTimeout: maximum duration for reading an entire request.
//   - ShutdownTimeout: how long a graceful shutdown may take.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDSN      string
	ReadTimeout      time.Duration
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = "database.db"
	c.ReadTimeout = 15 * time.Second
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
