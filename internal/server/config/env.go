package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors Config for envconfig processing. Empty defaults keep the
// overlay from clobbering values set earlier in the chain.
type envConfig struct {
	EndpointAddrHTTP string        `envconfig:"ENDPOINT_ADDR_HTTP"`
	DatabaseDSN      string        `envconfig:"DATABASE_DSN"`
	ReadTimeout      time.Duration `envconfig:"READ_TIMEOUT"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
}

// parseEnv overlays Config fields from USERADMIN_-prefixed environment
// variables. Only variables that are actually set override earlier values.
func parseEnv(config *Config) {
	var c envConfig
	if err := envconfig.Process("useradmin", &c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.ReadTimeout != 0 {
		config.ReadTimeout = c.ReadTimeout
	}
	if c.ShutdownTimeout != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout
	}
}
