package server

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by ParseConfig.
const (
	EnvListenAddr      = "EQCOST_LISTEN_ADDR"
	EnvShutdownTimeout = "EQCOST_SHUTDOWN_TIMEOUT"
	EnvAllowedOrigins  = "EQCOST_CORS_ALLOWED_ORIGINS"
)

const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the HTTP server settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration

	// AllowedOrigins lists origins that receive CORS headers. AllowAllOrigins
	// is set when the list contained "*".
	AllowedOrigins  []string
	AllowAllOrigins bool
}

// ParseConfig reads the server settings from the environment. Invalid values
// are logged and replaced by defaults.
func ParseConfig(logger zerolog.Logger) Config {
	config := Config{
		Addr:            DefaultAddr,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if addr := strings.TrimSpace(os.Getenv(EnvListenAddr)); addr != "" {
		config.Addr = addr
	}

	if raw := os.Getenv(EnvShutdownTimeout); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			config.ShutdownTimeout = d
		} else {
			logger.Warn().
				Str("value", raw).
				Dur("default", DefaultShutdownTimeout).
				Msg("invalid " + EnvShutdownTimeout + ", using default")
		}
	}

	if origins := os.Getenv(EnvAllowedOrigins); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			trimmed := strings.TrimSpace(o)
			if trimmed == "*" {
				config.AllowAllOrigins = true
				continue
			}
			if trimmed != "" {
				config.AllowedOrigins = append(config.AllowedOrigins, trimmed)
			}
		}
		if config.AllowAllOrigins {
			logger.Warn().Msg("CORS wildcard origin (*) is insecure; use specific origins in production")
		}
	}

	logger.Debug().
		Str("addr", config.Addr).
		Dur("shutdown_timeout", config.ShutdownTimeout).
		Strs("allowed_origins", config.AllowedOrigins).
		Msg("server configuration applied")

	return config
}
