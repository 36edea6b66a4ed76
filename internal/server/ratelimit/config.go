package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/recipe-finder/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultConfig returns limits used when no configuration is supplied.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// FromSettings converts the application rate limit settings into a limiter Config.
func FromSettings(s config.RateLimitConfig) *Config {
	if !s.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    s.DefaultLimit,
		DefaultWindow:   s.DefaultWindow,
		CleanupInterval: s.CleanupInterval,
		Whitelist:       toSet(s.Whitelist),
		Blacklist:       toSet(s.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Writes
		{Path: "/api/recipes", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/api/survey", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Filter queries carry a body but do not write
		{Path: "/api/recipes/filter", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Reads fall through to the default limit; health and metrics are unlimited in the matcher
	}
}

// toSet turns a list of client ids into a lookup set, ignoring blanks.
func toSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, item := range list {
		// viper may hand over a single comma-separated value from the environment
		for _, ip := range strings.Split(item, ",") {
			if ip = strings.TrimSpace(ip); ip != "" {
				result[ip] = true
			}
		}
	}
	return result
}
