package places

import "time"

// Config holds settings for the places HTTP client.
type Config struct {
	Enabled      bool          `koanf:"enabled"`
	Endpoint     string        `koanf:"endpoint"`
	APIKey       string        `koanf:"api_key"`
	Timeout      time.Duration `koanf:"timeout"`
	MaxRetries   int           `koanf:"max_retries"`
	RadiusMeters int           `koanf:"radius_meters"`
	MaxResults   int           `koanf:"max_results"`

	// RatePerSecond and Burst bound outgoing calls across all goroutines.
	RatePerSecond float64 `koanf:"rate_per_second"`
	Burst         int     `koanf:"burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker in front of the places API.
type BreakerConfig struct {
	// ConsecutiveFailures opens the circuit.
	ConsecutiveFailures uint32        `koanf:"consecutive_failures"`
	OpenTimeout         time.Duration `koanf:"open_timeout"`
	Interval            time.Duration `koanf:"interval"`
	HalfOpenRequests    uint32        `koanf:"half_open_requests"`
}

// DefaultConfig returns a disabled client config pointing at the public
// Google Places endpoint.
func DefaultConfig() Config {
	return Config{
		Enabled:       false,
		Endpoint:      "https://maps.googleapis.com/maps/api",
		Timeout:       5 * time.Second,
		MaxRetries:    1,
		RadiusMeters:  5000,
		MaxResults:    5,
		RatePerSecond: 10,
		Burst:         5,
		Breaker: BreakerConfig{
			ConsecutiveFailures: 5,
			OpenTimeout:         30 * time.Second,
			Interval:            time.Minute,
			HalfOpenRequests:    1,
		},
	}
}
