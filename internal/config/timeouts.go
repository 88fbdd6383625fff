package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the configurable HTTP tuning values.
type Timeouts struct {
	HTTPRequest       time.Duration // Per-request timeout for controller calls
	RetryMaxAttempts  int           // Maximum read retries on transport failure
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If a variable is not set or invalid, the default is used.
//
// Environment Variables:
//   - SCM_HTTP_TIMEOUT (default: 30s)
//   - SCM_RETRY_MAX_ATTEMPTS (default: 2)
//   - SCM_RETRY_INITIAL_DELAY (default: 500ms)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		HTTPRequest:       parseDuration("SCM_HTTP_TIMEOUT", 30*time.Second),
		RetryMaxAttempts:  parseInt("SCM_RETRY_MAX_ATTEMPTS", 2),
		RetryInitialDelay: parseDuration("SCM_RETRY_INITIAL_DELAY", 500*time.Millisecond),
	}
}

// parseDuration parses a duration from an environment variable.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

// parseInt parses an integer from an environment variable.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
