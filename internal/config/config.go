package config

import (
	"os"
	"strconv"
)

// Config holds the tunable constants governing transform and timing
// behavior. Note: this is a stateless configuration - no database or auth
// secrets needed, there is no deployment surface to configure.
type Config struct {
	Environment string
	SentryDSN   string // Sentry DSN for error tracking

	// MiniHoldThresholdMS is the maximum hold duration, in milliseconds,
	// collapsed into a tap by transform.CollapseMiniLongNotes.
	MiniHoldThresholdMS int64
	// MiniRollThresholdMS is the roll equivalent of MiniHoldThresholdMS.
	MiniRollThresholdMS int64
	// DensityKernelHalfWidthMS is the triangular kernel half-width used by
	// transform.DensityMap.
	DensityKernelHalfWidthMS int64
	// PermutationCacheSize bounds transform.PermutationCache's LRU
	// capacity.
	PermutationCacheSize int
	// MaxSnapDenominator defaults to the value of
	// rational.MaxSnapDenominator. Position validation in internal/rational
	// uses that constant and does not read this field.
	MaxSnapDenominator int64
}

func Load() *Config {
	return &Config{
		Environment:              getEnv("ENVIRONMENT", "development"),
		SentryDSN:                getEnv("SENTRY_DSN", ""),
		MiniHoldThresholdMS:      getEnvInt64("MINI_HOLD_THRESHOLD_MS", 250),
		MiniRollThresholdMS:      getEnvInt64("MINI_ROLL_THRESHOLD_MS", 500),
		DensityKernelHalfWidthMS: getEnvInt64("DENSITY_KERNEL_HALF_WIDTH_MS", 500),
		PermutationCacheSize:     int(getEnvInt64("PERMUTATION_CACHE_SIZE", 4096)),
		MaxSnapDenominator:       getEnvInt64("MAX_SNAP_DENOMINATOR", 192),
	}
}

// LoadDotEnv populates the process environment from a .env file, if
// present. Callers must invoke this explicitly before Load(); the package
// never does so as a side effect of being imported.
func LoadDotEnv() error {
	return loadDotEnv()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
