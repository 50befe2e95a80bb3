package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("MINI_HOLD_THRESHOLD_MS")
	os.Unsetenv("MINI_ROLL_THRESHOLD_MS")

	cfg := Load()
	assert.Equal(t, int64(250), cfg.MiniHoldThresholdMS)
	assert.Equal(t, int64(500), cfg.MiniRollThresholdMS)
	assert.Equal(t, int64(192), cfg.MaxSnapDenominator)
}

func TestLoadReadsOverrides(t *testing.T) {
	os.Setenv("MINI_HOLD_THRESHOLD_MS", "300")
	defer os.Unsetenv("MINI_HOLD_THRESHOLD_MS")

	cfg := Load()
	assert.Equal(t, int64(300), cfg.MiniHoldThresholdMS)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	os.Setenv("PERMUTATION_CACHE_SIZE", "not-a-number")
	defer os.Unsetenv("PERMUTATION_CACHE_SIZE")

	cfg := Load()
	assert.Equal(t, 4096, cfg.PermutationCacheSize)
}
