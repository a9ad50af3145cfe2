package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "ROUTING_TIMEOUT", "ASSIGN_MAX_RETRIES", "AVAILABILITY_AUTO_APPROVE", "SUGGESTION_TTL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
	assert.Equal(t, 3*time.Second, cfg.RoutingTimeout)
	assert.Equal(t, 3, cfg.AssignMaxRetries)
	assert.True(t, cfg.AvailabilityAutoApprove)
	assert.Equal(t, 30*time.Minute, cfg.SuggestionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 7*24*time.Hour, cfg.LocationHistoryRetention)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("ROUTING_TIMEOUT", "750ms")
	t.Setenv("SWEEP_INTERVAL", "30")
	t.Setenv("ASSIGN_MAX_RETRIES", "5")
	t.Setenv("AVERAGE_SPEED_KMH", "55.5")
	t.Setenv("AVAILABILITY_AUTO_APPROVE", "false")
	t.Setenv("AUTO_ASSIGN_MIN_SCORE", "not-a-number")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 750*time.Millisecond, cfg.RoutingTimeout)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, 5, cfg.AssignMaxRetries)
	assert.InDelta(t, 55.5, cfg.AverageSpeedKmh, 1e-9)
	assert.False(t, cfg.AvailabilityAutoApprove)
	assert.Equal(t, 90, cfg.AutoAssignMinScore, "invalid values keep the default")
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestScoringWeights(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		w, err := LoadScoringWeights("")
		require.NoError(t, err)
		assert.Equal(t, DefaultScoringWeights(), w)
		assert.InDelta(t, 100, w.Total(), 1e-9)
	})

	t.Run("partial file keeps defaults for missing keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		require.NoError(t, os.WriteFile(path, []byte("proximity: 50\npreferred: 0\n"), 0o600))
		w, err := LoadScoringWeights(path)
		require.NoError(t, err)
		assert.Equal(t, 50.0, w.Proximity)
		assert.Equal(t, 0.0, w.Preferred)
		assert.Equal(t, 20.0, w.Availability)
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		_, err := ParseScoringWeights([]byte("rating: -1"))
		assert.ErrorContains(t, err, "rating")
	})

	t.Run("all zero rejected", func(t *testing.T) {
		_, err := ParseScoringWeights([]byte("proximity: 0\navailability: 0\non_time: 0\nrating: 0\npreferred: 0\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScoringWeights(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("suggestion generated", "job_id", "job-1")

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "job_id=job-1")
	assert.True(t, strings.HasPrefix(file.String(), "{"))
	assert.Contains(t, file.String(), `"job_id":"job-1"`)
}

func TestSetupLogger_FallsBackWithoutFile(t *testing.T) {
	logger, cleanup := SetupLogger(filepath.Join(t.TempDir(), "missing-dir", "x.log"), slog.LevelInfo)
	require.NotNil(t, logger)
	assert.NoError(t, cleanup())
}
