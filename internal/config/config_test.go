package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("SUMMARY_INTERVAL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/weather.json", cfg.DataSource)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.SummaryInterval)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "https://example.com/weather.json")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("SUMMARY_INTERVAL", "0")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/weather.json", cfg.DataSource)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.SummaryInterval)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadKeepsSubMinuteInterval(t *testing.T) {
	t.Setenv("SUMMARY_INTERVAL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.SummaryInterval)
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err, "expected error for invalid HTTP_TIMEOUT")

	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("SUMMARY_INTERVAL", "-5m")
	_, err = Load()
	assert.Error(t, err, "expected error for negative SUMMARY_INTERVAL")
}
