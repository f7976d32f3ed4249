package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 600*time.Millisecond, cfg.GapThreshold)
	assert.Equal(t, 5.0, cfg.PortTagRadiusKm)
	assert.Equal(t, 3.0, cfg.DepartureRadiusKm)
	assert.Equal(t, 4.0, cfg.DockedKm)
	assert.Equal(t, 10.0, cfg.ManeuveringKm)
	assert.Equal(t, 40.0, cfg.UndefinedBeyondKm)
	assert.Equal(t, int64(64<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Empty(t, cfg.JWTSecret)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":                  ":9090",
		"LOG_LEVEL":             "debug",
		"GAP_THRESHOLD_SECONDS": "30",
		"DOCKED_RADIUS_KM":      "2.5",
		"RATE_LIMIT_PER_MINUTE": "0",
		"MAX_UPLOAD_MB":         "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.GapThreshold)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.Equal(t, int64(1<<20), cfg.MaxUploadBytes)

	opts := cfg.AnalysisOptions()
	assert.Equal(t, 30*time.Second, opts.Segment.GapThreshold)
	assert.Equal(t, 2.5, opts.Thresholds.DockedKm)
	assert.Equal(t, 10.0, opts.Thresholds.ManeuveringKm)
	assert.Equal(t, 3.0, opts.DepartureRadiusKm)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"not a number", map[string]string{"DOCKED_RADIUS_KM": "four"}, "invalid DOCKED_RADIUS_KM"},
		{"negative radius", map[string]string{"PORT_TAG_RADIUS_KM": "-1"}, "must not be negative"},
		{"bad integer", map[string]string{"MAX_UPLOAD_MB": "1.5"}, "invalid MAX_UPLOAD_MB"},
		{"zero upload", map[string]string{"MAX_UPLOAD_MB": "0"}, "MAX_UPLOAD_MB must be positive"},
		{"negative rate", map[string]string{"RATE_LIMIT_PER_MINUTE": "-3"}, "RATE_LIMIT_PER_MINUTE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(env(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCatalog(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	path := filepath.Join(t.TempDir(), "ports.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Gibraltar","lat":36.14,"lon":-5.35}]`), 0o644))
	cfg.PortsFile = path

	cat, err = cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	cfg.PortsFile = filepath.Join(t.TempDir(), "missing.json")
	_, err = cfg.Catalog()
	assert.Error(t, err)
}
