package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig([]string{})
	require.NoError(t, err)

	assert.Equal(t, "./pomodoros.db", cfg.DBPath)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 100, cfg.PageSize)
	assert.Equal(t, 13000, cfg.Goal)
	assert.Equal(t, 100, cfg.RateLimit)
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := LoadConfig([]string{
		"--db-path", "/tmp/work.db",
		"--timezone", "Europe/Berlin",
		"--port", "8080",
		"--page-size", "25",
		"--goal", "500",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/work.db", cfg.DBPath)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 500, cfg.Goal)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("POMO_DB_PATH", "/tmp/env.db")
	t.Setenv("POMO_PAGE_SIZE", "10")

	cfg, err := LoadConfig([]string{})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("POMO_PORT", "9999")

	cfg, err := LoadConfig([]string{"--port", "8080"})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadConfig_RejectsNonPositiveNumerics(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero page size", []string{"--page-size", "0"}},
		{"negative page size", []string{"--page-size", "-5"}},
		{"zero goal", []string{"--goal", "0"}},
		{"zero rate limit", []string{"--rate-limit", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}
