package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vars = []string{
	"ZBEACON_DATA_DIR",
	"ZBEACON_NICKNAMES_FILE",
	"ZBEACON_MIN_NICKNAME_WEIGHT",
	"ZBEACON_EMAIL_SERVICES",
	"ZBEACON_LOG_LEVEL",
	"ZBEACON_LOG_FORMAT",
}

// clearEnv unsets every zbeacon variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/tmp/xdg", "zbeacon"), cfg.DataDir)
	assert.Empty(t, cfg.NicknamesFile)
	assert.Zero(t, cfg.MinNicknameWeight)
	assert.Empty(t, cfg.EmailServices)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.LogFormat)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("ZBEACON_DATA_DIR", "/srv/zbeacon")
	t.Setenv("ZBEACON_NICKNAMES_FILE", "/srv/names.csv")
	t.Setenv("ZBEACON_MIN_NICKNAME_WEIGHT", "0.5")
	t.Setenv("ZBEACON_EMAIL_SERVICES", "gmail.com,mi6.gov.uk")
	t.Setenv("ZBEACON_LOG_LEVEL", "debug")
	t.Setenv("ZBEACON_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/zbeacon", cfg.DataDir)
	assert.Equal(t, "/srv/names.csv", cfg.NicknamesFile)
	assert.InDelta(t, 0.5, cfg.MinNicknameWeight, 1e-9)
	assert.Equal(t, []string{"gmail.com", "mi6.gov.uk"}, cfg.EmailServices)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "ZBEACON_DATA_DIR=/from/file\nZBEACON_LOG_LEVEL=warn\n")
	t.Cleanup(func() {
		os.Unsetenv("ZBEACON_DATA_DIR")
		os.Unsetenv("ZBEACON_LOG_LEVEL")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.DataDir)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ZBEACON_DATA_DIR", "/from/env")
	path := writeEnv(t, "ZBEACON_DATA_DIR=/from/file\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)
}

func TestLoadMissingNamedFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"log level", "ZBEACON_LOG_LEVEL", "loud"},
		{"log format", "ZBEACON_LOG_FORMAT", "xml"},
		{"weight not a number", "ZBEACON_MIN_NICKNAME_WEIGHT", "heavy"},
		{"negative weight", "ZBEACON_MIN_NICKNAME_WEIGHT", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/bond")
	assert.Equal(t, filepath.Join("/home/bond", ".local", "share", "zbeacon"), DefaultDataDir())

	t.Setenv("XDG_DATA_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "zbeacon"), DefaultDataDir())
}
