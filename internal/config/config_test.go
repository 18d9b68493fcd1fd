package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermo/temperature"
)

// clearEnv isolates a test from the caller's THERMO_* variables.
func clearEnv(t *testing.T) {
	for _, k := range []string{EnvConfig, EnvLogFile, EnvLogLevel, EnvSeed, EnvWorkers,
		EnvBracketLo, EnvBracketHi, EnvMethod, EnvMetricsTextfile} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir()) // no stray .env
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	m, err := cfg.ParsedMethod()
	require.NoError(t, err)
	assert.Equal(t, temperature.MethodBisect, m)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "thermo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\nworkers: 2\nbracket_hi: 50\nmethod: newton\nlog_level: debug\n"), 0o600))
	t.Setenv(EnvWorkers, "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 50.0, cfg.BracketHi)
	assert.Equal(t, temperature.DefaultBracketLo, cfg.BracketLo)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	m, err := cfg.ParsedMethod()
	require.NoError(t, err)
	assert.Equal(t, temperature.MethodNewton, m)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics_textfile: /tmp/x.prom\n"), 0o600))
	t.Setenv(EnvConfig, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.prom", cfg.MetricsTextfile)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("THERMO_SEED=42\n"), 0o600))
	// godotenv never overrides variables that are already set, even empty ones.
	require.NoError(t, os.Unsetenv(EnvSeed))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	require.NoError(t, os.Unsetenv(EnvSeed))
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv(EnvSeed, "abc")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSeed)

	t.Setenv(EnvSeed, "")
	t.Setenv(EnvMethod, "golden")
	_, err = Load("")
	require.ErrorIs(t, err, temperature.ErrUnknownMethod)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	l := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	l.Info("estimate", "temperature", 0.2)
	l.Debug("hidden")
	assert.Contains(t, stderr.String(), "msg=estimate")
	assert.Contains(t, file.String(), `"temperature":0.2`)
	assert.NotContains(t, stderr.String(), "hidden")
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermo.log")
	l, cleanup := SetupLogger(path, slog.LevelInfo)
	l.Info("hello")
	require.NoError(t, cleanup())
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)
}
