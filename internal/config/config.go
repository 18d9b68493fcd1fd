// Package config resolves CLI settings from defaults, an optional YAML file,
// the environment (with .env support) and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermo/temperature"
)

// Environment variable names.
const (
	EnvConfig          = "THERMO_CONFIG"
	EnvLogFile         = "THERMO_LOG_FILE"
	EnvLogLevel        = "THERMO_LOG_LEVEL"
	EnvSeed            = "THERMO_SEED"
	EnvWorkers         = "THERMO_WORKERS"
	EnvBracketLo       = "THERMO_BRACKET_LO"
	EnvBracketHi       = "THERMO_BRACKET_HI"
	EnvMethod          = "THERMO_METHOD"
	EnvMetricsTextfile = "THERMO_METRICS_TEXTFILE"
)

// Config holds all configuration values.
type Config struct {
	// Logging; an empty LogFile means stderr only.
	LogFile  string     `yaml:"log_file"`
	LogLevel slog.Level `yaml:"-"`
	Level    string     `yaml:"log_level"`

	// Estimator defaults.
	Seed      int64   `yaml:"seed"`
	Workers   int     `yaml:"workers"`
	BracketLo float64 `yaml:"bracket_lo"`
	BracketHi float64 `yaml:"bracket_hi"`
	Method    string  `yaml:"method"`

	// MetricsTextfile, when set, receives a Prometheus text dump after each run.
	MetricsTextfile string `yaml:"metrics_textfile"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  slog.LevelInfo,
		Level:     "INFO",
		BracketLo: temperature.DefaultBracketLo,
		BracketHi: temperature.DefaultBracketHi,
		Method:    temperature.MethodBisect.String(),
	}
}

// Load reads .env (if present), then the YAML file named by path or
// THERMO_CONFIG (if any), then environment variables. Later sources win.
func Load(path string) (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = ParseLogLevel(cfg.Level)
	if _, err := cfg.ParsedMethod(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParsedMethod returns Method as a temperature.Method.
func (c Config) ParsedMethod() (temperature.Method, error) {
	m, err := temperature.ParseMethod(c.Method)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return m, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	c.LogFile = getEnv(EnvLogFile, c.LogFile)
	c.Level = getEnv(EnvLogLevel, c.Level)
	c.Method = getEnv(EnvMethod, c.Method)
	c.MetricsTextfile = getEnv(EnvMetricsTextfile, c.MetricsTextfile)

	var errs []error
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		errs = append(errs, envErr(EnvSeed, err))
		c.Seed = n
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		errs = append(errs, envErr(EnvWorkers, err))
		c.Workers = n
	}
	if v, ok := os.LookupEnv(EnvBracketLo); ok && v != "" {
		x, err := strconv.ParseFloat(v, 64)
		errs = append(errs, envErr(EnvBracketLo, err))
		c.BracketLo = x
	}
	if v, ok := os.LookupEnv(EnvBracketHi); ok && v != "" {
		x, err := strconv.ParseFloat(v, 64)
		errs = append(errs, envErr(EnvBracketHi, err))
		c.BracketHi = x
	}
	return errors.Join(errs...)
}

func envErr(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("config: %s: %w", key, err)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// ParseLogLevel maps DEBUG/INFO/WARN/ERROR to a slog level, INFO otherwise.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
