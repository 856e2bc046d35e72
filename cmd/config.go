package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration of the simulator.
// Values come from defaults, then the optional YAML file named by
// CONFIG_FILE, then environment variables.
type Config struct {
	HTTPPort              string        `yaml:"http_port"`
	PackageIntervalMean   time.Duration `yaml:"package_interval_mean"`
	PackageIntervalStdDev time.Duration `yaml:"package_interval_stddev"`
	WatcherInterval       time.Duration `yaml:"watcher_interval"`
	TravelTimeMax         float64       `yaml:"travel_time_max"`
	TravelTimeUnit        time.Duration `yaml:"travel_time_unit"`
	StreamBuffer          int           `yaml:"stream_buffer"`
	NatsURL               string        `yaml:"nats_url"`
	NatsSubjectPrefix     string        `yaml:"nats_subject_prefix"`
	LogLevel              string        `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:              "8080",
		PackageIntervalMean:   services.DefaultIntervalMean,
		PackageIntervalStdDev: services.DefaultIntervalStdDev,
		WatcherInterval:       time.Second,
		TravelTimeMax:         services.DefaultTravelTimeMax,
		TravelTimeUnit:        services.DefaultTravelTimeUnit,
		StreamBuffer:          256,
		NatsSubjectPrefix:     "logistics",
		LogLevel:              "info",
	}
}

// LoadConfig builds the configuration. configFile may be empty; getenv is
// usually os.Getenv.
func LoadConfig(configFile string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	return errors.Join(
		envString(getenv, "HTTP_PORT", &c.HTTPPort),
		envDuration(getenv, "PACKAGE_INTERVAL_MEAN", &c.PackageIntervalMean),
		envDuration(getenv, "PACKAGE_INTERVAL_STDDEV", &c.PackageIntervalStdDev),
		envDuration(getenv, "WATCHER_INTERVAL", &c.WatcherInterval),
		envFloat(getenv, "TRAVEL_TIME_MAX", &c.TravelTimeMax),
		envDuration(getenv, "TRAVEL_TIME_UNIT", &c.TravelTimeUnit),
		envInt(getenv, "STREAM_BUFFER", &c.StreamBuffer),
		envString(getenv, "NATS_URL", &c.NatsURL),
		envString(getenv, "NATS_SUBJECT_PREFIX", &c.NatsSubjectPrefix),
		envString(getenv, "LOG_LEVEL", &c.LogLevel),
	)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.PackageIntervalMean < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("PACKAGE_INTERVAL_MEAN", c.PackageIntervalMean, 0, "inf"))
	}
	if c.PackageIntervalStdDev < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("PACKAGE_INTERVAL_STDDEV", c.PackageIntervalStdDev, 0, "inf"))
	}
	if c.WatcherInterval <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("WATCHER_INTERVAL", c.WatcherInterval, "1ns", "inf"))
	}
	if math.IsNaN(c.TravelTimeMax) || c.TravelTimeMax <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("TRAVEL_TIME_MAX", c.TravelTimeMax, "0 (exclusive)", "inf"))
	}
	if c.TravelTimeUnit <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("TRAVEL_TIME_UNIT", c.TravelTimeUnit, "1ns", "inf"))
	}
	if c.TravelTimeMax > 0 && c.TravelTimeUnit > 0 && !services.TravelTimeFits(c.TravelTimeMax, c.TravelTimeUnit) {
		problems = append(problems, errs.NewValueIsOutOfRangeError("TRAVEL_TIME_MAX", c.TravelTimeMax, "0 (exclusive)",
			fmt.Sprintf("%g at TRAVEL_TIME_UNIT=%s", float64(math.MaxInt64)/float64(c.TravelTimeUnit), c.TravelTimeUnit)))
	}
	if c.PackageIntervalMean >= 0 && c.PackageIntervalStdDev >= 0 &&
		!services.IntervalFits(c.PackageIntervalMean, c.PackageIntervalStdDev) {
		problems = append(problems, errs.NewValueIsOutOfRangeError("PACKAGE_INTERVAL_STDDEV", c.PackageIntervalStdDev, 0,
			"an eighth of the remaining time.Duration range"))
	}
	if c.StreamBuffer < 1 || c.StreamBuffer > 4096 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("STREAM_BUFFER", c.StreamBuffer, 1, 4096))
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// SlogLevel returns the configured log level, info when unparsable.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

func envString(getenv func(string) string, key string, dst *string) error {
	if v := getenv(key); v != "" {
		*dst = v
	}
	return nil
}

func envDuration(getenv func(string) string, key string, dst *time.Duration) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	*dst = d
	return nil
}

func envFloat(getenv func(string) string, key string, dst *float64) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	*dst = f
	return nil
}

func envInt(getenv func(string) string, key string, dst *int) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	*dst = n
	return nil
}
