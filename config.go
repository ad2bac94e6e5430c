package lazyconf

import (
	"bytes"
	goerrors "errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lazyconf/lazyconf-go/internal/errors"
	"github.com/lazyconf/lazyconf-go/value"
)

// Config holds the tunable settings of an Environment.
//
// A Config is usually loaded from YAML:
//
//	extend_threshold: 100
//	fuel: 100000
//	log_level: debug
//	debug: true
type Config struct {
	// ExtendThreshold is the combined length above which array
	// concatenation builds a view instead of copying.
	ExtendThreshold int `yaml:"extend_threshold"`

	// Fuel limits the number of builtin and function calls a single
	// evaluation may make. Zero disables the limit.
	Fuel uint64 `yaml:"fuel"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Debug records the builtin call path on errors.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the settings used by NewEnvironment.
func DefaultConfig() Config {
	return Config{
		ExtendThreshold: value.DefaultExtendThreshold,
		LogLevel:        "info",
	}
}

// ParseConfig parses a YAML document into a Config. Settings missing from
// the document keep their default value; unknown settings are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !goerrors.Is(err, io.EOF) {
		return Config{}, errors.NewError(errors.ErrBadConfig, "cannot parse config").WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Errorf(errors.ErrBadConfig, "cannot read %s", path).WithCause(err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.WithName(path)
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	if c.ExtendThreshold < 0 {
		return errors.Errorf(errors.ErrBadConfig,
			"extend_threshold must not be negative, got %d", c.ExtendThreshold)
	}
	if _, ok := parseLogLevel(c.LogLevel); !ok {
		return errors.Errorf(errors.ErrBadConfig, "unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	level, _ := parseLogLevel(c.LogLevel)
	return level
}

func parseLogLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
