package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	kerrors "github.com/PolarWolf314/gpglog/internal/errors"
	"github.com/PolarWolf314/gpglog/internal/logging"
)

// DefaultConfigName is the file looked up in the working directory when no
// --config flag is given.
const DefaultConfigName = "gpglog.toml"

type Config struct {
	Logging LoggingConfig `toml:"logging"`
}

type LoggingConfig struct {
	Level     Level                  `toml:"level"`
	Directory string                 `toml:"directory,omitempty"`
	BaseName  string                 `toml:"base_name,omitempty"`
	Colors    map[string]ColorConfig `toml:"colors,omitempty"`
}

// ColorConfig overrides the console colors of one severity.
type ColorConfig struct {
	Background string `toml:"background,omitempty"`
	Foreground string `toml:"foreground,omitempty"`
	Bold       bool   `toml:"bold"`
}

// Level is a severity written in TOML either as a name or as an integer.
type Level logging.Severity

// UnmarshalTOML implements toml.Unmarshaler.
func (l *Level) UnmarshalTOML(v interface{}) error {
	switch val := v.(type) {
	case int64:
		*l = Level(val)
	case string:
		sev, err := logging.ParseSeverity(val)
		if err != nil {
			return err
		}
		*l = Level(sev)
	default:
		return fmt.Errorf("%w: level must be a name or an integer, got %T", kerrors.ErrInvalidSeverity, v)
	}
	return nil
}

// MarshalText writes the level name, or the bare number for unnamed levels.
func (l Level) MarshalText() ([]byte, error) {
	name := logging.Severity(l).String()
	if _, err := logging.ParseSeverity(name); err != nil {
		name = strconv.Itoa(int(l))
	}
	return []byte(name), nil
}

// Severity returns the level as a logging.Severity.
func (l Level) Severity() logging.Severity {
	return logging.Severity(l)
}

// DefaultConfig returns logging disabled with the standard file name.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    Level(logging.DisabledLevel),
			BaseName: logging.DefaultBaseName,
		},
	}
}

// FindConfig returns the path of gpglog.toml in dir, or "" if there is none.
func FindConfig(dir string) string {
	path := filepath.Join(dir, DefaultConfigName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}

// LoadConfig reads path on top of DefaultConfig. An empty path yields the
// defaults; a path that does not exist is an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigNotFound, path)
	}

	if err := LoadTOMLStrict(path, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrInvalidConfig, path, err)
	}

	if _, err := config.Logging.ColorMap(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrInvalidConfig, path, err)
	}

	return config, nil
}

// SaveConfig writes config to path.
func SaveConfig(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ColorMap converts the [logging.colors] table, keyed by level name or
// number, into a palette override.
func (c LoggingConfig) ColorMap() (logging.ColorMap, error) {
	if len(c.Colors) == 0 {
		return nil, nil
	}

	m := make(logging.ColorMap, len(c.Colors))
	for key, cc := range c.Colors {
		sev, err := logging.ParseSeverity(key)
		if err != nil {
			return nil, err
		}
		spec := logging.ColorSpec{Background: cc.Background, Foreground: cc.Foreground, Bold: cc.Bold}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("colors.%s: %w", key, err)
		}
		m[sev] = spec
	}
	return m, nil
}

// Options translates the config into logging.New options.
func (c LoggingConfig) Options() ([]logging.Option, error) {
	var opts []logging.Option
	if c.Directory != "" {
		opts = append(opts, logging.WithDirectory(c.Directory))
	}
	if c.BaseName != "" {
		opts = append(opts, logging.WithBaseName(c.BaseName))
	}

	colors, err := c.ColorMap()
	if err != nil {
		return nil, err
	}
	if colors != nil {
		opts = append(opts, logging.WithColors(colors))
	}
	return opts, nil
}
