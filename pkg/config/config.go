// Package config loads library-wide settings for sketch programs: the
// log level, the default animation policy and a templates file to seed
// the default templates from.
//
// Settings come from an optional sketch.yaml or sketch.toml in the project
// directory, overridden by SKETCH_* environment variables:
//
//	SKETCH_LOG_LEVEL           debug, info, warn or error
//	SKETCH_LOG_FORMAT          text or json
//	SKETCH_LOG_VERBOSE         include stack traces in error records
//	SKETCH_ANIMATION_DURATION  e.g. 250ms
//	SKETCH_ANIMATION_DELAY     e.g. 0s
//	SKETCH_ANIMATION_OPTIONS   e.g. "beginFromCurrentState|easeOut"
//	SKETCH_TEMPLATES           path to a templates file
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sketch/pkg/animation"
	sketcherrors "github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/template"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SKETCH"

// FileNames lists the config files Load looks for, in order.
var FileNames = []string{"sketch.yaml", "sketch.yml", "sketch.toml"}

// Config is the resolved configuration.
type Config struct {
	Log       LogConfig       `yaml:"log" toml:"log" envconfig:"LOG"`
	Animation AnimationConfig `yaml:"animation" toml:"animation" envconfig:"ANIMATION"`
	// Templates is a YAML or TOML templates file merged into the default
	// templates. Relative paths are resolved against the config directory.
	Templates string `yaml:"templates,omitempty" toml:"templates,omitempty" envconfig:"TEMPLATES"`

	// Source is the config file that was read, or "" when none was found.
	Source string `yaml:"-" toml:"-" ignored:"true"`
}

// LogConfig controls error reporting.
type LogConfig struct {
	Level   string `yaml:"level" toml:"level" envconfig:"LEVEL"`
	Format  string `yaml:"format" toml:"format" envconfig:"FORMAT"`
	Verbose bool   `yaml:"verbose" toml:"verbose" envconfig:"VERBOSE"`
}

// AnimationConfig is the default animation policy for new controls.
type AnimationConfig struct {
	Duration Duration          `yaml:"duration" toml:"duration" envconfig:"DURATION"`
	Delay    Duration          `yaml:"delay" toml:"delay" envconfig:"DELAY"`
	Options  animation.Options `yaml:"options" toml:"options" envconfig:"OPTIONS"`
}

// Duration is a time.Duration written as text ("250ms") in config files.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Defaults returns the configuration used when nothing is set: info
// level text logs and the library's built-in animation policy.
func Defaults() *Config {
	p := animation.DefaultPolicy()
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Animation: AnimationConfig{
			Duration: Duration(p.Duration()),
			Delay:    Duration(p.Delay()),
			Options:  p.Options(),
		},
	}
}

// Load reads the first of FileNames present in dir, if any, and then
// applies SKETCH_* environment overrides.
func Load(dir string) (*Config, error) {
	cfg := Defaults()
	if err := cfg.loadFile(dir); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.Templates != "" && !filepath.IsAbs(cfg.Templates) {
		cfg.Templates = filepath.Join(dir, cfg.Templates)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(dir string) error {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if filepath.Ext(name) == ".toml" {
			err = toml.Unmarshal(data, c)
		} else {
			err = yaml.Unmarshal(data, c)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		c.Source = path
		return nil
	}
	return nil
}

// Validate checks the values that cannot be clamped.
func (c *Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.Log.Format)
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// Logger builds a slog.Logger writing to w at the configured level and
// format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Policy returns the configured default animation policy. Negative
// durations are clamped and reported.
func (c *Config) Policy() animation.Policy {
	return animation.NewPolicy(
		time.Duration(c.Animation.Duration),
		time.Duration(c.Animation.Delay),
		c.Animation.Options,
	)
}

// Apply installs the configuration process-wide: errors are logged to w,
// new controls start with the configured animation policy, and the
// templates file, if any, is merged into the default templates. It
// returns the kinds whose default templates were updated.
func (c *Config) Apply(w io.Writer) ([]string, error) {
	sketcherrors.SetHandler(&sketcherrors.LogHandler{Logger: c.Logger(w), Verbose: c.Log.Verbose})
	animation.SetDefaultPolicy(c.Policy())
	if c.Templates == "" {
		return nil, nil
	}
	kinds, err := template.LoadDefaults(c.Templates)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return kinds, nil
}
