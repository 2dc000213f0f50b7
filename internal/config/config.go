// Package config loads the settings of the profiling commands.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned, wrapped with the offending key, when a loaded
// config fails validation.
var ErrInvalid = eris.New("invalid config")

// Config is the root of a profiling command's settings file.
type Config struct {
	Profile  ProfileConfig  `toml:"profile" yaml:"profile"`
	Workload WorkloadConfig `toml:"workload" yaml:"workload"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
}

// ProfileConfig selects what pkg/profile records and where it writes.
type ProfileConfig struct {
	Mode string `toml:"mode" yaml:"mode"` // "cpu", "mem", "allocs" or "off"
	Path string `toml:"path" yaml:"path"`
}

// WorkloadConfig sizes the benchmark loop: Rounds fresh worlds, each running
// Iters passes over Entities entities.
type WorkloadConfig struct {
	Rounds   int `toml:"rounds" yaml:"rounds"`
	Iters    int `toml:"iters" yaml:"iters"`
	Entities int `toml:"entities" yaml:"entities"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Load reads path over the defaults. Files ending in .yaml or .yml are
// parsed as YAML, anything else as TOML. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read config %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Defaults returns the settings used for keys a file leaves out.
func Defaults() *Config {
	return &Config{
		Profile: ProfileConfig{
			Mode: "cpu",
			Path: ".",
		},
		Workload: WorkloadConfig{
			Rounds:   50,
			Iters:    10000,
			Entities: 1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks every setting and returns an ErrInvalid naming the first
// bad key.
func (c *Config) Validate() error {
	switch c.Profile.Mode {
	case "cpu", "mem", "allocs", "off":
	default:
		return eris.Wrapf(ErrInvalid, "profile.mode %q", c.Profile.Mode)
	}
	if c.Workload.Rounds <= 0 {
		return eris.Wrapf(ErrInvalid, "workload.rounds must be positive, got %d", c.Workload.Rounds)
	}
	if c.Workload.Iters <= 0 {
		return eris.Wrapf(ErrInvalid, "workload.iters must be positive, got %d", c.Workload.Iters)
	}
	if c.Workload.Entities <= 0 {
		return eris.Wrapf(ErrInvalid, "workload.entities must be positive, got %d", c.Workload.Entities)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return eris.Wrapf(ErrInvalid, "logging.format %q", c.Logging.Format)
	}
	return nil
}

// Build returns a JSON production logger or a colored console one. An
// unknown level falls back to info.
func (c LoggingConfig) Build() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
