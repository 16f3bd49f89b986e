// SPDX-License-Identifier: MIT

// Package config resolves the run configuration for mstprim from defaults, an
// optional YAML file and MSTPRIM_* environment variables. Command-line flags
// are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvInput     = "MSTPRIM_INPUT"
	EnvOutput    = "MSTPRIM_OUTPUT"
	EnvLogLevel  = "MSTPRIM_LOG_LEVEL"
	EnvLogFormat = "MSTPRIM_LOG_FORMAT"
	EnvRoot      = "MSTPRIM_ROOT"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all run configuration values.
type Config struct {
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	Root       int    `yaml:"root"`
}

// Default returns the built-in configuration: no paths, info level, text
// logs, root 0.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: FormatText,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then the environment. The result is not validated;
// call Validate after applying flags.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.InputPath != "" {
		c.InputPath = fc.InputPath
	}
	if fc.OutputPath != "" {
		c.OutputPath = fc.OutputPath
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	if fc.Root != 0 {
		c.Root = fc.Root
	}

	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInput); ok && v != "" {
		c.InputPath = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.OutputPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookup(EnvRoot); ok && v != "" {
		root, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", ErrInvalid, EnvRoot)
		}
		c.Root = root
	}

	return nil
}

// Validate checks the log level, log format and root.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("%w: log format must be %q or %q", ErrInvalid, FormatText, FormatJSON)
	}

	if c.Root < 0 {
		return fmt.Errorf("%w: root must not be negative", ErrInvalid)
	}

	return nil
}

// Level returns the parsed logrus level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// NewLogger returns a logrus logger configured from c.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(c.Level())
	if c.LogFormat == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return log
}
