// Package config provides configuration loading and validation for the
// openinghours command.
//
// Values are resolved in this order: explicit Set, environment, file,
// defaults. Nested file sections are flattened into dotted keys, so
//
//	log:
//	  level: debug
//
// is read with GetString("log.level") and overridden by OBJECTS4GO_LOG_LEVEL.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fuinorg/objects4go/codec"
	"github.com/fuinorg/objects4go/errors"
)

// EnvPrefix is the prefix of environment variables read by LoadEnv.
const EnvPrefix = "OBJECTS4GO"

// Configuration keys.
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyOutputFormat   = "output.format"
	KeyOutputCompress = "output.compress"
)

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyLogLevel:       "info",
		KeyLogFormat:      "console",
		KeyOutputFormat:   "text",
		KeyOutputCompress: false,
	}
}

// Config holds configuration values.
type Config struct {
	values   map[string]any
	env      map[string]any
	file     map[string]any
	defaults map[string]any
}

// New creates a new empty Config.
func New() *Config {
	return &Config{
		values:   make(map[string]any),
		env:      make(map[string]any),
		file:     make(map[string]any),
		defaults: make(map[string]any),
	}
}

// Load builds the configuration from the defaults, an optional file and
// the OBJECTS4GO_* environment.
func Load(path string) (*Config, error) {
	c := New().WithDefaults(Defaults())
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return c.LoadEnv(EnvPrefix), nil
}

// WithDefaults sets default values.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	for k, v := range defaults {
		c.defaults[k] = v
	}
	return c
}

// LoadFile loads configuration from a JSON or YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	var values map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		values, err = codec.DecodeYAML[map[string]any](data)
	case ".json":
		values, err = codec.DecodeJSON[map[string]any](data)
	default:
		return errors.InvalidArgument("path", path, "config file must end in .yaml, .yml or .json")
	}
	if err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path).WithDetail(errors.DetailValue, path)
	}

	flatten("", values, c.file)
	return nil
}

// flatten copies nested maps into out using dotted keys.
func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// LoadEnv loads configuration from environment variables with prefix.
func (c *Config) LoadEnv(prefix string) *Config {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" && !strings.HasPrefix(key, prefix+"_") {
			continue
		}
		// Convert PREFIX_LOG_LEVEL to log.level
		configKey := strings.ToLower(strings.ReplaceAll(
			strings.TrimPrefix(key, prefix+"_"), "_", "."))
		c.env[configKey] = value
	}
	return c
}

// Set sets a configuration value.
func (c *Config) Set(key string, value any) {
	c.values[key] = value
}

// Get returns a configuration value.
func (c *Config) Get(key string) (any, bool) {
	for _, layer := range []map[string]any{c.values, c.env, c.file, c.defaults} {
		if v, ok := layer[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetString returns a string configuration value.
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetBool returns a bool configuration value.
func (c *Config) GetBool(key string) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1" || val == "yes"
	}
	return false
}

// DetailMissingKeys is the error detail listing absent required keys.
const DetailMissingKeys = "missingKeys"

// Validate checks that required keys are present. A failure is a
// VALIDATION_ERROR whose DetailMissingKeys detail lists every absent key.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if _, ok := c.Get(key); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return errors.Validationf("missing required config keys: %s", strings.Join(missing, ", ")).
			WithDetail(DetailMissingKeys, missing)
	}
	return nil
}

// All returns all configuration values.
func (c *Config) All() map[string]any {
	result := make(map[string]any)
	for _, layer := range []map[string]any{c.defaults, c.file, c.env, c.values} {
		for k, v := range layer {
			result[k] = v
		}
	}
	return result
}
