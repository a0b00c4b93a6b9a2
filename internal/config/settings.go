package config

import (
	"github.com/fuinorg/objects4go/validation"
)

// Settings is the typed view of a Config used by the command.
type Settings struct {
	LogLevel     string `json:"log.level" validate:"required,oneof=debug info warn error"`
	LogFormat    string `json:"log.format" validate:"required,oneof=console json"`
	OutputFormat string `json:"output.format" validate:"required,oneof=text json yaml xml"`
	Compress     bool   `json:"output.compress"`
}

// Settings validates the configuration and returns its typed view.
func (c *Config) Settings(engine *validation.Engine) (Settings, error) {
	if err := c.Validate(KeyLogLevel, KeyLogFormat, KeyOutputFormat); err != nil {
		return Settings{}, err
	}
	s := Settings{
		LogLevel:     c.GetString(KeyLogLevel),
		LogFormat:    c.GetString(KeyLogFormat),
		OutputFormat: c.GetString(KeyOutputFormat),
		Compress:     c.GetBool(KeyOutputCompress),
	}
	if err := engine.Struct(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
