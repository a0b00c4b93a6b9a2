// Package logging builds the zap logger of the openinghours command.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fuinorg/objects4go/errors"
)

// Formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New creates a logger writing to w. level is one of debug, info, warn or
// error and format is console or json.
func New(w io.Writer, level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.InvalidArgument("log.level", level, "expected debug, info, warn or error")
	}

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.LineEnding = "\n"

	// no stack trace
	config.StacktraceKey = ""

	var encoder zapcore.Encoder
	switch format {
	case FormatConsole:
		encoder = zapcore.NewConsoleEncoder(config)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(config)
	default:
		return nil, errors.InvalidArgument("log.format", format, "expected console or json")
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core, zap.AddCaller()), nil
}
