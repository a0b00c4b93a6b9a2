// Package cli implements the openinghours command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fuinorg/objects4go/codec"
	"github.com/fuinorg/objects4go/domain"
	"github.com/fuinorg/objects4go/errors"
	"github.com/fuinorg/objects4go/hours"
	"github.com/fuinorg/objects4go/internal/config"
	"github.com/fuinorg/objects4go/internal/logging"
	"github.com/fuinorg/objects4go/validation"
)

// app carries what every command needs once the root flags are resolved.
type app struct {
	stderr io.Writer

	configPath string
	logLevel   string
	output     string
	compress   bool

	settings config.Settings
	engine   *validation.Engine
	codec    codec.Codec
	logger   *zap.Logger
}

// NewRootCommand creates the command tree. Results go to stdout, logs to
// stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "openinghours",
		Short: "Validate, normalize, compress and compare weekly opening hours",
		Long: `openinghours works on weekly schedules written as comma separated
"<days> <ranges>" segments, e.g. "Mon-Fri 09:00-12:00+13:00-17:00,Sat 10:00-14:00".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (.yaml, .yml or .json)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml or xml")
	flags.BoolVar(&a.compress, "compress", false, "print schedules in compressed form")

	root.AddCommand(
		a.validateCommand(),
		a.normalizeCommand(),
		a.compressCommand(),
		a.diffCommand(),
		a.openAtCommand(),
		a.similarCommand(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger, validation engine and output codec.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Set(config.KeyLogLevel, a.logLevel)
	}
	if flags.Changed("output") {
		cfg.Set(config.KeyOutputFormat, a.output)
	}
	if flags.Changed("compress") {
		cfg.Set(config.KeyOutputCompress, a.compress)
	}

	a.engine = validation.NewEngine()
	if err := hours.RegisterValidations(a.engine); err != nil {
		return err
	}
	if err := domain.RegisterValidations(a.engine); err != nil {
		return err
	}

	a.settings, err = cfg.Settings(a.engine)
	if err != nil {
		return err
	}
	a.logger, err = logging.New(a.stderr, a.settings.LogLevel, a.settings.LogFormat)
	if err != nil {
		return err
	}
	format, err := codec.ParseFormat(a.settings.OutputFormat)
	if err != nil {
		return err
	}
	a.codec, err = codec.New(format)
	if err != nil {
		return err
	}

	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.Any("settings", a.settings))
	return nil
}

// run wraps a command body so that failures are logged with the command
// name before they reach Execute.
func (a *app) run(body func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := body(cmd, args)
		if err != nil {
			a.logger.Error("command failed",
				zap.String("command", cmd.Name()),
				zap.String("code", string(errors.GetCode(err))),
				zap.Error(err),
				zap.NamedError("cause", errors.RootCause(err)))
		}
		return err
	}
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
