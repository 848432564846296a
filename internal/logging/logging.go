// Package logging builds the zap logger used by every command.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petrotech/petrotech/internal/config"
)

// Options adjust logger construction for the running command.
type Options struct {
	// Interactive disables stderr output, which would corrupt the
	// terminal browser's screen. A configured log file is still written.
	Interactive bool
	// Verbose forces debug level.
	Verbose bool
}

// New builds a logger from cfg. JSON format uses zap's production encoder;
// console format uses the development encoder without stack traces on
// warnings.
func New(cfg config.LogConfig, opts Options) (*zap.Logger, error) {
	if opts.Interactive && cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if opts.Verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.DisableStacktrace = true
		zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	zc.Level = level

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("petrotech"), nil
}
