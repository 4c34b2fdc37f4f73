// Package logging builds the application's zap logger and carries it through
// contexts.
package logging

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

// Config selects the logger's encoding and destinations.
type Config struct {
	// Development switches to a colored console encoder on stdout.
	Development bool   `yaml:"development"`
	Level       string `yaml:"level"`
	// File additionally writes JSON lines to the given path.
	File string `yaml:"file"`
}

var rootLogger = zap.NewNop()

// New builds a logger from cfg. The returned close func syncs the logger and
// closes the log file, if any.
func New(cfg Config) (*zap.Logger, func() error, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, errors.Wrapf(err, "log level %q", cfg.Level)
		}
	}
	filter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})

	var cores []zapcore.Core
	if cfg.Development {
		consoleCfg := zap.NewDevelopmentEncoderConfig()
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), filter))
	} else {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.Lock(os.Stderr), filter))
	}

	var logfile *os.File
	if cfg.File != "" {
		var err error
		logfile, err = os.OpenFile(cfg.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.Lock(logfile), filter))
	}

	l := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		// Syncing stdout/stderr fails on some terminals; only the file matters.
		_ = l.Sync()
		if logfile == nil {
			return nil
		}
		err := logfile.Close()
		logfile = nil
		return errors.Wrap(err, "close log file")
	}
	return l, closeFn, nil
}

// SetRoot replaces the logger returned by From for contexts without one.
func SetRoot(l *zap.Logger) {
	rootLogger = l
}

// With returns a copy of ctx carrying l.
func With(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return rootLogger
	}
	return l.(*zap.Logger)
}
