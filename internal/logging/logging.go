// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hawarnekar/pyquiz/internal/config"
)

// Options control where log lines go.
type Options struct {
	// Console receives human or JSON lines. Defaults to stderr.
	Console io.Writer

	// Quiet raises the console threshold to warn. The TUI sets it because
	// it owns the terminal; the file sink, if any, keeps the configured
	// level.
	Quiet bool
}

// New builds a logger from cfg: a console core, plus a rotating file core
// when log.file is set. The console encoder is JSON in production.
func New(cfg config.LogConfig, env string, opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	if env == config.EnvProduction {
		consoleEncoder = zapcore.NewJSONEncoder(encoderConfig)
	}
	consoleLevel := zapcore.LevelEnabler(level)
	if opts.Quiet && level < zapcore.WarnLevel {
		consoleLevel = zapcore.WarnLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), consoleLevel),
	}
	if cfg.File != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)), nil
}
