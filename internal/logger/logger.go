package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type implLogger struct {
	sugar *zap.SugaredLogger
}

// Options controls logger construction. An empty OutputPath disables the
// rotated file sink and logs to stderr only.
type Options struct {
	Level      string
	OutputPath string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a Logger writing human-readable lines to stderr and, when
// OutputPath is set, JSON lines to a rotated log file.
func New(opts Options) Logger {
	level := parseLevel(opts.Level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)

	core := consoleCore
	if opts.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0755); err == nil {
			fileWriter := zapcore.AddSync(&lumberjack.Logger{
				Filename:   opts.OutputPath,
				MaxSize:    orDefault(opts.MaxSizeMB, 50),
				MaxBackups: orDefault(opts.MaxBackups, 3),
				MaxAge:     orDefault(opts.MaxAgeDays, 30),
			})
			fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fileWriter, level)
			core = zapcore.NewTee(consoleCore, fileCore)
		}
	}

	return &implLogger{sugar: zap.New(core).Sugar()}
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}
