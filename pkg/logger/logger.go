// Package logger provides the diagnostic logger for promptlab. Diagnostics go
// to stderr so they never interleave with the chat transcript on stdout.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the chat logger on stderr. Debug enables debug level;
// otherwise only warnings and errors are emitted.
func NewLogger(debug bool) *zap.Logger {
	return New(os.Stderr, levelFor(debug, zap.WarnLevel))
}

// NewServerLogger returns a logger on stderr for long-running servers, which
// report lifecycle events at info level.
func NewServerLogger(debug bool) *zap.Logger {
	return New(os.Stderr, levelFor(debug, zap.InfoLevel))
}

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var opts []zap.Option
	if level == zap.DebugLevel {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core, opts...)
}

func levelFor(debug bool, quiet zapcore.Level) zapcore.Level {
	if debug {
		return zap.DebugLevel
	}
	return quiet
}
