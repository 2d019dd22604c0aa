// Package log holds the process-wide zap logger. Logs go to stderr so that
// stdout only carries results.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	SetLogger(false, zapcore.AddSync(os.Stderr))
}

// Logger get current logger
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the current logger. Results are printed on stdout, so
// logs always go to w (normally stderr). Debug enables debug level output.
func SetLogger(debug bool, w zapcore.WriteSyncer) {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999999")
	level := zap.WarnLevel
	if debug {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, level)
	logger = zap.New(core)
}

// CloseLogger flushes and silences the logger.
func CloseLogger() {
	_ = logger.Sync()
	logger = zap.NewNop()
}
