package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the console logger for diagnostics on stderr. Command
// results go to stdout through fmt; the logger only carries progress and
// debugging detail.
func newLogger() *zap.Logger {
	if getBoolWithFallback("quiet", "quiet", false) {
		return zap.NewNop()
	}

	level := zapcore.InfoLevel
	if getBoolWithFallback("verbose", "verbose", false) {
		level = zapcore.DebugLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if getBoolWithFallback("color", "color", false) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
