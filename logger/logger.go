// Package logger configures the zap logger used across tsviz.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize    = 20 // megabytes per log file
	maxBackups = 5  // rotated files to retain
	maxAge     = 28 // days to retain rotated files
)

// Setup builds a logger that writes to both the console and a rotated log
// file. Release mode logs JSON at info level; anything else logs in the
// development format at debug level.
func Setup(logFile, mode string) (*zap.Logger, error) {
	if mode == "release" {
		return newProductionLogger(logFile)
	}
	return newDevelopmentLogger(logFile)
}

func fileSyncer(logFile string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	})
}

func newProductionLogger(logFile string) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.DisableCaller = true
	c.DisableStacktrace = true

	return c.Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			fileSyncer(logFile),
			zap.InfoLevel,
		)
		return zapcore.NewTee(core, fileCore)
	}))
}

func newDevelopmentLogger(logFile string) (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()

	return c.Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		fileCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			fileSyncer(logFile),
			zap.DebugLevel,
		)
		return zapcore.NewTee(core, fileCore)
	}))
}
