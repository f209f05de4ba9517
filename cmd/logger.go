package cmd

import (
	"fmt"

	"github.com/jensneuse/abstractlogger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (abstractlogger.Logger, func(), error) {
	var (
		zapLevel zapcore.Level
		logLevel abstractlogger.Level
	)
	switch level {
	case "debug":
		zapLevel, logLevel = zapcore.DebugLevel, abstractlogger.DebugLevel
	case "info", "":
		zapLevel, logLevel = zapcore.InfoLevel, abstractlogger.InfoLevel
	case "warn":
		zapLevel, logLevel = zapcore.WarnLevel, abstractlogger.WarnLevel
	case "error":
		zapLevel, logLevel = zapcore.ErrorLevel, abstractlogger.ErrorLevel
	default:
		return nil, nil, fmt.Errorf("unknown log level: %s", level)
	}

	config := zap.NewProductionConfig()
	if zapLevel == zapcore.DebugLevel {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, err
	}
	return abstractlogger.NewZapLogger(logger, logLevel), func() {
		_ = logger.Sync() // nolint
	}, nil
}
