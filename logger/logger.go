package logger

import (
	"sync"

	"souk/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// InitLogger builds the process-wide zap logger from configuration.
func InitLogger(appConfig *config.Config) {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		if level, err := zapcore.ParseLevel(appConfig.Log.Level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
}

// GetLogger returns the shared logger, building a default one if InitLogger
// was never called (tests).
func GetLogger() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
