package logger

import (
	"log"

	"escrow-deal-service/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MustInit builds the service logger from config. Console encoding for
// local runs, JSON elsewhere.
func MustInit(cfg config.LogConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return logger
}
