package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gavinjunior/portfolio-backend/config"
)

// NewLogger builds the process logger: JSON in production, console otherwise.
func NewLogger(app config.AppConfig) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if !app.IsProduction() {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(app.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("env", app.Environment), zap.String("version", app.Version)), nil
}
