// Package logging builds the engine's structured logger from config.Config,
// following the teacher's zap construction idiom minus the HTTP-specific
// middleware (this engine has no HTTP surface; see §6).
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.xesthora.dev/xesthora/internal/config"
)

// New builds a *zap.Logger from cfg.LogLevel/cfg.LogFormat, defaulting to
// info/console on an unparseable level.
func New(cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()

	switch cfg.LogFormat {
	case "json":
		zapCfg.Encoding = "json"
	default:
		zapCfg.Encoding = "console"
	}

	if cfg.LogLevel != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
