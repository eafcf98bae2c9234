// Package logging builds the zap logger handed to the contacts directory.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// New returns a zap logger for cfg. Production format emits JSON; development
// format emits console lines. The level comes from cfg.LogLevel.
func New(cfg types.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrLogLevelUnknown, cfg.LogLevel)
	}

	var zc zap.Config
	switch cfg.LogFormat {
	case types.LogFormatProduction:
		zc = zap.NewProductionConfig()
	case types.LogFormatDevelopment:
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrLogFormatUnknown, cfg.LogFormat)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.Named("contacts"), nil
}
