// Package logger builds the process-wide zap logger from viper settings.
package logger

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels, in the integer encoding read from LOG_LEVEL.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

// ErrBadLevel indicates a LOG_LEVEL outside [DEBUG_LEVEL, ERROR_LEVEL].
var ErrBadLevel = errors.New("logger: level out of range")

// Configuration is the logger's resolved settings.
type Configuration struct {
	Level      int
	TimeFormat string
}

// Validate checks the level range and that TimeFormat is set.
func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("%w: %d", ErrBadLevel, c.Level)
	}
	if c.TimeFormat == "" {
		return errors.New("logger: empty time format")
	}
	return nil
}

// New reads LOG_LEVEL and LOG_TIME_FORMAT from viper (defaults: info and
// RFC3339Nano) and returns a JSON production logger.
func New() (*zap.Logger, error) {
	viper.SetDefault("LOG_LEVEL", INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	cfg := Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return Build(cfg)
}

// Build constructs the logger for an already validated configuration.
func Build(cfg Configuration) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zc.DisableStacktrace = cfg.Level > DEBUG_LEVEL

	return zc.Build()
}
