package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which queries are logged as warnings.
const slowQueryThreshold = 200 * time.Millisecond

// logger sends gorm's log output to zerolog.
//
// Failed queries are logged as errors and slow queries as warnings, all other
// queries on debug level. Missing records are not errors, controllers turn
// them into 404 responses.
type logger struct {
	zerolog.Logger
	level         gorm_logger.LogLevel
	slowThreshold time.Duration
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{
		Logger:        l.With().Str("component", "database").Logger(),
		level:         gorm_logger.Info,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	n := *l
	n.level = level
	return &n
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Info {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Error {
		l.Logger.Error().Msgf(s, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		l.Logger.Error().Err(err).Fields(fields).Msg("query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		l.Logger.Warn().Fields(fields).Msg("slow query")
	default:
		l.Logger.Debug().Fields(fields).Msg("query")
	}
}
