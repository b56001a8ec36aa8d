// Package zlog adapts a zerolog.Logger to the learninglogs.Logger interface.
package zlog

import (
	"github.com/rs/zerolog"

	"github.com/learninglogs/learninglogs"
)

// Logger writes learninglogs diagnostics through zerolog.
type Logger struct {
	log zerolog.Logger
}

var _ learninglogs.Logger = (*Logger)(nil)

// New wraps l.
func New(l zerolog.Logger) *Logger {
	return &Logger{log: l}
}

// Debugf implements learninglogs.Logger.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Infof implements learninglogs.Logger.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Warnf implements learninglogs.Logger.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Errorf implements learninglogs.Logger.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}
