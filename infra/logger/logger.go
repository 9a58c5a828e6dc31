package logger

import corelogger "github.com/campusflow/trafficq/core/logger"

// Logger re-exports the core contract so infra packages need one import.
type Logger = corelogger.Logger

// NopLogger discards everything. Useful as a test double.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns the default component-tagged logger.
func New(component string) Logger {
	return NewZerologLogger(component)
}
