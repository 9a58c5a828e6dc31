// Package logger declares the logging contract the pipeline components
// depend on. Adapters live under infra/logger so core packages stay free of
// logging-backend imports.
package logger

// Logger is implemented by the infra adapters and injected into every
// pipeline component.
type Logger interface {
	// Debugf and Debugw emit at debug level; Debugw attaches structured
	// fields to the entry.
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)

	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
