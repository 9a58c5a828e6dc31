package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// zlog adapts rs/zerolog to the Logger interface. Every entry carries a
// component field so the pipeline stages can be told apart in mixed output.
type zlog struct {
	z zerolog.Logger
}

// NewZerologLogger builds a component-tagged zerolog adapter. APP_ENV=dev
// selects the human-readable console writer; anything else emits JSON.
// TQ_LOG_LEVEL overrides the default info threshold.
func NewZerologLogger(component string) Logger {
	z := zerolog.New(logWriter()).
		Level(logLevel()).
		With().Timestamp().Str("component", component).
		Logger()
	return &zlog{z: z}
}

func logWriter() io.Writer {
	if strings.EqualFold(os.Getenv("APP_ENV"), "dev") {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return os.Stdout
}

func logLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("TQ_LOG_LEVEL")))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *zlog) Debugf(format string, args ...any) { l.z.Debug().Msgf(format, args...) }

func (l *zlog) Debugw(msg string, fields map[string]any) {
	l.z.Debug().Fields(fields).Msg(msg)
}

func (l *zlog) Infof(format string, args ...any) { l.z.Info().Msgf(format, args...) }

func (l *zlog) Warnf(format string, args ...any) { l.z.Warn().Msgf(format, args...) }

func (l *zlog) Errorf(format string, args ...any) { l.z.Error().Msgf(format, args...) }
