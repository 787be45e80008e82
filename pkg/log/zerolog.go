package log

import (
	"context"
	"fmt"
	"io"

	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	zl    zerolog.Logger
	level Level
}

// NewZerologLogger creates a Logger writing JSON lines to w.
//
// Example:
//
//	logger := log.NewZerologLogger(os.Stderr, log.LevelInfo)
//	log.SetLogger(logger)
//	log.InstallZerologWarnings(logger)
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl, level: level}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (z *ZerologLogger) Debug(msg string, fields ...any) {
	z.zl.Debug().Fields(normalizeFields(fields)).Msg(msg)
}

func (z *ZerologLogger) Info(msg string, fields ...any) {
	z.zl.Info().Fields(normalizeFields(fields)).Msg(msg)
}

func (z *ZerologLogger) Warn(msg string, fields ...any) {
	z.zl.Warn().Fields(normalizeFields(fields)).Msg(msg)
}

// Error logs at error level. A leading error value is attached with Err, and
// errors that know how to marshal themselves are embedded as objects.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	ev := z.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = ev.Err(err)
			var m zerolog.LogObjectMarshaler
			if errors.As(err, &m) {
				ev = ev.EmbedObject(m)
			}
			fields = fields[1:]
		}
	}
	ev.Fields(normalizeFields(fields)).Msg(msg)
}

func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{
		zl:    z.zl.With().Fields(normalizeFields(fields)).Logger(),
		level: z.level,
	}
}

func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= z.level
}

// InstallZerologWarnings routes errors.Warn through l. Warning types that
// implement zerolog.LogObjectMarshaler are logged with their structured fields.
func InstallZerologWarnings(l *ZerologLogger) {
	errors.SetZerologWarnFunc(func(w error) {
		ev := l.zl.Warn()
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(w.Error())
	})
}

// normalizeFields turns alternating key-value pairs into the []interface{}
// form zerolog accepts, stringifying keys and dropping a dangling key.
func normalizeFields(fields []any) []interface{} {
	out := make([]interface{}, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		out = append(out, key, fields[i+1])
	}
	return out
}
