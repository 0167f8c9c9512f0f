package logger

import (
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog"
)

type DefaultLogger struct {
	Logger
}

var Default = &DefaultLogger{}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

var urlRegex = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[a-zA-Z0-9+%/.\-:_?&=#@+]+`)

func safeString(format string, v ...any) string {
	s := format
	if len(v) > 0 {
		s = fmt.Sprintf(format, v...)
	}
	if os.Getenv("SAFE_LOGS") == "true" {
		s = urlRegex.ReplaceAllString(s, "[redacted url]")
	}
	return s
}

func (*DefaultLogger) Log(msg string) {
	logger.Info().Msg(safeString(msg))
}

func (*DefaultLogger) Logf(format string, v ...any) {
	logger.Info().Msg(safeString(format, v...))
}

func (*DefaultLogger) Debug(msg string) {
	if os.Getenv("DEBUG") == "true" {
		logger.Debug().Msg(safeString(msg))
	}
}

func (*DefaultLogger) Debugf(format string, v ...any) {
	if os.Getenv("DEBUG") == "true" {
		logger.Debug().Msg(safeString(format, v...))
	}
}

func (*DefaultLogger) Warn(msg string) {
	logger.Warn().Msg(safeString(msg))
}

func (*DefaultLogger) Warnf(format string, v ...any) {
	logger.Warn().Msg(safeString(format, v...))
}

func (*DefaultLogger) Error(msg string) {
	logger.Error().Msg(safeString(msg))
}

func (*DefaultLogger) Errorf(format string, v ...any) {
	logger.Error().Msg(safeString(format, v...))
}

func (*DefaultLogger) Fatal(msg string) {
	logger.Fatal().Msg(safeString(msg))
}

func (*DefaultLogger) Fatalf(format string, v ...any) {
	logger.Fatal().Msg(safeString(format, v...))
}
