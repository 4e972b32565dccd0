package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w, using the
// level and format names accepted on the command line.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, level, formatter), nil
}

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, level charmlog.Level, formatter charmlog.Formatter) slog.Handler {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != charmlog.TextFormatter,
	})
	logger.SetStyles(styles())

	return logger
}

// GetLevel parses a log level name.
func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "debug":
		return charmlog.DebugLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

// GetFormatter parses a log format name.
func GetFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat, "":
		return charmlog.TextFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}

func styles() *charmlog.Styles {
	s := charmlog.DefaultStyles()
	s.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	s.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	s.Values["path"] = lipgloss.NewStyle().Underline(true)

	return s
}
