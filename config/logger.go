package config

import (
	"log/slog"
	"os"

	"cxdash/logging"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Logger struct {
	Level  string
	Format string
}

func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("CXDASH_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("CXDASH_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure builds the logger, writing to stdout.
func (l *Logger) Configure() (*slog.Logger, error) {
	var format logging.Format
	switch l.Format {
	case "console":
		format = logging.FormatConsole
	case "json":
		format = logging.FormatJSON
	case "auto", "":
		format = logging.FormatAuto
	default:
		return nil, goerr.New("invalid log format", goerr.V("format", l.Format))
	}

	switch l.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return nil, goerr.New("invalid log level", goerr.V("level", l.Level))
	}

	return logging.New(logging.ParseLevel(l.Level), os.Stdout, format), nil
}

func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}
