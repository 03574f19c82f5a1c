package config

import (
	"log/slog"

	"cxdash/chartimg"

	"github.com/urfave/cli/v3"
)

type Export struct {
	Out    string
	Format string
}

func (e *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out",
			Usage:       "Directory to write chart images to",
			Value:       "charts",
			Destination: &e.Out,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Image format (png, svg)",
			Value:       string(chartimg.PNG),
			Destination: &e.Format,
		},
	}
}

func (e Export) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("out", e.Out),
		slog.String("format", e.Format),
	)
}
