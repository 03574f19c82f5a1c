package config

import (
	"log/slog"

	"cxdash/store"

	"github.com/urfave/cli/v3"
)

type Data struct {
	Path string
}

func (d *Data) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data",
			Usage:       "YAML file with the monthly records (built-in records when empty)",
			Sources:     cli.EnvVars("CXDASH_DATA"),
			Destination: &d.Path,
		},
	}
}

// Provider loads the configured record source once.
func (d *Data) Provider() (store.Provider, error) {
	return store.NewProvider(d.Path)
}

func (d Data) LogValue() slog.Value {
	source := d.Path
	if source == "" {
		source = "built-in"
	}
	return slog.GroupValue(slog.String("source", source))
}
