package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

type Server struct {
	Addr string
}

func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP listen address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("CXDASH_ADDR"),
			Destination: &s.Addr,
		},
	}
}

func (s Server) LogValue() slog.Value {
	return slog.GroupValue(slog.String("addr", s.Addr))
}
