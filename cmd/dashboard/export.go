package main

import (
	"context"
	"os"

	"cxdash/chartimg"
	"cxdash/config"
	"cxdash/store"
	"cxdash/utils"
	"cxdash/view"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		exportCfg config.Export
		dataCfg   config.Data
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Write every dashboard chart to an image file",
		Flags: joinFlags(exportCfg.Flags(), dataCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			format, err := chartimg.ParseFormat(exportCfg.Format)
			if err != nil {
				return err
			}

			provider, err := dataCfg.Provider()
			if err != nil {
				return err
			}

			_, err = exportCharts(ctx, provider, exportCfg.Out, format)
			return err
		},
	}
}

// exportCharts writes one image per panel into dir and returns the written paths. Existing files are kept.
func exportCharts(ctx context.Context, provider store.Provider, dir string, format chartimg.Format) ([]string, error) {
	logger := ctxlog.From(ctx)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	page := view.Render(provider.Records())
	paths := make([]string, 0, len(page.Panels))
	for _, panel := range page.Panels {
		path := utils.NextAvailableFilename(dir, panel.Key, format.Ext())

		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		if err != nil {
			return paths, goerr.Wrap(err, "couldn't create chart file", goerr.V("path", path))
		}

		if err := chartimg.Render(f, panel, format); err != nil {
			_ = f.Close()
			return paths, err
		}
		if err := f.Close(); err != nil {
			return paths, goerr.Wrap(err, "couldn't close chart file", goerr.V("path", path))
		}

		logger.Info("exported chart", "panel", panel.Key, "path", path)
		paths = append(paths, path)
	}

	return paths, nil
}
