package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/JonMunkholm/salarydash/internal/config"
	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/JonMunkholm/salarydash/internal/dataset"
	"github.com/cheggaaa/pb/v3"
	"github.com/urfave/cli/v3"
)

// sourceFlags selects and loads the dataset. Defaults come from the
// environment config so the CLI and server agree on DATASET_*.
type sourceFlags struct {
	cfg        *config.DatasetConfig
	noProgress bool
}

func (s *sourceFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "source",
			Aliases:     []string{"s"},
			Usage:       "Dataset location: http(s) URL, CSV path or postgres DSN",
			Category:    "Dataset",
			Value:       s.cfg.Source,
			Destination: &s.cfg.Source,
		},
		&cli.StringFlag{
			Name:        "table",
			Usage:       "Table to read when --source is a postgres DSN",
			Category:    "Dataset",
			Value:       s.cfg.Table,
			Destination: &s.cfg.Table,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Maximum time to load the dataset",
			Category:    "Dataset",
			Value:       s.cfg.FetchTimeout,
			Destination: &s.cfg.FetchTimeout,
		},
		&cli.BoolFlag{
			Name:        "no-progress",
			Usage:       "Hide the download progress bar",
			Category:    "Dataset",
			Destination: &s.noProgress,
		},
	}
}

// load fetches the dataset, showing a byte progress bar on stderr for
// remote sources.
func (s *sourceFlags) load(ctx context.Context) (dataset.Source, core.Dataset, error) {
	var bar *pb.ProgressBar
	opts := dataset.Options{
		Timeout: s.cfg.FetchTimeout,
		Table:   s.cfg.Table,
	}
	if !s.noProgress {
		opts.Progress = func(body io.Reader, size int64) io.Reader {
			bar = newProgressBar(size)
			return bar.NewProxyReader(body)
		}
	}

	src, err := dataset.NewSource(s.cfg.Source, opts)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	start := time.Now()
	ds, err := src.Load(ctx)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("dataset loaded", "source", src.String(), "rows", len(ds), "elapsed", time.Since(start))
	return src, ds, nil
}

func newProgressBar(size int64) *pb.ProgressBar {
	if size < 0 {
		size = 0
	}
	bar := pb.New64(size)
	bar.SetTemplate(pb.Full)
	bar.SetWriter(os.Stderr)
	bar.Set(pb.Bytes, true)
	return bar.Start()
}
