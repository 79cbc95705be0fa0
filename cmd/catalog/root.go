package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/seed"
)

var version = "dev"

var (
	errUnknownAuthor   = errors.New("author not found in seed")
	errUnknownMagazine = errors.New("magazine not found in seed")
	errEmptySeed       = errors.New("seed declares no authors or no magazines")
)

type rootOptions struct {
	configFile string
	author     string
	magazine   string
}

// newRootCmd builds the catalog command writing the report to stdout and
// logs, traces and metrics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Query a catalog of magazines, authors and articles",
		Long:          `Loads magazines, authors and articles from a YAML seed (or the built-in demonstration seed) and prints who wrote what, who contributes where, and which magazine is most popular.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(opts.configFile)
			if err != nil {
				return err
			}
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			cfg, err := config.LoadCatalogConfig(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (YAML)")
	flags.StringP("seed", "s", "", "seed file (default: built-in demonstration seed)")
	flags.StringVarP(&opts.author, "author", "a", "", "author to report on (default: first seeded author)")
	flags.StringVarP(&opts.magazine, "magazine", "m", "", "magazine to report on (default: first seeded magazine)")
	flags.StringP("output", "o", config.OutputText, "output format: text or json")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("trace", false, "print OpenTelemetry spans to stderr")
	flags.Bool("metrics", false, "print Prometheus metrics to stderr on exit")
	return cmd
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for key, name := range map[string]string{
		"seed.path":       "seed",
		"output":          "output",
		"log.level":       "log-level",
		"tracing.enabled": "trace",
		"metrics.enabled": "metrics",
	} {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func run(ctx context.Context, cfg *config.CatalogConfig, opts *rootOptions, stdout, stderr io.Writer) error {
	logger, err := logging.New(logging.Options{Writer: stderr, Format: cfg.Log.Format, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	ctx = logging.WithLogger(ctx, logger)

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Exporter:    cfg.Tracing.Exporter,
		Writer:      stderr,
		ServiceName: "magazine-catalog",
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	logger.Debug("tracing configured",
		slog.Bool("enabled", provider.Enabled()),
		slog.String("exporter", cfg.Tracing.Exporter))
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	doc := seed.Default()
	if cfg.Seed.Path != "" {
		if doc, err = seed.ParseFile(cfg.Seed.Path); err != nil {
			return err
		}
	}

	cat := catalog.New(catalog.WithLogger(logger))
	loaded, err := seed.Load(ctx, cat, doc)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	logger.Info("seed loaded",
		slog.Int("magazines", len(loaded.Magazines)),
		slog.Int("authors", len(loaded.Authors)),
		slog.Int("articles", len(loaded.Articles)))

	author, magazine, err := pick(loaded, opts.author, opts.magazine)
	if err != nil {
		return err
	}

	report, err := cat.Report(ctx, author, magazine)
	if err != nil {
		return err
	}

	if cfg.Output == config.OutputJSON {
		err = report.WriteJSON(stdout)
	} else {
		err = report.WriteText(stdout)
	}
	if err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		return dumpMetrics(stderr, prometheus.DefaultGatherer)
	}
	return nil
}

func pick(loaded *seed.Result, authorName, magazineName string) (*entity.Author, *entity.Magazine, error) {
	if len(loaded.Authors) == 0 || len(loaded.Magazines) == 0 {
		return nil, nil, errEmptySeed
	}

	author := loaded.Authors[0]
	if authorName != "" {
		if author = loaded.Author(authorName); author == nil {
			return nil, nil, fmt.Errorf("%q: %w", authorName, errUnknownAuthor)
		}
	}
	magazine := loaded.Magazines[0]
	if magazineName != "" {
		if magazine = loaded.Magazine(magazineName); magazine == nil {
			return nil, nil, fmt.Errorf("%q: %w", magazineName, errUnknownMagazine)
		}
	}
	return author, magazine, nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
