// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
i18n_sync keeps the ScoutComp translation catalogs in sync with the UI source.

Commands:

	sync    scan the corpus and update the annotated catalog documents
	build   compile annotated documents into runtime catalog artifacts
	watch   build once, then rebuild whenever a document changes
	stats   print the per-language completeness report
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/pavelpernicka/scoutcomp-sub001/compile"
	"github.com/pavelpernicka/scoutcomp-sub001/config"
	"github.com/pavelpernicka/scoutcomp-sub001/extract"
	"github.com/pavelpernicka/scoutcomp-sub001/pipeline"
	"github.com/pavelpernicka/scoutcomp-sub001/stats"
	"github.com/pavelpernicka/scoutcomp-sub001/store"
	"github.com/pavelpernicka/scoutcomp-sub001/watch"
)

func main() {
	app := &cli.App{
		Name:  "i18n_sync",
		Usage: "keep ScoutComp translation catalogs in sync with the UI source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "i18n_sync.yaml",
				Usage:   "path to the pipeline configuration file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			setupLogging(c.Bool("verbose"))

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "sync",
				Usage:  "scan the corpus and update the annotated catalog documents",
				Action: syncAction,
			},
			{
				Name:   "build",
				Usage:  "compile annotated documents into runtime catalog artifacts",
				Action: buildAction,
			},
			{
				Name:   "watch",
				Usage:  "build once, then rebuild whenever a document changes",
				Action: watchAction,
			},
			{
				Name:   "stats",
				Usage:  "print the per-language completeness report",
				Action: statsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// setupLogging routes everything through a console writer on stderr and
// re-derives the per-subsystem loggers from the configured root.
func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})

	extract.Logger = log.With().Str("sys", "extract").Logger()
	store.Logger = log.With().Str("sys", "store").Logger()
	compile.Logger = log.With().Str("sys", "compile").Logger()
	stats.Logger = log.With().Str("sys", "stats").Logger()
	watch.Logger = log.With().Str("sys", "watch").Logger()
	pipeline.Logger = log.With().Str("sys", "sync").Logger()
}

// loadEnv loads the configuration and opens the store for one command run.
func loadEnv(c *cli.Context) (config.Config, *store.Store, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, store.New(cfg.CatalogDir, cfg.OutputDir), nil
}

func syncAction(c *cli.Context) error {
	cfg, st, err := loadEnv(c)
	if err != nil {
		return err
	}

	keys := extract.NewKeyCatalog()

	for _, root := range cfg.Corpus.Roots {
		corpus := &extract.FSCorpus{
			FS:          os.DirFS(root),
			Extensions:  cfg.Corpus.Extensions,
			ExcludeDirs: cfg.Corpus.ExcludeDirs,
		}

		if err := keys.Scan(corpus, root); err != nil {
			return err
		}
	}

	log.Info().
		Int("keys", keys.Len()).
		Strs("roots", cfg.Corpus.Roots).
		Msg("Extracted translation keys")

	return pipeline.Sync(st, keys, pipeline.Options{
		Languages: cfg.Languages,
		Reference: cfg.ReferenceLanguage,
	})
}

func buildAction(c *cli.Context) error {
	_, st, err := loadEnv(c)
	if err != nil {
		return err
	}

	// Per-language failures are reported on stderr without failing the run.
	_, err = compile.Run(st)

	return err
}

func watchAction(c *cli.Context) error {
	_, st, err := loadEnv(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.Run(ctx, st)
}

func statsAction(c *cli.Context) error {
	_, st, err := loadEnv(c)
	if err != nil {
		return err
	}

	rep, err := stats.Collect(st)
	if err != nil {
		return err
	}

	rep.Write(os.Stdout)

	return nil
}
