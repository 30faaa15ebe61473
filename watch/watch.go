// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package watch rebuilds the runtime catalogs whenever an annotated document
changes. Rebuilds never overlap: change events feed a single-slot trigger, so
a burst of saves coalesces into at most one queued rebuild behind the one in
flight.
*/
package watch

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pavelpernicka/scoutcomp-sub001/compile"
	"github.com/pavelpernicka/scoutcomp-sub001/store"
)

// Logger is the logger used by package watch.
var Logger zerolog.Logger = log.With().Str("sys", "watch").Logger()

// Run builds once, then watches the catalog directory and rebuilds on every
// qualifying change until ctx is cancelled. It returns nil on a clean
// shutdown.
func Run(ctx context.Context, st *store.Store) error {
	if _, err := compile.Run(st); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(st.CatalogDir()); err != nil {
		return err
	}

	Logger.Info().
		Str("dir", st.CatalogDir()).
		Msg("Watching for catalog changes")

	trigger := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)

	// Event pump: collapse qualifying events into the single-slot trigger.
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if qualifies(ev) {
					select {
					case trigger <- struct{}{}:
					default: // a rebuild is already queued
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}

				Logger.Warn().Err(err).Msg("Watcher error")
			}
		}
	})

	// Builder: one rebuild at a time, to completion.
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				if _, err := compile.Run(st); err != nil {
					Logger.Error().Err(err).Msg("Rebuild failed")
				}
			}
		}
	})

	return g.Wait()
}

// qualifies reports whether ev should trigger a rebuild: any content-changing
// operation on an annotated document.
func qualifies(ev fsnotify.Event) bool {
	if !strings.HasSuffix(ev.Name, store.AnnotatedExt) {
		return false
	}

	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}
