// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
)

func newWatchCmd(cfg *config.Config) *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the library file and report changes",
		Long: `Monitor the library file for changes made by other terminals or a
synced copy, and print refreshed totals whenever it is rewritten.

Saves replace the whole file, so whichever writer saves last wins; watch
makes that visible as it happens.

Examples:
  arc-shelf watch
  arc-shelf watch --debounce 250`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := library.NewStore(cfg.LibraryFile)
			return watchLibrary(store, debounceMs)
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 500, "Debounce milliseconds for file events")

	return cmd
}

func watchLibrary(store *library.Store, debounceMs int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: saves rename a temp file over the
	// target, and a watch on the path itself dies with the first replace.
	dir := filepath.Dir(store.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create library directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	renderTotals(store)
	slog.Info("watching library file", "path", store.Path())
	fmt.Println("Press Ctrl+C to stop watching")

	// Debounce: editors and syncers fire bursts of events per rewrite.
	var (
		pending   *time.Timer
		pendingMu sync.Mutex
	)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(store.Path()) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			pendingMu.Lock()
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(time.Duration(debounceMs)*time.Millisecond, func() {
				renderTotals(store)
			})
			pendingMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

func renderTotals(store *library.Store) {
	catalog, err := store.Load()
	if err != nil {
		slog.Error("reload failed", "error", err)
		return
	}

	s := library.Summarize(catalog)
	fmt.Printf("[%s] %d book(s), %d read (%.2f%%)\n",
		time.Now().Format("15:04:05"), s.Total, s.ReadCount, s.PercentRead)
}
