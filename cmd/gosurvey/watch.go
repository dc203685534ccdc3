package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/philipparndt/gosurvey/internal/monitoring"
	"github.com/philipparndt/gosurvey/pkg/points"
	"github.com/philipparndt/gosurvey/pkg/watcher"
	"github.com/spf13/cobra"
)

// reloaded holds the sets the watcher has already parsed, keyed by absolute
// path, so a recompute reads each changed file once
var reloaded = struct {
	sync.Mutex
	sets map[string]*points.PointSet
}{sets: make(map[string]*points.PointSet)}

// storeReload records the watcher's parse result for path. A failed parse
// drops the entry and reports false.
func storeReload(path string, set *points.PointSet, err error) bool {
	reloaded.Lock()
	defer reloaded.Unlock()
	if err != nil || set == nil {
		delete(reloaded.sets, path)
		return false
	}
	reloaded.sets[path] = set
	return true
}

func clearReloads() {
	reloaded.Lock()
	defer reloaded.Unlock()
	reloaded.sets = make(map[string]*points.PointSet)
}

// addWatchFlag adds --watch to a command that reads point files
func addWatchFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("watch", "w", false, "Recompute whenever an input file changes")
}

// runWatched runs compute once and, with --watch, again after every change
// to one of the files until interrupted
func runWatched(cmd *cobra.Command, files []string, compute func(out io.Writer) error) error {
	out := cmd.OutOrStdout()
	if err := compute(out); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}

	pw, err := watcher.New(cfg.GetWatchDebounce())
	if err != nil {
		return err
	}
	defer pw.Close()
	defer clearReloads()

	var mu sync.Mutex
	err = pw.Watch(files, func(path string, set *points.PointSet, err error) {
		if !storeReload(path, set, err) {
			// Already logged by the watcher, keep the last good result
			return
		}
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, "\n--- %s changed ---\n", path)
		if err := compute(out); err != nil {
			monitoring.Logf("recompute failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	monitoring.Logf("watching %d file(s), press Ctrl-C to stop", len(files))

	if err := pw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadPoints returns the set the watcher parsed for path, or parses the file
func loadPoints(path string) (*points.PointSet, error) {
	if abs, err := filepath.Abs(path); err == nil {
		reloaded.Lock()
		set, ok := reloaded.sets[filepath.Clean(abs)]
		reloaded.Unlock()
		if ok {
			return set, nil
		}
	}

	set, err := points.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return set, nil
}
