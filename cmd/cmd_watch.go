package cmd

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"moinmd.de/m/internal/logging"
)

// ---------- Subcommand: watch ----------------------------------------------

// cmdWatch translates the whole source tree and then keeps translating pages
// as they change, until it is interrupted.
func cmdWatch(fs *flag.FlagSet) (int, error) {
	ts, err := newTreeSettings(fs)
	if err != nil {
		return 2, err
	}
	done, failed := ts.translateTree()
	slog.Info("initial translation", "done", done, "failed", failed)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return 1, err
	}
	defer watcher.Close()
	if err = watchDirs(watcher, ts.srcDir); err != nil {
		return 1, err
	}
	logging.LogMandatory(slog.Default(), "Watch source tree", "dir", ts.srcDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return 0, nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return 0, nil
			}
			ts.handleEvent(watcher, ev)
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0, nil
			}
			slog.Error("watch source tree", logging.Err(err))
		}
	}
}

// watchDirs registers the directory and all its sub-directories with the
// watcher. fsnotify does not watch recursively by itself.
func watchDirs(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(name)
		}
		return nil
	})
}

func (ts *treeSettings) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
		if err = watcher.Add(ev.Name); err != nil {
			slog.Error("watch new directory", "dir", ev.Name, logging.Err(err))
		}
		return
	}
	if !strings.HasSuffix(ev.Name, pageExt) {
		return
	}
	if err := ts.translatePage(ev.Name); err != nil {
		slog.Error("translate page", "page", ev.Name, logging.Err(err))
		return
	}
	slog.Info("page translated", "page", ev.Name)
}
