// Package watch observes one file for changes and drives a debounced
// callback. Notification delivery runs on fsnotify's own goroutine feeding
// the event channel; the consuming loop here is single-threaded, so the
// callback is never invoked concurrently with itself.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"pkt.systems/pslog"
)

// Watch subscribes to filesystem notifications for path and invokes onChange
// for accepted, debounce-filtered events. onChange returns true to keep
// watching, false to stop. The loop also ends when the event channel closes.
// Per-event delivery errors are logged and the loop continues; only watcher
// construction or subscription failure is returned.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func() bool) error {
	log := pslog.Ctx(ctx)
	target := filepath.Clean(path)
	canonical := canonicalize(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(target); err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}

	g := newGate(debounce)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if !relevant(event.Name, target, canonical) {
				continue
			}
			if !g.allow(time.Now()) {
				continue
			}
			if !onChange() {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch delivery error", "path", target, "err", err)
		}
	}
}

// canonicalize resolves symlinks, falling back to the literal path when
// resolution fails (for example while the file is briefly absent).
func canonicalize(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

// relevant reports whether a notification path refers to the watched target.
func relevant(candidate, target, canonical string) bool {
	if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
		return resolved == canonical
	}
	cleaned := filepath.Clean(candidate)
	return cleaned == canonical || cleaned == target
}
