package versync

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/thirukguru/buildprep/model"
	"github.com/thirukguru/buildprep/shared/ctxlog"
)

// Watch runs Sync once, then again after every change to a manifest
// candidate in the root directory. It returns nil when ctx is cancelled.
func (s *service) Watch(ctx context.Context, onSync func(*model.SyncResult, error)) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.opts.Root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.opts.Root, err)
	}
	logger.Info("Watching for manifest changes.", "root", s.opts.Root, "candidates", s.opts.Manifests)

	onSync(s.Sync(ctx))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.isManifestEvent(event) {
				continue
			}
			logger.Debug("Manifest event received.", "file", event.Name, "op", event.Op.String())
			onSync(s.Sync(ctx))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher failed: %w", err)
		}
	}
}

func (s *service) isManifestEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return slices.Contains(s.opts.Manifests, filepath.Base(event.Name))
}
