package mapping

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader is what the watcher calls when the catalog file changes.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher reloads the catalog whenever its file is written, created or
// renamed into place. Bursts of events are collapsed into one reload.
type Watcher struct {
	path     string
	reloader Reloader
	logger   *zap.Logger
	debounce time.Duration
}

func NewWatcher(path string, reloader Reloader, logger *zap.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		reloader: reloader,
		logger:   logger,
		debounce: 250 * time.Millisecond,
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("catalog watcher: watch %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("👀 Surveillance de la table de correspondance", zap.String("path", w.path))

	var pending <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("⚠️ Erreur de surveillance de la table de correspondance", zap.Error(err))
		case <-pending:
			pending = nil
			if err := w.reloader.Reload(ctx); err != nil {
				w.logger.Error("❌ Rechargement échoué, table précédente conservée", zap.Error(err))
				continue
			}
			w.logger.Info("🔄 Table de correspondance rechargée", zap.String("path", w.path))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
