package knowledge

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"sib-chatbot-be/internal/pkg/logger"
)

// Watcher reloads the knowledge base when text files change on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	reload   func(ctx context.Context) error
	logger   logger.ILogger
}

func NewWatcher(path string, reload func(ctx context.Context) error, log logger.ILogger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  w,
		path:     path,
		debounce: 2 * time.Second,
		reload:   reload,
		logger:   log,
	}, nil
}

// Run blocks until ctx is cancelled. Bursts of events (editors write several
// times per save) collapse into one reload per debounce window.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.watcher.Add(w.path); err != nil {
		w.logger.Warn("Watcher", "Cannot watch documents path", map[string]interface{}{
			"path": w.path, "error": err.Error(),
		})
		return err
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".txt" {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := w.reload(ctx); err != nil {
				w.logger.Warn("Watcher", "Auto-reload failed", map[string]interface{}{
					"error": err.Error(),
				})
			} else {
				w.logger.Info("Watcher", "Documents reloaded after file change", nil)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher", "Watch error", map[string]interface{}{"error": err.Error()})
		}
	}
}
