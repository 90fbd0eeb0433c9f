package questions

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchDebounce is how long a bank file must stay quiet before it is reloaded.
const WatchDebounce = 250 * time.Millisecond

// Watch reloads the bank at path after every change and hands each bank
// that parses cleanly to onChange. A bank that fails validation is logged
// and the previous one stays in use. The parent directory is watched so
// editors that save by rename are picked up. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Bank), log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	src := FileSource{Path: abs}
	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle = time.After(WatchDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("bank watcher error", zap.Error(err))

		case <-settle:
			settle = nil
			bank, err := src.Load(ctx)
			if err != nil {
				log.Warn("bank reload failed, keeping previous bank", zap.String("path", abs), zap.Error(err))
				continue
			}
			onChange(bank)
		}
	}
}
