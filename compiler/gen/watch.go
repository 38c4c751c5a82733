package gen

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch re-runs rebuild whenever one of the watched declaration files
// changes, until the context is cancelled. Events are debounced because
// editors fire several writes per save; rebuild errors are reported to
// onError and watching continues, so a transient syntax error does not
// kill the loop.
func Watch(ctx context.Context, paths []string, rebuild func() error, onError func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, p := range paths {
		if err := w.Add(p); err != nil {
			return err
		}
	}

	const debounce = 200 * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onError(err)
		case <-timer.C:
			if err := rebuild(); err != nil {
				onError(err)
			}
		}
	}
}
