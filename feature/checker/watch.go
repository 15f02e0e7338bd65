package checker

import (
	"context"
	"path/filepath"
	"time"

	"codecheck/feature/checker/checks"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// Watch re-runs the validation whenever files under the manifest change,
// invoking onRun with each result. Events are debounced so one save does not
// trigger a burst of runs. Watch blocks until ctx is cancelled.
//
// The watcher observes the real filesystem, so it is only meaningful when the
// service was built on the OS filesystem.
func (s *Service) Watch(ctx context.Context, debounce time.Duration, onRun func(checks.Report, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range s.watchDirs() {
		if err := watcher.Add(dir); err != nil {
			// Scaffold directories may not exist yet; creating them later
			// still produces an event on the root.
			s.logger.Debug("Not watching directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	s.logger.Info("Watching for changes", zap.String("root", s.manifest.Root))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.logger.Debug("Filesystem event", zap.String("op", event.Op.String()), zap.String("name", event.Name))
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			report, err := s.Run(ctx)
			onRun(report, err)
		}
	}
}

// watchDirs returns the unique directories the manifest touches.
func (s *Service) watchDirs() []string {
	seen := map[string]bool{s.manifest.Root: true}
	dirs := []string{s.manifest.Root}

	add := func(path string) {
		dir := filepath.Join(s.manifest.Root, filepath.Dir(path))
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, f := range s.manifest.Files {
		add(f)
	}
	add(s.manifest.Entrypoint.Path)

	return dirs
}
