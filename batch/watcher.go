package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Watcher polls a directory tree for submission files and decodes each
// file again whenever it changes.
type Watcher struct {
	dir          string
	decoder      *Decoder
	handle       func(path string, results []Result)
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewWatcher(dir string, d *Decoder, handle func(path string, results []Result)) *Watcher {
	return &Watcher{
		dir:          dir,
		decoder:      d,
		handle:       handle,
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

// SetPollInterval changes how often the directory is scanned.
func (w *Watcher) SetPollInterval(d time.Duration) {
	if d > 0 {
		w.pollInterval = d
	}
}

// Run scans until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	if err := w.Scan(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.Scan(ctx); err != nil {
				return err
			}
		}
	}
}

// Scan decodes every submission file that is new or modified since the
// previous scan and forgets files that disappeared.
func (w *Watcher) Scan(ctx context.Context) error {
	current := make(map[string]bool)
	var changed []string

	filepath.Walk(w.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.dir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSubmissionFile(path) {
			return nil
		}

		current[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			changed = append(changed, path)
		}
		return nil
	})

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			log.Infof("submission file removed: %s", path)
		}
	}

	for _, path := range changed {
		results, err := w.decodeFile(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Errorf("%v", err)
			results = []Result{{Source: path, Err: err}}
		}
		w.handle(path, results)
	}
	return nil
}

func (w *Watcher) decodeFile(ctx context.Context, path string) ([]Result, error) {
	subs, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	results, err := w.decoder.Run(ctx, subs)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Source = path
	}
	return results, nil
}
