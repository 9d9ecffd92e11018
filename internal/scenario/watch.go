package scenario

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on change.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	onChange  func(string)
	stopCh    chan struct{}
	stopOnce  sync.Once
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine. The first scan only records mtimes.
func (w *FileWatcher) Start() {
	w.scanAll(true)
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scanAll(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher. Safe to call more than once.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *FileWatcher) scanAll(prime bool) {
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing file: keep going, it is picked up once it appears
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		w.lastMTime[p] = mt
		if prime || w.onChange == nil {
			continue
		}
		if !ok || mt.After(last) {
			w.onChange(p)
		}
	}
}

// Watch starts a watcher over the default file and the named scenario that
// drops cached merges whenever one of them changes. Stop it when done.
func (l *Loader) Watch(name string, interval time.Duration) *FileWatcher {
	paths := []string{l.paths.DefaultPath()}
	if name != "" && name != DefaultScenario {
		paths = append(paths, l.paths.ScenarioPath(name))
	}
	w := NewFileWatcher(paths, interval, func(path string) {
		l.Invalidate()
		l.mu.RLock()
		logger := l.logger
		l.mu.RUnlock()
		if logger != nil {
			logger.Printf("scenario file changed, cache cleared: %s", path)
		}
	})
	w.Start()
	return w
}
