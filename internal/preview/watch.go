package preview

import (
	"io/fs"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchQuiet coalesces bursts of file events (editors often write a file
// several times per save) into one reload.
const watchQuiet = 150 * time.Millisecond

// watcher wraps fsnotify over the served tree and debounces change events.
type watcher struct {
	fsw       *fsnotify.Watcher
	closeOnce sync.Once
	done      chan struct{}
}

// newWatcher watches every directory under root and calls onChange after a
// quiet period following any write, create, remove, or rename.
func newWatcher(root string, onChange func()) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the whole tree; fsnotify does not recurse on its own.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	w := &watcher{fsw: fsw, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *watcher) loop(onChange func()) {
	var timer *time.Timer
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories join the watched set.
			if ev.Op&fsnotify.Create != 0 {
				_ = w.fsw.Add(ev.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchQuiet, onChange)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("preview: watch: %v", err)
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *watcher) close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.fsw.Close()
	})
}
