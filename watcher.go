package bramble

import (
	"sync"

	"github.com/fsnotify/fsnotify"
)

// AssetWatcher watches loaded asset files and reports the keys of changed
// files over a channel. The watcher's goroutine only translates filesystem
// events into keys; the game drains Reloads from its own loop and decides
// when to re-run the loader, keeping all engine state single-threaded.
type AssetWatcher struct {
	fs      *fsnotify.Watcher
	reloads chan string
	done    chan struct{}

	mu         sync.RWMutex
	keysByPath map[string]string
}

// NewAssetWatcher creates a watcher and starts its event loop.
func NewAssetWatcher() (*AssetWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &AssetWatcher{
		fs:         fs,
		reloads:    make(chan string, 16),
		done:       make(chan struct{}),
		keysByPath: make(map[string]string),
	}
	go w.run()
	return w, nil
}

// Watch registers a file under the given asset key. A write to the file
// later surfaces the key on Reloads.
func (w *AssetWatcher) Watch(key, path string) error {
	w.mu.Lock()
	w.keysByPath[path] = key
	w.mu.Unlock()
	return w.fs.Add(path)
}

// Reloads returns the channel of changed asset keys. Drain it from the game
// loop; when the channel's buffer is full further changes are dropped (the
// next write to the file will surface again).
func (w *AssetWatcher) Reloads() <-chan string {
	return w.reloads
}

// Close stops the watcher and its goroutine.
func (w *AssetWatcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *AssetWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.RLock()
			key, known := w.keysByPath[event.Name]
			w.mu.RUnlock()
			if !known {
				continue
			}
			select {
			case w.reloads <- key:
			default:
				// Buffer full; drop. See Reloads.
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("asset watcher error", "err", err)
		}
	}
}
