package bramble

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// JSONCache stores loaded JSON assets by key. Entries are kept as raw bytes
// and decoded on demand, so one asset can be unmarshaled into different
// shapes by different consumers.
type JSONCache struct {
	entries map[string]json.RawMessage
}

// NewJSONCache creates an empty cache.
func NewJSONCache() *JSONCache {
	return &JSONCache{entries: make(map[string]json.RawMessage)}
}

// Add stores raw JSON under the given key, replacing any previous entry.
func (c *JSONCache) Add(key string, data json.RawMessage) {
	c.entries[key] = data
}

// Has reports whether an entry exists for the key.
func (c *JSONCache) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Get returns the raw JSON stored under the key.
func (c *JSONCache) Get(key string) (json.RawMessage, bool) {
	data, ok := c.entries[key]
	return data, ok
}

// GetInto decodes the entry stored under the key into v.
func (c *JSONCache) GetInto(key string, v any) error {
	data, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("bramble: json cache has no entry %q", key)
	}
	return json.Unmarshal(data, v)
}

// Remove deletes the entry stored under the key.
func (c *JSONCache) Remove(key string) {
	delete(c.entries, key)
}

// fileRequest is one queued loader entry.
type fileRequest struct {
	key  string
	path string
}

// Loader fetches JSON assets from disk into a JSONCache. Queue files with
// JSON, then call Start to process the queue; per-file and end-of-queue
// events fire on the loader's emitter.
//
// Loading is synchronous and single-threaded, like the rest of the engine:
// Start returns when the queue is drained.
type Loader struct {
	EventEmitter

	cache *JSONCache
	queue []fileRequest

	loaded int
	failed int
}

// NewLoader creates a loader writing into the given cache, or into a fresh
// cache when nil is passed.
func NewLoader(cache *JSONCache) *Loader {
	if cache == nil {
		cache = NewJSONCache()
	}
	return &Loader{cache: cache}
}

// Cache returns the cache the loader writes into.
func (l *Loader) Cache() *JSONCache {
	return l.cache
}

// JSON queues a JSON file for loading under the given cache key.
func (l *Loader) JSON(key, path string) *Loader {
	l.queue = append(l.queue, fileRequest{key: key, path: path})
	return l
}

// Pending returns the number of queued files not yet processed.
func (l *Loader) Pending() int {
	return len(l.queue)
}

// TotalLoaded returns the number of files loaded successfully so far.
func (l *Loader) TotalLoaded() int { return l.loaded }

// TotalFailed returns the number of files that failed to load so far.
func (l *Loader) TotalFailed() int { return l.failed }

// Start drains the queue: each file is read, validated as JSON, and stored
// in the cache. A failing file emits EventFileError and does not stop the
// rest of the queue; the joined errors are returned once the queue is
// empty. EventLoadComplete fires either way.
func (l *Loader) Start() error {
	var errs []error

	for _, req := range l.queue {
		if err := l.loadJSON(req); err != nil {
			l.failed++
			logger.Error("load failed", "key", req.key, "path", req.path, "err", err)
			l.Emit(EventFileError, req.key, err)
			errs = append(errs, err)
			continue
		}
		l.loaded++
		logger.Debug("loaded", "key", req.key, "path", req.path)
		l.Emit(EventFileComplete, req.key)
	}
	l.queue = l.queue[:0]

	l.Emit(EventLoadComplete)
	return errors.Join(errs...)
}

func (l *Loader) loadJSON(req fileRequest) error {
	data, err := os.ReadFile(req.path)
	if err != nil {
		return fmt.Errorf("bramble: failed to read %q: %w", req.path, err)
	}
	if !json.Valid(data) {
		return fmt.Errorf("bramble: %q is not valid JSON", req.path)
	}
	l.cache.Add(req.key, data)
	return nil
}
