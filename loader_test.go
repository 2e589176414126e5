package bramble

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderLoadsJSON(t *testing.T) {
	path := writeFixture(t, "level.json", `{"name": "level-1", "width": 40}`)

	l := NewLoader(nil)
	l.JSON("level1", path)
	if l.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", l.Pending())
	}

	if err := l.Start(); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if l.Pending() != 0 {
		t.Fatalf("Pending() = %d after Start, want 0", l.Pending())
	}
	if l.TotalLoaded() != 1 || l.TotalFailed() != 0 {
		t.Fatalf("loaded, failed = %d, %d, want 1, 0", l.TotalLoaded(), l.TotalFailed())
	}

	var level struct {
		Name  string `json:"name"`
		Width int    `json:"width"`
	}
	if err := l.Cache().GetInto("level1", &level); err != nil {
		t.Fatal(err)
	}
	if level.Name != "level-1" || level.Width != 40 {
		t.Fatalf("decoded = %+v", level)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(nil)
	l.JSON("nope", filepath.Join(t.TempDir(), "absent.json"))

	var failedKey string
	l.On(EventFileError, func(args ...any) { failedKey = args[0].(string) })

	if err := l.Start(); err == nil {
		t.Fatal("Start() = nil for a missing file")
	}
	if failedKey != "nope" {
		t.Fatalf("error event key = %q, want %q", failedKey, "nope")
	}
	if l.TotalFailed() != 1 {
		t.Fatalf("TotalFailed() = %d, want 1", l.TotalFailed())
	}
	if l.Cache().Has("nope") {
		t.Fatal("failed file landed in the cache")
	}
}

func TestLoaderInvalidJSON(t *testing.T) {
	path := writeFixture(t, "bad.json", `{"unterminated": `)

	l := NewLoader(nil)
	l.JSON("bad", path)
	if err := l.Start(); err == nil {
		t.Fatal("Start() = nil for invalid JSON")
	}
	if l.Cache().Has("bad") {
		t.Fatal("invalid JSON landed in the cache")
	}
}

func TestLoaderFailureDoesNotStopQueue(t *testing.T) {
	good := writeFixture(t, "good.json", `[1, 2, 3]`)

	l := NewLoader(nil)
	l.JSON("bad", filepath.Join(t.TempDir(), "absent.json"))
	l.JSON("good", good)

	var events []string
	l.On(EventFileError, func(args ...any) { events = append(events, "error") })
	l.On(EventFileComplete, func(args ...any) { events = append(events, "complete") })
	l.On(EventLoadComplete, func(args ...any) { events = append(events, "done") })

	if err := l.Start(); err == nil {
		t.Fatal("Start() = nil with a failing file in the queue")
	}
	if len(events) != 3 || events[0] != "error" || events[1] != "complete" || events[2] != "done" {
		t.Fatalf("events = %v, want [error complete done]", events)
	}
	if !l.Cache().Has("good") {
		t.Fatal("file after the failure was not loaded")
	}
}

func TestLoaderSharedCache(t *testing.T) {
	cache := NewJSONCache()
	path := writeFixture(t, "a.json", `true`)

	l := NewLoader(cache)
	l.JSON("a", path)
	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	if !cache.Has("a") {
		t.Fatal("loader did not write into the shared cache")
	}
}

func TestJSONCacheRemove(t *testing.T) {
	cache := NewJSONCache()
	cache.Add("a", []byte(`1`))
	cache.Remove("a")
	if cache.Has("a") {
		t.Fatal("entry survives Remove")
	}
	if err := cache.GetInto("a", new(int)); err == nil {
		t.Fatal("GetInto succeeded for a removed entry")
	}
}
