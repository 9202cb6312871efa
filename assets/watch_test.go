package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, dir
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}

// collectUntil drains w until name shows up or the deadline passes, and
// returns everything it saw.
func collectUntil(t *testing.T, w *Watcher, name string) []string {
	t.Helper()
	var seen []string
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		seen = append(seen, w.Drain()...)
		if count(seen, name) > 0 {
			return seen
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no event for %s, got %v", name, seen)
	return nil
}

func count(names []string, name string) int {
	n := 0
	for _, s := range names {
		if s == name {
			n++
		}
	}
	return n
}

func TestWatcherReportsRelativeNames(t *testing.T) {
	w, dir := newTestWatcher(t)

	writeFile(t, dir, "x.png")
	seen := collectUntil(t, w, "x.png")
	for _, n := range seen {
		if filepath.IsAbs(n) {
			t.Errorf("event %q is not relative to the watched dir", n)
		}
	}
}

func TestWatcherDebouncesQuickWrites(t *testing.T) {
	w, dir := newTestWatcher(t)

	writeFile(t, dir, "level.yaml")
	writeFile(t, dir, "level.yaml")
	seen := collectUntil(t, w, "level.yaml")

	// Give any late duplicate time to arrive, still inside the debounce window.
	time.Sleep(50 * time.Millisecond)
	seen = append(seen, w.Drain()...)
	if n := count(seen, "level.yaml"); n != 1 {
		t.Errorf("level.yaml reported %d times, want 1 (%v)", n, seen)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	w, dir := newTestWatcher(t)

	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "hero-run.png")
	seen := collectUntil(t, w, "hero-run.png")
	if n := count(seen, "notes.txt"); n != 0 {
		t.Errorf("notes.txt reported: %v", seen)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, dir := newTestWatcher(t)
	writeFile(t, dir, "a.png")

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	done := make(chan struct{})
	go func() {
		w.Drain()
		w.Drain()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Drain blocked after Close")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
