// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// startWatcher runs w in the background and returns a stop function that
// cancels it and checks Run's result.
func startWatcher(t *testing.T, w *Watcher) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	// Give the event loop time to start.
	time.Sleep(50 * time.Millisecond)

	return func() {
		t.Helper()
		cancel()
		select {
		case err := <-errCh:
			if err != nil {
				t.Errorf("Run() error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Run() did not return after cancellation")
		}
	}
}

func isManifest(path string) bool { return strings.HasSuffix(path, ".cue") }

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("classes: []"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWatcher_DebounceCoalesces(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var calls atomic.Int32
	changedCh := make(chan []string, 10)

	w, err := New(Config{
		Roots:    []string{dir},
		Debounce: 100 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			calls.Add(1)
			changedCh <- changed
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)

	for _, name := range []string{"a.cue", "b.cue", "c.cue"} {
		writeFile(t, filepath.Join(dir, name))
		time.Sleep(10 * time.Millisecond)
	}

	var changed []string
	select {
	case changed = <-changedCh:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}

	// Allow a brief settle for any additional spurious callbacks.
	time.Sleep(300 * time.Millisecond)
	stop()

	if n := calls.Load(); n != 1 {
		t.Errorf("got %d callbacks, want 1", n)
	}
	if !slices.IsSorted(changed) {
		t.Errorf("changed paths not sorted: %v", changed)
	}
	for _, name := range []string{"a.cue", "b.cue", "c.cue"} {
		if !slices.Contains(changed, filepath.Join(w.Roots()[0], name)) {
			t.Errorf("changed = %v, want it to contain %s", changed, name)
		}
	}
}

func TestWatcher_MatchAndHiddenFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	changedCh := make(chan []string, 10)

	w, err := New(Config{
		Roots:    []string{dir},
		Match:    isManifest,
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			changedCh <- changed
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, ".hidden.cue"))
	writeFile(t, filepath.Join(dir, "classes.cue~"))
	time.Sleep(200 * time.Millisecond)

	select {
	case changed := <-changedCh:
		t.Fatalf("callback fired for non-matching files: %v", changed)
	default:
	}

	writeFile(t, filepath.Join(dir, "classes.cue"))

	select {
	case changed := <-changedCh:
		if len(changed) != 1 || filepath.Base(changed[0]) != "classes.cue" {
			t.Errorf("changed = %v, want only classes.cue", changed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestWatcher_MultipleRootsAndNewDirectories(t *testing.T) {
	t.Parallel()

	first, second := t.TempDir(), t.TempDir()
	if err := os.MkdirAll(filepath.Join(second, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	changedCh := make(chan []string, 10)
	w, err := New(Config{
		Roots:    []string{first, second},
		Match:    isManifest,
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			changedCh <- changed
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	pkgDir := filepath.Join(second, "org", "example")
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	// Let the new directories be registered before writing into them.
	time.Sleep(200 * time.Millisecond)
	writeFile(t, filepath.Join(pkgDir, "tests.cue"))
	writeFile(t, filepath.Join(second, ".git", "config.cue"))

	select {
	case changed := <-changedCh:
		if !slices.Contains(changed, filepath.Join(w.Roots()[1], "org", "example", "tests.cue")) {
			t.Errorf("changed = %v, want the nested manifest", changed)
		}
		for _, path := range changed {
			if strings.Contains(path, ".git") {
				t.Errorf("hidden directory reported: %s", path)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestWatcher_SlowCallbackNeverOverlaps(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var (
		mu      sync.Mutex
		active  int
		overlap bool
		calls   int
	)
	firstDone := make(chan struct{})

	w, err := New(Config{
		Roots:    []string{dir},
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, _ []string) error {
			mu.Lock()
			active++
			calls++
			n := calls
			if active > 1 {
				overlap = true
			}
			mu.Unlock()

			if n == 1 {
				time.Sleep(300 * time.Millisecond)
				close(firstDone)
			}

			mu.Lock()
			active--
			mu.Unlock()
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)

	writeFile(t, filepath.Join(dir, "first.cue"))
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "second.cue"))

	select {
	case <-firstDone:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first callback")
	}
	// The deferred change is retried once the first callback returns.
	time.Sleep(400 * time.Millisecond)
	stop()

	mu.Lock()
	defer mu.Unlock()
	if overlap {
		t.Error("callbacks overlapped")
	}
	if calls != 2 {
		t.Errorf("got %d callbacks, want 2", calls)
	}
}

func TestWatcher_CallbackErrorKeepsWatching(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var calls atomic.Int32
	done := make(chan struct{})

	w, err := New(Config{
		Roots:    []string{dir},
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, _ []string) error {
			if calls.Add(1) == 2 {
				close(done)
			}
			return errors.New("boom")
		},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	writeFile(t, filepath.Join(dir, "a.cue"))
	time.Sleep(200 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "b.cue"))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("got %d callbacks, want 2", calls.Load())
	}
}

func TestWatcher_DoubleRun(t *testing.T) {
	t.Parallel()

	w, err := New(Config{Roots: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	stop := startWatcher(t, w)
	defer stop()

	if err := w.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() = %v, want %v", err, ErrAlreadyRunning)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); !errors.Is(err, ErrNoRoots) {
		t.Errorf("New() without roots = %v, want %v", err, ErrNoRoots)
	}

	missing := filepath.Join(t.TempDir(), "missing")
	if _, err := New(Config{Roots: []string{missing}}); err == nil {
		t.Error("New() with a missing root succeeded")
	}
}

func TestSkipped(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		".git":         true,
		".hidden.cue":  true,
		"classes.cue~": true,
		"classes.swp":  true,
		"classes.cue":  false,
		"org":          false,
	} {
		if got := skipped(name); got != want {
			t.Errorf("skipped(%q) = %v, want %v", name, got, want)
		}
	}
}
