package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRequiresHandler(t *testing.T) {
	if _, err := New(Options{Dir: t.TempDir()}); err == nil {
		t.Error("New() without handler error = nil")
	}
}

func TestNewMissingDir(t *testing.T) {
	handler := func(context.Context, string) error { return nil }
	if _, err := New(Options{Dir: filepath.Join(t.TempDir(), "missing"), Handler: handler}); err == nil {
		t.Error("New() on missing dir error = nil")
	}
}

func TestWatcherHandlesAcceptedFiles(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	var running, maxRunning int32
	got := make(chan struct{}, 8)

	w, err := New(Options{
		Dir: dir,
		Handler: func(ctx context.Context, path string) error {
			n := atomic.AddInt32(&running, 1)
			defer atomic.AddInt32(&running, -1)
			for {
				m := atomic.LoadInt32(&maxRunning)
				if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			handled = append(handled, filepath.Base(path))
			mu.Unlock()
			got <- struct{}{}
			return errors.New("handler errors are logged, not fatal")
		},
		Accept:   func(path string) bool { return strings.HasSuffix(path, ".mp3") },
		Debounce: 30 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the event loop a moment before producing events.
	time.Sleep(50 * time.Millisecond)
	for _, name := range []string{"a.mp3", "notes.txt", "b.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(5 * time.Second):
			t.Fatalf("handler called %d times, want 2", i)
		}
	}

	// Nothing else should arrive: notes.txt is filtered, writes were debounced.
	select {
	case <-got:
		t.Error("handler called more than twice")
	case <-time.After(150 * time.Millisecond):
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 2 {
		t.Errorf("handled = %v", handled)
	}
	for _, name := range handled {
		if name == "notes.txt" {
			t.Error("unsupported file was handled")
		}
	}
	if atomic.LoadInt32(&maxRunning) != 1 {
		t.Errorf("max concurrent handlers = %d, want 1", maxRunning)
	}
}

func TestPendingSetDebounces(t *testing.T) {
	p := newPendingSet()
	var fired int32
	fire := func(string) { atomic.AddInt32(&fired, 1) }

	for i := 0; i < 5; i++ {
		p.touch("a.wav", 40*time.Millisecond, fire)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(120 * time.Millisecond)
	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Errorf("fired %d times, want 1", n)
	}

	p.touch("b.wav", time.Hour, fire)
	p.stopAll()
	if len(p.timers) != 0 {
		t.Errorf("timers left after stopAll: %d", len(p.timers))
	}
}

func TestPendingSetRearmAfterExpiryFiresOnce(t *testing.T) {
	p := newPendingSet()
	var fired int32
	fire := func(string) { atomic.AddInt32(&fired, 1) }

	p.touch("a.wav", 5*time.Millisecond, fire)

	// Hold the lock past expiry so the callback is parked waiting for it,
	// then re-arm before releasing.
	p.mu.Lock()
	time.Sleep(40 * time.Millisecond)
	p.touchLocked("a.wav", 20*time.Millisecond, fire)
	p.mu.Unlock()

	time.Sleep(120 * time.Millisecond)
	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Errorf("fired %d times, want 1", n)
	}
	p.mu.Lock()
	left := len(p.timers)
	p.mu.Unlock()
	if left != 0 {
		t.Errorf("timers left = %d, want 0", left)
	}
}
