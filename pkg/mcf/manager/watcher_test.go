package manager

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestFileWatcher_ReloadOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.cfg")
	if err := os.WriteFile(path, []byte("mode = dev\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := DefaultFileWatcherConfig()
	cfg.Path = dir
	cfg.DebounceInterval = 20 * time.Millisecond

	fw, err := NewFileWatcher(cfg, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() failed: %v", err)
	}

	var reloads atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = fw.Watch(ctx, func() error {
			reloads.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("mode = prod\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for reloads.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if reloads.Load() == 0 {
		t.Error("expected at least one reload after a file change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("Watch did not return after context cancellation")
	}
}

func TestFileWatcher_Stop(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultFileWatcherConfig()
	cfg.Path = dir

	fw, err := NewFileWatcher(cfg, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = fw.Watch(context.Background(), func() error { return nil })
	}()

	time.Sleep(50 * time.Millisecond)
	if err := fw.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("Watch did not return after Stop")
	}
}

func TestFileWatcher_ShouldProcessEvent(t *testing.T) {
	fw, err := NewFileWatcher(nil, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() failed: %v", err)
	}
	defer fw.watcher.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"cfg write", fsnotify.Event{Name: "app.cfg", Op: fsnotify.Write}, true},
		{"conf create", fsnotify.Event{Name: "app.conf", Op: fsnotify.Create}, true},
		{"mcf uppercase ext", fsnotify.Event{Name: "app.MCF", Op: fsnotify.Write}, true},
		{"chmod ignored", fsnotify.Event{Name: "app.cfg", Op: fsnotify.Chmod}, false},
		{"wrong extension", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, false},
		{"hidden file", fsnotify.Event{Name: ".app.cfg", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fw.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
