package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchNotifiesOnce(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register the root.
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		writeFile(t, root, "post.md", "# v"+string(rune('0'+i)))
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
	select {
	case <-changed:
		t.Fatal("expected the burst to collapse into one notification")
	case <-time.After(2 * watchDebounce):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchNewDirectory(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	go Watch(ctx, root, func() { changed <- struct{}{} })
	time.Sleep(100 * time.Millisecond)

	if err := os.Mkdir(filepath.Join(root, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a notification for the new directory")
	}

	writeFile(t, root, "nested/post.md", "# hello")
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a notification for a file in the new directory")
	}
}

func TestWatchMissingRoot(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), func() {})
	if err == nil {
		t.Fatal("expected error for a missing root")
	}
}
