package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, paths []string) (<-chan []string, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan []string, 10)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, paths, Options{Debounce: 50 * time.Millisecond}, func(_ context.Context, changed []string) {
			calls <- changed
		})
	}()
	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)
	return calls, cancel, done
}

func TestWatch_DebouncesWrites(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	spec := filepath.Join(dir, "api.json")
	require.NoError(t, os.WriteFile(spec, []byte("{}"), 0644))

	calls, cancel, done := startWatch(t, []string{spec})

	for i := range 3 {
		require.NoError(t, os.WriteFile(spec, []byte{'{', byte('0' + i), '}'}, 0644))
	}

	select {
	case changed := <-calls:
		assert.Equal(t, []string{spec}, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// Rapid writes are coalesced into one call.
	select {
	case changed := <-calls:
		t.Fatalf("unexpected second call: %v", changed)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	spec := filepath.Join(dir, "api.json")
	require.NoError(t, os.WriteFile(spec, []byte("{}"), 0644))

	calls, cancel, done := startWatch(t, []string{spec})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.rs"), []byte("pub type A = bool;"), 0644))

	select {
	case changed := <-calls:
		t.Fatalf("unexpected call for unrelated file: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope", "api.json")}, Options{}, func(context.Context, []string) {})
	assert.ErrorContains(t, err, "failed to watch")
}
