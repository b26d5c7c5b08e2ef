package importer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmateapp/readmate-server/internal/errors"
)

type fakeCatalog struct {
	mu       sync.Mutex
	imported map[string]string
	fail     error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{imported: make(map[string]string)}
}

func (f *fakeCatalog) ImportText(ctx context.Context, title, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	if _, ok := f.imported[title]; ok {
		return errors.AlreadyExistsf("book %q already in catalog", title)
	}
	f.imported[title] = text
	return nil
}

func (f *fakeCatalog) get(title string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	text, ok := f.imported[title]
	return text, ok
}

func (f *fakeCatalog) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.imported)
}

func newTestWatcher(t *testing.T, catalog Catalog) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w, err := New(dir, catalog, logger)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	return w, dir
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestWatcher_ImportsExistingFiles(t *testing.T) {
	catalog := newFakeCatalog()
	w, dir := newTestWatcher(t, catalog)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dracula.txt"), []byte("Chapter one.\nIt begins."), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Start(ctx)
	}()

	waitFor(t, func() bool { return catalog.count() == 1 })
	text, ok := catalog.get("Dracula")
	assert.True(t, ok)
	assert.Equal(t, "Chapter one.\nIt begins.", text)

	cancel()
	<-done
	require.NoError(t, w.Stop())
}

func TestWatcher_ImportsDroppedFile(t *testing.T) {
	catalog := newFakeCatalog()
	w, dir := newTestWatcher(t, catalog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Emma.txt"), []byte("Emma Woodhouse."), 0o644))

	waitFor(t, func() bool { return catalog.count() == 1 })
	text, ok := catalog.get("Emma")
	assert.True(t, ok)
	assert.Equal(t, "Emma Woodhouse.", text)
}

func TestWatcher_IgnoresNonTextFiles(t *testing.T) {
	catalog := newFakeCatalog()
	w, dir := newTestWatcher(t, catalog)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte{0xff, 0xd8}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Book.txt"), []byte("text"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	waitFor(t, func() bool { return catalog.count() == 1 })
	_, ok := catalog.get("Book")
	assert.True(t, ok)
}

func TestWatcher_SkipsEmptyFiles(t *testing.T) {
	catalog := newFakeCatalog()
	w, dir := newTestWatcher(t, catalog)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("  \n "), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), []byte("words"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	waitFor(t, func() bool { return catalog.count() == 1 })
	_, ok := catalog.get("empty")
	assert.False(t, ok)
}

func TestWatcher_DuplicateDropIsQuiet(t *testing.T) {
	catalog := newFakeCatalog()
	w, dir := newTestWatcher(t, catalog)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dracula.txt"), []byte("v1"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Stop()

	waitFor(t, func() bool { return catalog.count() == 1 })

	// A second drop with the same title does not replace the book.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dracula.txt"), []byte("v2"), 0o644))
	time.Sleep(100 * time.Millisecond)

	text, _ := catalog.get("Dracula")
	assert.Equal(t, "v1", text)
}
