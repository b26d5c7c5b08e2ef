package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/store"
	"github.com/readmateapp/readmate-server/internal/store/catalog"
)

// testEnv bundles the real stores with fake outbound clients.
type testEnv struct {
	store   *store.Store
	catalog *catalog.Store
	remote  *fakeRemote
	trans   *fakeTranslator
	logger  *slog.Logger
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "readmate-service-test-*")
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)

	kv, err := store.New(filepath.Join(tmpDir, "data"), nil)
	require.NoError(t, err)

	cat, err := catalog.Open(filepath.Join(tmpDir, "catalog.db"), logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		cat.Close()
		kv.Close()
		os.RemoveAll(tmpDir)
	})

	return &testEnv{
		store:   kv,
		catalog: cat,
		remote:  newFakeRemote(),
		trans:   &fakeTranslator{},
		logger:  logger,
	}
}

// fakeRemote serves a canned catalog listing and texts.
type fakeRemote struct {
	mu    sync.Mutex
	books []domain.CatalogBook
	texts map[string]string
	down  bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{texts: make(map[string]string)}
}

func (f *fakeRemote) add(book domain.CatalogBook, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.books = append(f.books, book)
	f.texts[book.ID] = text
}

func (f *fakeRemote) ListBooks(ctx context.Context) ([]domain.CatalogBook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, errors.Unavailable("catalog service unreachable")
	}
	return append([]domain.CatalogBook{}, f.books...), nil
}

func (f *fakeRemote) FetchBookText(ctx context.Context, bookID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return "", errors.Unavailable("catalog service unreachable")
	}
	text, ok := f.texts[bookID]
	if !ok {
		return "", errors.NotFoundf("catalog has no text for book %s", bookID)
	}
	return text, nil
}

// fakeTranslator prefixes text instead of calling out.
type fakeTranslator struct {
	mu    sync.Mutex
	calls int
	fail  error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return "", f.fail
	}
	f.calls++
	return targetLang + ":" + text, nil
}

func (f *fakeTranslator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
