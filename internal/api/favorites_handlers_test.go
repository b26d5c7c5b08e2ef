package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavorite_RoundTrip(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	addTestBook(t, ts, "Dubliners", "some text")

	w := ts.post(t, "/api/v1/favorites/toggle", ToggleFavoriteRequest{Title: "Dubliners"})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "Dubliners", data["title"])
	assert.Equal(t, true, data["favorite"])

	// Toggling again removes it.
	w = ts.post(t, "/api/v1/favorites/toggle", ToggleFavoriteRequest{Title: "Dubliners"})
	assert.Equal(t, http.StatusOK, w.Code)

	data = decodeData(t, w)
	assert.Equal(t, false, data["favorite"])

	w = ts.get(t, "/api/v1/favorites")
	assert.Empty(t, decodeList(t, w))
}

func TestToggleFavorite_EmptyTitle(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/favorites/toggle", ToggleFavoriteRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFavorites_JoinsCatalog(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	id := addTestBook(t, ts, "Dubliners", "line one\nline two\nline three\nline four")

	w := ts.post(t, "/api/v1/favorites/toggle", ToggleFavoriteRequest{Title: "Dubliners"})
	require.Equal(t, http.StatusOK, w.Code)

	// Favorites can also name books not yet downloaded.
	w = ts.post(t, "/api/v1/favorites/toggle", ToggleFavoriteRequest{Title: "Ulysses"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.get(t, "/api/v1/favorites")
	assert.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 2)

	first, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dubliners", first["title"])
	assert.Equal(t, true, first["downloaded"])
	assert.Equal(t, float64(id), first["book_id"])

	second, ok := list[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ulysses", second["title"])
	assert.Equal(t, false, second["downloaded"])
}

func TestRemoveFavorite(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/favorites/toggle", ToggleFavoriteRequest{Title: "Dubliners"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.delete(t, "/api/v1/favorites/Dubliners")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.get(t, "/api/v1/favorites")
	assert.Empty(t, decodeList(t, w))
}
