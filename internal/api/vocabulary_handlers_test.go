package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmateapp/readmate-server/internal/service"
)

func seedTestGlossary(t *testing.T, ts *testServer, entries map[string]string) {
	t.Helper()

	for word, meaning := range entries {
		w := ts.post(t, "/api/v1/glossary", service.AddWordRequest{Word: word, Translation: meaning})
		require.Equal(t, http.StatusCreated, w.Code, "seeding %q failed: %s", word, w.Body.String())
	}
}

func TestAddWord_CleansPunctuation(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/glossary", service.AddWordRequest{Word: "night.", Translation: "noche"})

	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "night", data["word"])
	assert.Equal(t, "noche", data["meaning"])
}

func TestAddWord_MissingMeaning(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/glossary", service.AddWordRequest{Word: "night"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWords_InsertionOrder(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	words := []service.AddWordRequest{
		{Word: "night", Translation: "noche"},
		{Word: "day", Translation: "dia"},
		{Word: "sea", Translation: "mar"},
	}
	for _, req := range words {
		w := ts.post(t, "/api/v1/glossary", req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := ts.get(t, "/api/v1/glossary")

	assert.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 3)
	for i, req := range words {
		entry, ok := list[i].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, req.Word, entry["word"])
		assert.Equal(t, req.Translation, entry["meaning"])
	}
}

func TestRemoveWord_RemovesAllMatches(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	seedTestGlossary(t, ts, map[string]string{"day": "dia"})
	// Duplicate entries for the same word are allowed.
	w := ts.post(t, "/api/v1/glossary", service.AddWordRequest{Word: "night", Translation: "noche"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = ts.post(t, "/api/v1/glossary", service.AddWordRequest{Word: "night", Translation: "anochecer"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.delete(t, "/api/v1/glossary/night")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.get(t, "/api/v1/glossary")
	list := decodeList(t, w)
	require.Len(t, list, 1)
	entry := list[0].(map[string]any)
	assert.Equal(t, "day", entry["word"])
}

func TestStartQuiz_NeedsMinimumWords(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	seedTestGlossary(t, ts, map[string]string{"night": "noche", "day": "dia"})

	w := ts.post(t, "/api/v1/quiz/games", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuiz_FullGame(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	glossary := map[string]string{
		"night": "noche",
		"day":   "dia",
		"sea":   "mar",
		"book":  "libro",
	}
	seedTestGlossary(t, ts, glossary)

	w := ts.post(t, "/api/v1/quiz/games", nil)
	require.Equal(t, http.StatusCreated, w.Code, "start quiz failed: %s", w.Body.String())

	data := decodeData(t, w)
	gameID, ok := data["game_id"].(string)
	require.True(t, ok)
	assert.Equal(t, float64(4), data["remaining"])

	round, ok := data["round"].(map[string]any)
	require.True(t, ok)

	// Answer every round correctly using the seeded meanings.
	for i := 0; i < len(glossary); i++ {
		word, ok := round["word"].(string)
		require.True(t, ok)
		meaning, ok := glossary[word]
		require.True(t, ok, "quiz asked unknown word %q", word)

		options, ok := round["options"].([]any)
		require.True(t, ok)
		assert.Contains(t, options, meaning)

		w = ts.post(t, "/api/v1/quiz/games/"+gameID+"/answer", service.AnswerRequest{Option: meaning})
		require.Equal(t, http.StatusOK, w.Code)

		answer := decodeData(t, w)
		result, ok := answer["result"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, result["correct"])

		if next, ok := answer["next"].(map[string]any); ok {
			round = next
		}
	}

	// All words asked, full score.
	w = ts.get(t, "/api/v1/quiz/games/"+gameID)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, true, data["over"])
	assert.Equal(t, float64(4), data["score"])
	assert.Equal(t, float64(0), data["remaining"])
}

func TestQuiz_WrongAnswerDoesNotScore(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	seedTestGlossary(t, ts, map[string]string{"night": "noche", "day": "dia", "sea": "mar"})

	w := ts.post(t, "/api/v1/quiz/games", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	gameID := data["game_id"].(string)

	w = ts.post(t, "/api/v1/quiz/games/"+gameID+"/answer", service.AnswerRequest{Option: "definitely wrong"})
	require.Equal(t, http.StatusOK, w.Code)

	answer := decodeData(t, w)
	result := answer["result"].(map[string]any)
	assert.Equal(t, false, result["correct"])
	assert.Equal(t, float64(0), result["score"])
	assert.NotEmpty(t, result["answer"])
}

func TestReplayQuiz(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	seedTestGlossary(t, ts, map[string]string{"night": "noche", "day": "dia", "sea": "mar"})

	w := ts.post(t, "/api/v1/quiz/games", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	gameID := decodeData(t, w)["game_id"].(string)

	w = ts.post(t, "/api/v1/quiz/games/"+gameID+"/replay", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, float64(0), data["score"])
	assert.Equal(t, float64(3), data["remaining"])
	assert.NotNil(t, data["round"])
}

func TestEndQuiz(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	seedTestGlossary(t, ts, map[string]string{"night": "noche", "day": "dia", "sea": "mar"})

	w := ts.post(t, "/api/v1/quiz/games", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	gameID := decodeData(t, w)["game_id"].(string)

	w = ts.delete(t, "/api/v1/quiz/games/" + gameID)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.get(t, "/api/v1/quiz/games/" + gameID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
