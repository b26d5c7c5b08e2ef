package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmateapp/readmate-server/internal/service"
)

func TestGetSettings_Defaults(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.get(t, "/api/v1/settings")

	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, false, data["dark_mode"])
	assert.Empty(t, data["native_language"])
}

func TestSetDarkMode(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.put(t, "/api/v1/settings/dark-mode", service.SetDarkModeRequest{DarkMode: true})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["dark_mode"])

	w = ts.get(t, "/api/v1/settings")
	data = decodeData(t, w)
	assert.Equal(t, true, data["dark_mode"])
}

func TestSetLanguage(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.put(t, "/api/v1/settings/language", service.SetLanguageRequest{NativeLanguage: "es"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "es", data["native_language"])
}

func TestSetLanguage_Invalid(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.put(t, "/api/v1/settings/language", service.SetLanguageRequest{NativeLanguage: "not-a-language"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranslate_UsesStoredLanguage(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.put(t, "/api/v1/settings/language", service.SetLanguageRequest{NativeLanguage: "es"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.post(t, "/api/v1/translate", service.TranslateRequest{Text: "good night"})

	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "good night", data["text"])
	assert.Equal(t, "es:good night", data["translation"])
	assert.Equal(t, "es", data["target_lang"])
}

func TestTranslate_NoLanguageAnywhere(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/translate", service.TranslateRequest{Text: "good night"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranslate_ExplicitTarget(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/translate", service.TranslateRequest{Text: "good night", TargetLang: "fr"})

	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "fr:good night", data["translation"])
}

func TestSpeak_ThenActive_ThenStop(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/speech/speak", service.SpeakRequest{Text: "he was an old man"})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "he was an old man", data["text"])
	assert.Equal(t, "en", data["language"])

	w = ts.get(t, "/api/v1/speech/active")
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, true, data["active"])

	w = ts.post(t, "/api/v1/speech/stop", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Stop waits for the utterance to wind down.
	deadline := time.Now().Add(time.Second)
	for {
		w = ts.get(t, "/api/v1/speech/active")
		data = decodeData(t, w)
		if data["active"] == false || time.Now().After(deadline) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, false, data["active"])
}

func TestSpeak_EmptyText(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	w := ts.post(t, "/api/v1/speech/speak", service.SpeakRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
