package response

import (
	"encoding/json/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/readmateapp/readmate-server/internal/errors"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"title": "1984"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(http.ResponseWriter, string, *testing.T)
		want int
	}{
		{"bad request", func(w http.ResponseWriter, msg string, t *testing.T) { BadRequest(w, msg, nil) }, http.StatusBadRequest},
		{"not found", func(w http.ResponseWriter, msg string, t *testing.T) { NotFound(w, msg, nil) }, http.StatusNotFound},
		{"conflict", func(w http.ResponseWriter, msg string, t *testing.T) { Conflict(w, msg, nil) }, http.StatusConflict},
		{"bad gateway", func(w http.ResponseWriter, msg string, t *testing.T) { BadGateway(w, msg, nil) }, http.StatusBadGateway},
		{"internal", func(w http.ResponseWriter, msg string, t *testing.T) { InternalError(w, msg, nil) }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, "boom", t)

			assert.Equal(t, tt.want, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "boom", env.Error)
		})
	}
}

func TestHandleError_DomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, domainerrors.NotFound("book not found"), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "book not found", env.Error)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestHandleError_Unavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, domainerrors.Unavailable("translation service unreachable"), nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "UNAVAILABLE", env.Code)
}

func TestHandleError_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, assert.AnError, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "internal server error", env.Error)
}
