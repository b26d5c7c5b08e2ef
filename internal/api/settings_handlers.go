package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/readmateapp/readmate-server/internal/http/response"
	"github.com/readmateapp/readmate-server/internal/service"
)

// handleGetSettings returns the reader preferences.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.settings.Get(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, prefs, s.logger)
}

// handleSetDarkMode stores the theme preference.
func (s *Server) handleSetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req service.SetDarkModeRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	prefs, err := s.settings.SetDarkMode(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, prefs, s.logger)
}

// handleSetLanguage stores the reader's native language.
func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req service.SetLanguageRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	prefs, err := s.settings.SetLanguage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, prefs, s.logger)
}

// handleTranslate translates free-form text.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req service.TranslateRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.translator.Translate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, resp, s.logger)
}

// handleSpeak starts reading text aloud.
func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req service.SpeakRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	utterance, err := s.speech.Speak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, utterance, s.logger)
}

// handleStopSpeech halts the active utterance.
func (s *Server) handleStopSpeech(w http.ResponseWriter, r *http.Request) {
	s.speech.Stop()
	response.NoContent(w)
}

// ActiveUtteranceResponse reports what is playing, if anything.
type ActiveUtteranceResponse struct {
	Active    bool `json:"active"`
	Utterance any  `json:"utterance,omitempty"`
}

// handleActiveUtterance reports the current playback state.
func (s *Server) handleActiveUtterance(w http.ResponseWriter, r *http.Request) {
	utterance, active := s.speech.Active()
	resp := ActiveUtteranceResponse{Active: active}
	if active {
		resp.Utterance = utterance
	}
	response.Success(w, resp, s.logger)
}
