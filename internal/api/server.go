// Package api provides the HTTP API server and handlers for the ReadMate application.
package api

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/readmateapp/readmate-server/internal/http/response"
	"github.com/readmateapp/readmate-server/internal/ratelimit"
	"github.com/readmateapp/readmate-server/internal/service"
)

// Per-client request budget. Generous for a single reader flipping
// pages, tight enough to keep a runaway client off the translation quota.
const (
	clientRequestsPerSecond = 50
	clientRequestBurst      = 100
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	books      *service.BookService
	reading    *service.ReadingService
	vocabulary *service.VocabularyService
	favorites  *service.FavoritesService
	settings   *service.SettingsService
	translator *service.TranslatorService
	speech     *service.SpeechService
	limiter    *ratelimit.KeyedLimiter
	router     *chi.Mux
	logger     *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	books *service.BookService,
	reading *service.ReadingService,
	vocabulary *service.VocabularyService,
	favorites *service.FavoritesService,
	settings *service.SettingsService,
	translator *service.TranslatorService,
	speech *service.SpeechService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		books:      books,
		reading:    reading,
		vocabulary: vocabulary,
		favorites:  favorites,
		settings:   settings,
		translator: translator,
		speech:     speech,
		limiter:    ratelimit.New(clientRequestsPerSecond, clientRequestBurst),
		router:     chi.NewRouter(),
		logger:     logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.rateLimit)
}

// rateLimit rejects clients that exceed their request budget.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientKey(r)) {
			response.Error(w, http.StatusTooManyRequests, "Too many requests", s.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey buckets requests by client IP, ignoring the ephemeral port.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Books: the combined shelf plus local catalog management.
		r.Route("/books", func(r chi.Router) {
			r.Get("/", s.handleListShelf)
			r.Post("/", s.handleAddBook)
			r.Post("/download", s.handleDownloadBook)
			r.Get("/{id}", s.handleGetBook)
			r.Delete("/{id}", s.handleDeleteBook)
		})

		// Reading sessions.
		r.Route("/reading-sessions", func(r chi.Router) {
			r.Post("/", s.handleOpenSession)
			r.Get("/{id}", s.handleGetPage)
			r.Post("/{id}/turn", s.handleTurnPage)
			r.Post("/{id}/finish", s.handleFinish)
			r.Post("/{id}/lines/toggle", s.handleToggleLine)
			r.Post("/{id}/words/lookup", s.handleLookupWord)
			r.Delete("/{id}", s.handleCloseSession)
		})

		// Personal glossary.
		r.Route("/glossary", func(r chi.Router) {
			r.Get("/", s.handleListWords)
			r.Post("/", s.handleAddWord)
			r.Delete("/{word}", s.handleRemoveWord)
		})

		// Quiz games.
		r.Route("/quiz/games", func(r chi.Router) {
			r.Post("/", s.handleStartQuiz)
			r.Get("/{id}", s.handleQuizRound)
			r.Post("/{id}/answer", s.handleAnswerQuiz)
			r.Post("/{id}/replay", s.handleReplayQuiz)
			r.Delete("/{id}", s.handleEndQuiz)
		})

		// Favorites.
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", s.handleListFavorites)
			r.Post("/toggle", s.handleToggleFavorite)
			r.Delete("/{title}", s.handleRemoveFavorite)
		})

		// Settings.
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", s.handleGetSettings)
			r.Put("/dark-mode", s.handleSetDarkMode)
			r.Put("/language", s.handleSetLanguage)
		})

		// Free-form translation.
		r.Post("/translate", s.handleTranslate)

		// Speech playback.
		r.Route("/speech", func(r chi.Router) {
			r.Post("/speak", s.handleSpeak)
			r.Post("/stop", s.handleStopSpeech)
			r.Get("/active", s.handleActiveUtterance)
		})
	})
}
