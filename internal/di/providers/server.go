package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/readmateapp/readmate-server/internal/api"
	"github.com/readmateapp/readmate-server/internal/config"
	"github.com/readmateapp/readmate-server/internal/logger"
	"github.com/readmateapp/readmate-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	bookService := do.MustInvoke[*service.BookService](i)
	readingService := do.MustInvoke[*service.ReadingService](i)
	vocabularyService := do.MustInvoke[*service.VocabularyService](i)
	favoritesService := do.MustInvoke[*service.FavoritesService](i)
	settingsService := do.MustInvoke[*service.SettingsService](i)
	translatorService := do.MustInvoke[*service.TranslatorService](i)
	speechService := do.MustInvoke[*service.SpeechService](i)

	handler := api.NewServer(
		bookService,
		readingService,
		vocabularyService,
		favoritesService,
		settingsService,
		translatorService,
		speechService,
		log.Logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr, "name", cfg.Server.Name)

	return &HTTPServerHandle{Server: srv}, nil
}
