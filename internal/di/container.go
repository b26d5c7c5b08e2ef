// Package di provides dependency injection configuration for the ReadMate server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/readmateapp/readmate-server/internal/config"
	"github.com/readmateapp/readmate-server/internal/di/providers"
	"github.com/readmateapp/readmate-server/internal/logger"
	"github.com/readmateapp/readmate-server/internal/quiz"
	"github.com/readmateapp/readmate-server/internal/reader"
	"github.com/readmateapp/readmate-server/internal/remote"
	"github.com/readmateapp/readmate-server/internal/service"
	"github.com/readmateapp/readmate-server/internal/translate"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideCatalog)

	// Outbound clients
	do.Provide(injector, providers.ProvideRemoteCatalog)
	do.Provide(injector, providers.ProvideTranslator)

	// In-memory engines
	do.Provide(injector, providers.ProvideSessionRegistry)
	do.Provide(injector, providers.ProvideQuizRegistry)
	do.Provide(injector, providers.ProvideSpeechEngine)

	// Business services
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideReadingService)
	do.Provide(injector, providers.ProvideVocabularyService)
	do.Provide(injector, providers.ProvideFavoritesService)
	do.Provide(injector, providers.ProvideSettingsService)
	do.Provide(injector, providers.ProvideTranslatorService)
	do.Provide(injector, providers.ProvideSpeechService)

	// Workers
	do.Provide(injector, providers.ProvideImportWatcher)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.CatalogHandle](injector)
	_ = do.MustInvoke[remote.Catalog](injector)
	_ = do.MustInvoke[translate.Translator](injector)
	_ = do.MustInvoke[*reader.Registry](injector)
	_ = do.MustInvoke[*quiz.Registry](injector)
	_ = do.MustInvoke[*providers.SpeechEngineHandle](injector)

	// Business services
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.ReadingService](injector)
	_ = do.MustInvoke[*service.VocabularyService](injector)
	_ = do.MustInvoke[*service.FavoritesService](injector)
	_ = do.MustInvoke[*service.SettingsService](injector)
	_ = do.MustInvoke[*service.TranslatorService](injector)
	_ = do.MustInvoke[*service.SpeechService](injector)

	// Workers
	_ = do.MustInvoke[*providers.ImportWatcherHandle](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
