package providers

import (
	"github.com/samber/do/v2"

	"github.com/readmateapp/readmate-server/internal/config"
	"github.com/readmateapp/readmate-server/internal/logger"
	"github.com/readmateapp/readmate-server/internal/quiz"
	"github.com/readmateapp/readmate-server/internal/reader"
	"github.com/readmateapp/readmate-server/internal/remote"
	"github.com/readmateapp/readmate-server/internal/service"
	"github.com/readmateapp/readmate-server/internal/translate"
)

// ProvideBookService provides the book shelf and catalog service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	catalogHandle := do.MustInvoke[*CatalogHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	remoteCatalog := do.MustInvoke[remote.Catalog](i)
	sessions := do.MustInvoke[*reader.Registry](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(catalogHandle.Store, storeHandle.Store, remoteCatalog, sessions, log.Logger), nil
}

// ProvideReadingService provides the paged reading session service.
func ProvideReadingService(i do.Injector) (*service.ReadingService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	catalogHandle := do.MustInvoke[*CatalogHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	sessions := do.MustInvoke[*reader.Registry](i)
	translator := do.MustInvoke[translate.Translator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReadingService(catalogHandle.Store, storeHandle.Store, sessions, translator, cfg.Reader.LinesPerPage, log.Logger), nil
}

// ProvideVocabularyService provides the glossary and quiz service.
func ProvideVocabularyService(i do.Injector) (*service.VocabularyService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	quizzes := do.MustInvoke[*quiz.Registry](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewVocabularyService(storeHandle.Store, quizzes, log.Logger), nil
}

// ProvideFavoritesService provides the favorites service.
func ProvideFavoritesService(i do.Injector) (*service.FavoritesService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	catalogHandle := do.MustInvoke[*CatalogHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFavoritesService(storeHandle.Store, catalogHandle.Store, log.Logger), nil
}

// ProvideSettingsService provides the reader preferences service.
func ProvideSettingsService(i do.Injector) (*service.SettingsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSettingsService(storeHandle.Store, log.Logger), nil
}

// ProvideTranslatorService provides the free-form translation service.
func ProvideTranslatorService(i do.Injector) (*service.TranslatorService, error) {
	translator := do.MustInvoke[translate.Translator](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTranslatorService(translator, storeHandle.Store, log.Logger), nil
}

// ProvideSpeechService provides the text-to-speech service.
func ProvideSpeechService(i do.Injector) (*service.SpeechService, error) {
	engineHandle := do.MustInvoke[*SpeechEngineHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSpeechService(engineHandle.Engine, log.Logger), nil
}
