package providers

import (
	"github.com/samber/do/v2"

	"github.com/readmateapp/readmate-server/internal/config"
	"github.com/readmateapp/readmate-server/internal/logger"
	"github.com/readmateapp/readmate-server/internal/remote"
	"github.com/readmateapp/readmate-server/internal/translate"
)

// ProvideRemoteCatalog provides the hosted book catalog client.
func ProvideRemoteCatalog(i do.Injector) (remote.Catalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Remote.BaseURL == "" {
		log.Info("Remote catalog disabled, shelf serves local books only")
	}

	return remote.NewClient(remote.Config{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.Timeout,
	}, log.Logger), nil
}

// ProvideTranslator provides the translation backend client.
func ProvideTranslator(i do.Injector) (translate.Translator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return translate.NewClient(translate.Config{
		BaseURL:           cfg.Translate.BaseURL,
		APIKey:            cfg.Translate.APIKey,
		RequestsPerSecond: cfg.Translate.RequestsPerSecond,
		Timeout:           cfg.Translate.Timeout,
	}, log.Logger), nil
}
