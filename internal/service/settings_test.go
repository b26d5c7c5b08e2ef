package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
)

func TestSettings_RoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewSettingsService(env.store, env.logger)
	ctx := context.Background()

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{}, prefs)

	prefs, err = svc.SetDarkMode(ctx, SetDarkModeRequest{DarkMode: true})
	require.NoError(t, err)
	assert.True(t, prefs.DarkMode)

	prefs, err = svc.SetLanguage(ctx, SetLanguageRequest{NativeLanguage: "es"})
	require.NoError(t, err)
	assert.Equal(t, "es", prefs.NativeLanguage)
	assert.True(t, prefs.DarkMode)
}

func TestSettings_NormalizesLanguageNames(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewSettingsService(env.store, env.logger)
	ctx := context.Background()

	prefs, err := svc.SetLanguage(ctx, SetLanguageRequest{NativeLanguage: "Spanish"})
	require.NoError(t, err)
	assert.Equal(t, "es", prefs.NativeLanguage)

	prefs, err = svc.SetLanguage(ctx, SetLanguageRequest{NativeLanguage: "deu"})
	require.NoError(t, err)
	assert.Equal(t, "de", prefs.NativeLanguage)
}

func TestSettings_RejectsBadLanguage(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewSettingsService(env.store, env.logger)
	ctx := context.Background()

	_, err := svc.SetLanguage(ctx, SetLanguageRequest{NativeLanguage: "not-a-language"})
	assert.True(t, errors.Is(err, errors.ErrValidation))

	_, err = svc.SetLanguage(ctx, SetLanguageRequest{})
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestTranslator_UsesStoredLanguage(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewTranslatorService(env.trans, env.store, env.logger)
	ctx := context.Background()

	_, err := svc.Translate(ctx, TranslateRequest{Text: "good night"})
	assert.True(t, errors.Is(err, errors.ErrValidation))

	require.NoError(t, env.store.SetNativeLanguage(ctx, "ES"))

	resp, err := svc.Translate(ctx, TranslateRequest{Text: "good night"})
	require.NoError(t, err)
	assert.Equal(t, "ES:good night", resp.Translation)
	assert.Equal(t, "ES", resp.TargetLang)

	resp, err = svc.Translate(ctx, TranslateRequest{Text: "good night", TargetLang: "DE"})
	require.NoError(t, err)
	assert.Equal(t, "DE:good night", resp.Translation)
}
