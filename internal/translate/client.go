// Package translate provides a client for a DeepL-compatible translation API.
package translate

import (
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/readmateapp/readmate-server/internal/errors"
)

// Translator translates text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Config holds the settings for the translation client.
type Config struct {
	// BaseURL of the DeepL-compatible API, without trailing slash.
	BaseURL string
	// APIKey is sent as auth_key on each request.
	APIKey string
	// SourceLang of the book texts. Empty lets the backend detect.
	SourceLang string
	// RequestsPerSecond caps outbound calls.
	RequestsPerSecond int
	// Timeout per request.
	Timeout time.Duration
}

// Client calls a DeepL-compatible /v2/translate endpoint.
// Requests are rate limited client-side so a burst of line toggles
// cannot trip the backend's quota.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	sourceLang string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a translation client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps < 1 {
		rps = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		sourceLang: cfg.SourceLang,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		logger:     logger,
	}
}

// translateResponse is the DeepL wire format.
type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate translates text into targetLang.
// Fails with a VALIDATION error for empty text or an unknown language
// tag before any I/O, and with UNAVAILABLE when the backend cannot be
// reached or answers with a non-2xx status.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.Validation("nothing to translate")
	}
	if _, err := language.Parse(targetLang); err != nil {
		return "", errors.Validationf("unknown target language %q", targetLang).WithCause(err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("auth_key", c.apiKey)
	form.Set("text", text)
	form.Set("target_lang", strings.ToUpper(targetLang))
	if c.sourceLang != "" {
		form.Set("source_lang", strings.ToUpper(c.sourceLang))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "build translate request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUnavailable, "translation service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeUnavailable, "read translation response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("translation request rejected",
			"status", resp.StatusCode,
			"target_lang", targetLang)
		return "", errors.Unavailablef("translation service returned status %d", resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", errors.Wrap(err, errors.CodeUnavailable, "decode translation response")
	}
	if len(decoded.Translations) == 0 {
		return "", errors.Unavailable("translation service returned no translations")
	}

	return decoded.Translations[0].Text, nil
}
