// Package remote provides a client for the hosted book catalog service.
package remote

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
)

// Catalog lists remotely hosted books and fetches their full texts.
type Catalog interface {
	ListBooks(ctx context.Context) ([]domain.CatalogBook, error)
	FetchBookText(ctx context.Context, bookID string) (string, error)
}

// Config holds the settings for the remote catalog client.
type Config struct {
	// BaseURL of the catalog service, without trailing slash.
	BaseURL string
	// Timeout per request.
	Timeout time.Duration
}

// Client talks to the hosted catalog over its JSON API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a remote catalog client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// ListBooks returns the catalog listing, texts omitted.
// Fails with UNAVAILABLE when the service cannot be reached; callers
// degrade to the local catalog alone.
func (c *Client) ListBooks(ctx context.Context) ([]domain.CatalogBook, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/books", nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "build catalog request")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var books []domain.CatalogBook
	if err := json.Unmarshal(body, &books); err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "decode catalog listing")
	}
	return books, nil
}

// bookTextResponse is the wire shape of the text endpoint.
type bookTextResponse struct {
	Source struct {
		Text *string `json:"text"`
	} `json:"source"`
}

// FetchBookText downloads the full text of one catalog book.
func (c *Client) FetchBookText(ctx context.Context, bookID string) (string, error) {
	payload, err := json.Marshal(map[string]string{"bookId": bookID})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "marshal text request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/getBookText", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "build text request")
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var decoded bookTextResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", errors.Wrap(err, errors.CodeUnavailable, "decode text response")
	}
	if decoded.Source.Text == nil {
		return "", errors.NotFoundf("catalog has no text for book %s", bookID)
	}
	return *decoded.Source.Text, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "catalog service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "read catalog response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("catalog request rejected",
			"status", resp.StatusCode,
			"path", req.URL.Path)
		return nil, errors.Unavailablef("catalog service returned status %d", resp.StatusCode)
	}
	return body, nil
}
