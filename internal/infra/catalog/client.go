// Package catalog is the HTTP client of the third-party Marvel catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"marvel/config"
	deliverycontext "marvel/internal/delivery/context"
	"marvel/internal/domain/service"
	"marvel/internal/errors"
)

// Upper bound on upstream response bodies.
const maxResponseBytes = 10 << 20

type client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// New returns a CatalogService calling catalog.baseUrl with catalog.apiKey.
func New(cfg *config.Config, logger *slog.Logger) (service.CatalogService, error) {
	return newClient(cfg.Catalog, &http.Client{Timeout: cfg.Catalog.Timeout}, logger)
}

func newClient(cfg *config.CatalogConfig, httpClient *http.Client, logger *slog.Logger) (*client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog base url %q", cfg.BaseURL)
	}

	return &client{baseURL: base, apiKey: cfg.APIKey, http: httpClient, logger: logger}, nil
}

func (c *client) ListComics(ctx context.Context, query service.CatalogQuery) (json.RawMessage, error) {
	params := url.Values{}
	setIfPresent(params, "limit", query.Limit)
	setIfPresent(params, "skip", query.Skip)
	setIfPresent(params, "title", query.Filter)

	return c.get(ctx, params, "comics")
}

func (c *client) ListComicsByCharacter(ctx context.Context, characterID string) (json.RawMessage, error) {
	return c.get(ctx, url.Values{}, "comics", characterID)
}

func (c *client) GetComic(ctx context.Context, comicID string) (json.RawMessage, error) {
	return c.get(ctx, url.Values{}, "comic", comicID)
}

// ListCharacters always forwards skip, defaulting to 0.
func (c *client) ListCharacters(ctx context.Context, query service.CatalogQuery) (json.RawMessage, error) {
	params := url.Values{}
	setIfPresent(params, "limit", query.Limit)
	skip := query.Skip
	if skip == "" {
		skip = "0"
	}
	params.Set("skip", skip)
	setIfPresent(params, "name", query.Filter)

	return c.get(ctx, params, "characters")
}

func (c *client) GetCharacter(ctx context.Context, characterID string) (json.RawMessage, error) {
	return c.get(ctx, url.Values{}, "character", characterID)
}

func (c *client) get(ctx context.Context, params url.Values, segments ...string) (json.RawMessage, error) {
	endpoint := c.baseURL.JoinPath(segments...)
	if c.apiKey != "" {
		params.Set("apiKey", c.apiKey)
	}
	endpoint.RawQuery = params.Encode()

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog request")
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("Catalog request failed", slog.String("path", endpoint.Path), slog.Any("error", err))

		return nil, errors.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("Catalog returned an error status",
			slog.String("path", endpoint.Path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("catalog returned status %d", resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, errors.New("catalog returned an invalid JSON body")
	}

	return json.RawMessage(body), nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
