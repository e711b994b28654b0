package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single catalog request
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is kept on HTTPError
const maxErrorBody = 512

// HTTPFetcher performs single GET requests against absolute catalog URIs
type HTTPFetcher struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewHTTPFetcher creates a fetcher using httpClient, or a client with
// DefaultTimeout when httpClient is nil
func NewHTTPFetcher(httpClient *http.Client, logger zerolog.Logger) *HTTPFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPFetcher{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Fetch issues one GET to uri and returns the JSON body untouched
func (f *HTTPFetcher) Fetch(ctx context.Context, uri string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &NetworkError{URI: uri, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	f.logger.Debug().Str("url", uri).Msg("Fetching catalog page")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URI: uri, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			URI:        uri,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URI: uri, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if !json.Valid(body) {
		return nil, &MalformedResponseError{URI: uri, Err: errors.New("body is not valid JSON")}
	}

	return json.RawMessage(body), nil
}

// decodeInto unmarshals a fetched body, reporting shape mismatches as
// MalformedResponseError
func decodeInto(uri string, body json.RawMessage, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &MalformedResponseError{URI: uri, Err: err}
	}
	return nil
}
