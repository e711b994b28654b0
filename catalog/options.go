package catalog

import (
	"net/http"
	"time"
)

// DefaultMaxPages is the page budget of a single TopMovies call
const DefaultMaxPages = 10

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout         time.Duration
	httpClient      *http.Client
	fetcher         Fetcher
	cache           *MovieCache
	maxPages        int
	acceptSummaries bool
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:  DefaultTimeout,
		maxPages: DefaultMaxPages,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets the HTTP client used by the default fetcher.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithFetcher replaces the HTTP fetcher entirely.
func WithFetcher(f Fetcher) Option {
	return func(o *clientOptions) {
		o.fetcher = f
	}
}

// WithCache shares a movie cache between clients.
func WithCache(cache *MovieCache) Option {
	return func(o *clientOptions) {
		o.cache = cache
	}
}

// WithMaxPages sets the page budget of TopMovies.
func WithMaxPages(pages int) Option {
	return func(o *clientOptions) {
		if pages > 0 {
			o.maxPages = pages
		}
	}
}

// WithAcceptSummaries makes MovieDetails return a cached summary as is
// instead of refetching the full record.
func WithAcceptSummaries(accept bool) Option {
	return func(o *clientOptions) {
		o.acceptSummaries = accept
	}
}
