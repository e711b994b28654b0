package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Client represents an OC Movies catalog API client
type Client struct {
	baseURL         string
	fetcher         Fetcher
	cache           *MovieCache
	logger          zerolog.Logger
	maxPages        int
	acceptSummaries bool
}

// NewClient creates a new catalog client. baseURL is the API root, for
// example http://127.0.0.1:8000/api/v1/.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fetcher := o.fetcher
	if fetcher == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		fetcher = NewHTTPFetcher(httpClient, logger)
	}

	cache := o.cache
	if cache == nil {
		cache = NewMovieCache()
	}

	return &Client{
		baseURL:         base,
		fetcher:         fetcher,
		cache:           cache,
		logger:          logger,
		maxPages:        o.maxPages,
		acceptSummaries: o.acceptSummaries,
	}, nil
}

// normalizeBaseURL validates the API root and makes sure it ends in a slash
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: URL is required", ErrInvalidBaseURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidBaseURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidBaseURL)
	}

	return strings.TrimRight(raw, "/") + "/", nil
}

// BaseURL returns the normalised API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Cache returns the movie cache backing the client
func (c *Client) Cache() *MovieCache {
	return c.cache
}

// ListAllGenres retrieves every genre name, following next links until the
// collection ends
func (c *Client) ListAllGenres(ctx context.Context) ([]string, error) {
	var genres []string
	uri := c.baseURL + "genres/"
	pages := 0

	for uri != "" {
		var page Page[Genre]
		if err := c.fetchPage(ctx, uri, &page); err != nil {
			return nil, fmt.Errorf("failed to list genres: %w", err)
		}
		pages++

		for _, g := range page.Results {
			genres = append(genres, g.Name)
		}

		uri = nextURI(uri, &page)
	}

	c.logger.Debug().
		Int("pages", pages).
		Int("count", len(genres)).
		Msg("Retrieved genres from catalog")

	return genres, nil
}

// CountInGenre returns the number of titles the catalog declares for genre.
// An empty genre is answered without a request.
func (c *Client) CountInGenre(ctx context.Context, genre string) (int, error) {
	if genre == "" {
		return 0, nil
	}

	uri := c.baseURL + "titles/?genre=" + url.QueryEscape(genre)

	var page Page[Movie]
	if err := c.fetchPage(ctx, uri, &page); err != nil {
		return 0, fmt.Errorf("failed to count titles in %s: %w", genre, err)
	}

	return page.TotalCount(), nil
}

// TopMovies retrieves up to limit titles sorted by descending IMDb score,
// optionally restricted to one genre. Every fetched title is cached, even
// those that do not make the list. The list never grows past limit, so
// pagination runs until the collection ends or the page budget runs out;
// the latter truncates silently.
func (c *Client) TopMovies(ctx context.Context, limit int, genre string) ([]Movie, error) {
	movies := make([]Movie, 0, max(limit, 0))
	if limit <= 0 {
		return movies, nil
	}

	uri := c.topMoviesURI(genre)
	pages := 0

	for uri != "" && len(movies) <= limit && pages < c.maxPages {
		var page Page[Movie]
		if err := c.fetchPage(ctx, uri, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch top movies: %w", err)
		}
		pages++

		if !page.HasResults() {
			break
		}

		for i := range page.Results {
			movie := page.Results[i]
			c.cache.Put(&movie, Summary)
			if len(movies)+1 <= limit {
				movies = append(movies, movie)
			}
		}

		uri = nextURI(uri, &page)
	}

	c.logger.Debug().
		Str("genre", genre).
		Int("pages", pages).
		Int("count", len(movies)).
		Msg("Retrieved top movies from catalog")

	return movies, nil
}

func (c *Client) topMoviesURI(genre string) string {
	uri := c.baseURL + "titles/?sort_by=-imdb_score"
	if genre != "" {
		uri += "&genre=" + url.QueryEscape(genre)
	}
	return uri
}

// MovieDetails returns the full record of a title, serving it from the
// cache when possible. A cached summary is refetched unless the client
// accepts summaries. The returned movie is a copy the caller may modify.
func (c *Client) MovieDetails(ctx context.Context, id int) (*Movie, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMovieID, id)
	}

	if entry, ok := c.cache.Get(id); ok {
		if entry.Level >= Detail || c.acceptSummaries {
			c.logger.Debug().
				Str("key", Key(id)).
				Stringer("level", entry.Level).
				Msg("Found movie in cache")
			return entry.Movie.Clone(), nil
		}
	}

	uri := c.baseURL + "titles/" + strconv.Itoa(id)
	body, err := c.fetcher.Fetch(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie details: %w", err)
	}

	var movie Movie
	if err := decodeInto(uri, body, &movie); err != nil {
		return nil, fmt.Errorf("failed to fetch movie details: %w", err)
	}
	if movie.ID == 0 {
		movie.ID = id
	}

	c.cache.Upgrade(&movie, Detail)

	return movie.Clone(), nil
}

// fetchPage fetches uri and decodes it as a page
func (c *Client) fetchPage(ctx context.Context, uri string, page any) error {
	body, err := c.fetcher.Fetch(ctx, uri)
	if err != nil {
		return err
	}
	return decodeInto(uri, body, page)
}

// nextURI resolves the page's next link against the URI it was fetched
// from, returning "" at the end of the collection
func nextURI[T any](current string, page *Page[T]) string {
	next, ok := page.NextURI()
	if !ok {
		return ""
	}

	base, err := url.Parse(current)
	if err != nil {
		return next
	}
	ref, err := url.Parse(next)
	if err != nil {
		return next
	}
	return base.ResolveReference(ref).String()
}
