package catalog

import (
	"context"
	"encoding/json"
)

// Fetcher retrieves one JSON document from an absolute URI
type Fetcher interface {
	// Fetch performs a single GET; retries are the caller's business
	Fetch(ctx context.Context, uri string) (json.RawMessage, error)
}

// API defines the catalog operations offered to the presentation layer
type API interface {
	// ListAllGenres walks every genres page and returns the names in order
	ListAllGenres(ctx context.Context) ([]string, error)

	// CountInGenre returns the number of titles declared for a genre
	CountInGenre(ctx context.Context, genre string) (int, error)

	// TopMovies returns up to limit titles ordered by IMDb score
	TopMovies(ctx context.Context, limit int, genre string) ([]Movie, error)

	// MovieDetails returns the full record of one title
	MovieDetails(ctx context.Context, id int) (*Movie, error)
}

var _ API = (*Client)(nil)
