package filter

import (
	"github.com/s0up4200/ocmovies/catalog"
)

// Filter decides whether a movie should be kept
type Filter interface {
	// Evaluate checks if a movie matches the filter criteria
	Evaluate(movie catalog.Movie) bool

	// Expression returns the original filter expression
	Expression() string
}

// Apply returns the movies matching f, preserving order
func Apply(f Filter, movies []catalog.Movie) []catalog.Movie {
	matched := make([]catalog.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matched = append(matched, movie)
		}
	}
	return matched
}
