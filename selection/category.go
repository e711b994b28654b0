package selection

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/s0up4200/ocmovies/catalog"
)

// TopMoviesFetcher is the part of the catalog client a CategoryBrowser needs
type TopMoviesFetcher interface {
	TopMovies(ctx context.Context, limit int, genre string) ([]catalog.Movie, error)
}

// ResultFunc receives the top movies of a newly selected category
type ResultFunc func(genre string, movies []catalog.Movie, err error)

// CategoryBrowser is a genre dropdown that loads the top movies of the
// selected genre whenever the selection changes
type CategoryBrowser struct {
	controller *Controller
	view       *TextList
	fetcher    TopMoviesFetcher
	limit      int
	sink       ResultFunc
	logger     zerolog.Logger
}

// NewCategoryBrowser creates a browser over genres. Results of every
// selection change are handed to sink.
func NewCategoryBrowser(genres []string, fetcher TopMoviesFetcher, limit int, sink ResultFunc, logger zerolog.Logger) *CategoryBrowser {
	b := &CategoryBrowser{
		view:    NewTextList(genres),
		fetcher: fetcher,
		limit:   limit,
		sink:    sink,
		logger:  logger,
	}
	b.controller = NewController(genres, WithView(b.view), WithListener(b.onChange))
	return b
}

// Select changes the selected genre by name or index
func (b *CategoryBrowser) Select(ctx context.Context, value string) bool {
	changed := b.controller.SelectByNameOrIndex(ctx, value)
	if !changed {
		b.logger.Debug().Str("value", value).Msg("Category selection unchanged")
	}
	return changed
}

// Controller exposes the underlying selection controller
func (b *CategoryBrowser) Controller() *Controller {
	return b.controller
}

// Render draws the dropdown
func (b *CategoryBrowser) Render() string {
	return b.view.Render()
}

func (b *CategoryBrowser) onChange(ctx context.Context, genre string) {
	b.logger.Debug().Str("genre", genre).Msg("Category selected")

	movies, err := b.fetcher.TopMovies(ctx, b.limit, genre)
	if err != nil {
		b.logger.Error().Err(err).Str("genre", genre).Msg("Failed to load category")
	}

	if b.sink != nil {
		b.sink(genre, movies, err)
	}
}
