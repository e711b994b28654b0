package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrency bounds the number of independent catalog calls in flight
const MaxConcurrency = 4

// Category is the top list of one genre
type Category struct {
	Name   string
	Movies []Movie
}

// Home gathers everything shown on the catalog landing page
type Home struct {
	Best       *Movie
	Top        []Movie
	Categories []Category
}

// HomeRequest describes which sections LoadHome fills in
type HomeRequest struct {
	Limit      int
	Categories []string
}

// LoadHome fetches the best movie, the overall top list and the top list of
// every requested category. Sections are loaded concurrently; pagination
// inside each section stays sequential. The first failure cancels the rest.
func (c *Client) LoadHome(ctx context.Context, req HomeRequest) (*Home, error) {
	home := &Home{
		Categories: make([]Category, len(req.Categories)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrency)

	g.Go(func() error {
		top, err := c.TopMovies(ctx, req.Limit, "")
		if err != nil {
			return err
		}
		home.Top = top
		if len(top) == 0 {
			return nil
		}

		best, err := c.MovieDetails(ctx, top[0].ID)
		if err != nil {
			return fmt.Errorf("failed to load best movie: %w", err)
		}
		home.Best = best
		return nil
	})

	for i, name := range req.Categories {
		i, name := i, name
		g.Go(func() error {
			movies, err := c.TopMovies(ctx, req.Limit, name)
			if err != nil {
				return fmt.Errorf("failed to load category %s: %w", name, err)
			}
			home.Categories[i] = Category{Name: name, Movies: movies}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("categories", len(home.Categories)).
		Int("cached", c.cache.Len()).
		Msg("Loaded catalog home")

	return home, nil
}
