package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ocmovies/catalog"
	"github.com/s0up4200/ocmovies/filter"
)

var (
	topLimit    int
	topGenre    string
	filterExpr  string
	showDetails bool
	showCast    bool
	categories  []string

	filterCompiler = filter.NewCompiler(filter.WithCache(filterCacheSize))
)

const filterCacheSize = 32

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List every genre in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runGenres,
}

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count <genre>",
	Short: "Count the titles of a genre",
	Long: `Count the titles of a genre as reported by the catalog.

An empty genre is answered with 0 without contacting the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runCount,
}

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the best rated movies",
	Long: `Show the best rated movies, optionally restricted to a genre.

Results can be narrowed further with an expression, for example:

  ocmovies top -n 20 -f 'Year >= 2000 and hasDirector("Christopher Nolan")'

Available fields: ID, Title, Year, Score, HasScore, Votes, Rated, Duration,
Genres, Actors, Directors, Countries.
Available functions: includes, hasPrefix, lower, upper, hasGenre, hasActor,
hasDirector, fromCountry. Operators include contains, startsWith, in, and, or.`,
	Args: cobra.NoArgs,
	RunE: runTop,
}

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show the full details of a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

// homeCmd represents the home command
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the best movie, the overall top list and category top lists",
	Args:  cobra.NoArgs,
	RunE:  runHome,
}

func init() {
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(homeCmd)

	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "number of movies to show (default browse.limit)")
	topCmd.Flags().StringVarP(&topGenre, "genre", "g", "", "restrict to a genre")
	topCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	topCmd.Flags().BoolVar(&showDetails, "details", false, "show genres for each movie")
	topCmd.Flags().BoolVar(&showCast, "cast", false, "show directors and actors for each movie")

	homeCmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "category to include (default browse.categories)")
	homeCmd.Flags().BoolVar(&showDetails, "details", false, "show genres for each movie")
}

func runGenres(cmd *cobra.Command, args []string) error {
	genres, err := catalogClient.ListAllGenres(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list genres: %w", err)
	}

	logger.Debug().Int("count", len(genres)).Msg("Fetched genres")

	out := cmd.OutOrStdout()
	if len(genres) == 0 {
		fmt.Fprintln(out, "No genres found")
		return nil
	}
	for _, genre := range genres {
		fmt.Fprintln(out, genre)
	}
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	genre := strings.TrimSpace(args[0])

	count, err := catalogClient.CountInGenre(cmd.Context(), genre)
	if err != nil {
		return fmt.Errorf("failed to count genre %q: %w", genre, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", genre, count)
	return nil
}

func runTop(cmd *cobra.Command, args []string) error {
	limit := topLimit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Browse.Limit
	}

	var f filter.Filter
	if filterExpr != "" {
		var err error
		f, err = filterCompiler.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	logger.Info().
		Int("limit", limit).
		Str("genre", topGenre).
		Str("filter", filterExpr).
		Msg("Fetching top movies")

	movies, err := catalogClient.TopMovies(cmd.Context(), limit, topGenre)
	if err != nil {
		return fmt.Errorf("failed to fetch top movies: %w", err)
	}

	if f != nil {
		movies = filter.Apply(f, movies)
	}

	heading := "Top rated movies"
	if topGenre != "" {
		heading = fmt.Sprintf("Top rated %s movies", topGenre)
	}

	formatter := catalog.NewConsoleFormatter()
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMovieList(heading, catalog.NewMovieViews(movies), catalog.FormatOptions{
		ShowDetails: showDetails,
		ShowCast:    showCast,
	}))
	return nil
}

func runDetails(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid movie id %q: %w", args[0], catalog.ErrInvalidMovieID)
	}

	movie, err := catalogClient.MovieDetails(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch movie %d: %w", id, err)
	}

	formatter := catalog.NewConsoleFormatter()
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDetails(catalog.NewMovieView(movie)))
	return nil
}

func runHome(cmd *cobra.Command, args []string) error {
	selected := categories
	if !cmd.Flags().Changed("category") {
		selected = cfg.Browse.Categories
	}

	home, err := catalogClient.LoadHome(cmd.Context(), catalog.HomeRequest{
		Limit:      cfg.Browse.Limit,
		Categories: selected,
	})
	if err != nil {
		return fmt.Errorf("failed to load home: %w", err)
	}

	formatter := catalog.NewConsoleFormatter()
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHome(home, catalog.FormatOptions{ShowDetails: showDetails}))
	return nil
}
