package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/ocmovies/catalog"
	"github.com/s0up4200/ocmovies/selection"
)

var browseLimit int

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse the top movies of each genre",
	Long: `Show the genre list and load the best rated movies of whichever genre is
picked. Genres can be picked by name or by number. Picking the genre that is
already selected does nothing.

Enter q to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntVarP(&browseLimit, "limit", "n", 0, "number of movies per genre (default browse.limit)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	limit := browseLimit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Browse.Limit
	}

	genres, err := catalogClient.ListAllGenres(ctx)
	if err != nil {
		return fmt.Errorf("failed to list genres: %w", err)
	}
	if len(genres) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No genres found")
		return nil
	}

	out := cmd.OutOrStdout()
	formatter := catalog.NewConsoleFormatter()

	browser := selection.NewCategoryBrowser(genres, catalogClient, limit, func(genre string, movies []catalog.Movie, err error) {
		if err != nil {
			fmt.Fprintf(out, "Failed to load %s: %v\n", genre, err)
			return
		}
		fmt.Fprint(out, formatter.FormatMovieList(genre, catalog.NewMovieViews(movies), catalog.FormatOptions{}))
	}, logger)

	return browseLoop(ctx, cmd.InOrStdin(), out, browser)
}

// browseLoop reads selections until q or end of input
func browseLoop(ctx context.Context, in io.Reader, out io.Writer, browser *selection.CategoryBrowser) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "\n"+browser.Render())
		fmt.Fprint(out, "\nSelect a genre by name or number (q to quit): ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		value := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(value) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		if browser.Select(ctx, value) {
			continue
		}

		if name, index, ok := browser.Controller().Selected(); ok && (value == name || value == strconv.Itoa(index)) {
			fmt.Fprintln(out, "Already selected")
			continue
		}
		fmt.Fprintf(out, "Unknown genre: %s\n", value)
	}
}
