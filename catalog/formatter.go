package catalog

import (
	"fmt"
	"strings"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
	ShowCast    bool
}

// ConsoleFormatter renders catalog data for a terminal
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatMovieList formats a list of movie cards under a heading
func (f *ConsoleFormatter) FormatMovieList(heading string, movies []MovieView, options FormatOptions) string {
	if len(movies) == 0 {
		return "No movies found"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s (%d):\n\n", heading, len(movies))

	for i, movie := range movies {
		isLast := i == len(movies)-1
		f.formatCard(&sb, movie, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatOverview formats the highlighted "best movie" block
func (f *ConsoleFormatter) FormatOverview(movie MovieView) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n★ %s (%s)  IMDb %s\n", movie.Title, movie.Year, movie.Score)
	if movie.Description != "" {
		fmt.Fprintf(&sb, "  %s\n", movie.Description)
	}
	if movie.ImageURL != "" {
		fmt.Fprintf(&sb, "  %s\n", movie.ImageURL)
	}

	return sb.String()
}

// FormatDetails formats every field of one movie
func (f *ConsoleFormatter) FormatDetails(movie MovieView) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\n%s\n", movie.Title, strings.Repeat("─", max(len([]rune(movie.Title)), 3)))

	rows := []struct {
		label string
		value string
	}{
		{"Genres", joinOrDefault(movie.Genres)},
		{"Released", movie.Year},
		{"Rated", movie.Rated},
		{"IMDb score", movie.Score},
		{"Votes", movie.Votes},
		{"Duration", movie.Duration},
		{"Countries", joinOrDefault(movie.Countries)},
		{"Directors", joinOrDefault(movie.Directors)},
		{"Actors", joinOrDefault(movie.Actors)},
		{"Box office", movie.BoxOffice},
	}
	for _, row := range rows {
		fmt.Fprintf(&sb, "%-11s %s\n", row.label+":", row.value)
	}

	if movie.LongDescription != "" {
		fmt.Fprintf(&sb, "\n%s\n", movie.LongDescription)
	}
	if movie.ImageURL != "" {
		fmt.Fprintf(&sb, "\nPoster: %s\n", movie.ImageURL)
	}

	return sb.String()
}

// FormatGenreList formats the category dropdown; selected is -1 when
// nothing is selected
func (f *ConsoleFormatter) FormatGenreList(genres []string, selected int) string {
	if len(genres) == 0 {
		return "No genres found"
	}

	var sb strings.Builder
	for i, genre := range genres {
		marker := " "
		if i == selected {
			marker = ">"
		}
		fmt.Fprintf(&sb, "%s %2d. %s\n", marker, i, genre)
	}
	return sb.String()
}

// FormatHome formats the landing page sections
func (f *ConsoleFormatter) FormatHome(home *Home, options FormatOptions) string {
	var sb strings.Builder

	if home.Best != nil {
		sb.WriteString(f.FormatOverview(NewMovieView(home.Best)))
	}

	sb.WriteString(f.FormatMovieList("Top rated movies", NewMovieViews(home.Top), options))
	for _, category := range home.Categories {
		sb.WriteString(f.FormatMovieList(category.Name, NewMovieViews(category.Movies), options))
	}

	return sb.String()
}

// formatCard formats a single movie entry
func (f *ConsoleFormatter) formatCard(sb *strings.Builder, movie MovieView, isLast bool, options FormatOptions) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}

	fmt.Fprintf(sb, "%s── %s (%s)  [%d]\n", prefix, movie.Title, movie.Year, movie.ID)

	indent := "│   "
	if isLast {
		indent = "    "
	}

	fmt.Fprintf(sb, "%sIMDb: %s\n", indent, movie.Score)

	if options.ShowDetails && len(movie.Genres) > 0 {
		fmt.Fprintf(sb, "%sGenres: %s\n", indent, strings.Join(movie.Genres, ", "))
	}

	if options.ShowCast {
		if len(movie.Directors) > 0 {
			fmt.Fprintf(sb, "%sDirectors: %s\n", indent, strings.Join(movie.Directors, ", "))
		}
		if len(movie.Actors) > 0 {
			fmt.Fprintf(sb, "%sActors: %s\n", indent, strings.Join(movie.Actors, ", "))
		}
	}
}

func joinOrDefault(values []string) string {
	if len(values) == 0 {
		return MissingValue
	}
	return strings.Join(values, ", ")
}
