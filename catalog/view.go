package catalog

import (
	"strconv"
	"strings"
)

// Display defaults used when a catalog field is missing
const (
	MissingTitle = "?"
	MissingValue = "-"
)

// MovieView is a display-ready copy of a Movie where every absent field has
// been replaced by its default. Renderers should only ever read views.
type MovieView struct {
	ID              int
	Title           string
	ImageURL        string
	Description     string
	LongDescription string
	Year            string
	Rated           string
	Duration        string
	Score           string
	Votes           string
	Genres          []string
	Countries       []string
	Directors       []string
	Actors          []string
	BoxOffice       string
}

// NewMovieView builds a view of m with display defaults applied
func NewMovieView(m *Movie) MovieView {
	if m == nil {
		m = &Movie{}
	}

	v := MovieView{
		ID:              m.ID,
		Title:           orDefault(m.Title, MissingTitle),
		ImageURL:        m.ImageURL,
		Description:     m.Description,
		LongDescription: m.LongDescription,
		Year:            MissingValue,
		Rated:           orDefault(strings.TrimSpace(m.Rated), MissingValue),
		Duration:        MissingValue,
		Score:           orDefault(m.IMDbScore.String(), MissingValue),
		Votes:           MissingValue,
		Genres:          nonNil(m.Genres),
		Countries:       nonNil(m.Countries),
		Directors:       nonNil(m.Directors),
		Actors:          nonNil(m.Actors),
		BoxOffice:       MissingValue,
	}

	if v.LongDescription == "" {
		v.LongDescription = v.Description
	}
	if m.Year > 0 {
		v.Year = strconv.Itoa(m.Year)
	}
	if m.Duration > 0 {
		v.Duration = strconv.Itoa(m.Duration) + " min"
	}
	if m.Votes > 0 {
		v.Votes = strconv.Itoa(m.Votes)
	}
	if m.WorldwideGrossIncome != nil {
		v.BoxOffice = strconv.FormatInt(*m.WorldwideGrossIncome, 10)
	}

	return v
}

// NewMovieViews builds views for a list of movies
func NewMovieViews(movies []Movie) []MovieView {
	views := make([]MovieView, 0, len(movies))
	for i := range movies {
		views = append(views, NewMovieView(&movies[i]))
	}
	return views
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
