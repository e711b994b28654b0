package catalog

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Completeness records how much of a movie record the catalog returned
type Completeness int

const (
	// Summary is a movie as listed in a titles page
	Summary Completeness = iota + 1
	// Detail is a movie fetched from its own titles/<id> endpoint
	Detail
)

// String returns the string representation of a Completeness level
func (c Completeness) String() string {
	switch c {
	case Summary:
		return "summary"
	case Detail:
		return "detail"
	default:
		return "unknown"
	}
}

// Score is a decimal rating. The catalog serialises it as a string
// ("9.6"), but plain numbers and null are accepted too. Values that are
// not numbers, such as "N/A", decode as an absent score.
type Score struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Score{}
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
		if raw == "" {
			*s = Score{}
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*s = Score{}
		return nil
	}
	*s = Score{Value: v, Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

// String formats the score with one decimal, or "" when absent
func (s Score) String() string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'f', 1, 64)
}

// Movie is a catalog title. Summaries (from paginated listings) and
// details (from titles/<id>) share this type; fields missing from a
// summary are left at their zero value.
type Movie struct {
	ID                   int      `json:"id"`
	URL                  string   `json:"url,omitempty"`
	IMDbURL              string   `json:"imdb_url,omitempty"`
	Title                string   `json:"title,omitempty"`
	OriginalTitle        string   `json:"original_title,omitempty"`
	ImageURL             string   `json:"image_url,omitempty"`
	Description          string   `json:"description,omitempty"`
	LongDescription      string   `json:"long_description,omitempty"`
	Year                 int      `json:"year,omitempty"`
	DatePublished        string   `json:"date_published,omitempty"`
	Rated                string   `json:"rated,omitempty"`
	Duration             int      `json:"duration,omitempty"`
	IMDbScore            Score    `json:"imdb_score"`
	AvgVote              Score    `json:"avg_vote"`
	Votes                int      `json:"votes,omitempty"`
	Genres               []string `json:"genres,omitempty"`
	Countries            []string `json:"countries,omitempty"`
	Languages            []string `json:"languages,omitempty"`
	Directors            []string `json:"directors,omitempty"`
	Actors               []string `json:"actors,omitempty"`
	Writers              []string `json:"writers,omitempty"`
	Company              string   `json:"company,omitempty"`
	Budget               *int64   `json:"budget,omitempty"`
	BudgetCurrency       string   `json:"budget_currency,omitempty"`
	USAGrossIncome       *int64   `json:"usa_gross_income,omitempty"`
	WorldwideGrossIncome *int64   `json:"worldwide_gross_income,omitempty"`
}

// Clone returns a deep copy of the movie
func (m *Movie) Clone() *Movie {
	if m == nil {
		return nil
	}
	c := *m
	c.Genres = slices.Clone(m.Genres)
	c.Countries = slices.Clone(m.Countries)
	c.Languages = slices.Clone(m.Languages)
	c.Directors = slices.Clone(m.Directors)
	c.Actors = slices.Clone(m.Actors)
	c.Writers = slices.Clone(m.Writers)
	c.Budget = clonePtr(m.Budget)
	c.USAGrossIncome = clonePtr(m.USAGrossIncome)
	c.WorldwideGrossIncome = clonePtr(m.WorldwideGrossIncome)
	return &c
}

func clonePtr(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// HasGenre reports whether the movie is listed under genre (case-insensitive)
func (m *Movie) HasGenre(genre string) bool {
	return containsFold(m.Genres, genre)
}

// Genre is one entry of the genres listing
type Genre struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// Page is one chunk of a paginated catalog collection
type Page[T any] struct {
	Count    *int    `json:"count,omitempty"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NextURI returns the link to the following page, if any
func (p *Page[T]) NextURI() (string, bool) {
	if p.Next == nil || *p.Next == "" {
		return "", false
	}
	return *p.Next, true
}

// HasResults reports whether the page carried a results list at all.
// An empty list counts; an absent or null one does not.
func (p *Page[T]) HasResults() bool {
	return p.Results != nil
}

// TotalCount returns the declared collection size, or 0 if absent
func (p *Page[T]) TotalCount() int {
	if p.Count == nil {
		return 0
	}
	return *p.Count
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
