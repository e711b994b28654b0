package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		wantValid bool
		wantErr   bool
	}{
		{name: "string decimal", input: `"9.6"`, want: 9.6, wantValid: true},
		{name: "number", input: `8.1`, want: 8.1, wantValid: true},
		{name: "null", input: `null`},
		{name: "empty string", input: `""`},
		{name: "not a number", input: `"N/A"`},
		{name: "invalid json", input: `"9.6`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Score
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, s.Valid)
			assert.InDelta(t, tt.want, s.Value, 1e-9)
		})
	}
}

func TestMovie_DecodeSummary(t *testing.T) {
	body := `{
		"id": 1508669,
		"url": "http://localhost:8000/api/v1/titles/1508669",
		"title": "Hopeful Notes",
		"year": 2010,
		"imdb_score": "9.6",
		"votes": 72,
		"image_url": "https://m.media-amazon.com/images/hopeful.jpg",
		"directors": ["Ricky Tognazzi"],
		"actors": ["Luca Zingaretti"],
		"genres": ["Comedy", "Drama"]
	}`

	var m Movie
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	assert.Equal(t, 1508669, m.ID)
	assert.Equal(t, "Hopeful Notes", m.Title)
	assert.True(t, m.IMDbScore.Valid)
	assert.Equal(t, "9.6", m.IMDbScore.String())
	assert.False(t, m.AvgVote.Valid)
	assert.True(t, m.HasGenre("drama"))
	assert.False(t, m.HasGenre("Western"))
	assert.Nil(t, m.WorldwideGrossIncome)
}

func TestMovie_Clone(t *testing.T) {
	budget := int64(25000000)
	m := &Movie{ID: 1, Title: "Heat", Genres: []string{"Crime"}, Budget: &budget}

	c := m.Clone()
	c.Genres[0] = "Drama"
	*c.Budget = 1

	assert.Equal(t, "Crime", m.Genres[0])
	assert.Equal(t, int64(25000000), *m.Budget)
	assert.Nil(t, (*Movie)(nil).Clone())
}

func TestPage(t *testing.T) {
	t.Run("next link", func(t *testing.T) {
		var p Page[Genre]
		require.NoError(t, json.Unmarshal([]byte(`{"next": "http://x/genres/?page=2", "results": []}`), &p))
		next, ok := p.NextURI()
		assert.True(t, ok)
		assert.Equal(t, "http://x/genres/?page=2", next)
		assert.True(t, p.HasResults())
		assert.Equal(t, 0, p.TotalCount())
	})

	t.Run("null next and absent results", func(t *testing.T) {
		var p Page[Genre]
		require.NoError(t, json.Unmarshal([]byte(`{"next": null, "count": 3}`), &p))
		_, ok := p.NextURI()
		assert.False(t, ok)
		assert.False(t, p.HasResults())
		assert.Equal(t, 3, p.TotalCount())
	})

	t.Run("empty next", func(t *testing.T) {
		var p Page[Movie]
		require.NoError(t, json.Unmarshal([]byte(`{"next": ""}`), &p))
		_, ok := p.NextURI()
		assert.False(t, ok)
	})
}

func TestCompleteness_String(t *testing.T) {
	assert.Equal(t, "summary", Summary.String())
	assert.Equal(t, "detail", Detail.String())
	assert.Equal(t, "unknown", Completeness(0).String())
}
