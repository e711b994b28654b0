package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeCatalog serves canned JSON bodies keyed by request URI and counts
// every request it receives
type fakeCatalog struct {
	t      *testing.T
	server *httptest.Server

	mu     sync.Mutex
	routes map[string]string
	hits   map[string]int
	total  int
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()

	f := &fakeCatalog{
		t:      t,
		routes: make(map[string]string),
		hits:   make(map[string]int),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCatalog) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	uri := r.URL.RequestURI()
	f.hits[uri]++
	f.total++
	body, ok := f.routes[uri]
	f.mu.Unlock()

	if !ok {
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

// route registers body for a request URI such as /api/v1/genres/
func (f *fakeCatalog) route(requestURI, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[requestURI] = body
}

func (f *fakeCatalog) base() string {
	return f.server.URL + "/api/v1/"
}

func (f *fakeCatalog) url(requestURI string) string {
	return f.server.URL + requestURI
}

func (f *fakeCatalog) requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

func (f *fakeCatalog) hitsFor(requestURI string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[requestURI]
}

// page marshals a paginated body; next may be "" for the last page
func page(t *testing.T, next string, count *int, results any) string {
	t.Helper()

	body := map[string]any{
		"results":  results,
		"previous": nil,
		"next":     nil,
	}
	if next != "" {
		body["next"] = next
	}
	if count != nil {
		body["count"] = *count
	}

	data, err := json.Marshal(body)
	require.NoError(t, err)
	return string(data)
}

func genres(names ...string) []map[string]any {
	out := make([]map[string]any, 0, len(names))
	for i, n := range names {
		out = append(out, map[string]any{"id": i + 1, "name": n})
	}
	return out
}

// summaries builds title summaries for the given ids
func summaries(ids ...int) []map[string]any {
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, map[string]any{
			"id":         id,
			"title":      "Movie " + strconv.Itoa(id),
			"year":       2000 + id,
			"imdb_score": "8.5",
			"genres":     []string{"Drama"},
			"image_url":  "https://img.example/" + strconv.Itoa(id) + ".jpg",
		})
	}
	return out
}

func detail(t *testing.T, id int) string {
	t.Helper()

	data, err := json.Marshal(map[string]any{
		"id":               id,
		"title":            "Movie " + strconv.Itoa(id),
		"year":             2000 + id,
		"imdb_score":       "8.5",
		"rated":            "PG-13",
		"duration":         142,
		"genres":           []string{"Drama"},
		"countries":        []string{"USA"},
		"directors":        []string{"Frank Darabont"},
		"actors":           []string{"Tim Robbins", "Morgan Freeman"},
		"long_description": "Full description of movie " + strconv.Itoa(id),
	})
	require.NoError(t, err)
	return string(data)
}

func intPtr(v int) *int {
	return &v
}
