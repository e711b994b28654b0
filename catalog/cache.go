package catalog

import (
	"strconv"
	"sync"
)

// Entry is a cached movie together with how complete the record is
type Entry struct {
	Movie *Movie
	Level Completeness
}

// MovieCache memoises fetched movies by id. Writes are insert-if-absent:
// the first record stored under a key is kept until an explicit Upgrade
// to a more complete level.
type MovieCache struct {
	mu    sync.RWMutex
	items map[string]Entry
}

// NewMovieCache creates an empty cache
func NewMovieCache() *MovieCache {
	return &MovieCache{
		items: make(map[string]Entry),
	}
}

// Key returns the cache key for a movie id
func Key(id int) string {
	return "mov_" + strconv.Itoa(id)
}

// Get retrieves a movie from the cache. The entry shares the stored
// record; callers must treat it as read-only or Clone it.
func (c *MovieCache) Get(id int) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[Key(id)]
	return e, ok
}

// Put stores movie only if its id is not cached yet. It reports whether
// the movie was inserted. The cache takes ownership of movie.
func (c *MovieCache) Put(movie *Movie, level Completeness) bool {
	if movie == nil {
		return false
	}
	key := Key(movie.ID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; exists {
		return false
	}
	c.items[key] = Entry{Movie: movie, Level: level}
	return true
}

// Upgrade replaces the cached record when level is strictly more complete
// than the stored one, or inserts it when absent. Entries are never
// downgraded.
func (c *MovieCache) Upgrade(movie *Movie, level Completeness) bool {
	if movie == nil {
		return false
	}
	key := Key(movie.ID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, exists := c.items[key]; exists && existing.Level >= level {
		return false
	}
	c.items[key] = Entry{Movie: movie, Level: level}
	return true
}

// Len returns the number of cached movies
func (c *MovieCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
