package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "mov_1508669", Key(1508669))
}

func TestMovieCache_PutIsInsertIfAbsent(t *testing.T) {
	cache := NewMovieCache()

	first := &Movie{ID: 7, Title: "First"}
	second := &Movie{ID: 7, Title: "Second"}

	assert.True(t, cache.Put(first, Summary))
	assert.False(t, cache.Put(second, Detail))

	entry, ok := cache.Get(7)
	require.True(t, ok)
	assert.Same(t, first, entry.Movie)
	assert.Equal(t, Summary, entry.Level)
	assert.Equal(t, 1, cache.Len())
}

func TestMovieCache_Get_Miss(t *testing.T) {
	cache := NewMovieCache()

	_, ok := cache.Get(1)
	assert.False(t, ok)
	assert.False(t, cache.Put(nil, Detail))
	assert.Equal(t, 0, cache.Len())
}

func TestMovieCache_Upgrade(t *testing.T) {
	tests := []struct {
		name      string
		stored    Completeness
		incoming  Completeness
		wantSwap  bool
		wantLevel Completeness
	}{
		{name: "summary to detail", stored: Summary, incoming: Detail, wantSwap: true, wantLevel: Detail},
		{name: "detail to summary", stored: Detail, incoming: Summary, wantSwap: false, wantLevel: Detail},
		{name: "detail to detail", stored: Detail, incoming: Detail, wantSwap: false, wantLevel: Detail},
		{name: "summary to summary", stored: Summary, incoming: Summary, wantSwap: false, wantLevel: Summary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMovieCache()
			cache.Put(&Movie{ID: 1, Title: "stored"}, tt.stored)

			swapped := cache.Upgrade(&Movie{ID: 1, Title: "incoming"}, tt.incoming)
			assert.Equal(t, tt.wantSwap, swapped)

			entry, ok := cache.Get(1)
			require.True(t, ok)
			assert.Equal(t, tt.wantLevel, entry.Level)
			if tt.wantSwap {
				assert.Equal(t, "incoming", entry.Movie.Title)
			} else {
				assert.Equal(t, "stored", entry.Movie.Title)
			}
		})
	}

	t.Run("inserts when absent", func(t *testing.T) {
		cache := NewMovieCache()
		assert.True(t, cache.Upgrade(&Movie{ID: 2}, Summary))
		assert.Equal(t, 1, cache.Len())
	})
}

func TestMovieCache_ConcurrentPut(t *testing.T) {
	cache := NewMovieCache()

	var wg sync.WaitGroup
	inserted := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted <- cache.Put(&Movie{ID: 99}, Summary)
		}()
	}
	wg.Wait()
	close(inserted)

	wins := 0
	for ok := range inserted {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, cache.Len())
}
