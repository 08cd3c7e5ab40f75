package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
)

const MB = 1024 * 1024

// MemoryStore keeps values in a freecache segment and tracks their tags in an Index.
// Invalidate returns only after every dependent key is gone.
type MemoryStore struct {
	// orders writes against Invalidate and Clear
	mutex sync.Mutex
	cache *freecache.Cache
	index *Index
}

func NewMemoryStore(sizeBytes int) *MemoryStore {
	return &MemoryStore{
		cache: freecache.NewCache(sizeBytes),
		index: NewIndex(),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	val, err := s.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			s.index.Forget(key)
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("freecache get %s: %w", key, err)
	}
	return val, nil
}

// Set stores the value. A zero ttl means no expiry; it then lives until one of its tags is invalidated.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration, tags ...Tag) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.set(key, value, ttl, tags)
}

func (s *MemoryStore) Generation(_ context.Context, tags ...Tag) (Generation, error) {
	return s.index.Generation(tags...), nil
}

// SetIfCurrent stores the value under the tags of gen, unless one of them was
// invalidated after gen was taken. It reports whether the value was stored.
func (s *MemoryStore) SetIfCurrent(_ context.Context, key string, value []byte, ttl time.Duration, gen Generation) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.index.Current(gen) {
		return false, nil
	}
	if err := s.set(key, value, ttl, gen.Tags()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) set(key string, value []byte, ttl time.Duration, tags []Tag) error {
	s.index.Forget(key)
	if err := s.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		return fmt.Errorf("freecache set %s: %w", key, err)
	}
	s.index.Add(key, tags...)
	return nil
}

func (s *MemoryStore) Invalidate(_ context.Context, tags ...Tag) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	keys := s.index.Take(tags...)
	for _, key := range keys {
		s.cache.Del([]byte(key))
	}
	return len(keys), nil
}

func (s *MemoryStore) Len() int64 {
	return s.cache.EntryCount()
}

func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache.Clear()
	s.index.Reset()
}
