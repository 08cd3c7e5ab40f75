package cache

import (
	"sort"
	"sync"
)

// Index is the explicit dependency map from tags to cached keys. It also
// counts invalidations per tag, so a value fetched before an invalidation
// can be refused afterwards.
type Index struct {
	mutex     sync.Mutex
	tagToKeys map[Tag]map[string]struct{}
	keyToTags map[string]map[Tag]struct{}
	gens      map[Tag]int64
	// bumped by Reset
	epoch int64
}

func NewIndex() *Index {
	return &Index{
		tagToKeys: map[Tag]map[string]struct{}{},
		keyToTags: map[string]map[Tag]struct{}{},
		gens:      map[Tag]int64{},
	}
}

func (idx *Index) Generation(tags ...Tag) Generation {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	g := newGeneration(tags)
	g.epoch = idx.epoch
	for i, tag := range g.tags {
		g.counts[i] = idx.gens[tag]
	}
	return g
}

// Current reports whether nothing invalidated the tags of g since it was taken.
func (idx *Index) Current(g Generation) bool {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	if g.epoch != idx.epoch {
		return false
	}
	for i, tag := range g.tags {
		if idx.gens[tag] != g.counts[i] {
			return false
		}
	}
	return true
}

func (idx *Index) Add(key string, tags ...Tag) {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	for _, tag := range tags {
		keys, ok := idx.tagToKeys[tag]
		if !ok {
			keys = map[string]struct{}{}
			idx.tagToKeys[tag] = keys
		}
		keys[key] = struct{}{}

		keyTags, ok := idx.keyToTags[key]
		if !ok {
			keyTags = map[Tag]struct{}{}
			idx.keyToTags[key] = keyTags
		}
		keyTags[tag] = struct{}{}
	}
}

// Take returns the sorted keys depending on any of the tags and unregisters them.
func (idx *Index) Take(tags ...Tag) []string {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	seen := map[string]struct{}{}
	for _, tag := range tags {
		idx.gens[tag]++
		for key := range idx.tagToKeys[tag] {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
		idx.forget(key)
	}
	sort.Strings(keys)

	return keys
}

func (idx *Index) Forget(key string) {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()
	idx.forget(key)
}

func (idx *Index) Keys(tag Tag) []string {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	keys := make([]string, 0, len(idx.tagToKeys[tag]))
	for key := range idx.tagToKeys[tag] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Reset unregisters every key. Generations taken before it are no longer current.
func (idx *Index) Reset() {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()
	idx.epoch++
	idx.tagToKeys = map[Tag]map[string]struct{}{}
	idx.keyToTags = map[string]map[Tag]struct{}{}
}

func (idx *Index) forget(key string) {
	for tag := range idx.keyToTags[key] {
		delete(idx.tagToKeys[tag], key)
		if len(idx.tagToKeys[tag]) == 0 {
			delete(idx.tagToKeys, tag)
		}
	}
	delete(idx.keyToTags, key)
}
