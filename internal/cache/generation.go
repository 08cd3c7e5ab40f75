package cache

// Generation is a snapshot of the invalidation counters of some tags, taken
// before a value is fetched or computed. A value stored with it is dropped
// when any of those tags was invalidated after the snapshot.
type Generation struct {
	epoch  int64
	tags   []Tag
	counts []int64
}

func (g Generation) Tags() []Tag {
	return g.tags
}

func newGeneration(tags []Tag) Generation {
	return Generation{
		tags:   append([]Tag(nil), tags...),
		counts: make([]int64, len(tags)),
	}
}
