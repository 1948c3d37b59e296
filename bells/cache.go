package bells

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// courseCacheSize bounds the number of distinct (method, stage) plain
// courses memoised at once. query.NewLayout asks for every resolved
// method's plain course once, both to validate it returns to rounds and to
// report its length; a spliced query that repeats the same place notation
// under two shorthands hits the cache on the second lookup.
const courseCacheSize = 256

type courseCacheKey struct {
	placeNotation string
	stage         Stage
}

// CourseCache memoises Method.PlainCourse results, keyed by place notation
// and stage. The zero value is not usable; construct with NewCourseCache.
type CourseCache struct {
	cache *lru.Cache[courseCacheKey, []Row]
}

// NewCourseCache builds an empty cache with the default capacity.
func NewCourseCache() *CourseCache {
	c, err := lru.New[courseCacheKey, []Row](courseCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which is a
		// programmer error here since courseCacheSize is a compile-time
		// constant.
		panic(fmt.Sprintf("bells: NewCourseCache: %v", err))
	}
	return &CourseCache{cache: c}
}

// PlainCourse returns m's plain course, computing and caching it on first
// request for this (place notation, stage) pair.
func (c *CourseCache) PlainCourse(m *Method) ([]Row, error) {
	key := courseCacheKey{placeNotation: m.PlaceNotation, stage: m.Stage}
	if heads, ok := c.cache.Get(key); ok {
		return heads, nil
	}
	heads, err := m.PlainCourse()
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, heads)
	return heads, nil
}
