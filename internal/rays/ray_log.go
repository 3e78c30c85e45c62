package rays

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	RayHit        Category = iota // primary ray hit an object
	RayMiss                       // primary ray hit nothing
	RayDegenerate                 // hit could not be shaded (zero normal or light distance)
)

func (c Category) String() string {
	switch c {
	case RayHit:
		return "hit"
	case RayMiss:
		return "miss"
	case RayDegenerate:
		return "degenerate"
	}
	return "unknown"
}

type RayLog struct {
	Category Category
	X, Y     int  // pixel
	Object   int  // object index, -1 for none
	Distance Real // t of the hit, 0 for misses
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[Category][]RayLog
}

var cache = newRayLogCache()

func newRayLogCache() *RayLogCache {
	return &RayLogCache{rays: make(map[Category][]RayLog)}
}

func logRay(category Category, x, y, object int, distance Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[category] = append(cache.rays[category], RayLog{
		Category: category,
		X:        x,
		Y:        y,
		Object:   object,
		Distance: distance,
	})
}

// raysStats prints how many primary rays fell into each category.
func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cats := make([]Category, 0, len(cache.rays))
	for k := range cache.rays {
		cats = append(cats, k)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, k := range cats {
		fmt.Printf("Ray type %s: %d logs\n", k, len(cache.rays[k]))
	}
}
