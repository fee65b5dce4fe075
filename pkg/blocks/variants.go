package blocks

import (
	"container/list"
	"fmt"
	"sync"
)

// VariantKey identifies a specific oriented/shaped instance of a base
// block (stair facing+shape, bed part+facing, rail shape).
type VariantKey struct {
	Base   Block
	Facing string
	Shape  string
	Part   string
}

// VariantCache memoizes BlockWithProperties lookups for a bounded set of
// recently used variants, avoiding a fresh Properties allocation on every
// block placement. Bounded by a stdlib container/list LRU: none of the
// other reference repos pull in a third-party LRU package, so this
// stays on the standard library.
type VariantCache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	index    map[VariantKey]*list.Element
}

type cacheEntry struct {
	key VariantKey
	value BlockWithProperties
}

// NewVariantCache builds a cache holding at most capacity entries.
func NewVariantCache(capacity int) *VariantCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &VariantCache{
		capacity: capacity,
		ll: list.New(),
		index: make(map[VariantKey]*list.Element, capacity),
	}
}

// Resolve returns the BlockWithProperties for key, computing it with fn
// on a cache miss and evicting the least-recently-used entry if the
// cache is at capacity.
func (c *VariantCache) Resolve(key VariantKey, fn func(VariantKey) BlockWithProperties) BlockWithProperties {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.ll.MoveToFront(el)
		return el.Value.(*cacheEntry).value
	}

	value := fn(key)
	el := c.ll.PushFront(&cacheEntry{key: key, value: value})
	c.index[key] = el

	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.index, oldest.Value.(*cacheEntry).key)
		}
	}
	return value
}

// Len reports the current number of cached entries.
func (c *VariantCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// StairVariant resolves a stair block's properties for the given facing
// and half, via the shared stair resolution rule (roofs).
func StairVariant(cache *VariantCache, base Block, facing, half string) BlockWithProperties {
	key := VariantKey{Base: base, Facing: facing, Shape: half}
	return cache.Resolve(key, func(k VariantKey) BlockWithProperties {
			props := Defaults(k.Base).Clone()
			if props == nil {
				props = Properties{}
			}
			props["facing"] = k.Facing
			props["half"] = k.Shape
			props["shape"] = "straight"
			return BlockWithProperties{Block: k.Base, Properties: props}
	})
}

// BedVariant resolves a bed block's properties for the given part
// (head/foot) and facing (building interiors).
func BedVariant(cache *VariantCache, base Block, part, facing string) BlockWithProperties {
	key := VariantKey{Base: base, Part: part, Facing: facing}
	return cache.Resolve(key, func(k VariantKey) BlockWithProperties {
			props := Defaults(k.Base).Clone()
			if props == nil {
				props = Properties{}
			}
			props["part"] = k.Part
			props["facing"] = k.Facing
			return BlockWithProperties{Block: k.Base, Properties: props}
	})
}

// RailVariant resolves a rail block's shape property: one of the ten
// straight/ascending/curved orientations.
func RailVariant(cache *VariantCache, base Block, shape string) BlockWithProperties {
	if !validRailShape(shape) {
		panic(fmt.Sprintf("blocks: invalid rail shape %q", shape))
	}
	key := VariantKey{Base: base, Shape: shape}
	return cache.Resolve(key, func(k VariantKey) BlockWithProperties {
			props := Defaults(k.Base).Clone()
			if props == nil {
				props = Properties{}
			}
			props["shape"] = k.Shape
			return BlockWithProperties{Block: k.Base, Properties: props}
	})
}

func validRailShape(shape string) bool {
	switch shape {
		case "north_south", "east_west",
		"ascending_north", "ascending_south", "ascending_east", "ascending_west",
		"north_east", "north_west", "south_east", "south_west":
		return true
	}
	return false
}
