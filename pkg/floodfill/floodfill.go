// Package floodfill implements the scanline-seeded, BFS-expanded interior
// fill for OSM polygons, plus a precomputed cache keyed by
// way id so the hottest path in element processing (buildings, landuse,
// leisure, amenities, natural, water) never recomputes it.
//
// Grounded on original_source/src/floodfill.rs and floodfill_cache.rs.
package floodfill

import (
	"context"
	"time"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Area fills the interior of a polygon described by its ordered vertices,
// via grid-sampled seeds and 4-connected BFS expansion (// "Flood-fill algorithm"). deadline, if non-zero, bounds the wall-clock
// time spent; on expiry the partial result accumulated so far is
// returned ("TimeoutPartial").
func Area(polygon []coords.XZPoint, deadline time.Time) []coords.XZPoint {
	if len(polygon) < 3 {
		return nil
	}

	minX, maxX := polygon[0].X, polygon[0].X
	minZ, maxZ := polygon[0].Z, polygon[0].Z
	for _, p := range polygon[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	ring := toRing(polygon)

	stepX := (maxX - minX) / 10
	if stepX < 1 {
		stepX = 1
	}
	stepZ := (maxZ - minZ) / 10
	if stepZ < 1 {
		stepZ = 1
	}

	var filled []coords.XZPoint
	visited := make(map[coords.XZPoint]bool)
	hasDeadline := !deadline.IsZero()

	for sx := minX; sx <= maxX; sx += stepX {
		for sz := minZ; sz <= maxZ; sz += stepZ {
			if hasDeadline && time.Now().After(deadline) {
				return filled
			}
			seed := coords.XZPoint{X: sx, Z: sz}
			if !contains(ring, seed) {
				continue
			}

			queue := []coords.XZPoint{seed}
			visited[seed] = true

			for len(queue) > 0 {
				if hasDeadline && time.Now().After(deadline) {
					return filled
				}
				p := queue[0]
				queue = queue[1:]

				if !contains(ring, p) {
					continue
				}
				filled = append(filled, p)

				neighbors := [4]coords.XZPoint{
					{X: p.X - 1, Z: p.Z},
					{X: p.X + 1, Z: p.Z},
					{X: p.X, Z: p.Z - 1},
					{X: p.X, Z: p.Z + 1},
				}
				for _, n := range neighbors {
					if n.X < minX || n.X > maxX || n.Z < minZ || n.Z > maxZ {
						continue
					}
					if visited[n] {
						continue
					}
					visited[n] = true
					queue = append(queue, n)
				}
			}

			if len(filled) > 0 {
				return filled
			}
		}
	}
	return filled
}

func toRing(points []coords.XZPoint) orb.Ring {
	ring := make(orb.Ring, len(points))
	for i, p := range points {
		ring[i] = orb.Point{float64(p.X), float64(p.Z)}
	}
	return ring
}

func contains(ring orb.Ring, p coords.XZPoint) bool {
	return planar.RingContains(ring, orb.Point{float64(p.X), float64(p.Z)})
}

// Cache holds precomputed flood-fill results keyed by OSM way id
// ("precompute").
type Cache struct {
	results map[uint64][]coords.XZPoint
}

// NeedsFill reports whether a way's tags mean its interior must be
// filled, matching the reference's tag-presence (not value) check across
// buildings, landuse, leisure, amenities, natural (except tree), and
// highway area=yes.
func NeedsFill(way osm.ProcessedWay) bool {
	t := way.Tags
	if _, ok := t["building"]; ok {
		return true
	}
	if _, ok := t["building:part"]; ok {
		return true
	}
	if _, ok := t["landuse"]; ok {
		return true
	}
	if _, ok := t["leisure"]; ok {
		return true
	}
	if _, ok := t["amenity"]; ok {
		return true
	}
	if v, ok := t["natural"]; ok && v != "tree" {
		return true
	}
	if _, ok := t["highway"]; ok && t["area"] == "yes" {
		return true
	}
	return false
}

// Precompute runs Area in parallel over every way in elements that
// NeedsFill, returning a Cache ready for sequential lookup during element
// processing ("precompute"). deadline (if non-zero) bounds
// each individual fill's wall-clock time.
func Precompute(ctx context.Context, elements []osm.Element, deadline time.Time, workers int) *Cache {
	if workers < 1 {
		workers = 1
	}

	type job struct {
		id uint64
		poly []coords.XZPoint
	}
	var jobs []job
	for _, e := range elements {
		if e.Kind != osm.KindWay || !NeedsFill(e.Way) {
			continue
		}
		jobs = append(jobs, job{id: e.Way.ID, poly: e.Way.Points()})
	}

	results := make(map[uint64][]coords.XZPoint, len(jobs))
	if len(jobs) == 0 {
		return &Cache{results: results}
	}

	type out struct {
		id uint64
		cells []coords.XZPoint
	}
	jobCh := make(chan job)
	outCh := make(chan out, len(jobs))

	for w := 0; w < workers; w++ {
		go func() {
			for j := range jobCh {
				select {
					case <-ctx.Done():
					outCh <- out{id: j.id}
					continue
					default:
				}
				outCh <- out{id: j.id, cells: Area(j.poly, deadline)}
			}
		}()
	}
	go func() {
		defer close(jobCh)
		for _, j := range jobs {
			jobCh <- j
		}
	}()

	for range jobs {
		o := <-outCh
		results[o.id] = o.cells
	}

	return &Cache{results: results}
}

// GetOrCompute returns the cached fill for way, computing it on demand
// (and not caching the result) for synthetic ways assembled from
// relations that never appeared in the original element list, matching
// the reference's documented cache-miss fallback.
func (c *Cache) GetOrCompute(way osm.ProcessedWay, deadline time.Time) []coords.XZPoint {
	if c != nil {
		if cached, ok := c.results[way.ID]; ok {
			return cached
		}
	}
	return Area(way.Points(), deadline)
}

// Count returns the number of precomputed way entries.
func (c *Cache) Count() int {
	if c == nil {
		return 0
	}
	return len(c.results)
}
