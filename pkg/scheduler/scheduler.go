// Package scheduler partitions the world into processing units of a
// fixed batch of regions, distributes OSM elements to every unit whose
// fetch bounds they intersect, runs units on a bounded worker pool, and
// flushes each unit's VoxelStore to a Writer as soon as the unit
// finishes.
//
// Grounded on original_source/src/parallel_processing.rs,
// region_processing.rs, and unit_processing.rs. The bounded-worker-pool
// pattern is generalized from a connection-accept loop (one goroutine
// per unit of work, gated by a capacity channel) into an
// errgroup.Group with a fixed concurrency limit, matching the
// reference implementation's work-stealing thread pool of N threads.
package scheduler

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/processors"
	"github.com/arnis-go/arnis/pkg/voxel"
	"golang.org/x/sync/errgroup"
)

// RegionBlockSpan matches voxel.RegionBlockSpan (512 blocks) without
// importing voxel's internal constant name into this package's public
// surface.
const RegionBlockSpan = voxel.RegionBlockSpan

// Unit is one batch_size x batch_size block of regions, processed by a
// single goroutine against its own VoxelStore.
type Unit struct {
	RegionMinX, RegionMinZ int32 // inclusive region coordinates
	RegionMaxX, RegionMaxZ int32 // inclusive region coordinates
	FetchBounds coords.XZBBox
}

// blockBounds returns the unit's actual (non-buffered) block-space
// bounds, used for the Writer's region enumeration.
func (u Unit) blockBounds() coords.XZBBox {
	min := coords.XZPoint{X: u.RegionMinX * RegionBlockSpan, Z: u.RegionMinZ * RegionBlockSpan}
	max := coords.XZPoint{X: (u.RegionMaxX+1)*RegionBlockSpan - 1, Z: (u.RegionMaxZ+1)*RegionBlockSpan - 1}
	return coords.NewRect(min, max)
}

// Config controls partitioning and concurrency.
type Config struct {
	BatchSize int32 // regions per unit per axis; default 2
	FetchBuffer int32 // extra blocks each unit fetches beyond its own bounds; default 64
	Workers int // worker count; 0 means runtime.NumCPU()-1, minimum 1
	Deadline time.Time // flood-fill wall-clock deadline; zero means unbounded
	Timeout time.Duration // alternate way to specify Deadline relative to now
}

func (c Config) resolved() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 2
	}
	if c.FetchBuffer <= 0 {
		c.FetchBuffer = 64
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU() - 1
		if c.Workers < 1 {
			c.Workers = 1
		}
	}
	if c.Deadline.IsZero() && c.Timeout > 0 {
		c.Deadline = time.Now().Add(c.Timeout)
	}
	return c
}

// Partition enumerates the processing units covering bbox: region
// coordinates [min_rx..max_rx] x [min_rz..max_rz] grouped into
// batch_size x batch_size blocks.
func Partition(bbox coords.XZBBox, cfg Config) []Unit {
	cfg = cfg.resolved()
	minRX := floorDiv(bbox.Min().X, RegionBlockSpan)
	minRZ := floorDiv(bbox.Min().Z, RegionBlockSpan)
	maxRX := floorDiv(bbox.Max().X, RegionBlockSpan)
	maxRZ := floorDiv(bbox.Max().Z, RegionBlockSpan)

	var units []Unit
	for rx := minRX; rx <= maxRX; rx += cfg.BatchSize {
		for rz := minRZ; rz <= maxRZ; rz += cfg.BatchSize {
			u := Unit{
				RegionMinX: rx,
				RegionMinZ: rz,
				RegionMaxX: min32(rx+cfg.BatchSize-1, maxRX),
				RegionMaxZ: min32(rz+cfg.BatchSize-1, maxRZ),
			}
			bounds := u.blockBounds()
			fetchMin := coords.XZPoint{X: bounds.Min().X - cfg.FetchBuffer, Z: bounds.Min().Z - cfg.FetchBuffer}
			fetchMax := coords.XZPoint{X: bounds.Max().X + cfg.FetchBuffer, Z: bounds.Max().Z + cfg.FetchBuffer}
			u.FetchBounds = coords.NewRect(fetchMin, fetchMax)
			units = append(units, u)
		}
	}
	return units
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// distribute appends each element to the list of every unit whose fetch
// bounds intersect its geometry. An element with no derivable bounds
// (e.g. an empty relation) is dropped silently.
func distribute(units []Unit, elements []osm.Element) [][]osm.Element {
	out := make([][]osm.Element, len(units))
	for _, e := range elements {
		min, max, ok := e.Bounds()
		if !ok {
			continue
		}
		for i, u := range units {
			if boundsIntersect(u.FetchBounds, min, max) {
				out[i] = append(out[i], e)
			}
		}
	}
	for i := range out {
		out[i] = processors.Sorted(out[i])
	}
	return out
}

func boundsIntersect(bbox coords.XZBBox, min, max coords.XZPoint) bool {
	return !(max.X < bbox.Min().X || min.X > bbox.Max().X || max.Z < bbox.Min().Z || min.Z > bbox.Max().Z)
}

// Writer flushes one completed unit's VoxelStore to disk: the external
// collaborator (JavaWriter or BedrockWriter) owns format-specific
// serialization.
type Writer interface {
	WriteUnit(ctx context.Context, bounds coords.XZBBox, world *voxel.World) error
}

// Progress reports the fraction of units flushed so far, emitted after
// every unit completes.
type Progress struct {
	Completed, Total int
}

// Run processes elements across every unit in parallel (bounded by
// cfg.Workers), flushing each unit's VoxelStore to writer as soon as it
// finishes and releasing its memory immediately after: a VoxelStore is
// unit-local and never shared across units.
//
// Units have no ordering guarantee relative to each other; within a unit
// elements are processed in priority order.
func Run(ctx context.Context, bbox coords.XZBBox, elements []osm.Element, procCtx *processors.Context, writer Writer, cfg Config, onProgress func(Progress)) error {
	cfg = cfg.resolved()
	units := Partition(bbox, cfg)
	if len(units) == 0 {
		return nil
	}
	assignments := distribute(units, elements)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	completed := make(chan struct{}, len(units))
	done := make(chan struct{})
	go func() {
		n := 0
		for range completed {
			n++
			if onProgress != nil {
				onProgress(Progress{Completed: n, Total: len(units)})
			}
		}
		close(done)
	}()

	for i, unit := range units {
		unit := unit
		elems := assignments[i]
		g.Go(func() error {
				world := voxel.NewWorld()
				for _, e := range elems {
					processors.Process(world, e, procCtx)
				}
				world.CompactSections()
				if err := writer.WriteUnit(gctx, unit.blockBounds(), world); err != nil {
					return err
				}
				completed <- struct{}{}
				return nil
		})
	}

	err := g.Wait()
	close(completed)
	<-done
	return err
}

// sortUnitsForDeterministicFileOrder is unused by Run (units are written
// as they complete, not in a fixed order) but kept available for callers
// that want a stable listing for logging or tests.
func sortUnitsForDeterministicFileOrder(units []Unit) []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	sort.Slice(out, func(i, j int) bool {
			if out[i].RegionMinX != out[j].RegionMinX {
				return out[i].RegionMinX < out[j].RegionMinX
			}
			return out[i].RegionMinZ < out[j].RegionMinZ
	})
	return out
}
