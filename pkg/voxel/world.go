package voxel

import (
	"sync"

	"github.com/arnis-go/arnis/pkg/blocks"
)

// RegionBlockSpan is the block-space size of one region along each axis:
// 32 chunks * 16 blocks = 512 ("region_size = 512 blocks").
const RegionBlockSpan = ChunksPerRegionAxis * 16

// World is the VoxelStore described in : a map from region
// coordinates to Region, realized lazily on first write. A single World
// instance owns all storage for one processing unit (or the whole run, in
// single-threaded mode); it is never shared between units.
type World struct {
	mu sync.Mutex
	regions map[[2]int32]*Region
}

// NewWorld returns an empty VoxelStore.
func NewWorld() *World {
	return &World{regions: make(map[[2]int32]*Region)}
}

// locate decomposes an absolute (x,z) into region, chunk, and section-local
// coordinates per 's indexing rules.
func locate(x, y, z int32) (regionX, regionZ int32, localCX, localCZ int8, absCX, absCZ int32, sectionY int8, lx, ly, lz int) {
	if y < MinY {
		y = MinY
	}
	if y > MaxY {
		y = MaxY
	}
	absCX = x >> 4
	absCZ = z >> 4
	regionX = absCX >> 5
	regionZ = absCZ >> 5
	localCX = int8(absCX & 31)
	localCZ = int8(absCZ & 31)
	sectionY = int8(y >> 4)
	lx = int(x & 15)
	ly = int(y & 15)
	lz = int(z & 15)
	return
}

func (w *World) region(rx, rz int32, create bool) *Region {
	key := [2]int32{rx, rz}
	r, ok := w.regions[key]
	if !ok {
		if !create {
			return nil
		}
		r = newRegion(rx, rz)
		w.regions[key] = r
	}
	return r
}

// SetBlock unconditionally writes a block at absolute coordinates.
func (w *World) SetBlock(x, y, z int32, b blocks.Block) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rx, rz, lcx, lcz, acx, acz, sy, lx, ly, lz := locate(x, y, z)
	region := w.region(rx, rz, true)
	chunk := region.chunk(lcx, lcz, acx, acz, true)
	sec := chunk.section(sy, true)
	sec.Set(lx, ly, lz, b)
}

// SetBlockWithProperties writes a block and records a property override
// at the same coordinates ("set_block_with_properties").
func (w *World) SetBlockWithProperties(x, y, z int32, bp blocks.BlockWithProperties) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rx, rz, lcx, lcz, acx, acz, sy, lx, ly, lz := locate(x, y, z)
	region := w.region(rx, rz, true)
	chunk := region.chunk(lcx, lcz, acx, acz, true)
	sec := chunk.section(sy, true)
	sec.Set(lx, ly, lz, bp.Block)
	if bp.Properties != nil {
		sec.SetProperties(lx, ly, lz, bp.Properties)
	}
}

// SetBlockIfAbsent writes b only if the current slot is air, with a
// single dictionary lookup ("set_block_if_absent").
func (w *World) SetBlockIfAbsent(x, y, z int32, b blocks.Block) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rx, rz, lcx, lcz, acx, acz, sy, lx, ly, lz := locate(x, y, z)
	region := w.region(rx, rz, true)
	chunk := region.chunk(lcx, lcz, acx, acz, true)
	sec := chunk.section(sy, true)
	if sec.Get(lx, ly, lz) != blocks.Air {
		return
	}
	sec.Set(lx, ly, lz, b)
}

// GetBlock returns the block at absolute coordinates, or (Air, false) if
// the section was never materialized ("None means air").
func (w *World) GetBlock(x, y, z int32) (blocks.Block, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rx, rz, lcx, lcz, _, _, sy, lx, ly, lz := locate(x, y, z)
	region := w.region(rx, rz, false)
	if region == nil {
		return blocks.Air, false
	}
	chunk := region.chunk(lcx, lcz, 0, 0, false)
	if chunk == nil {
		return blocks.Air, false
	}
	sec := chunk.section(sy, false)
	if sec == nil {
		return blocks.Air, false
	}
	b := sec.Get(lx, ly, lz)
	return b, b != blocks.Air
}

// FillColumn writes b from yMin to yMax inclusive at (x,z), resolving the
// region/chunk once and iterating sections within the column. When
// skipExisting is true, only air cells are overwritten (used by
// --fillground to avoid clobbering existing terrain writes).
func (w *World) FillColumn(x, z, yMin, yMax int32, b blocks.Block, skipExisting bool) {
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	if yMin < MinY {
		yMin = MinY
	}
	if yMax > MaxY {
		yMax = MaxY
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var region *Region
	var chunk *Chunk
	var lcx, lcz int8 = -1, -1
	var curRX, curRZ int32

	for y := yMin; y <= yMax; y++ {
		rx, rz, cx, cz, acx, acz, sy, lx, ly, lz := locate(x, y, z)
		if region == nil || rx != curRX || rz != curRZ {
			region = w.region(rx, rz, true)
			curRX, curRZ = rx, rz
			chunk = nil
		}
		if chunk == nil || cx != lcx || cz != lcz {
			chunk = region.chunk(cx, cz, acx, acz, true)
			lcx, lcz = cx, cz
		}
		sec := chunk.section(sy, true)
		if skipExisting && sec.Get(lx, ly, lz) != blocks.Air {
			continue
		}
		sec.Set(lx, ly, lz, b)
	}
}

// CompactSections scans every realized section and collapses any Full
// section whose entries are all equal (and has no recorded properties)
// back to Uniform ("compact_sections"). Idempotent, and
// never changes any block readable via GetBlock (invariant 7).
func (w *World) CompactSections() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, r := range w.regions {
		r.CompactSections()
	}
}

// Regions returns every realized region, keyed by (regionX, regionZ).
// Used by the writers to enumerate output files.
func (w *World) Regions() map[[2]int32]*Region {
	return w.regions
}

// Region returns the realized region at (rx, rz), or nil.
func (w *World) Region(rx, rz int32) *Region {
	return w.regions[[2]int32{rx, rz}]
}

// DeleteRegion releases a region's memory, called by the Java and Bedrock
// writers once that region has been flushed to disk ("their memory is
// released before the next unit begins").
func (w *World) DeleteRegion(rx, rz int32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.regions, [2]int32{rx, rz})
}
