// Package voxel implements the hierarchical mutable voxel store described
// in : World -> Region (32x32 chunks) -> Chunk (16x384x16) ->
// Section (16^3), with adaptive per-section storage so that the common
// all-air or all-one-block case never allocates a 4096-entry array.
//
// Grounded on the pkg/world/world.go (lazy chunk realization,
// region/chunk/local-index arithmetic) and original_source's
// world_editor/common.rs BlockStorage enum, generalized from the
// flat two-tier model to the spec's three-tier one.
package voxel

import (
	"sort"
	"strconv"

	"github.com/arnis-go/arnis/pkg/blocks"
)

const (
	// SectionBlocks is the flat block count of one 16x16x16 section.
	SectionBlocks = 16 * 16 * 16
)

// sectionStorage is the adaptive storage mode described in :
// Uniform fills the whole section with one block at zero per-block cost;
// Full holds 4096 explicit entries once a section is mixed.
type sectionStorage struct {
	uniform blocks.Block
	full []blocks.Block // nil when uniform
}

// Section is one 16x16x16 cube of blocks plus a sparse table of property
// overrides (stair facing, bed part, rail shape, ...) keyed by the
// section-local flat index computed by flatIndex.
type Section struct {
	storage sectionStorage
	properties map[uint16]blocks.Properties
}

// newSection returns an empty (all-air) section.
func newSection() *Section {
	return &Section{storage: sectionStorage{uniform: blocks.Air}}
}

// flatIndex computes the YZX-ordered flat index for section-local
// coordinates, matching 's "flat index y*256 + z*16 + x".
func flatIndex(lx, ly, lz int) uint16 {
	return uint16(ly*256 + lz*16 + lx)
}

// Get returns the block at section-local coordinates.
func (s *Section) Get(lx, ly, lz int) blocks.Block {
	idx := flatIndex(lx, ly, lz)
	if s.storage.full == nil {
		return s.storage.uniform
	}
	return s.storage.full[idx]
}

// Set writes a block at section-local coordinates, promoting Uniform to
// Full on the first write that differs from the uniform value.
func (s *Section) Set(lx, ly, lz int, b blocks.Block) {
	idx := flatIndex(lx, ly, lz)
	if s.storage.full == nil {
		if s.storage.uniform == b {
			return
		}
		full := make([]blocks.Block, SectionBlocks)
		for i := range full {
			full[i] = s.storage.uniform
		}
		full[idx] = b
		s.storage.full = full
		return
	}
	s.storage.full[idx] = b
}

// SetProperties records a property-compound override at section-local
// coordinates. The block id itself must already have been written via Set;
// this only attaches the side-table entry (// "set_block_with_properties").
func (s *Section) SetProperties(lx, ly, lz int, props blocks.Properties) {
	if props == nil {
		return
	}
	if s.properties == nil {
		s.properties = make(map[uint16]blocks.Properties)
	}
	s.properties[flatIndex(lx, ly, lz)] = props
}

// Properties returns the property override at section-local coordinates,
// or nil if none was recorded.
func (s *Section) Properties(lx, ly, lz int) blocks.Properties {
	if s.properties == nil {
		return nil
	}
	return s.properties[flatIndex(lx, ly, lz)]
}

// IsUniform reports whether the section is still in uniform storage mode,
// and returns the uniform block if so.
func (s *Section) IsUniform() (blocks.Block, bool) {
	if s.storage.full == nil {
		return s.storage.uniform, true
	}
	return 0, false
}

// IsEmpty reports whether the section is uniformly air (never serialized,
// per "empty sections are never serialized").
func (s *Section) IsEmpty() bool {
	b, uniform := s.IsUniform()
	return uniform && b == blocks.Air
}

// ForEach invokes fn for every non-air block in the section, with its
// section-local coordinates and any recorded property override.
func (s *Section) ForEach(fn func(lx, ly, lz int, b blocks.Block, props blocks.Properties)) {
	if s.storage.full == nil {
		if s.storage.uniform == blocks.Air {
			return
		}
		for ly := 0; ly < 16; ly++ {
			for lz := 0; lz < 16; lz++ {
				for lx := 0; lx < 16; lx++ {
					fn(lx, ly, lz, s.storage.uniform, s.Properties(lx, ly, lz))
				}
			}
		}
		return
	}
	for ly := 0; ly < 16; ly++ {
		for lz := 0; lz < 16; lz++ {
			for lx := 0; lx < 16; lx++ {
				b := s.storage.full[flatIndex(lx, ly, lz)]
				if b == blocks.Air {
					continue
				}
				fn(lx, ly, lz, b, s.Properties(lx, ly, lz))
			}
		}
	}
}

// Compact collapses a Full section back to Uniform if every entry is
// equal and no property overrides were recorded (// "compact_sections"). Returns true if it compacted.
func (s *Section) Compact() bool {
	if s.storage.full == nil {
		return false
	}
	if len(s.properties) > 0 {
		return false
	}
	first := s.storage.full[0]
	for _, b := range s.storage.full[1:] {
		if b != first {
			return false
		}
	}
	s.storage.uniform = first
	s.storage.full = nil
	return true
}

// PaletteEntries returns the distinct (block, properties) pairs present
// in the section, used by both writers to build their block-state
// palettes.
type PaletteEntry struct {
	Block blocks.Block
	Properties blocks.Properties
}

func (s *Section) DistinctEntries() []PaletteEntry {
	seen := make(map[string]int)
	var entries []PaletteEntry
	key := func(b blocks.Block, p blocks.Properties) string {
		k := strconv.Itoa(int(b)) + "|"
		keys := make([]string, 0, len(p))
		for pk := range p {
			keys = append(keys, pk)
		}
		sort.Strings(keys)
		for _, pk := range keys {
			k += pk + "=" + p[pk] + ";"
		}
		return k
	}
	s.ForEach(func(_, _, _ int, b blocks.Block, props blocks.Properties) {
			k := key(b, props)
			if _, ok := seen[k]; !ok {
				seen[k] = len(entries)
				entries = append(entries, PaletteEntry{Block: b, Properties: props})
			}
	})
	if len(entries) == 0 {
		entries = append(entries, PaletteEntry{Block: blocks.Air})
	}
	return entries
}
