package javawriter

import (
	"math/bits"
	"sort"
	"strconv"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// effectiveProperties resolves a cell's serialized property compound: an
// explicit override if one was recorded, otherwise the catalog's default
// compound for the block (blocks.Properties doc: "nil means use the
// catalog's default compound").
func effectiveProperties(b blocks.Block, p blocks.Properties) blocks.Properties {
	if p != nil {
		return p
	}
	return blocks.Defaults(b)
}

func paletteKey(b blocks.Block, p blocks.Properties) string {
	key := strconv.Itoa(int(b)) + "|"
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		key += k + "=" + p[k] + ";"
	}
	return key
}

// paletteBuilder assigns dense indices to distinct (block, properties)
// pairs in first-seen order, matching "Build the palette by
// scanning the 4096-block section; collapse identical pairs."
type paletteBuilder struct {
	order []blocks.BlockWithProperties
	index map[string]int
}

func newPaletteBuilder() *paletteBuilder {
	return &paletteBuilder{index: make(map[string]int)}
}

func (pb *paletteBuilder) indexOf(b blocks.Block, p blocks.Properties) int {
	props := effectiveProperties(b, p)
	key := paletteKey(b, props)
	if i, ok := pb.index[key]; ok {
		return i
	}
	i := len(pb.order)
	pb.index[key] = i
	pb.order = append(pb.order, blocks.BlockWithProperties{Block: b, Properties: props})
	return i
}

// bitsPerBlockFor implements Anvil's
// `bits_per_block = max(4, ceil(log2(palette_size)))`.
func bitsPerBlockFor(paletteSize int) int {
	if paletteSize <= 1 {
		return 4
	}
	b := bits.Len(uint(paletteSize - 1))
	if b < 4 {
		b = 4
	}
	return b
}

// packIndices writes palette indices into a 1-D array of i64 words,
// LSB-first, never spanning a block across a word boundary.
func packIndices(indices []int, bitsPerBlock int) []int64 {
	perWord := 64 / bitsPerBlock
	wordCount := (len(indices) + perWord - 1) / perWord
	words := make([]int64, wordCount)
	for i, idx := range indices {
		w := i / perWord
		slot := i % perWord
		words[w] |= int64(uint64(idx) << uint(slot*bitsPerBlock))
	}
	return words
}

// encodeSection builds the palette and (optionally absent) packed data
// array for one section. A Uniform section serializes with a single
// palette entry and no data field at all (point 3).
func encodeSection(sec *voxel.Section) (palette []blocks.BlockWithProperties, data []int64) {
	if b, ok := sec.IsUniform(); ok {
		return []blocks.BlockWithProperties{{Block: b, Properties: effectiveProperties(b, nil)}}, nil
	}

	pb := newPaletteBuilder()
	indices := make([]int, voxel.SectionBlocks)
	for ly := 0; ly < 16; ly++ {
		for lz := 0; lz < 16; lz++ {
			for lx := 0; lx < 16; lx++ {
				b := sec.Get(lx, ly, lz)
				props := sec.Properties(lx, ly, lz)
				flat := ly*256 + lz*16 + lx
				indices[flat] = pb.indexOf(b, props)
			}
		}
	}
	bitsPerBlock := bitsPerBlockFor(len(pb.order))
	return pb.order, packIndices(indices, bitsPerBlock)
}
