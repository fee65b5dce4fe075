package bedrockwriter

import (
	"bytes"
	"encoding/binary"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/voxel"
)

const (
	subchunkVersion    = 9
	storageLayerCount  = 1
	data3DHeightmapLen = 256 * 2 // i16 per column
	data3DBiomeLen     = 28      // fixed biome palette padding
)

// encodeSubchunk renders one subchunk in Bedrock's v9 binary layout:
// version, single storage layer, signed Y index, palette bit width, packed
// indices, then the LE-NBT block palette.
func encodeSubchunk(sec *voxel.Section, y int8) []byte {
	palette, indices := encodeBedrockSection(sec)
	bitsPerBlock := bedrockBitsPerBlock(len(palette))

	var buf bytes.Buffer
	buf.WriteByte(subchunkVersion)
	buf.WriteByte(storageLayerCount)
	buf.WriteByte(byte(y))
	buf.WriteByte(byte(bitsPerBlock << 1))

	for _, word := range packBedrockIndices(indices, bitsPerBlock) {
		var w [4]byte
		binary.LittleEndian.PutUint32(w[:], word)
		buf.Write(w[:])
	}

	var paletteLen [4]byte
	binary.LittleEndian.PutUint32(paletteLen[:], uint32(len(palette)))
	buf.Write(paletteLen[:])

	for _, bb := range palette {
		buf.Write(encodeBlockPaletteEntry(bb))
	}
	return buf.Bytes()
}

// packBedrockIndices packs palette indices into LE u32 words, blocks_per_word
// = floor(32/bits_per_block) indices per word, LSB-first, never spanning a
// block across a word boundary.
func packBedrockIndices(indices []int, bitsPerBlock int) []uint32 {
	blocksPerWord := 32 / bitsPerBlock
	wordCount := (len(indices) + blocksPerWord - 1) / blocksPerWord
	words := make([]uint32, wordCount)
	for i, idx := range indices {
		w := i / blocksPerWord
		slot := i % blocksPerWord
		words[w] |= uint32(idx) << uint(slot*bitsPerBlock)
	}
	return words
}

// encodeBlockPaletteEntry serializes one {name, states} palette entry as an
// LE-NBT compound: {name: string, states: compound}.
func encodeBlockPaletteEntry(bb bedrockBlock) []byte {
	return encodeRootCompound([]leField{
		stringField{"name", "minecraft:" + bb.name},
		compoundField{"states", sortedStateFields(bb.states)},
	})
}

// computeHeightmap scans chunk for the highest non-air block in each of the
// 256 columns and returns Data3D's i16-LE heightmap, improving on
// original_source's create_data3d which hardcoded every column to 4.
func computeHeightmap(chunk *voxel.Chunk) []int16 {
	heights := make([]int16, 256)
	for i := range heights {
		heights[i] = int16(voxel.MinY)
	}
	for _, sy := range chunk.SectionIndices() {
		sec := chunk.Section(sy)
		if sec.IsEmpty() {
			continue
		}
		baseY := int32(sy) * 16
		for lx := 0; lx < 16; lx++ {
			for lz := 0; lz < 16; lz++ {
				for ly := 15; ly >= 0; ly-- {
					if sec.Get(lx, ly, lz) == blocks.Air {
						continue
					}
					top := int16(baseY) + int16(ly)
					col := lz*16 + lx
					if top > heights[col] {
						heights[col] = top
					}
					break
				}
			}
		}
	}
	return heights
}

// encodeData3D renders Bedrock's Data3D payload: a 256-entry i16-LE
// heightmap followed by biome padding.
func encodeData3D(chunk *voxel.Chunk) []byte {
	heights := computeHeightmap(chunk)
	var buf bytes.Buffer
	for _, h := range heights {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(h))
		buf.Write(b[:])
	}
	buf.Write(make([]byte, data3DBiomeLen))
	return buf.Bytes()
}
