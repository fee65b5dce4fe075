package javawriter

import (
	"bytes"
	"compress/zlib"

	"github.com/Tnze/go-mc/nbt"
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// baseGrassY is the fixed Y level of the base-chunk fallback's grass
// layer ("Y=-62").
const baseGrassY = -62

const compressionZlib = 2

type paletteEntryNBT struct {
	Name string `nbt:"Name"`
	Properties map[string]string `nbt:"Properties,omitempty"`
}

type blockStatesNBT struct {
	Palette []paletteEntryNBT `nbt:"palette"`
	Data []int64 `nbt:"data,omitempty"`
}

type sectionNBT struct {
	Y int8 `nbt:"Y"`
	BlockStates blockStatesNBT `nbt:"block_states"`
}

type chunkNBT struct {
	XPos int32 `nbt:"xPos"`
	ZPos int32 `nbt:"zPos"`
	IsLightOn byte `nbt:"isLightOn"`
	Sections []sectionNBT `nbt:"sections"`
}

// levelWrapperNBT is the chunk compound wrapped under "Level", kept for
// backward compatibility with older Anvil readers that still expect it.
type levelWrapperNBT struct {
	Level chunkNBT `nbt:"Level"`
}

func toPaletteEntries(palette []blocks.BlockWithProperties) []paletteEntryNBT {
	out := make([]paletteEntryNBT, len(palette))
	for i, p := range palette {
		out[i] = paletteEntryNBT{Name: blocks.Name(p.Block), Properties: p.Properties}
	}
	return out
}

// buildChunkNBT constructs the NBT compound for a realized chunk,
// skipping any section left uniformly air ("Per chunk").
func buildChunkNBT(chunk *voxel.Chunk, absCX, absCZ int32) levelWrapperNBT {
	var sections []sectionNBT
	for _, y := range chunk.SectionIndices() {
		sec := chunk.Section(y)
		if sec.IsEmpty() {
			continue
		}
		palette, data := encodeSection(sec)
		sections = append(sections, sectionNBT{
				Y: y,
				BlockStates: blockStatesNBT{Palette: toPaletteEntries(palette), Data: data},
		})
	}
	return levelWrapperNBT{Level: chunkNBT{XPos: absCX, ZPos: absCZ, IsLightOn: 0, Sections: sections}}
}

// baseChunkNBT builds the minimal "base chunk" given to any chunk slot a
// region never wrote: a single grass-block layer at Y=-62 so the game
// treats the whole region as generated.
func baseChunkNBT(absCX, absCZ int32) levelWrapperNBT {
	sectionY := int8(baseGrassY >> 4)
	localY := int(baseGrassY) - int(sectionY)*16

	indices := make([]int, voxel.SectionBlocks)
	for lz := 0; lz < 16; lz++ {
		for lx := 0; lx < 16; lx++ {
			indices[localY*256+lz*16+lx] = 1
		}
	}
	data := packIndices(indices, bitsPerBlockFor(2))

	section := sectionNBT{
		Y: sectionY,
		BlockStates: blockStatesNBT{
			Palette: []paletteEntryNBT{
				{Name: blocks.Name(blocks.Air)},
				{Name: blocks.Name(blocks.GrassBlock)},
			},
			Data: data,
		},
	}
	return levelWrapperNBT{Level: chunkNBT{XPos: absCX, ZPos: absCZ, IsLightOn: 0, Sections: []sectionNBT{section}}}
}

// encodeChunkPayload marshals root to big-endian NBT and zlib-compresses
// it, matching Anvil's internal per-chunk compression type 2.
func encodeChunkPayload(root levelWrapperNBT) ([]byte, error) {
	raw, err := nbt.Marshal(root)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
