package javawriter

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/arnis-go/arnis/pkg/voxel"
)

const (
	sectorSize = 4096
	headerSectors = 2 // 4 KiB chunk directory + 4 KiB timestamp table
	chunksPerAxis = voxel.ChunksPerRegionAxis
)

// encodeRegion renders one Anvil .mca file: the 8 KiB header followed by
// each chunk's compressed payload at its directory-assigned sector
// ("Region file layout"). Every one of the 1024 chunk slots
// is written, falling back to baseChunkNBT for slots region never
// realized (or realized but left entirely air).
func encodeRegion(region *voxel.Region) ([]byte, error) {
	payloads := make([][]byte, chunksPerAxis*chunksPerAxis)

	for cz := int8(0); cz < chunksPerAxis; cz++ {
		for cx := int8(0); cx < chunksPerAxis; cx++ {
			absCX := region.RegionX*chunksPerAxis + int32(cx)
			absCZ := region.RegionZ*chunksPerAxis + int32(cz)

			chunk := region.Chunk(cx, cz)
			var root levelWrapperNBT
			if chunk == nil || chunk.IsEmpty() {
				root = baseChunkNBT(absCX, absCZ)
			} else {
				root = buildChunkNBT(chunk, absCX, absCZ)
			}

			payload, err := encodeChunkPayload(root)
			if err != nil {
				return nil, fmt.Errorf("encode chunk (%d,%d): %w", absCX, absCZ, err)
			}
			payloads[int(cz)*int(chunksPerAxis)+int(cx)] = payload
		}
	}

	locations := make([]uint32, len(payloads))
	timestamps := make([]uint32, len(payloads))
	var dataSection bytes.Buffer
	sector := uint32(headerSectors)

	for i, payload := range payloads {
		stored := 4 + 1 + len(payload) // length prefix + compression type + compressed bytes
		sectorCount := (stored + sectorSize - 1) / sectorSize

		var prefix [5]byte
		binary.BigEndian.PutUint32(prefix[:4], uint32(1+len(payload)))
		prefix[4] = compressionZlib
		dataSection.Write(prefix[:])
		dataSection.Write(payload)
		if pad := sectorCount*sectorSize - stored; pad > 0 {
			dataSection.Write(make([]byte, pad))
		}

		locations[i] = (sector << 8) | uint32(sectorCount&0xFF)
		sector += uint32(sectorCount)
	}

	var out bytes.Buffer
	out.Grow(int(sector) * sectorSize)
	var word [4]byte
	for _, loc := range locations {
		binary.BigEndian.PutUint32(word[:], loc)
		out.Write(word[:])
	}
	for _, ts := range timestamps {
		binary.BigEndian.PutUint32(word[:], ts)
		out.Write(word[:])
	}
	out.Write(dataSection.Bytes())
	return out.Bytes(), nil
}
