package bedrockwriter

import "encoding/binary"

// Bedrock LevelDB chunk key tags ("SubChunk key format"),
// matching the tag byte values documented for the overworld dimension.
const (
	tagData3D byte = 0x2b // 43
	tagSubChunk byte = 0x2f // 47
	tagBlockEntity byte = 0x31 // 49
	tagEntity byte = 0x32 // 50
	tagVersion byte = 0x2c // 44, Bedrock's per-chunk format marker
)

func chunkKeyPrefix(chunkX, chunkZ int32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(chunkX))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(chunkZ))
	return buf
}

// markerKey addresses the chunk version marker, the presence of which
// Bedrock treats as "this chunk has been generated".
func markerKey(chunkX, chunkZ int32) []byte {
	return append(chunkKeyPrefix(chunkX, chunkZ), tagVersion)
}

// data3DKey addresses the combined heightmap+biome blob for the chunk.
func data3DKey(chunkX, chunkZ int32) []byte {
	return append(chunkKeyPrefix(chunkX, chunkZ), tagData3D)
}

// subChunkKey addresses one vertical section's block storage; y is the
// section index (sectionY, not an absolute Y coordinate).
func subChunkKey(chunkX, chunkZ int32, y int8) []byte {
	k := append(chunkKeyPrefix(chunkX, chunkZ), tagSubChunk)
	return append(k, byte(y))
}

func blockEntityKey(chunkX, chunkZ int32) []byte {
	return append(chunkKeyPrefix(chunkX, chunkZ), tagBlockEntity)
}

func entityKey(chunkX, chunkZ int32) []byte {
	return append(chunkKeyPrefix(chunkX, chunkZ), tagEntity)
}
