package javawriter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/voxel"
)

func TestBitsPerBlockFor(t *testing.T) {
	cases := map[int]int{1: 4, 2: 4, 16: 4, 17: 5, 256: 8}
	for size, want := range cases {
		if got := bitsPerBlockFor(size); got != want {
			t.Errorf("bitsPerBlockFor(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestPackIndicesDoesNotSpanWordBoundary(t *testing.T) {
	indices := make([]int, 20)
	for i := range indices {
		indices[i] = i % 5
	}
	words := packIndices(indices, 5) // 12 indices/word, 20 -> 2 words
	if len(words) != 2 {
		t.Fatalf("expected 2 words for 20 indices at 5 bits/block, got %d", len(words))
	}
	if words[0]&0x1F != 0 {
		t.Errorf("expected first index (0) at bits [0:5), got word %064b", words[0])
	}
}

func TestEncodeSectionUniformOmitsData(t *testing.T) {
	w := voxel.NewWorld()
	for x := int32(0); x < 16; x++ {
		for z := int32(0); z < 16; z++ {
			w.FillColumn(x, z, 0, 15, blocks.Stone, false)
		}
	}
	w.CompactSections()
	region := w.Region(0, 0)
	chunk := region.Chunk(0, 0)
	sec := chunk.Section(0)

	palette, data := encodeSection(sec)
	if len(palette) != 1 {
		t.Fatalf("expected a single-entry palette for a uniform section, got %d", len(palette))
	}
	if data != nil {
		t.Error("expected no data array for a uniform section")
	}
}

func TestEncodeRegionProducesSectorAlignedFile(t *testing.T) {
	world := voxel.NewWorld()
	world.SetBlock(0, 64, 0, blocks.Stone)
	world.SetBlock(5, 70, 3, blocks.GrassBlock)
	region := world.Region(0, 0)

	encoded, err := encodeRegion(region)
	if err != nil {
		t.Fatalf("encodeRegion: %v", err)
	}
	if len(encoded) < headerSectors*sectorSize {
		t.Fatalf("encoded region smaller than its own header: %d bytes", len(encoded))
	}
	if len(encoded)%sectorSize != 0 {
		t.Errorf("encoded region size %d is not sector-aligned", len(encoded))
	}
}

func TestWriteUnitWritesRegionFile(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	world := voxel.NewWorld()
	world.SetBlock(1, 64, 1, blocks.Stone)

	bounds := coords.NewRect(coords.XZPoint{X: 0, Z: 0}, coords.XZPoint{X: 511, Z: 511})
	if err := writer.WriteUnit(context.Background(), bounds, world); err != nil {
		t.Fatalf("WriteUnit: %v", err)
	}

	path := filepath.Join(dir, "region", "r.0.0.mca")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected region file at %s: %v", path, err)
	}
	if info.Size()%sectorSize != 0 {
		t.Errorf("region file size %d is not sector-aligned", info.Size())
	}
	if len(world.Regions()) != 0 {
		t.Error("expected WriteUnit to release the region after writing it")
	}
}
