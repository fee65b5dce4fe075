package voxel

import (
	"testing"

	"github.com/arnis-go/arnis/pkg/blocks"
)

func TestSetGetRoundTrip(t *testing.T) {
	w := NewWorld()
	w.SetBlock(5, 64, 5, blocks.Stone)
	b, ok := w.GetBlock(5, 64, 5)
	if !ok || b != blocks.Stone {
		t.Fatalf("got (%v,%v), want (Stone,true)", b, ok)
	}
}

func TestGetBlockUnmaterializedIsAir(t *testing.T) {
	w := NewWorld()
	b, ok := w.GetBlock(1000, 64, 1000)
	if ok || b != blocks.Air {
		t.Fatalf("got (%v,%v), want (Air,false)", b, ok)
	}
}

func TestSetBlockIfAbsent(t *testing.T) {
	w := NewWorld()
	w.SetBlock(0, 0, 0, blocks.Stone)
	w.SetBlockIfAbsent(0, 0, 0, blocks.Dirt)
	b, _ := w.GetBlock(0, 0, 0)
	if b != blocks.Stone {
		t.Errorf("SetBlockIfAbsent overwrote an existing block: got %v", b)
	}

	w.SetBlockIfAbsent(1, 0, 0, blocks.Dirt)
	b, _ = w.GetBlock(1, 0, 0)
	if b != blocks.Dirt {
		t.Errorf("SetBlockIfAbsent should write into an air cell: got %v", b)
	}
}

func TestFillColumnUniformCompaction(t *testing.T) {
	w := NewWorld()
	for x := int32(0); x < 16; x++ {
		for z := int32(0); z < 16; z++ {
			w.FillColumn(x, z, 0, 15, blocks.Stone, false)
		}
	}
	w.CompactSections()

	region := w.Region(0, 0)
	if region == nil {
		t.Fatal("expected region (0,0) to exist")
	}
	chunk := region.Chunk(0, 0)
	if chunk == nil {
		t.Fatal("expected chunk (0,0) to exist")
	}
	sec := chunk.Section(0)
	if sec == nil {
		t.Fatal("expected section 0 to exist")
	}
	b, uniform := sec.IsUniform()
	if !uniform || b != blocks.Stone {
		t.Errorf("expected section compacted to Uniform(Stone), got uniform=%v block=%v", uniform, b)
	}
}

func TestCompactSectionsPreservesReads(t *testing.T) {
	w := NewWorld()
	w.SetBlock(0, 64, 0, blocks.Stone)
	w.SetBlock(1, 64, 0, blocks.Dirt)
	before, _ := w.GetBlock(0, 64, 0)
	w.CompactSections()
	after, _ := w.GetBlock(0, 64, 0)
	if before != after {
		t.Errorf("CompactSections changed a read value: %v -> %v", before, after)
	}
}

func TestRegionChunkSectionIndexing(t *testing.T) {
	w := NewWorld()
	// x=600 -> chunk 37 -> region 1, local chunk 5
	w.SetBlock(600, 64, 0, blocks.Stone)
	r := w.Region(1, 0)
	if r == nil {
		t.Fatal("expected region (1,0)")
	}
	c := r.Chunk(5, 0)
	if c == nil {
		t.Fatal("expected chunk at local (5,0)")
	}
}

func TestSetBlockWithPropertiesRoundTrip(t *testing.T) {
	w := NewWorld()
	w.SetBlockWithProperties(3, 70, 3, blocks.BlockWithProperties{
			Block: blocks.OakStairs,
			Properties: blocks.Properties{"facing": "east"},
	})
	region := w.Region(0, 0)
	chunk := region.Chunk(0, 0)
	sec := chunk.Section(4) // y=70 -> section 4
	if props := sec.Properties(3, 70&15, 3); props["facing"] != "east" {
		t.Errorf("expected facing=east, got %+v", props)
	}
}

func TestYClamping(t *testing.T) {
	w := NewWorld()
	w.SetBlock(0, 1000, 0, blocks.Stone)
	b, ok := w.GetBlock(0, MaxY, 0)
	if !ok || b != blocks.Stone {
		t.Errorf("expected write above MaxY to clamp to MaxY, got (%v,%v)", b, ok)
	}
}
