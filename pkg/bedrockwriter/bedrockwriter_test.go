package bedrockwriter

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/geo"
	"github.com/arnis-go/arnis/pkg/voxel"
)

func TestBedrockBitsPerBlock(t *testing.T) {
	cases := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 16: 4, 17: 5, 64: 6, 256: 8, 257: 16}
	for size, want := range cases {
		if got := bedrockBitsPerBlock(size); got != want {
			t.Errorf("bedrockBitsPerBlock(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestToBedrockBlockConcreteColor(t *testing.T) {
	bb := toBedrockBlock(blocks.Concrete["light_gray"], nil)
	if bb.name != "concrete" {
		t.Fatalf("expected name concrete, got %q", bb.name)
	}
	if bb.states["color"].s != "silver" {
		t.Errorf("expected light_gray concrete to map to silver, got %+v", bb.states["color"])
	}
}

func TestToBedrockBlockShortGrass(t *testing.T) {
	bb := toBedrockBlock(blocks.ShortGrass, nil)
	if bb.name != "tallgrass" {
		t.Fatalf("expected tallgrass, got %q", bb.name)
	}
	if bb.states["tall_grass_type"].s != "tall" {
		t.Errorf("expected tall_grass_type=tall, got %+v", bb.states["tall_grass_type"])
	}
}

func TestEncodeBedrockSectionXZYTranspose(t *testing.T) {
	w := voxel.NewWorld()
	// Block placed at internal (lx=1, ly=2, lz=3) within section (0,0,0).
	w.SetBlock(1, 2, 3, blocks.Stone)
	sec := w.Region(0, 0).Chunk(0, 0).Section(0)

	_, indices := encodeBedrockSection(sec)
	bedrockIdx := 1*256 + 3*16 + 2
	if indices[bedrockIdx] == 0 {
		t.Fatalf("expected a non-air palette index at bedrock index %d", bedrockIdx)
	}
	// Every other cell should remain air (index 0).
	nonAir := 0
	for _, idx := range indices {
		if idx != 0 {
			nonAir++
		}
	}
	if nonAir != 1 {
		t.Errorf("expected exactly 1 non-air cell, got %d", nonAir)
	}
}

func TestChunkKeysEncodeCoordinatesLittleEndian(t *testing.T) {
	key := data3DKey(1, -1)
	if len(key) != 9 {
		t.Fatalf("expected a 9-byte key (8 coords + 1 tag), got %d", len(key))
	}
	want := []byte{1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}
	for i, b := range want {
		if key[i] != b {
			t.Errorf("key byte %d = %#x, want %#x (x=1, z=-1 little-endian)", i, key[i], b)
		}
	}
	if key[8] != tagData3D {
		t.Errorf("expected trailing tag byte %#x, got %#x", tagData3D, key[8])
	}
}

func TestWriteUnitAndFinishProduceMcworld(t *testing.T) {
	dir := t.TempDir()
	staging := filepath.Join(dir, "My World")
	writer := NewWriter(staging, "My World")

	world := voxel.NewWorld()
	world.SetBlock(0, 64, 0, blocks.Stone)
	world.SetBlock(5, 70, 3, blocks.GrassBlock)

	bounds := coords.NewRect(coords.XZPoint{X: 0, Z: 0}, coords.XZPoint{X: 511, Z: 511})
	if err := writer.WriteUnit(context.Background(), bounds, world); err != nil {
		t.Fatalf("WriteUnit: %v", err)
	}
	if len(world.Regions()) != 0 {
		t.Error("expected WriteUnit to release regions after writing them")
	}

	llbbox, err := geo.NewLLBBox(geo.LLPoint{Lat: 9.9, Lng: 54.6}, geo.LLPoint{Lat: 9.95, Lng: 54.65})
	if err != nil {
		t.Fatalf("NewLLBBox: %v", err)
	}
	if err := writer.Finish(bounds, llbbox); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	zipPath := staging + ".mcworld"
	if _, err := os.Stat(zipPath); err != nil {
		t.Fatalf("expected mcworld archive at %s: %v", zipPath, err)
	}
	if _, err := os.Stat(staging); !os.IsNotExist(err) {
		t.Errorf("expected staging directory %s to be removed after Finish", staging)
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open mcworld as zip: %v", err)
	}
	defer r.Close()

	want := map[string]bool{
		"levelname.txt": false,
		"level.dat": false,
		"metadata.json": false,
		"world_icon.jpeg": false,
	}
	sawDB := false
	for _, f := range r.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
		if filepath.Dir(f.Name) == "db" || f.Name == "db/" {
			sawDB = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected %s in mcworld archive", name)
		}
	}
	if !sawDB {
		t.Error("expected db/ entries in mcworld archive")
	}
}
