// Package javawriter serializes a processing unit's VoxelStore into Anvil
// .mca region files, per : an 8 KiB per-region header (chunk
// directory + timestamp table), zlib-compressed per-chunk NBT payloads,
// and a base-chunk fallback for any of the 1024 chunk slots a region
// never wrote.
//
// Grounded on go-theft-craft-server's internal/server/world/anvil chunk
// encoder (per-section compound construction, Y/block_states layout) and
// uberswe-mcnbt's struct-tag NBT convention, rebuilt on
// github.com/Tnze/go-mc/nbt in place of that hand-rolled tag
// writer.
package javawriter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// Writer flushes completed processing units to Anvil region files under
// OutputDir/region, implementing scheduler.Writer.
type Writer struct {
	OutputDir string
}

// NewWriter returns a Writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{OutputDir: outputDir}
}

// WriteUnit encodes and writes every region realized in world, then
// releases each region's memory ("flush model").
func (w *Writer) WriteUnit(ctx context.Context, bounds coords.XZBBox, world *voxel.World) error {
	_ = bounds
	regionDir := filepath.Join(w.OutputDir, "region")
	if err := os.MkdirAll(regionDir, 0o755); err != nil {
		return fmt.Errorf("create region directory: %w", err)
	}
	for key, region := range world.Regions() {
		if err := ctx.Err(); err != nil {
			return err
		}
		encoded, err := encodeRegion(region)
		if err != nil {
			return fmt.Errorf("encode region (%d,%d): %w", key[0], key[1], err)
		}
		path := filepath.Join(regionDir, fmt.Sprintf("r.%d.%d.mca", region.RegionX, region.RegionZ))
		if err := os.WriteFile(path, encoded, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		world.DeleteRegion(key[0], key[1])
	}
	return nil
}
