package pipeline

import (
	"sync/atomic"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/voxel"
	"github.com/rs/zerolog"
)

// Telemetry tracks non-networked, in-process run counters (// supplemented feature, grounded on original_source/src/telemetry.rs).
// No data leaves the process; Summary just logs a final line.
type Telemetry struct {
	ElementsProcessed int64
	BlocksWritten int64
	RegionsFlushed int64
	FloodFillTimeouts int64
}

func (t *Telemetry) addElementsProcessed(n int64) { atomic.AddInt64(&t.ElementsProcessed, n) }
func (t *Telemetry) addRegionsFlushed(n int64) { atomic.AddInt64(&t.RegionsFlushed, n) }
func (t *Telemetry) addFloodFillTimeout() { atomic.AddInt64(&t.FloodFillTimeouts, 1) }

// countBlocks tallies every non-air block realized in a unit's world,
// called right before the unit is flushed and its memory released.
func (t *Telemetry) countBlocks(world *voxel.World) {
	var n int64
	for _, region := range world.Regions() {
		for _, chunk := range region.Chunks() {
			for _, sy := range chunk.SectionIndices() {
				sec := chunk.Section(sy)
				sec.ForEach(func(_, _, _ int, _ blocks.Block, _ blocks.Properties) {
						n++
				})
			}
		}
	}
	atomic.AddInt64(&t.BlocksWritten, n)
}

// Summary emits a single info-level log line summarizing the run, in the
// structured zerolog style (pkg/server logs connection/session
// summaries the same way: one event, several Int64 fields, no prose).
func (t *Telemetry) Summary(log zerolog.Logger) {
	log.Info().
	Int64("elements_processed", atomic.LoadInt64(&t.ElementsProcessed)).
	Int64("blocks_written", atomic.LoadInt64(&t.BlocksWritten)).
	Int64("regions_flushed", atomic.LoadInt64(&t.RegionsFlushed)).
	Int64("floodfill_timeouts", atomic.LoadInt64(&t.FloodFillTimeouts)).
	Msg("run complete")
}
