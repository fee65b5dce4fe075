package pipeline

import (
	"context"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/scheduler"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// instrumentedWriter decorates a scheduler.Writer with telemetry counting,
// so JavaWriter/BedrockWriter stay free of any pipeline-level concern.
type instrumentedWriter struct {
	inner scheduler.Writer
	tel *Telemetry
}

func (w *instrumentedWriter) WriteUnit(ctx context.Context, bounds coords.XZBBox, world *voxel.World) error {
	w.tel.countBlocks(world)
	regionCount := int64(len(world.Regions()))
	if err := w.inner.WriteUnit(ctx, bounds, world); err != nil {
		return err
	}
	w.tel.addRegionsFlushed(regionCount)
	return nil
}
