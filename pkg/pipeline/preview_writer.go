package pipeline

import (
	"context"
	"image"
	"sync"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/render"
	"github.com/arnis-go/arnis/pkg/scheduler"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// previewWriter accumulates every unit's voxel.World onto a single
// bbox-sized canvas as the region scheduler flushes it, since each
// unit's World is released right after WriteUnit returns (// flush model). Finish encodes the accumulated canvas once the run
// completes.
type previewWriter struct {
	inner scheduler.Writer
	bbox coords.XZBBox
	mu sync.Mutex
	img *image.RGBA
}

func newPreviewWriter(inner scheduler.Writer, bbox coords.XZBBox) (*previewWriter, error) {
	img, err := render.NewCanvas(bbox)
	if err != nil {
		return nil, err
	}
	return &previewWriter{inner: inner, bbox: bbox, img: img}, nil
}

func (p *previewWriter) WriteUnit(ctx context.Context, bounds coords.XZBBox, world *voxel.World) error {
	p.mu.Lock()
	render.Accumulate(p.img, world, p.bbox)
	p.mu.Unlock()
	return p.inner.WriteUnit(ctx, bounds, world)
}

// Finish encodes the accumulated canvas to outputPath.
func (p *previewWriter) Finish(outputPath string) error {
	return render.Encode(p.img, outputPath)
}
