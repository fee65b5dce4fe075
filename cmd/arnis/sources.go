package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/elevation"
	"github.com/arnis-go/arnis/pkg/geo"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/pipeline"
)

// fileOSMSource reads OSM JSON from a local file, matching --file in the
// CLI surface. It builds its own coords.Transform from the same
// (bbox, scale, rotation) inputs pipeline.Run computes independently;
// NewTransform is a pure function of those, so both sides agree.
type fileOSMSource struct {
	path     string
	scale    float64
	rotation float64
}

func (s fileOSMSource) FetchElements(ctx context.Context, bbox geo.LLBBox) ([]osm.Element, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	tr, xzbbox, err := coords.NewTransform(bbox, s.scale, s.rotation)
	if err != nil {
		return nil, err
	}
	return osm.Parse(data, tr, xzbbox)
}

// noElevationSource is the elevation source of every run: it always returns
// ErrElevationDisabled, so a run with --terrain falls back to flat ground.
// No networked Terrarium-tile source is implemented.
type noElevationSource struct{}

func (noElevationSource) FetchGrid(ctx context.Context, bbox geo.LLBBox) (*elevation.Grid, error) {
	return nil, pipeline.ErrElevationDisabled
}
