package pipeline

import (
	"context"
	"errors"

	"github.com/arnis-go/arnis/pkg/elevation"
	"github.com/arnis-go/arnis/pkg/geo"
	"github.com/arnis-go/arnis/pkg/osm"
)

// OSMSource supplies already-projected elements for a geographic bbox.
// The network Overpass client or local-file reader that produces them is
// an external collaborator; cmd/arnis's fileOSMSource implements this by
// parsing --file against the Transform it built for the same bbox.
type OSMSource interface {
	FetchElements(ctx context.Context, bbox geo.LLBBox) ([]osm.Element, error)
}

// ElevationSource supplies a decoded elevation grid for a geographic bbox.
// Tile download/mosaicking/caching is an external collaborator's job;
// cmd/arnis's noElevationSource always returns ErrElevationDisabled, and
// Run only asks for a grid when --terrain is set.
type ElevationSource interface {
	FetchGrid(ctx context.Context, bbox geo.LLBBox) (*elevation.Grid, error)
}

// ErrElevationDisabled is the sentinel noElevationSource returns; Run
// treats it the same as any other ElevationFetchError (falls back to
// flat ground) but skips the warning log, since it's expected rather than
// a fetch failure.
var ErrElevationDisabled = errors.New("pipeline: elevation disabled")
