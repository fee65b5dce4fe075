// Package processors translates classified OSM elements into voxel
// writes: one file per category, dispatched by the fixed priority table
// from (landuse > barrier > waterway > highway > building >
// entrance, remaining categories folded in between highway and
// building).
//
// Grounded on original_source/src/element_processing/*.rs for per-category
// algorithms, and on the pkg/world/village.go structure-placement
// helpers for the Go idiom (deterministic placement driven by a seeded
// RNG, fixed-shape helper functions building up a structure one block at a
// time).
package processors

import (
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/floodfill"
	"github.com/arnis-go/arnis/pkg/ground"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/urbanground"
)

// Context bundles every shared collaborator a processor needs beyond the
// element itself: terrain lookup, precomputed interior fills, the urban
// ground mask, and the shared variant cache for stairs/beds/rails.
type Context struct {
	Ground *ground.Ground
	FloodFill *floodfill.Cache
	UrbanCells map[urbanground.CellKey]bool
	Variants *blocks.VariantCache
	DensityNoise *perlin.Perlin // low-frequency field modulating landuse scatter density
	Bbox coords.XZBBox
	GroundLevel int32 // Y at which flat terrain sits when Ground is disabled
	SeaLevel int32
	Interior bool // --interior flag
	Roof bool // --roof flag
	FillGround bool // --fillground flag
}

// IsUrban reports whether p falls inside a surviving urban cluster, used
// by the boundaries processor to decide whether to paint stone ground.
func (c *Context) IsUrban(p coords.XZPoint) bool {
	if c.UrbanCells == nil {
		return false
	}
	return urbanground.IsUrban(c.UrbanCells, p)
}

// fillInterior returns the interior cells of way, via the precomputed
// cache when available and falling back to on-demand computation for
// synthetic ways assembled from relation members.
func (c *Context) fillInterior(way osm.ProcessedWay) []coords.XZPoint {
	return c.FloodFill.GetOrCompute(way, time.Time{})
}

// densityScale is the noise field's value at p, mapped from go-perlin's
// roughly [-1,1] output into a multiplicative density scale around 1.0, used
// to thin or thicken scatter decoration so it clumps into organic patches
// instead of applying a flat probability everywhere.
const densityNoiseFreq = 0.02

func (c *Context) densityScale(p coords.XZPoint) float64 {
	if c.DensityNoise == nil {
		return 1
	}
	n := c.DensityNoise.Noise2D(float64(p.X)*densityNoiseFreq, float64(p.Z)*densityNoiseFreq)
	return 1 + n
}

// level returns the terrain Y at p, or GroundLevel when terrain is
// disabled (Ground itself already implements this fallback; this wrapper
// exists so processors never need a nil check on c.Ground).
func (c *Context) level(p coords.XZPoint) int32 {
	if c.Ground == nil {
		return c.GroundLevel
	}
	return c.Ground.Level(p)
}
