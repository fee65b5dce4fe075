package elevation

import (
	"math"

	"github.com/arnis-go/arnis/pkg/geo"
)

// ZoomLevel picks the Terrarium tile zoom for bbox, clamped to [10,15]
// per "Zoom selected by bbox extent, clamped to [10, 15]".
func ZoomLevel(bbox geo.LLBBox) int {
	latDiff := math.Abs(bbox.Max.Lat - bbox.Min.Lat)
	lngDiff := math.Abs(bbox.Max.Lng - bbox.Min.Lng)
	maxDiff := math.Max(latDiff, lngDiff)
	zoom := int(-math.Log2(maxDiff) + 20.0)
	if zoom < 10 {
		zoom = 10
	}
	if zoom > 15 {
		zoom = 15
	}
	return zoom
}

// TileXY converts a geographic point to its slippy-map tile coordinates
// at the given zoom (used by the external Terrarium tile fetcher to know
// which tiles to request; kept here because it's pure domain math, not
// network I/O).
func TileXY(p geo.LLPoint, zoom int) (x, y uint32) {
	latRad := p.Lat * math.Pi / 180
	n := math.Pow(2, float64(zoom))
	x = uint32((p.Lng + 180.0) / 360.0 * n)
	y = uint32((1.0 - math.Asinh(math.Tan(latRad))/math.Pi) / 2.0 * n)
	return x, y
}
