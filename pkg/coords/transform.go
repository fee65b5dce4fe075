package coords

import (
	"errors"
	"fmt"
	"math"

	arnisgeo "github.com/arnis-go/arnis/pkg/geo"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// ErrInvalidScale is returned when a non-positive scale factor is supplied
// to NewTransform.
var ErrInvalidScale = errors.New("invalid scale")

// Transform maps geographic points into the local Cartesian block grid
// via an equirectangular projection with Haversine-derived scaling, plus
// an optional rotation about the origin.
type Transform struct {
	bbox     arnisgeo.LLBBox
	scale    float64
	angleRad float64
	lx, lz   int32 // output extents (Lx, Lz)
}

// NewTransform computes the projection parameters for bbox at the given
// meters-per-block scale and rotation angle in degrees, and returns both
// the Transform and the resulting rectangular XZBBox. With a zero rotation
// the bbox is origin-anchored, spanning (0,0) to (Lx,Lz); with a non-zero
// rotation it is that rect widened by ExpandForRotation to the axis-aligned
// envelope of its rotated corners.
func NewTransform(bbox arnisgeo.LLBBox, scale float64, rotationDegrees float64) (*Transform, XZBBox, error) {
	if scale <= 0 {
		return nil, XZBBox{}, fmt.Errorf("%w: scale %f must be > 0", ErrInvalidScale, scale)
	}

	// North-south extent: Haversine with zero longitude delta.
	south := orb.Point{bbox.Min.Lng, bbox.Min.Lat}
	north := orb.Point{bbox.Min.Lng, bbox.Max.Lat}
	metersLat := orbgeo.Distance(south, north)

	// East-west extent: Haversine at mean latitude, zero latitude delta.
	meanLat := bbox.MeanLat()
	west := orb.Point{bbox.Min.Lng, meanLat}
	east := orb.Point{bbox.Max.Lng, meanLat}
	metersLng := orbgeo.Distance(west, east)

	lz := int32(math.Floor(metersLat) * scale)
	lx := int32(math.Floor(metersLng) * scale)

	t := &Transform{
		bbox:     bbox,
		scale:    scale,
		angleRad: rotationDegrees * math.Pi / 180,
		lx:       lx,
		lz:       lz,
	}

	// Rotate-and-expand pre-pass: Project rotates every point about the
	// origin, so the returned bbox must be the rotated corners'
	// axis-aligned envelope, not the un-rotated rect, or a rotated
	// projection clips outside it.
	unrotated := NewRect(XZPoint{0, 0}, XZPoint{lx, lz})
	xzbbox := ExpandForRotation(unrotated, rotationDegrees)
	return t, xzbbox, nil
}

// Project maps a geographic point to its rotated Cartesian position,
// truncating to int32.
func (t *Transform) Project(p arnisgeo.LLPoint) XZPoint {
	relX := (p.Lng - t.bbox.Min.Lng) / (t.bbox.Max.Lng - t.bbox.Min.Lng)
	relZ := 1 - (p.Lat-t.bbox.Min.Lat)/(t.bbox.Max.Lat-t.bbox.Min.Lat)

	x := relX * float64(t.lx)
	z := relZ * float64(t.lz)

	rx, rz := rotatePoint(x, z, t.angleRad)
	return XZPoint{X: int32(rx), Z: int32(rz)}
}

// Bounds returns the unrotated (Lx, Lz) output extents.
func (t *Transform) Bounds() (lx, lz int32) { return t.lx, t.lz }

func rotatePoint(x, z, angleRad float64) (float64, float64) {
	cos, sin := math.Cos(angleRad), math.Sin(angleRad)
	return x*cos - z*sin, z*cos + x*sin
}
