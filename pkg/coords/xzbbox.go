package coords

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrInvalidPolygon is returned when a polygon XZBBox fails the simple,
// non-self-intersecting, nonzero-area invariant every polygon shape must
// satisfy.
var ErrInvalidPolygon = errors.New("invalid polygon bbox")

// XZBBoxKind tags the two concrete shapes an XZBBox can take.
type XZBBoxKind int

const (
	// KindRect is an axis-aligned rectangle.
	KindRect XZBBoxKind = iota
	// KindPoly is an arbitrary simple polygon with a precomputed fill mask.
	KindPoly
)

// XZBBox is a tagged variant: either a plain rectangle or a polygon with
// a precomputed containment bitmask.
type XZBBox struct {
	kind XZBBoxKind

	// Rect fields.
	min, max XZPoint

	// Poly fields.
	points []XZPoint
	circumMin XZPoint
	circumMax XZPoint
	bitmask []bool // row-major over the circumscribed rect, w*h entries
	validBlocks int
}

// NewRect constructs a rectangular XZBBox from two corners.
func NewRect(min, max XZPoint) XZBBox {
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Z > max.Z {
		min.Z, max.Z = max.Z, min.Z
	}
	return XZBBox{kind: KindRect, min: min, max: max}
}

// NewPoly constructs a polygon XZBBox, validating simplicity and nonzero
// area, and precomputing the scanline fill bitmask.
func NewPoly(points []XZPoint) (XZBBox, error) {
	if len(points) < 3 {
		return XZBBox{}, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidPolygon, len(points))
	}
	if polygonArea2(points) == 0 {
		return XZBBox{}, fmt.Errorf("%w: zero area", ErrInvalidPolygon)
	}
	if isSelfIntersecting(points) {
		return XZBBox{}, fmt.Errorf("%w: self-intersecting", ErrInvalidPolygon)
	}

	cMin, cMax := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < cMin.X {
			cMin.X = p.X
		}
		if p.Z < cMin.Z {
			cMin.Z = p.Z
		}
		if p.X > cMax.X {
			cMax.X = p.X
		}
		if p.Z > cMax.Z {
			cMax.Z = p.Z
		}
	}

	w := int(cMax.X-cMin.X) + 1
	h := int(cMax.Z-cMin.Z) + 1
	mask := make([]bool, w*h)
	count := 0
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			wp := XZPoint{X: cMin.X + int32(x), Z: cMin.Z + int32(z)}
			if pointInPolygon(points, wp) {
				mask[z*w+x] = true
				count++
			}
		}
	}

	return XZBBox{
		kind: KindPoly,
		points: append([]XZPoint(nil), points...),
		circumMin: cMin,
		circumMax: cMax,
		bitmask: mask,
		validBlocks: count,
	}, nil
}

// Kind reports which concrete shape this XZBBox holds.
func (b XZBBox) Kind() XZBBoxKind { return b.kind }

// Min returns the bounding rectangle's minimum corner (for Poly, the
// circumscribed rectangle's minimum corner).
func (b XZBBox) Min() XZPoint {
	if b.kind == KindRect {
		return b.min
	}
	return b.circumMin
}

// Max returns the bounding rectangle's maximum corner (for Poly, the
// circumscribed rectangle's maximum corner).
func (b XZBBox) Max() XZPoint {
	if b.kind == KindRect {
		return b.max
	}
	return b.circumMax
}

// Width returns the X extent in blocks.
func (b XZBBox) Width() int32 { return b.Max().X - b.Min().X }

// Height returns the Z extent in blocks.
func (b XZBBox) Height() int32 { return b.Max().Z - b.Min().Z }

// Points returns the polygon vertices; empty for a Rect.
func (b XZBBox) Points() []XZPoint { return b.points }

// ValidBlockCount returns the number of (x,z) cells inside the shape: for
// a Rect this is Width*Height; for a Poly it's the precomputed mask count.
func (b XZBBox) ValidBlockCount() int {
	if b.kind == KindRect {
		return int(b.Width()) * int(b.Height())
	}
	return b.validBlocks
}

// Contains reports whether (x,z) lies inside the bbox: coordinate
// comparison for a Rect, bitmask lookup for a Poly.
func (b XZBBox) Contains(p XZPoint) bool {
	if b.kind == KindRect {
		return p.X >= b.min.X && p.X <= b.max.X && p.Z >= b.min.Z && p.Z <= b.max.Z
	}
	if p.X < b.circumMin.X || p.X > b.circumMax.X || p.Z < b.circumMin.Z || p.Z > b.circumMax.Z {
		return false
	}
	w := int(b.circumMax.X-b.circumMin.X) + 1
	x := int(p.X - b.circumMin.X)
	z := int(p.Z - b.circumMin.Z)
	return b.bitmask[z*w+x]
}

// polygonArea2 returns twice the signed shoelace area; zero means the
// polygon is degenerate (collinear or coincident points).
func polygonArea2(points []XZPoint) int64 {
	var sum int64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += int64(points[i].X)*int64(points[j].Z) - int64(points[j].X)*int64(points[i].Z)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

// isSelfIntersecting does a naive O(n^2) check for non-adjacent edge
// crossings. Adequate for the small polygons (building/landuse outlines)
// this system handles.
func isSelfIntersecting(points []XZPoint) bool {
	n := len(points)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := points[i], points[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b1, b2 := points[j], points[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func orientation(a, b, c XZPoint) int {
	val := int64(b.Z-a.Z)*int64(c.X-b.X) - int64(b.X-a.X)*int64(c.Z-b.Z)
	switch {
		case val == 0:
		return 0
		case val > 0:
		return 1
		default:
		return 2
	}
}

func onSegment(a, b, c XZPoint) bool {
	return b.X <= max32(a.X, c.X) && b.X >= min32(a.X, c.X) &&
	b.Z <= max32(a.Z, c.Z) && b.Z >= min32(a.Z, c.Z)
}

func segmentsIntersect(p1, q1, p2, q2 XZPoint) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// pointInPolygon delegates to orb/planar's ring-containment test, treating
// the XZ plane as a generic planar coordinate system (the same routine
// used elsewhere for geographic rings applies unchanged to block-space
// rings).
func pointInPolygon(points []XZPoint, p XZPoint) bool {
	ring := toOrbRing(points)
	return planar.RingContains(ring, orb.Point{float64(p.X), float64(p.Z)})
}

func toOrbRing(points []XZPoint) orb.Ring {
	ring := make(orb.Ring, len(points))
	for i, p := range points {
		ring[i] = orb.Point{float64(p.X), float64(p.Z)}
	}
	return ring
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
