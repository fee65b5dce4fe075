package coords

import "math"

// RotatePoint rotates p about the origin by angleDegrees (2-D rotation,
// matching the convention used by Transform.Project).
func RotatePoint(p XZPoint, angleDegrees float64) XZPoint {
	rad := angleDegrees * math.Pi / 180
	x, z := rotatePoint(float64(p.X), float64(p.Z), rad)
	return XZPoint{X: int32(x), Z: int32(z)}
}

// RotatePoints rotates every point in place-equivalent (returns a new
// slice) about the origin by angleDegrees.
func RotatePoints(points []XZPoint, angleDegrees float64) []XZPoint {
	out := make([]XZPoint, len(points))
	for i, p := range points {
		out[i] = RotatePoint(p, angleDegrees)
	}
	return out
}

// ExpandForRotation computes the axis-aligned bounding rectangle of the
// un-rotated rect's four corners after rotation by angleDegrees. This is
// the rotate-and-expand pre-pass: when a non-zero
// rotation is requested, geometry must first be generated inside this
// expanded rect so that rotating it afterward never clips a corner.
func ExpandForRotation(rect XZBBox, angleDegrees float64) XZBBox {
	if angleDegrees == 0 {
		return rect
	}
	corners := []XZPoint{
		{rect.Min().X, rect.Min().Z},
		{rect.Max().X, rect.Min().Z},
		{rect.Max().X, rect.Max().Z},
		{rect.Min().X, rect.Max().Z},
	}
	rotated := RotatePoints(corners, angleDegrees)
	min, max := rotated[0], rotated[0]
	for _, p := range rotated[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return NewRect(min, max)
}
