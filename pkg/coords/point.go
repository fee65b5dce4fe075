// Package coords implements the Cartesian (Minecraft-block-space) side of
// the coordinate system: points, bounding boxes (rectangular or polygonal),
// the geographic-to-Cartesian projection, rotation, and polygon clipping.
package coords

// XZPoint is a Cartesian point in the XZ (horizontal) plane, in Minecraft
// blocks. Y (vertical) is handled separately by pkg/ground and pkg/voxel.
type XZPoint struct {
	X, Z int32
}

// Add returns the sum of two points.
func (p XZPoint) Add(o XZPoint) XZPoint {
	return XZPoint{X: p.X + o.X, Z: p.Z + o.Z}
}

// Sub returns the difference of two points.
func (p XZPoint) Sub(o XZPoint) XZPoint {
	return XZPoint{X: p.X - o.X, Z: p.Z - o.Z}
}
