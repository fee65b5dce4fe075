package coords

// Line returns every integer grid cell on the segment from a to b via
// Bresenham's algorithm, used by every processor that traces a way's
// centerline (roads, walls, rails, waterways, power lines).
func Line(a, b XZPoint) []XZPoint {
	x0, z0 := a.X, a.Z
	x1, z1 := b.X, b.Z

	dx := abs32(x1 - x0)
	dz := -abs32(z1 - z0)
	sx := int32(1)
	if x0 >= x1 {
		sx = -1
	}
	sz := int32(1)
	if z0 >= z1 {
		sz = -1
	}
	err := dx + dz

	var out []XZPoint
	x, z := x0, z0
	for {
		out = append(out, XZPoint{X: x, Z: z})
		if x == x1 && z == z1 {
			break
		}
		e2 := 2 * err
		if e2 >= dz {
			err += dz
			x += sx
		}
		if e2 <= dx {
			err += dx
			z += sz
		}
	}
	return out
}

// Polyline runs Line across each consecutive pair of points, deduping the
// shared endpoint between segments.
func Polyline(points []XZPoint) []XZPoint {
	if len(points) == 0 {
		return nil
	}
	out := []XZPoint{points[0]}
	for i := 1; i < len(points); i++ {
		seg := Line(points[i-1], points[i])
		if len(seg) > 0 {
			out = append(out, seg[1:]...)
		}
	}
	return out
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
