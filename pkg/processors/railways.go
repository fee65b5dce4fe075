package processors

import (
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// processRailway implements "Railways": Bresenham
// centerline with diagonal smoothing, rail shape resolution from
// (prev, current, next), gravel bed, and oak-log sleepers every 4
// blocks.
//
// Grounded on original_source/src/element_processing/*.rs rail handling
// and the reference's curved-rail shape table.
func processRailway(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindWay || len(e.Way.Nodes) < 2 {
		return
	}
	line := smoothDiagonals(coords.Polyline(e.Way.Points()))

	for i, p := range line {
		base := ctx.level(p)
		w.SetBlock(p.X, base, p.Z, blocks.Gravel)

		shape := railShape(line, i)
		variant := blocks.RailVariant(ctx.Variants, blocks.Rail, shape)
		w.SetBlockWithProperties(p.X, base+1, p.Z, variant)

		if i%4 == 0 {
			w.SetBlock(p.X, base, p.Z, blocks.OakLog)
		}
	}
}

// smoothDiagonals inserts an intermediate corner cell whenever two
// consecutive cells differ in both axes, so a diagonal Bresenham step
// never renders as a disconnected pair of blocks (// "diagonal smoothing").
func smoothDiagonals(line []coords.XZPoint) []coords.XZPoint {
	if len(line) < 2 {
		return line
	}
	out := make([]coords.XZPoint, 0, len(line)*2)
	out = append(out, line[0])
	for i := 1; i < len(line); i++ {
		prev, cur := line[i-1], line[i]
		if prev.X != cur.X && prev.Z != cur.Z {
			out = append(out, coords.XZPoint{X: cur.X, Z: prev.Z})
		}
		out = append(out, cur)
	}
	return out
}

// railShape chooses among the six straight/curve variants from the
// triple (prev, current, next) surrounding index i.
func railShape(line []coords.XZPoint, i int) string {
	if len(line) < 2 {
		return "north_south"
	}
	var prev, next coords.XZPoint
	cur := line[i]
	hasPrev, hasNext := i > 0, i+1 < len(line)
	if hasPrev {
		prev = line[i-1]
	}
	if hasNext {
		next = line[i+1]
	}

	switch {
		case hasPrev && hasNext:
		return curveShape(prev, cur, next)
		case hasNext:
		return straightShape(cur, next)
		case hasPrev:
		return straightShape(prev, cur)
		default:
		return "north_south"
	}
}

func straightShape(a, b coords.XZPoint) string {
	if a.X == b.X {
		return "north_south"
	}
	return "east_west"
}

func curveShape(prev, cur, next coords.XZPoint) string {
	dIn := direction(prev, cur)
	dOut := direction(cur, next)
	if dIn == dOut {
		if dIn == "n" || dIn == "s" {
			return "north_south"
		}
		return "east_west"
	}
	switch {
		case (dIn == "s" && dOut == "e") || (dIn == "w" && dOut == "n"):
		return "north_west"
		case (dIn == "s" && dOut == "w") || (dIn == "e" && dOut == "n"):
		return "north_east"
		case (dIn == "n" && dOut == "e") || (dIn == "w" && dOut == "s"):
		return "south_west"
		default:
		return "south_east"
	}
}

func direction(a, b coords.XZPoint) string {
	switch {
		case b.Z < a.Z:
		return "n"
		case b.Z > a.Z:
		return "s"
		case b.X > a.X:
		return "e"
		default:
		return "w"
	}
}
