package processors

import (
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

const waterDepth = 3

// processWaterArea implements "Water areas": partitions a
// relation's members into outer/inner rings, assembles disjoint way
// segments into closed loops by endpoint matching, clips each outer loop
// to the xzbbox, and paints WATER from sea_level-depth to sea_level for
// every interior column (inner rings act as holes).
//
// A plain `natural=water`/`water=*` way (no relation) is treated as a
// single outer ring with no holes.
//
// Grounded on original_source/src/element_processing/water_areas.rs and
// oceans.rs for the ring-assembly/clip pipeline.
func processWaterArea(w *voxel.World, e osm.Element, ctx *Context) {
	outer, inner := waterRings(e)
	if len(outer) == 0 {
		return
	}

	for _, ring := range outer {
		clipped := coords.ClipPolygonToRect(ring, ctx.Bbox)
		if len(clipped) < 3 {
			continue
		}
		fillWaterRing(w, clipped, inner, ctx)
	}
}

func fillWaterRing(w *voxel.World, ring []coords.XZPoint, holes [][]coords.XZPoint, ctx *Context) {
	way := osm.ProcessedWay{Nodes: pointsToNodes(ring)}
	interior := ctx.fillInterior(way)
	for _, p := range interior {
		if pointInAnyRing(p, holes) {
			continue
		}
		sea := ctx.SeaLevel
		for y := sea - waterDepth; y <= sea; y++ {
			w.SetBlock(p.X, y, p.Z, blocks.Water)
		}
	}
}

func pointInAnyRing(p coords.XZPoint, rings [][]coords.XZPoint) bool {
	for _, ring := range rings {
		bbox, err := coords.NewPoly(ring)
		if err != nil {
			continue
		}
		if bbox.Contains(p) {
			return true
		}
	}
	return false
}

func pointsToNodes(pts []coords.XZPoint) []osm.ProcessedNode {
	nodes := make([]osm.ProcessedNode, len(pts))
	for i, p := range pts {
		nodes[i] = osm.ProcessedNode{X: p.X, Z: p.Z}
	}
	return nodes
}

// waterRings returns the outer loops to fill and the inner loops that
// mask holes out of them.
func waterRings(e osm.Element) (outer, inner [][]coords.XZPoint) {
	switch e.Kind {
		case osm.KindWay:
		if e.Way.Closed() || len(e.Way.Nodes) >= 3 {
			outer = append(outer, e.Way.Points())
		}
		case osm.KindRelation:
		var outerWays, innerWays []osm.ProcessedWay
		for _, m := range e.Relation.Members {
			if m.Role == osm.RoleInner {
				innerWays = append(innerWays, m.Way)
			} else {
				outerWays = append(outerWays, m.Way)
			}
		}
		outer = assembleLoops(outerWays)
		inner = assembleLoops(innerWays)
	}
	return outer, inner
}

// assembleLoops joins way segments sharing endpoints into closed rings,
// matching the reference's multipolygon assembly.
func assembleLoops(ways []osm.ProcessedWay) [][]coords.XZPoint {
	remaining := make([]osm.ProcessedWay, len(ways))
	copy(remaining, ways)

	var loops [][]coords.XZPoint
	for len(remaining) > 0 {
		cur := remaining[0].Points()
		remaining = remaining[1:]

		for progress := true; progress && len(cur) > 0 && cur[0] != cur[len(cur)-1]; {
			progress = false
			for i, way := range remaining {
				pts := way.Points()
				if len(pts) == 0 {
					continue
				}
				last := cur[len(cur)-1]
				switch {
					case pts[0] == last:
					cur = append(cur, pts[1:]...)
					case pts[len(pts)-1] == last:
					reversed := reversePoints(pts)
					cur = append(cur, reversed[1:]...)
					default:
					continue
				}
				remaining = append(remaining[:i], remaining[i+1:]...)
				progress = true
				break
			}
		}
		if len(cur) >= 3 {
			loops = append(loops, cur)
		}
	}
	return loops
}

func reversePoints(pts []coords.XZPoint) []coords.XZPoint {
	out := make([]coords.XZPoint, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
