package processors

import (
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

var waterwayProfiles = map[string]struct {
	width, depth int32
}{
	"river": {width: 3, depth: 2},
	"stream": {width: 1, depth: 1},
	"canal": {width: 2, depth: 2},
	"drain": {width: 1, depth: 1},
	"ditch": {width: 1, depth: 1},
}

// processWaterway implements "Waterways": per-segment
// Bresenham trench carved to the subtype's width/depth, dirt under
// water, vegetation cleared above.
//
// Grounded on original_source/src/element_processing/water_areas.rs
// (shared trench-carving helper referenced by the waterway subtype).
func processWaterway(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindWay || len(e.Way.Nodes) < 2 {
		return
	}
	profile, ok := waterwayProfiles[e.Way.Tags["waterway"]]
	if !ok {
		profile = waterwayProfiles["stream"]
	}

	line := coords.Polyline(e.Way.Points())
	for i, p := range line {
		base := ctx.level(p)
		var dx, dz int32 = 0, 1
		if i+1 < len(line) {
			dx, dz = perpendicular(line[i], line[i+1])
		}
		for r := -profile.width; r <= profile.width; r++ {
			x := p.X + dx*r
			z := p.Z + dz*r
			w.SetBlock(x, base-profile.depth, z, blocks.Dirt)
			for y := base - profile.depth + 1; y <= base; y++ {
				w.SetBlock(x, y, z, blocks.Water)
			}
			w.SetBlock(x, base+1, z, blocks.Air)
		}
	}
}
