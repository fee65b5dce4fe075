package processors

import (
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// highwayWidths maps a `highway` value to its half-width in blocks
// ("Highways": "footway=1, service=2, primary/motorway=5,
// lanes default by lanes").
var highwayWidths = map[string]int32{
	"footway": 1,
	"path": 1,
	"cycleway": 1,
	"steps": 1,
	"service": 2,
	"track": 2,
	"residential": 3,
	"unclassified": 3,
	"tertiary": 3,
	"secondary": 4,
	"primary": 5,
	"trunk": 5,
	"motorway": 5,
}

var surfaceBlocks = map[string]blocks.Block{
	"asphalt": blocks.Stone,
	"paved": blocks.Stone,
	"concrete": blocks.Concrete["light_gray"],
	"paving_stones": blocks.StoneBricks,
	"gravel": blocks.Gravel,
	"dirt": blocks.Dirt,
	"sand": blocks.Sand,
	"cobblestone": blocks.Cobblestone,
	"grass": blocks.GrassBlock,
}

// processHighway implements "Highways": surface block from
// `surface`, width from `highway` (or `lanes`), Bresenham centerline with
// perpendicular stamping, dashed centerline for multi-lane roads, and
// crossing stripes for `footway=crossing`.
//
// Grounded on original_source/src/element_processing/highways.rs.
func processHighway(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindWay {
		return
	}
	way := e.Way
	if len(way.Nodes) < 2 {
		return
	}

	surface := surfaceBlocks[way.Tags["surface"]]
	if surface == blocks.Air {
		surface = blocks.Stone
	}
	width := highwayWidth(way.Tags)
	centerline := coords.Polyline(way.Points())

	for i, p := range centerline {
		base := ctx.level(p)
		var dx, dz int32 = 1, 0
		if i+1 < len(centerline) {
			dx, dz = perpendicular(centerline[i], centerline[i+1])
		} else if i > 0 {
			dx, dz = perpendicular(centerline[i-1], centerline[i])
		}
		for r := -width; r <= width; r++ {
			x := p.X + dx*r
			z := p.Z + dz*r
			w.SetBlock(x, base, z, surface)
		}
	}

	if laneCount(way.Tags) >= 2 {
		drawDashedCenterline(w, centerline, ctx)
	}

	if way.Tags["highway"] == "footway" && way.Tags["footway"] == "crossing" {
		drawCrossingStripes(w, centerline, width, ctx)
	}

	for _, n := range way.Nodes {
		placeHighwayNode(w, n, ctx)
	}
}

func highwayWidth(tags map[string]string) int32 {
	if lanes := laneCount(tags); lanes > 0 {
		return lanes
	}
	if w, ok := highwayWidths[tags["highway"]]; ok {
		return w
	}
	return 2
}

func laneCount(tags map[string]string) int32 {
	v, ok := tags["lanes"]
	if !ok {
		return 0
	}
	var n int32
	for _, c := range v {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int32(c-'0')
	}
	return n
}

// perpendicular returns the unit-ish perpendicular direction of the
// segment a->b, used to stamp a road's width across its centerline.
func perpendicular(a, b coords.XZPoint) (int32, int32) {
	dx := b.X - a.X
	dz := b.Z - a.Z
	if dx == 0 && dz == 0 {
		return 1, 0
	}
	// Rotate the direction vector 90 degrees; sign() keeps the stamped
	// width bounded to +/-1 per step regardless of segment length.
	return sign(-dz), sign(dx)
}

func sign(v int32) int32 {
	switch {
		case v > 0:
		return 1
		case v < 0:
		return -1
		default:
		return 0
	}
}

// drawDashedCenterline paints a 5-on/5-off white line down the middle of
// a multi-lane road ("draw a dashed white centerline").
func drawDashedCenterline(w *voxel.World, centerline []coords.XZPoint, ctx *Context) {
	for i, p := range centerline {
		if (i/5)%2 != 0 {
			continue
		}
		base := ctx.level(p)
		w.SetBlock(p.X, base+1, p.Z, blocks.Concrete["white"])
	}
}

// drawCrossingStripes paints alternating black/white stripes
// perpendicular to a pedestrian crossing's direction of travel.
func drawCrossingStripes(w *voxel.World, centerline []coords.XZPoint, width int32, ctx *Context) {
	for i, p := range centerline {
		var dx, dz int32 = 1, 0
		if i+1 < len(centerline) {
			dx, dz = perpendicular(centerline[i], centerline[i+1])
		}
		base := ctx.level(p)
		stripe := blocks.Concrete["white"]
		if (i/2)%2 != 0 {
			stripe = blocks.Concrete["black"]
		}
		for r := -width; r <= width; r++ {
			x := p.X + dx*r
			z := p.Z + dz*r
			w.SetBlock(x, base, z, stripe)
		}
	}
}

// placeHighwayNode handles the one-shot decorative nodes // calls out: street lamps, traffic signals, bus stops.
func placeHighwayNode(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	base := ctx.level(p)
	switch {
		case n.Tags["highway"] == "street_lamp":
		w.SetBlock(p.X, base+1, p.Z, blocks.OakFence)
		w.SetBlock(p.X, base+2, p.Z, blocks.OakFence)
		w.SetBlock(p.X, base+3, p.Z, blocks.Glowstone)
		case n.Tags["highway"] == "traffic_signals":
		w.SetBlock(p.X, base+1, p.Z, blocks.OakFence)
		w.SetBlock(p.X, base+2, p.Z, blocks.OakFence)
		w.SetBlock(p.X, base+3, p.Z, blocks.Wool["red"])
		w.SetBlock(p.X, base+4, p.Z, blocks.Wool["yellow"])
		w.SetBlock(p.X, base+5, p.Z, blocks.Wool["lime"])
		case n.Tags["highway"] == "bus_stop":
		w.SetBlock(p.X, base+1, p.Z, blocks.OakFence)
		w.SetBlock(p.X, base+2, p.Z, blocks.OakFence)
		w.SetBlock(p.X, base+3, p.Z, blocks.OakSign)
	}
}
