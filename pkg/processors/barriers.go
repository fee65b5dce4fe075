package processors

import (
	"strconv"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

var barrierMaterials = map[string]blocks.Block{
	"wood": blocks.OakFence,
	"brick": blocks.Bricks,
	"stone": blocks.StoneBricks,
	"metal": blocks.IronBars,
}

// processBarrier implements "Barriers": Bresenham along the
// way, extruded to a height derived from tags, with a stone-brick slab
// cap when height > 1.
func processBarrier(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindWay || len(e.Way.Nodes) < 2 {
		return
	}
	way := e.Way
	material := barrierMaterial(way.Tags)
	height := barrierHeight(way.Tags)

	for _, p := range coords.Polyline(way.Points()) {
		base := ctx.level(p)
		for y := int32(1); y <= height; y++ {
			w.SetBlock(p.X, base+y, p.Z, material)
		}
		if height > 1 {
			w.SetBlock(p.X, base+height+1, p.Z, blocks.StoneBrickSlab)
		}
	}
}

func barrierMaterial(tags map[string]string) blocks.Block {
	if m, ok := barrierMaterials[tags["material"]]; ok {
		return m
	}
	switch tags["barrier"] {
		case "wall":
		return blocks.StoneBricks
		case "fence":
		return blocks.OakFence
		case "hedge":
		return blocks.OakLeaves
	}
	if m, ok := barrierMaterials[tags["fence_type"]]; ok {
		return m
	}
	return blocks.OakFence
}

func barrierHeight(tags map[string]string) int32 {
	if v, ok := tags["height"]; ok {
		if meters, err := strconv.ParseFloat(v, 64); err == nil && meters > 0 {
			return int32(meters)
		}
	}
	if tags["barrier"] == "wall" {
		return 2
	}
	return 1
}
