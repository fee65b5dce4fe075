package processors

import (
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// processManMade implements "Man-made": piers, antennas and
// masts, chimneys, water wells, and water towers.
func processManMade(w *voxel.World, e osm.Element, ctx *Context) {
	switch e.Tags()["man_made"] {
		case "pier":
		if e.Kind == osm.KindWay {
			buildPier(w, e.Way, ctx)
		}
		case "antenna", "mast", "tower":
		if e.Kind == osm.KindNode {
			buildAntenna(w, e.Node, ctx)
		}
		case "chimney":
		if e.Kind == osm.KindNode {
			buildChimney(w, e.Node, ctx)
		}
		case "water_well":
		if e.Kind == osm.KindNode {
			buildWaterWell(w, e.Node, ctx)
		}
		case "water_tower":
		if e.Kind == osm.KindNode {
			buildWaterTower(w, e.Node, ctx)
		}
	}
}

func buildPier(w *voxel.World, way osm.ProcessedWay, ctx *Context) {
	for i, p := range coords.Polyline(way.Points()) {
		base := ctx.level(p)
		w.SetBlock(p.X, base+1, p.Z, blocks.OakSlab)
		if i%4 == 0 {
			w.SetBlock(p.X, base, p.Z, blocks.OakLog)
		}
	}
}

func buildAntenna(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	base := ctx.level(p)
	const height = 15
	for y := int32(1); y <= height; y++ {
		w.SetBlock(p.X, base+y, p.Z, blocks.IronBars)
	}
	w.SetBlock(p.X, base+height+1, p.Z, blocks.EndRod)
	w.SetBlock(p.X, base+2, p.Z, blocks.IronBars)
	w.SetBlock(p.X, base+8, p.Z, blocks.Glass)
}

func buildChimney(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	base := ctx.level(p)
	const height = 10
	for y := int32(1); y <= height; y++ {
		for dx := int32(-1); dx <= 1; dx++ {
			for dz := int32(-1); dz <= 1; dz++ {
				onEdge := dx == -1 || dx == 1 || dz == -1 || dz == 1
				if onEdge {
					w.SetBlock(p.X+dx, base+y, p.Z+dz, blocks.Bricks)
				}
			}
		}
	}
}

func buildWaterWell(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	base := ctx.level(p)
	for dx := int32(-1); dx <= 1; dx++ {
		for dz := int32(-1); dz <= 1; dz++ {
			onEdge := dx == -1 || dx == 1 || dz == -1 || dz == 1
			if onEdge {
				w.SetBlock(p.X+dx, base+1, p.Z+dz, blocks.StoneBricks)
			}
		}
	}
	for _, corner := range [4][2]int32{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		w.SetBlock(p.X+corner[0], base+2, p.Z+corner[1], blocks.OakLog)
		w.SetBlock(p.X+corner[0], base+3, p.Z+corner[1], blocks.OakLog)
	}
	w.SetBlock(p.X, base, p.Z, blocks.Water)
}

func buildWaterTower(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	base := ctx.level(p)
	const legHeight = 10
	legs := [4][2]int32{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}
	for _, leg := range legs {
		for y := int32(1); y <= legHeight; y++ {
			w.SetBlock(p.X+leg[0], base+y, p.Z+leg[1], blocks.OakLog)
		}
	}
	for dx := int32(-3); dx <= 3; dx++ {
		for dz := int32(-3); dz <= 3; dz++ {
			if dx*dx+dz*dz <= 9 {
				w.SetBlock(p.X+dx, base+legHeight+1, p.Z+dz, blocks.Water)
			}
		}
	}
}
