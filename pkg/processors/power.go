package processors

import (
	"math"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// processPower implements "Power": lattice towers, single
// mast poles, and sagging catenary power lines between consecutive way
// nodes.
//
// Grounded on original_source/src/element_processing/power.rs.
func processPower(w *voxel.World, e osm.Element, ctx *Context) {
	switch e.Tags()["power"] {
		case "tower":
		if e.Kind == osm.KindNode {
			buildTower(w, e.Node, ctx)
		}
		case "pole":
		if e.Kind == osm.KindNode {
			buildPole(w, e.Node, ctx)
		}
		case "line", "minor_line":
		if e.Kind == osm.KindWay {
			drawPowerLine(w, e.Way, ctx)
		}
	}
}

const towerHeight = 20

// buildTower draws a tapered lattice tower: base width 3 narrowing to 1
// at the top, cross-bracing every 5 blocks, arms at height-4 holding
// insulators ("Power: Towers").
func buildTower(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	base := ctx.level(p)

	for y := int32(0); y < towerHeight; y++ {
		width := towerWidth(y)
		for dx := -width; dx <= width; dx++ {
			for dz := -width; dz <= width; dz++ {
				onEdge := dx == -width || dx == width || dz == -width || dz == width
				if !onEdge {
					continue
				}
				w.SetBlock(p.X+dx, base+y, p.Z+dz, blocks.IronBars)
			}
		}
		if y%5 == 0 {
			w.SetBlock(p.X-width, base+y, p.Z+width, blocks.Chain)
			w.SetBlock(p.X+width, base+y, p.Z-width, blocks.Chain)
		}
	}

	armY := base + towerHeight - 4
	for _, dx := range [2]int32{-3, 3} {
		w.SetBlock(p.X+dx, armY, p.Z, blocks.IronBars)
		w.SetBlock(p.X+dx, armY+1, p.Z, blocks.EndRod)
	}
}

func towerWidth(y int32) int32 {
	width := 3 - y/7
	if width < 1 {
		width = 1
	}
	return width
}

// buildPole draws a single vertical mast with a short horizontal
// cross-arm ("Power: Poles").
func buildPole(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	base := ctx.level(p)
	const poleHeight = 8
	for y := int32(1); y <= poleHeight; y++ {
		w.SetBlock(p.X, base+y, p.Z, blocks.OakFence)
	}
	for dx := int32(-1); dx <= 1; dx++ {
		w.SetBlock(p.X+dx, base+poleHeight, p.Z, blocks.OakFence)
	}
}

// drawPowerLine computes a parabolic catenary sag between consecutive
// way nodes and places chain blocks oriented along the line direction
// ("sag = 4*max_sag*t*(1-t)").
func drawPowerLine(w *voxel.World, way osm.ProcessedWay, ctx *Context) {
	nodes := way.Nodes
	for i := 0; i+1 < len(nodes); i++ {
		a, b := nodes[i].Point(), nodes[i+1].Point()
		span := math.Hypot(float64(b.X-a.X), float64(b.Z-a.Z))
		maxSag := 1.0 + math.Min(5.0, span/20.0)
		axis := "x"
		if abs(b.Z-a.Z) > abs(b.X-a.X) {
			axis = "z"
		}

		steps := int(span)
		if steps < 2 {
			steps = 2
		}
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			x := float64(a.X) + t*float64(b.X-a.X)
			z := float64(a.Z) + t*float64(b.Z-a.Z)
			sag := 4 * maxSag * t * (1 - t)
			p := coords.XZPoint{X: int32(x), Z: int32(z)}
			base := ctx.level(p)
			y := base + towerHeight - 4 - int32(sag)
			if _, ok := w.GetBlock(p.X, y, p.Z); ok {
				continue
			}
			w.SetBlockWithProperties(p.X, y, p.Z, blocks.BlockWithProperties{Block: blocks.Chain, Properties: blocks.Properties{"axis": axis}})
		}
	}
}
