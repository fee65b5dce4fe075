package processors

import (
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/rng"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// processHistoric, processLeisure, processAmenity, processAdvertising and
// processTourism implement 's catch-all: "Small fixed-shape
// structures placed at node position with minor RNG variation."
//
// Grounded on original_source/src/element_processing/{historic,leisure,
// amenities,advertising}.rs, which share this placeholder-structure
// pattern for minor points of interest that don't justify their own
// dedicated file.
func processHistoric(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindNode {
		return
	}
	placeMonument(w, e.Node, ctx, blocks.Sandstone)
}

func processLeisure(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind == osm.KindWay {
		paintLeisureArea(w, e.Way, ctx)
		return
	}
	if e.Kind == osm.KindNode {
		placeMonument(w, e.Node, ctx, blocks.OakPlanks)
	}
}

func processAmenity(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindNode {
		return
	}
	p := e.Node.Point()
	base := ctx.level(p)
	switch e.Tags()["amenity"] {
		case "bench":
		w.SetBlock(p.X, base+1, p.Z, blocks.OakSlab)
		case "waste_basket":
		w.SetBlock(p.X, base+1, p.Z, blocks.IronBars)
		case "fountain":
		w.SetBlock(p.X, base, p.Z, blocks.Water)
		w.SetBlock(p.X, base+1, p.Z, blocks.StoneBricks)
		default:
		w.SetBlock(p.X, base+1, p.Z, blocks.OakFence)
	}
}

func processAdvertising(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindNode {
		return
	}
	p := e.Node.Point()
	base := ctx.level(p)
	w.SetBlock(p.X, base+1, p.Z, blocks.OakFence)
	w.SetBlock(p.X, base+2, p.Z, blocks.OakFence)
	w.SetBlock(p.X, base+3, p.Z, blocks.OakSign)
}

func processTourism(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindNode {
		return
	}
	placeMonument(w, e.Node, ctx, blocks.Cobblestone)
}

// placeMonument places a small fixed-shape cairn/marker with minor
// variation in its height, seeded by the element id.
func placeMonument(w *voxel.World, n osm.ProcessedNode, ctx *Context, material blocks.Block) {
	p := n.Point()
	base := ctx.level(p)
	r := rng.ElementRNG(n.ID)
	height := int32(1 + r.IntN(3))
	for y := int32(0); y < height; y++ {
		w.SetBlock(p.X, base+y, p.Z, material)
	}
}

// paintLeisureArea handles polygon leisure tags (park, pitch, garden,
// playground) by painting their flood-filled interior.
func paintLeisureArea(w *voxel.World, way osm.ProcessedWay, ctx *Context) {
	ground := blocks.GrassBlock
	switch way.Tags["leisure"] {
		case "pitch":
		ground = blocks.GrassBlock
		case "swimming_pool":
		ground = blocks.Water
		case "playground":
		ground = blocks.Sand
	}
	for _, p := range ctx.fillInterior(way) {
		base := ctx.level(p)
		w.SetBlock(p.X, base, p.Z, ground)
	}
}
