package processors

import (
	"math/rand/v2"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/rng"
	"github.com/arnis-go/arnis/pkg/voxel"
)

var landuseGround = map[string]blocks.Block{
	"grass": blocks.GrassBlock,
	"meadow": blocks.GrassBlock,
	"farmland": blocks.Farmland,
	"forest": blocks.GrassBlock,
	"cemetery": blocks.GrassBlock,
	"construction": blocks.Dirt,
	"quarry": blocks.Stone,
	"residential": blocks.GrassBlock,
	"industrial": blocks.Concrete["gray"],
	"commercial": blocks.Concrete["light_gray"],
	"podzol": blocks.Podzol,
}

// processLanduse implements "Landuse": ground block from
// `landuse=*`, flood-filled and painted at Y=0, then tag-specific sparse
// decoration seeded by (x, z, element_id).
//
// Grounded on original_source/src/element_processing/landuse.rs.
func processLanduse(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindWay {
		return
	}
	way := e.Way
	tag := way.Tags["landuse"]
	ground, ok := landuseGround[tag]
	if !ok {
		ground = blocks.GrassBlock
	}

	interior := ctx.fillInterior(way)
	for _, p := range interior {
		base := ctx.level(p)
		w.SetBlock(p.X, base, p.Z, ground)

		r := rng.CoordRNG(p.X, p.Z, e.ID())
		scale := ctx.densityScale(p)
		switch tag {
			case "cemetery":
			if r.IntN(scatterThreshold(20, scale)) == 0 {
				w.SetBlock(p.X, base+1, p.Z, blocks.StoneBricks)
				w.SetBlock(p.X, base+2, p.Z, blocks.StoneBrickSlab)
			}
			case "forest":
			switch r.IntN(scatterThreshold(15, scale)) {
				case 0:
				placeTree(w, osm.ProcessedNode{ID: e.ID(), X: p.X, Z: p.Z}, ctx)
				case 1:
				w.SetBlockIfAbsent(p.X, base+1, p.Z, pickGroundDecoration(r))
			}
			case "farmland":
			if p.Z%9 == 0 {
				w.SetBlock(p.X, base, p.Z, blocks.Water)
			} else {
				w.SetBlockIfAbsent(p.X, base+1, p.Z, blocks.Wheat)
			}
			case "construction":
			switch {
				case r.IntN(scatterThreshold(30, scale)) == 0:
				w.SetBlock(p.X, base+1, p.Z, blocks.Scaffolding)
				w.SetBlock(p.X, base+2, p.Z, blocks.Scaffolding)
				case r.IntN(scatterThreshold(25, scale)) == 0:
				w.SetBlock(p.X, base+1, p.Z, blocks.Dirt)
				case r.IntN(scatterThreshold(40, scale)) == 0:
				w.SetBlock(p.X, base+1, p.Z, blocks.Bricks)
			}
			case "quarry":
			placeQuarryOre(w, p, base, r)
		}
	}
}

// scatterThreshold divides a flat 1-in-n decoration rarity by the noise
// field's local density scale, so patches where the field runs high get
// denser decoration and patches where it runs low get sparser, instead of
// every cell across a way rolling against the same flat odds.
func scatterThreshold(n int, scale float64) int {
	if scale <= 0.05 {
		scale = 0.05
	}
	t := int(float64(n) / scale)
	if t < 1 {
		t = 1
	}
	return t
}

// placeQuarryOre places an ore block whose rarity increases with depth
// ("quarry places ore blocks whose rarity increases with
// depth"): shallow cells get common coal/iron, deep cells occasionally
// get diamond/emerald.
func placeQuarryOre(w *voxel.World, p coords.XZPoint, base int32, r *rand.Rand) {
	depth := r.IntN(20)
	var ore blocks.Block
	switch {
		case depth < 10:
		if r.IntN(4) == 0 {
			ore = blocks.CoalOre
		}
		case depth < 16:
		if r.IntN(6) == 0 {
			ore = blocks.IronOre
		}
		case depth < 19:
		if r.IntN(10) == 0 {
			ore = blocks.GoldOre
		}
		default:
		if r.IntN(20) == 0 {
			ore = blocks.DiamondOre
		} else if r.IntN(20) == 1 {
			ore = blocks.EmeraldOre
		}
	}
	if ore != blocks.Air {
		w.SetBlock(p.X, base-int32(depth)/4, p.Z, ore)
	}
}
