package processors

import (
	"strconv"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/rng"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// wallPalette maps a building's `building` tag value to a default wall
// block, used when no explicit `building:colour` is present.
var wallPalette = map[string]blocks.Block{
	"house": blocks.Terracotta["light_gray"],
	"residential": blocks.Terracotta["light_gray"],
	"apartments": blocks.Concrete["white"],
	"commercial": blocks.Concrete["light_blue"],
	"industrial": blocks.StoneBricks,
	"warehouse": blocks.StoneBricks,
	"church": blocks.Sandstone,
	"cathedral": blocks.Sandstone,
	"garage": blocks.Cobblestone,
	"garages": blocks.Cobblestone,
	"hut": blocks.OakPlanks,
	"shed": blocks.OakPlanks,
}

// processBuilding implements "Buildings": height from tags,
// wall color from tags or palette, traced outline with windows and
// corners, flood-filled floor/ceiling, and optional tiled interior.
//
// Grounded on original_source/src/element_processing/buildings.rs.
func processBuilding(w *voxel.World, e osm.Element, ctx *Context) {
	way, ok := buildingOutline(e)
	if !ok || len(way.Nodes) < 3 {
		return
	}

	height := buildingHeight(way.Tags)
	wall := wallBlock(way)
	outline := coords.Polyline(way.Points())

	base := ctx.level(way.Points()[0])

	for _, p := range outline {
		for y := int32(1); y <= height; y++ {
			b := wall
			if y > 1 && y < height && isWindowRow(y) && isWindowColumn(p) {
				b = blocks.GlassPane
			}
			w.SetBlock(p.X, base+y, p.Z, b)
		}
	}

	// Corner posts, one block taller than the walls, reinforcing every
	// vertex of the outline ("placing corner blocks at
	// polygon vertices").
	for _, n := range way.Nodes {
		p := n.Point()
		for y := int32(1); y <= height+1; y++ {
			w.SetBlock(p.X, base+y, p.Z, blocks.StoneBricks)
		}
	}

	interior := ctx.fillInterior(way)
	for _, p := range interior {
		w.SetBlockIfAbsent(p.X, base, p.Z, blocks.OakPlanks)
		w.SetBlockIfAbsent(p.X, base+height+1, p.Z, wall)
	}

	if ctx.Interior && len(interior) > 0 && footprintAtLeast8x8(way.Points()) {
		tileInteriorFloors(w, e.ID(), interior, base, height, ctx)
	}

	if ctx.Roof {
		buildRoof(w, outline, base+height+1, wall, ctx)
	}
}

// buildingOutline returns the outer way to draw: for a plain way that's
// itself; for a relation, the outer-role member (building relations don't
// carry inner rings the way water multipolygons do).
func buildingOutline(e osm.Element) (osm.ProcessedWay, bool) {
	switch e.Kind {
		case osm.KindWay:
		return e.Way, true
		case osm.KindRelation:
		for _, m := range e.Relation.Members {
			if m.Role == osm.RoleOuter {
				way := m.Way
				way.Tags = e.Relation.Tags
				return way, true
			}
		}
	}
	return osm.ProcessedWay{}, false
}

// buildingHeight resolves wall height in blocks from `height` (meters) or
// `building:levels` (*3 blocks/level), defaulting to two stories.
func buildingHeight(tags map[string]string) int32 {
	if v, ok := tags["height"]; ok {
		if meters, err := strconv.ParseFloat(v, 64); err == nil && meters > 0 {
			return int32(meters)
		}
	}
	if v, ok := tags["building:levels"]; ok {
		if levels, err := strconv.Atoi(v); err == nil && levels > 0 {
			return int32(levels) * 3
		}
	}
	return 6
}

func wallBlock(way osm.ProcessedWay) blocks.Block {
	if colour, ok := way.Tags["building:colour"]; ok {
		if family, ok := colorFamilyByHex(colour); ok {
			return family
		}
	}
	if b, ok := wallPalette[way.Tags["building"]]; ok {
		return b
	}
	return blocks.Concrete["white"]
}

// colorFamilyByHex maps a subset of common hex wall colors to the
// nearest wool/concrete family entry; unrecognized hex values fall back
// to the caller's default.
func colorFamilyByHex(hex string) (blocks.Block, bool) {
	switch hex {
		case "#ffffff", "#fff", "white":
		return blocks.Concrete["white"], true
		case "#000000", "#000", "black":
		return blocks.Concrete["black"], true
		case "#ff0000", "red":
		return blocks.Concrete["red"], true
		case "#a52a2a", "brown":
		return blocks.Concrete["brown"], true
	}
	return 0, false
}

func isWindowRow(y int32) bool { return y%3 == 0 }

func isWindowColumn(p coords.XZPoint) bool { return (p.X+p.Z)%4 == 0 }

func footprintAtLeast8x8(points []coords.XZPoint) bool {
	if len(points) == 0 {
		return false
	}
	minX, maxX := points[0].X, points[0].X
	minZ, maxZ := points[0].Z, points[0].Z
	for _, p := range points[1:] {
		minX, maxX = minInt32(minX, p.X), maxInt32(maxX, p.X)
		minZ, maxZ = minInt32(minZ, p.Z), maxInt32(maxZ, p.Z)
	}
	return (maxX-minX) >= 8 && (maxZ-minZ) >= 8
}

// tileInteriorFloors stamps the two fixed 23x23 interior pattern grids
// (interior.go) across the interior cells at every floor level, per
// : "lower layer uses doors' lower half, upper layer uses
// doors' upper half; beds are placed with correct facing/part pair."
func tileInteriorFloors(w *voxel.World, elementID uint64, interior []coords.XZPoint, base, height int32, ctx *Context) {
	if len(interior) == 0 {
		return
	}
	minX, minZ := interior[0].X, interior[0].Z
	for _, p := range interior[1:] {
		minX, minZ = minInt32(minX, p.X), minInt32(minZ, p.Z)
	}

	r := rng.ElementRNGSalted(elementID, saltInterior)
	bedFacing := bedFacings[r.IntN(len(bedFacings))]

	// Every floor gets both pattern layers: the lower grid on the floor's
	// first block row and the upper grid on the row above it.
	for floorY := base + 3; floorY < base+height; floorY++ {
		layer := (floorY - base) % 3
		if layer == 2 {
			continue
		}
		pattern := interiorPatternLower
		doorHalf := "lower"
		if layer == 1 {
			pattern = interiorPatternUpper
			doorHalf = "upper"
		}
		for _, p := range interior {
			gx := int((p.X - minX) % interiorGridSize)
			gz := int((p.Z - minZ) % interiorGridSize)
			if gx < 0 {
				gx += interiorGridSize
			}
			if gz < 0 {
				gz += interiorGridSize
			}
			switch pattern[gz][gx] {
				case 'D':
				door := blocks.Defaults(blocks.OakDoor).Clone()
				door["half"] = doorHalf
				w.SetBlockWithProperties(p.X, floorY, p.Z, blocks.BlockWithProperties{Block: blocks.OakDoor, Properties: door})
				case 'B':
				bp := blocks.BedVariant(ctx.Variants, blocks.RedBed, "foot", bedFacing)
				w.SetBlockWithProperties(p.X, floorY, p.Z, bp)
				case 'S':
				w.SetBlockIfAbsent(p.X, floorY, p.Z, blocks.Bookshelf)
			}
		}
	}
}

var bedFacings = []string{"north", "south", "east", "west"}

const saltInterior = 0xB1

// buildRoof stamps a shallow peaked roof of stairs over a building's
// outline, rising one step per ring inward from the walls, toggled by
// the --roof flag.
func buildRoof(w *voxel.World, outline []coords.XZPoint, roofBase int32, wall blocks.Block, ctx *Context) {
	roofMaterial := blocks.StoneBrickStairs
	ring := outline
	for layer := int32(0); layer < 4 && len(ring) > 2; layer++ {
		for _, p := range ring {
			facing := roofFacing(p, outline)
			variant := blocks.StairVariant(ctx.Variants, roofMaterial, facing, "bottom")
			w.SetBlockWithProperties(p.X, roofBase+layer, p.Z, variant)
		}
		ring = insetRing(ring)
	}
}

// insetRing nudges every point of a ring one block toward the ring's
// centroid, building a shrinking sequence of rings for a peaked roof.
func insetRing(ring []coords.XZPoint) []coords.XZPoint {
	if len(ring) == 0 {
		return nil
	}
	var cx, cz int64
	for _, p := range ring {
		cx += int64(p.X)
		cz += int64(p.Z)
	}
	cx /= int64(len(ring))
	cz /= int64(len(ring))

	out := make([]coords.XZPoint, 0, len(ring))
	seen := make(map[coords.XZPoint]bool, len(ring))
	for _, p := range ring {
		nx, nz := p.X, p.Z
		if int64(p.X) < cx {
			nx++
		} else if int64(p.X) > cx {
			nx--
		}
		if int64(p.Z) < cz {
			nz++
		} else if int64(p.Z) > cz {
			nz--
		}
		np := coords.XZPoint{X: nx, Z: nz}
		if !seen[np] {
			seen[np] = true
			out = append(out, np)
		}
	}
	return out
}

func roofFacing(p coords.XZPoint, outline []coords.XZPoint) string {
	var cx, cz int64
	for _, o := range outline {
		cx += int64(o.X)
		cz += int64(o.Z)
	}
	cx /= int64(len(outline))
	cz /= int64(len(outline))
	dx := int64(p.X) - cx
	dz := int64(p.Z) - cz
	if abs64(dx) > abs64(dz) {
		if dx > 0 {
			return "west"
		}
		return "east"
	}
	if dz > 0 {
		return "north"
	}
	return "south"
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
