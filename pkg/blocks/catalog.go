package blocks

// dyeColors lists the sixteen standard Minecraft dye colors, used to
// expand per-color block families (wool, concrete) into distinct catalog
// entries, matching how Java Edition names them.
var dyeColors = []string{
	"white", "orange", "magenta", "light_blue", "yellow", "lime", "pink",
	"gray", "light_gray", "cyan", "purple", "blue", "brown", "green", "red", "black",
}

// Every exported var below is assigned its dense catalog id at package
// init time, before any worker goroutine can run.
var (
	// Air is registered first so that it takes id 0, the value of the Air
	// constant.
	_ = register("air", nil)

	// Ground / terrain
	Stone        = register("stone", nil)
	Cobblestone  = register("cobblestone", nil)
	StoneBricks  = register("stone_bricks", nil)
	SmoothStone  = register("smooth_stone", nil)
	Dirt         = register("dirt", nil)
	GrassBlock   = register("grass_block", nil)
	Podzol       = register("podzol", nil)
	Farmland     = register("farmland", Properties{"moisture": "7"})
	Sand         = register("sand", nil)
	Sandstone    = register("sandstone", nil)
	Gravel       = register("gravel", nil)
	Clay         = register("clay", nil)
	Concrete     = registerColorFamily("concrete", nil)
	Terracotta   = registerColorFamily("terracotta", nil)
	Wool         = registerColorFamily("wool", nil)
	StainedGlass = registerColorFamily("stained_glass", nil)

	// Water / waterways
	Water = register("water", nil)

	// Wood
	OakLog           = register("oak_log", Properties{"axis": "y"})
	SpruceLog        = register("spruce_log", Properties{"axis": "y"})
	BirchLog         = register("birch_log", Properties{"axis": "y"})
	OakPlanks        = register("oak_planks", nil)
	OakStairs        = register("oak_stairs", nil)
	StoneStairs      = register("stone_stairs", nil)
	BrickStairs      = register("brick_stairs", nil)
	StoneBrickStairs = register("stone_brick_stairs", nil)
	OakSlab          = register("oak_slab", nil)
	StoneSlab        = register("stone_slab", nil)
	StoneBrickSlab   = register("stone_brick_slab", nil)
	OakFence         = register("oak_fence", nil)
	OakDoor          = register("oak_door", Properties{"half": "lower", "facing": "north", "open": "false"})
	OakSign          = register("oak_sign", nil)

	// Beds (building interiors)
	RedBed = register("red_bed", Properties{"part": "foot", "facing": "north"})

	// Rails (railways)
	Rail        = register("rail", Properties{"shape": "north_south"})
	PoweredRail = register("powered_rail", Properties{"shape": "north_south"})

	// Glass / panes
	Glass     = register("glass", nil)
	GlassPane = register("glass_pane", nil)
	IronBars  = register("iron_bars", nil)

	// Lighting / power
	Glowstone    = register("glowstone", nil)
	Torch        = register("torch", nil)
	RedstoneLamp = register("redstone_lamp", nil)
	Chain        = register("chain", Properties{"axis": "y"})
	EndRod       = register("end_rod", Properties{"facing": "up"})

	// Vegetation
	OakLeaves      = register("oak_leaves", Properties{"persistent": "true"})
	SpruceLeaves   = register("spruce_leaves", Properties{"persistent": "true"})
	BirchLeaves    = register("birch_leaves", Properties{"persistent": "true"})
	ShortGrass     = register("short_grass", nil)
	TallGrassLower = register("tall_grass", Properties{"half": "lower"})
	TallGrassUpper = register("tall_grass", Properties{"half": "upper"})
	Fern           = register("fern", nil)
	Poppy          = register("poppy", nil)
	Dandelion      = register("dandelion", nil)
	Wheat          = register("wheat", Properties{"age": "7"})
	SnowLayer      = register("snow", Properties{"layers": "1"})
	SnowBlock      = register("snow_block", nil)

	// Ores (landuse quarry)
	CoalOre     = register("coal_ore", nil)
	IronOre     = register("iron_ore", nil)
	GoldOre     = register("gold_ore", nil)
	DiamondOre  = register("diamond_ore", nil)
	EmeraldOre  = register("emerald_ore", nil)
	RedstoneOre = register("redstone_ore", nil)
	LapisOre    = register("lapis_ore", nil)

	// Misc structural / decoration
	Bricks      = register("bricks", nil)
	Scaffolding = register("scaffolding", Properties{"bottom": "true"})
	Bookshelf   = register("bookshelf", nil)
	Ladder      = register("ladder", Properties{"facing": "north"})
)

// registerColorFamily registers one catalog entry per dye color, named
// "<color>_<base>" (e.g. "white_wool"), and returns a lookup table keyed
// by color name.
func registerColorFamily(base string, defaults Properties) map[string]Block {
	out := make(map[string]Block, len(dyeColors))
	for _, c := range dyeColors {
		out[c] = register(c+"_"+base, defaults)
	}
	return out
}
