package bedrockwriter

import (
	"strconv"
	"strings"

	"github.com/arnis-go/arnis/pkg/blocks"
)

// BlockStateValue is a Bedrock block-state value: a string, bool, or int32,
// matching original_source/src/bedrock_block_map.rs's BedrockBlockStateValue
// enum. Built with the String/Bool/Int helpers below.
type BlockStateValue struct {
	kind byte // 's', 'b', or 'i'
	s string
	b bool
	i int32
}

func StringState(v string) BlockStateValue { return BlockStateValue{kind: 's', s: v} }
func BoolState(v bool) BlockStateValue { return BlockStateValue{kind: 'b', b: v} }
func IntState(v int32) BlockStateValue { return BlockStateValue{kind: 'i', i: v} }

func (v BlockStateValue) field(name string) leField {
	switch v.kind {
		case 's':
		return stringField{name, v.s}
		case 'b':
		return boolField(name, v.b)
		case 'i':
		return intField{name, v.i}
		default:
		panic("bedrockwriter: zero-value BlockStateValue")
	}
}

// bedrockBlock is a translated {name, states} pair ready for LE-NBT palette
// encoding, mirroring original_source's BedrockBlock struct.
type bedrockBlock struct {
	name string
	states map[string]BlockStateValue
}

func simple(name string) bedrockBlock {
	return bedrockBlock{name: name}
}

func withStates(name string, states map[string]BlockStateValue) bedrockBlock {
	return bedrockBlock{name: name, states: states}
}

var (
	concreteColor = reverseColorMap(blocks.Concrete)
	terracottaColor = reverseColorMap(blocks.Terracotta)
	woolColor = reverseColorMap(blocks.Wool)
	stainedGlassColor = reverseColorMap(blocks.StainedGlass)
)

func reverseColorMap(family map[string]blocks.Block) map[blocks.Block]string {
	out := make(map[blocks.Block]string, len(family))
	for color, b := range family {
		out[b] = color
	}
	return out
}

// bedrockColorName maps a Java dye color name to its Bedrock equivalent.
// Bedrock's legacy color-indexed block data keeps "silver" where Java
// Edition renamed the color to "light_gray"; every other name is shared.
func bedrockColorName(javaColor string) string {
	if javaColor == "light_gray" {
		return "silver"
	}
	return javaColor
}

// weirdoDirection maps a Java `facing` value to Bedrock's legacy
// "weirdo_direction" int used by stairs, per the WDL/bedrock block table.
func weirdoDirection(facing string) int32 {
	switch facing {
		case "east":
		return 0
		case "west":
		return 1
		case "south":
		return 2
		case "north":
		return 3
		default:
		return 0
	}
}

// railDirection maps a Java rail `shape` to Bedrock's rail_direction int,
// the same ordinal Java uses internally for RAIL_SHAPE_STRAIGHT/CURVED.
func railDirection(shape string) int32 {
	switch shape {
		case "north_south":
		return 0
		case "east_west":
		return 1
		case "ascending_east":
		return 2
		case "ascending_west":
		return 3
		case "ascending_north":
		return 4
		case "ascending_south":
		return 5
		case "south_east":
		return 6
		case "south_west":
		return 7
		case "north_west":
		return 8
		case "north_east":
		return 9
		default:
		return 0
	}
}

func propString(p blocks.Properties, key, fallback string) string {
	if p == nil {
		return fallback
	}
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}

func propInt(p blocks.Properties, key string, fallback int32) int32 {
	if p == nil {
		return fallback
	}
	v, ok := p[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return int32(n)
}

func propBool(p blocks.Properties, key string, fallback bool) bool {
	return propString(p, key, strconv.FormatBool(fallback)) == "true"
}

// toBedrockBlock translates an internal block and its (already-resolved)
// property compound into the name and state set Bedrock's SubChunk palette
// expects. Grounded on original_source/src/bedrock_block_map.rs's
// to_bedrock_block, generalized from that file's per-color-literal match
// arms to whole color families so every registered dye color round-trips
// rather than only the subset the Rust source happened to enumerate.
func toBedrockBlock(b blocks.Block, p blocks.Properties) bedrockBlock {
	name := blocks.ShortName(b)

	if color, ok := concreteColor[b]; ok {
		return withStates("concrete", map[string]BlockStateValue{
				"color": StringState(bedrockColorName(color)),
		})
	}
	if color, ok := terracottaColor[b]; ok {
		return withStates("stained_hardened_clay", map[string]BlockStateValue{
				"color": StringState(bedrockColorName(color)),
		})
	}
	if color, ok := woolColor[b]; ok {
		return withStates("wool", map[string]BlockStateValue{
				"color": StringState(bedrockColorName(color)),
		})
	}
	if color, ok := stainedGlassColor[b]; ok {
		return withStates("stained_glass", map[string]BlockStateValue{
				"color": StringState(bedrockColorName(color)),
		})
	}

	switch {
		case strings.HasSuffix(name, "_stairs"):
		return withStates(name, map[string]BlockStateValue{
				"weirdo_direction": IntState(weirdoDirection(propString(p, "facing", "north"))),
				"upside_down_bit": BoolState(propString(p, "half", "bottom") == "top"),
		})
		case strings.HasSuffix(name, "_leaves"):
		species := strings.TrimSuffix(name, "_leaves")
		return withStates("leaves", map[string]BlockStateValue{
				"old_leaf_type": StringState(species),
				"persistent_bit": BoolState(propBool(p, "persistent", false)),
		})
		case strings.HasSuffix(name, "_log"):
		return withStates(name, map[string]BlockStateValue{
				"pillar_axis": StringState(propString(p, "axis", "y")),
		})
	}

	switch name {
		case "short_grass":
		return withStates("tallgrass", map[string]BlockStateValue{
				"tall_grass_type": StringState("tall"),
		})
		case "tall_grass":
		return withStates("double_plant", map[string]BlockStateValue{
				"double_plant_type": StringState("grass"),
				"upper_block_bit": BoolState(propString(p, "half", "lower") == "upper"),
		})
		case "fern":
		return simple("fern")
		case "poppy":
		return withStates("red_flower", map[string]BlockStateValue{
				"flower_type": StringState("poppy"),
		})
		case "dandelion":
		return simple("yellow_flower")
		case "stone_slab":
		return withStates("stone_block_slab", map[string]BlockStateValue{
				"stone_slab_type": StringState("smooth_stone"),
				"top_slot_bit": BoolState(false),
		})
		case "stone_brick_slab":
		return withStates("stone_block_slab", map[string]BlockStateValue{
				"stone_slab_type": StringState("stone_brick"),
				"top_slot_bit": BoolState(false),
		})
		case "oak_slab":
		return withStates("wooden_slab", map[string]BlockStateValue{
				"wood_type": StringState("oak"),
				"top_slot_bit": BoolState(false),
		})
		case "oak_planks":
		return withStates("planks", map[string]BlockStateValue{
				"wood_type": StringState("oak"),
		})
		case "water":
		return withStates("water", map[string]BlockStateValue{
				"liquid_depth": IntState(0),
		})
		case "rail":
		return withStates("rail", map[string]BlockStateValue{
				"rail_direction": IntState(railDirection(propString(p, "shape", "north_south"))),
		})
		case "powered_rail":
		return withStates("golden_rail", map[string]BlockStateValue{
				"rail_direction": IntState(railDirection(propString(p, "shape", "north_south"))),
		})
		case "farmland":
		return withStates("farmland", map[string]BlockStateValue{
				"moisturized_amount": IntState(propInt(p, "moisture", 0)),
		})
		case "snow":
		layers := propInt(p, "layers", 1)
		return withStates("snow_layer", map[string]BlockStateValue{
				"height": IntState(layers - 1),
				"covered_bit": BoolState(false),
		})
		case "oak_door":
		return withStates("wooden_door", map[string]BlockStateValue{
				"direction": IntState(weirdoDirection(propString(p, "facing", "north"))),
				"open_bit": BoolState(propBool(p, "open", false)),
				"upper_block_bit": BoolState(propString(p, "half", "lower") == "upper"),
		})
		case "red_bed":
		return withStates("bed", map[string]BlockStateValue{
				"direction": IntState(weirdoDirection(propString(p, "facing", "north"))),
				"head_piece_bit": BoolState(propString(p, "part", "foot") == "head"),
				"occupied_bit": BoolState(false),
		})
	}

	if len(p) == 0 {
		return simple(name)
	}
	states := make(map[string]BlockStateValue, len(p))
	for k, v := range p {
		states[k] = StringState(v)
	}
	return withStates(name, states)
}
