package bedrockwriter

import "encoding/binary"

const (
	levelDatStorageVersion = 10
	levelDatNetworkVersion = 685
	generatorFlat = 2
)

// LevelDatOptions carries the fields buildLevelDat needs beyond its fixed
// defaults, supplied by the Writer at Finish time.
type LevelDatOptions struct {
	LevelName string
	SpawnX, SpawnY, SpawnZ int32
	RandomSeed int64
	Time int64
	WorldUUID string
}

// flatWorldLayersJSON is Bedrock's FlatWorldLayers payload for a void
// preset, matching 's level.dat field list.
const flatWorldLayersJSON = `{"biome_id":1,"encoding_version":6,"preset_id":"TheVoid","world_version":"version.post_1_18"}`

// buildLevelDat constructs level.dat's LE-NBT payload: a representative
// subset of the ~90-field struct original_source/src/level_dat.rs builds,
// covering every field calls out by name plus the game-rule
// defaults a freshly imported world needs to open without Bedrock
// re-prompting a world-conversion dialog.
func buildLevelDat(opt LevelDatOptions) []leField {
	return []leField{
		intField{"StorageVersion", levelDatStorageVersion},
		intField{"NetworkVersion", levelDatNetworkVersion},
		stringField{"LevelName", opt.LevelName},
		intField{"SpawnX", opt.SpawnX},
		intField{"SpawnY", opt.SpawnY},
		intField{"SpawnZ", opt.SpawnZ},
		intField{"Generator", generatorFlat},
		intField{"GameType", 1}, // creative, matching original_source's default
		intField{"Difficulty", 0},
		longField{"RandomSeed", opt.RandomSeed},
		longField{"Time", opt.Time},
		longField{"LastPlayed", opt.Time},
		stringField{"FlatWorldLayers", flatWorldLayersJSON},
		stringField{"ArnisRunID", opt.WorldUUID},
		intField{"Platform", 2},
		intField{"PlatformBroadcastIntent", 3},
		intField{"XBLBroadcastIntent", 3},
		intField{"LimitedWorldOriginX", opt.SpawnX},
		intField{"LimitedWorldOriginY", opt.SpawnY},
		intField{"LimitedWorldOriginZ", opt.SpawnZ},
		boolField("bonusChestEnabled", false),
		boolField("CenterMapsToOrigin", true),
		boolField("ConfirmedPlatformLockedContent", false),
		boolField("educationFeaturesEnabled", false),
		boolField("ForceGameType", true),
		boolField("hasBeenLoadedInCreative", true),
		boolField("immutableWorld", false),
		boolField("isFromLockedTemplate", false),
		boolField("isFlatWorld", true),
		boolField("isSingleUseWorld", false),
		boolField("isWorldTemplateOptionLocked", false),
		boolField("MultiplayerGame", true),
		boolField("MultiplayerGameIntent", false),
		boolField("requiresCopiedPackRemovalCheck", false),
		boolField("showtags", true),
		boolField("spawnMobs", true),
		boolField("spawnV1Villagers", false),
		boolField("startWithMapEnabled", false),
		boolField("texturePacksRequired", false),
		boolField("useMsaGamertagsOnly", false),
		compoundField{"abilities", []leField{
				boolField("attackmobs", true),
				boolField("attackplayers", true),
				boolField("build", true),
				boolField("mine", true),
				boolField("doorsandswitches", true),
				boolField("flying", true),
				boolField("instabuild", true),
				boolField("invulnerable", true),
				boolField("lightning", false),
				boolField("mayfly", true),
				boolField("op", true),
				boolField("teleport", true),
				floatField{"flySpeed", 0.05},
				floatField{"walkSpeed", 0.1},
		}},
		boolField("commandblockoutput", true),
		boolField("commandblocksenabled", true),
		boolField("dodaylightcycle", true),
		boolField("doentitydrops", true),
		boolField("dofiretick", true),
		boolField("domobloot", true),
		boolField("domobspawning", true),
		boolField("dotiledrops", true),
		boolField("doweathercycle", true),
		boolField("drowningdamage", true),
		boolField("falldamage", true),
		boolField("firedamage", true),
		boolField("keepinventory", false),
		boolField("mobgriefing", true),
		boolField("naturalregeneration", true),
		boolField("pvp", true),
		boolField("tntexplodes", true),
		boolField("showcoordinates", true),
	}
}

// encodeLevelDat marshals a world's level.dat payload with its 8-byte
// {storage_version, payload_len} header.
func encodeLevelDat(opt LevelDatOptions) []byte {
	payload := encodeRootCompound(buildLevelDat(opt))
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], levelDatStorageVersion)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(payload)))
	return append(header, payload...)
}
