package pipeline

import (
	"bytes"
	"compress/gzip"

	"github.com/Tnze/go-mc/nbt"
)

// javaAbilitiesNBT mirrors the small ability sub-compound real Java
// level.dat files carry under Data.Player.abilities.
type javaAbilitiesNBT struct {
	Flying byte `nbt:"flying"`
	InstaBuild byte `nbt:"instabuild"`
	Invulnerable byte `nbt:"invulnerable"`
	MayFly byte `nbt:"mayfly"`
	WalkSpeed float32 `nbt:"walkSpeed"`
	FlySpeed float32 `nbt:"flySpeed"`
}

type javaVersionNBT struct {
	Id int32 `nbt:"Id"`
	Name string `nbt:"Name"`
	Series string `nbt:"Series"`
	Snapshot byte `nbt:"Snapshot"`
}

// javaDataNBT is a representative subset of vanilla level.dat's Data
// compound, enough for a freshly generated superflat void world to open
// without Minecraft re-prompting a conversion dialog. Grounded on
// original_source/src/world_utils.rs's create_new_world, which patches
// the same LevelName/LastPlayed/Player fields onto a bundled template
// this module's source tree doesn't carry.
type javaDataNBT struct {
	LevelName string `nbt:"LevelName"`
	GameType int32 `nbt:"GameType"`
	Difficulty byte `nbt:"Difficulty"`
	Hardcore byte `nbt:"hardcore"`
	AllowCommands byte `nbt:"allowCommands"`
	Initialized byte `nbt:"initialized"`
	SpawnX int32 `nbt:"SpawnX"`
	SpawnY int32 `nbt:"SpawnY"`
	SpawnZ int32 `nbt:"SpawnZ"`
	Time int64 `nbt:"Time"`
	LastPlayed int64 `nbt:"LastPlayed"`
	RandomSeed int64 `nbt:"RandomSeed"`
	GeneratorName string `nbt:"generatorName"`
	GeneratorVersion int32 `nbt:"generatorVersion"`
	Version javaVersionNBT `nbt:"Version"`
	DataVersion int32 `nbt:"DataVersion"`
	BorderCenterX float64 `nbt:"BorderCenterX"`
	BorderCenterZ float64 `nbt:"BorderCenterZ"`
	ArnisRunID string `nbt:"ArnisRunID"`
}

type javaRootNBT struct {
	Data javaDataNBT `nbt:"Data"`
}

// Java's Data Version for 1.20.x, matching the voxel store's Y range
// (-64..319) and block-state palette conventions this module targets.
const javaDataVersion = 3465

// JavaLevelDatOptions carries the run-specific fields buildJavaLevelDat
// needs.
type JavaLevelDatOptions struct {
	LevelName string
	SpawnX, SpawnY, SpawnZ int32
	RandomSeed int64
	Time int64
	RunID string
}

// EncodeJavaLevelDat marshals a vanilla-compatible, gzip-compressed,
// big-endian NBT level.dat for Java Edition output ("Output
// (Java)"), distinct from Bedrock's fixed-width little-endian format in
// pkg/bedrockwriter/leveldat.go.
func EncodeJavaLevelDat(opt JavaLevelDatOptions) ([]byte, error) {
	root := javaRootNBT{Data: javaDataNBT{
			LevelName: opt.LevelName,
			GameType: 1,
			Difficulty: 2,
			Hardcore: 0,
			AllowCommands: 1,
			Initialized: 1,
			SpawnX: opt.SpawnX,
			SpawnY: opt.SpawnY,
			SpawnZ: opt.SpawnZ,
			Time: opt.Time,
			LastPlayed: opt.Time,
			RandomSeed: opt.RandomSeed,
			GeneratorName: "flat",
			GeneratorVersion: 0,
			Version: javaVersionNBT{Id: javaDataVersion, Name: "1.20.4", Series: "main", Snapshot: 0},
			DataVersion: javaDataVersion,
			BorderCenterX: 0,
			BorderCenterZ: 0,
			ArnisRunID: opt.RunID,
	}}

	raw, err := nbt.Marshal(root)
	if err != nil {
		return nil, wrap(IOError, err)
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(raw); err != nil {
		return nil, wrap(IOError, err)
	}
	if err := gw.Close(); err != nil {
		return nil, wrap(IOError, err)
	}
	return buf.Bytes(), nil
}
