// Package bedrockwriter serializes a processing unit's VoxelStore into a
// Bedrock Edition .mcworld archive, per : a LevelDB chunk
// database (Marker/Data3D/SubChunk keys, subchunk v9 block packing),
// level.dat, and the zip packaging Bedrock expects around them.
//
// Grounded on original_source/src/world_editor/bedrock.rs for the overall
// chunk-write sequence, and on felipemarts-krakovia's comfort using
// syndtr/goleveldb directly against a plain on-disk path (no abstraction
// layer) for how this package opens and writes its database.
package bedrockwriter

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/geo"
	"github.com/arnis-go/arnis/pkg/voxel"
	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
)

// Writer flushes completed processing units into a staging LevelDB
// database, then packages the finished world into an .mcworld zip when
// Finish is called. Implements scheduler.Writer.
type Writer struct {
	OutputDir string
	LevelName string
	SpawnX, SpawnY, SpawnZ int32
	RandomSeed int64

	mu sync.Mutex
	db *leveldb.DB
	chunkCount int
}

// NewWriter returns a Writer that stages its LevelDB database under
// outputDir/db and packages levelName as the resulting .mcworld's display
// name.
func NewWriter(outputDir, levelName string) *Writer {
	return &Writer{OutputDir: outputDir, LevelName: levelName}
}

func (w *Writer) open() (*leveldb.DB, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.db != nil {
		return w.db, nil
	}
	dbDir := filepath.Join(w.OutputDir, "db")
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}
	db, err := leveldb.OpenFile(dbDir, nil)
	if err != nil {
		return nil, fmt.Errorf("open staging leveldb at %s: %w", dbDir, err)
	}
	w.db = db
	return db, nil
}

// WriteUnit writes every realized chunk's Marker/Data3D/SubChunk keys to
// the staging database, then releases the unit's regions (// flush model).
func (w *Writer) WriteUnit(ctx context.Context, bounds coords.XZBBox, world *voxel.World) error {
	_ = bounds
	db, err := w.open()
	if err != nil {
		return err
	}

	for key, region := range world.Regions() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, chunk := range region.Chunks() {
			if chunk.IsEmpty() {
				continue
			}
			if err := writeChunk(db, chunk); err != nil {
				return fmt.Errorf("write chunk (%d,%d): %w", chunk.ChunkX, chunk.ChunkZ, err)
			}
			w.mu.Lock()
			w.chunkCount++
			w.mu.Unlock()
		}
		world.DeleteRegion(key[0], key[1])
	}
	return nil
}

func writeChunk(db *leveldb.DB, chunk *voxel.Chunk) error {
	cx, cz := chunk.ChunkX, chunk.ChunkZ

	if err := db.Put(markerKey(cx, cz), []byte{42}, nil); err != nil {
		return err
	}
	if err := db.Put(data3DKey(cx, cz), encodeData3D(chunk), nil); err != nil {
		return err
	}
	for _, sy := range chunk.SectionIndices() {
		sec := chunk.Section(sy)
		if sec.IsEmpty() {
			continue
		}
		if err := db.Put(subChunkKey(cx, cz, sy), encodeSubchunk(sec, sy), nil); err != nil {
			return err
		}
	}
	return nil
}

// mcworldMetadata records the source bounding boxes alongside the chunk
// count. Field names follow 's camelCase metadata.json schema
// directly, rather than the snake_case WorldMetadata struct fields
// original_source/src/world_editor/mod.rs serializes with serde's default
// (no #[serde(rename)] present there) — the schema is this module's wire
// contract and both writers share it, so it's normalized here regardless
// of what the Rust struct's own field names happen to serialize as.
type mcworldMetadata struct {
	MinMCX int32 `json:"minMcX"`
	MaxMCX int32 `json:"maxMcX"`
	MinMCZ int32 `json:"minMcZ"`
	MaxMCZ int32 `json:"maxMcZ"`
	MinGeoLat float64 `json:"minGeoLat"`
	MaxGeoLat float64 `json:"maxGeoLat"`
	MinGeoLon float64 `json:"minGeoLon"`
	MaxGeoLon float64 `json:"maxGeoLon"`
	Format string `json:"format,omitempty"`
	ChunkCount int `json:"chunkCount,omitempty"`
}

// Finish closes the staging database and packages everything Bedrock
// expects into an .mcworld zip ("Bedrock .mcworld format"):
// levelname.txt, level.dat, metadata.json, a placeholder world icon, and
// the whole db/ directory. Not part of scheduler.Writer — called once by
// the pipeline after scheduler.Run returns, since the LevelDB database and
// zip span every unit rather than just one.
func (w *Writer) Finish(bbox coords.XZBBox, llbbox geo.LLBBox) error {
	w.mu.Lock()
	db := w.db
	w.db = nil
	w.mu.Unlock()

	if db != nil {
		if err := db.Close(); err != nil {
			return fmt.Errorf("close staging leveldb: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(w.OutputDir, "levelname.txt"), []byte(w.LevelName), 0o644); err != nil {
		return fmt.Errorf("write levelname.txt: %w", err)
	}

	levelDat := encodeLevelDat(LevelDatOptions{
			LevelName: w.LevelName,
			SpawnX: w.SpawnX,
			SpawnY: w.SpawnY,
			SpawnZ: w.SpawnZ,
			RandomSeed: w.RandomSeed,
			WorldUUID: uuid.New().String(),
	})
	if err := os.WriteFile(filepath.Join(w.OutputDir, "level.dat"), levelDat, 0o644); err != nil {
		return fmt.Errorf("write level.dat: %w", err)
	}

	meta, err := json.MarshalIndent(mcworldMetadata{
			MinMCX: bbox.Min().X, MaxMCX: bbox.Max().X,
			MinMCZ: bbox.Min().Z, MaxMCZ: bbox.Max().Z,
			MinGeoLat: llbbox.Min.Lat, MaxGeoLat: llbbox.Max.Lat,
			MinGeoLon: llbbox.Min.Lng, MaxGeoLon: llbbox.Max.Lng,
			Format: "bedrock-mcworld",
			ChunkCount: w.chunkCount,
		}, "", " ")
	if err != nil {
		return fmt.Errorf("marshal metadata.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.OutputDir, "metadata.json"), meta, 0o644); err != nil {
		return fmt.Errorf("write metadata.json: %w", err)
	}

	if err := os.WriteFile(filepath.Join(w.OutputDir, "world_icon.jpeg"), placeholderWorldIcon, 0o644); err != nil {
		return fmt.Errorf("write world_icon.jpeg: %w", err)
	}

	zipPath := w.OutputDir + ".mcworld"
	if err := packMcworld(w.OutputDir, zipPath); err != nil {
		return fmt.Errorf("pack mcworld: %w", err)
	}
	return os.RemoveAll(w.OutputDir)
}

// packMcworld zips stagingDir's contents (levelname.txt, level.dat,
// metadata.json, and the db/ directory) into zipPath with DEFLATE
// compression, preserving relative paths so db/ round-trips as a
// directory on extraction.
func packMcworld(stagingDir, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	err = filepath.Walk(stagingDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(stagingDir, path)
			if err != nil {
				return err
			}
			header, err := zip.FileInfoHeader(info)
			if err != nil {
				return err
			}
			header.Name = filepath.ToSlash(rel)
			header.Method = zip.Deflate
			writer, err := zw.CreateHeader(header)
			if err != nil {
				return err
			}
			src, err := os.Open(path)
			if err != nil {
				return err
			}
			defer src.Close()
			_, err = io.Copy(writer, src)
			return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
