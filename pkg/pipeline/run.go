// Package pipeline orchestrates a full run: bbox/scale validation, OSM and
// elevation fetch, the shared precompute stage (flood-fill cache, urban
// cells), handing element batches to the RegionScheduler, and the
// format-specific finishing touches (level.dat, icon.png/world_icon.jpeg,
// metadata.json, session.lock) lists as part of each output.
//
// Grounded on original_source/src/world_editor.rs for the overall run
// shape, telemetry.rs for the counters, and debug_logging.rs for the
// --debug dump; threading a zerolog.Logger through Config mirrors the
// pkg/server.Config/Server convention.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/arnis-go/arnis/pkg/bedrockwriter"
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/floodfill"
	"github.com/arnis-go/arnis/pkg/geo"
	"github.com/arnis-go/arnis/pkg/ground"
	"github.com/arnis-go/arnis/pkg/javawriter"
	"github.com/arnis-go/arnis/pkg/processors"
	"github.com/arnis-go/arnis/pkg/scheduler"
	"github.com/google/uuid"
)

// variantCacheCapacity bounds the shared stair/bed/rail variant LRU; sized
// generously since a typical run's distinct variant count is in the low
// hundreds.
const variantCacheCapacity = 4096

// densityNoiseAlpha/Beta/Octaves parameterize the low-frequency field used
// to modulate landuse scatter density and urban-cluster edge smoothing;
// go-perlin sums densityNoiseOctaves (3) octaves of Perlin.Noise2D.
const (
	densityNoiseAlpha   = 2.0
	densityNoiseBeta    = 2.0
	densityNoiseOctaves = 3
)

// Run executes one full conversion: validate inputs, fetch data, process
// every OSM element across the RegionScheduler's units, and write the
// finished world to cfg.OutputPath in cfg.Format. Returns a *Error with
// one of the Kind values on any failure.
func Run(ctx context.Context, cfg Config) (*Telemetry, error) {
	llbbox, err := geo.ParseLLBBox(cfg.BBox)
	if err != nil {
		return nil, wrap(InvalidBBox, err)
	}
	if cfg.Scale <= 0 {
		return nil, wrap(InvalidScale, fmt.Errorf("scale %f must be > 0", cfg.Scale))
	}

	// cfg.OSMSource is expected to project elements with the identical
	// (bbox, scale, rotation) Transform — cmd/arnis's FileOSMSource builds
	// its own from the same inputs, since NewTransform is a pure function
	// of them.
	_, xzbbox, err := coords.NewTransform(llbbox, cfg.Scale, cfg.Rotation)
	if err != nil {
		return nil, wrap(InvalidScale, err)
	}

	if err := os.MkdirAll(cfg.OutputPath, 0o755); err != nil {
		return nil, wrap(IOError, err)
	}

	var lock *SessionLock
	if cfg.Format == FormatJava {
		lock, err = AcquireSessionLock(cfg.OutputPath)
		if err != nil {
			return nil, err
		}
		defer lock.Close()
	}

	elements, err := cfg.OSMSource.FetchElements(ctx, llbbox)
	if err != nil {
		return nil, wrap(OSMFetchError, err)
	}
	cfg.Logger.Info().Int("elements", len(elements)).Msg("fetched osm elements")

	if cfg.Debug {
		if err := DumpElements(filepath.Join(cfg.OutputPath, "parsed_osm_data.txt"), elements); err != nil {
			return nil, err
		}
	}

	g := ground.NewFlat(cfg.GroundLevel)
	if cfg.Terrain {
		grid, err := cfg.ElevationSource.FetchGrid(ctx, llbbox)
		if err != nil {
			if !errors.Is(err, ErrElevationDisabled) {
				cfg.Logger.Warn().Err(err).Msg("elevation fetch failed, continuing with flat ground")
			}
		} else {
			g = ground.NewFromGrid(grid.Heights, grid.Width, grid.Height, cfg.GroundLevel)
		}
	}

	var deadline time.Time
	if cfg.Timeout > 0 {
		deadline = time.Now().Add(cfg.Timeout)
	}
	ffWorkers := cfg.Workers
	if ffWorkers < 1 {
		ffWorkers = 1
	}
	ffCache := floodfill.Precompute(ctx, elements, deadline, ffWorkers)
	if !deadline.IsZero() && time.Now().After(deadline) {
		cfg.Logger.Warn().Msg("flood-fill deadline exceeded, using partial fill")
	}

	densityNoise := perlin.NewPerlin(densityNoiseAlpha, densityNoiseBeta, densityNoiseOctaves, cfg.RandomSeed)

	urbanCells := computeUrbanCells(xzbbox, elements, densityNoise)

	procCtx := &processors.Context{
		Ground:       g,
		FloodFill:    ffCache,
		UrbanCells:   urbanCells,
		Variants:     blocks.NewVariantCache(variantCacheCapacity),
		DensityNoise: densityNoise,
		Bbox:         xzbbox,
		GroundLevel:  cfg.GroundLevel,
		Interior:     cfg.Interior,
		Roof:         cfg.Roof,
		FillGround:   cfg.FillGround,
	}

	tel := &Telemetry{}
	tel.addElementsProcessed(int64(len(elements)))

	schedCfg := scheduler.Config{BatchSize: cfg.BatchSize, Workers: cfg.Workers, Timeout: cfg.Timeout}

	var bedrockWriter *bedrockwriter.Writer
	var writer scheduler.Writer
	switch cfg.Format {
	case FormatJava:
		writer = javawriter.NewWriter(cfg.OutputPath)
	case FormatBedrock:
		bedrockWriter = bedrockwriter.NewWriter(cfg.OutputPath, filepath.Base(cfg.OutputPath))
		bedrockWriter.RandomSeed = cfg.RandomSeed
		bedrockWriter.SpawnY = cfg.GroundLevel
		writer = bedrockWriter
	default:
		return nil, wrap(IOError, fmt.Errorf("unknown format %d", cfg.Format))
	}

	var preview *previewWriter
	var runWriter scheduler.Writer = &instrumentedWriter{inner: writer, tel: tel}
	if cfg.Preview {
		preview, err = newPreviewWriter(runWriter, xzbbox)
		if err != nil {
			cfg.Logger.Warn().Err(err).Msg("preview disabled, bbox too large or invalid")
			preview = nil
		} else {
			runWriter = preview
		}
	}
	if err := scheduler.Run(ctx, xzbbox, elements, procCtx, runWriter, schedCfg, nil); err != nil {
		return tel, wrap(IOError, err)
	}

	if preview != nil {
		// Bedrock's staging directory (cfg.OutputPath) is removed once
		// Finish packs the .mcworld archive, so its preview lives beside
		// the staging directory rather than inside it.
		previewPath := filepath.Join(cfg.OutputPath, "preview.png")
		if cfg.Format == FormatBedrock {
			previewPath = cfg.OutputPath + "-preview.png"
		}
		if err := preview.Finish(previewPath); err != nil {
			cfg.Logger.Warn().Err(err).Msg("failed to write preview.png")
		}
	}

	now := time.Now().UnixMilli()

	switch cfg.Format {
	case FormatJava:
		meta := NewMetadata(xzbbox, llbbox)
		if err := finishJava(cfg, meta, now); err != nil {
			return tel, err
		}
	case FormatBedrock:
		// bedrockWriter.Finish builds and writes its own metadata.json
		// (mcworldMetadata, with Format/ChunkCount set) directly from bbox
		// and llbbox, so no Metadata value needs constructing here.
		if err := bedrockWriter.Finish(xzbbox, llbbox); err != nil {
			return tel, wrap(IOError, err)
		}
	}

	tel.Summary(cfg.Logger)
	return tel, nil
}

func finishJava(cfg Config, meta Metadata, now int64) error {
	if err := WriteMetadata(cfg.OutputPath, meta); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputPath, "icon.png"), placeholderIcon, 0o644); err != nil {
		return wrap(IOError, err)
	}
	levelDat, err := EncodeJavaLevelDat(JavaLevelDatOptions{
		LevelName:  filepath.Base(cfg.OutputPath),
		SpawnX:     0,
		SpawnY:     cfg.GroundLevel,
		SpawnZ:     0,
		RandomSeed: cfg.RandomSeed,
		Time:       now,
		RunID:      uuid.New().String(),
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputPath, "level.dat"), levelDat, 0o644); err != nil {
		return wrap(IOError, err)
	}
	return nil
}
