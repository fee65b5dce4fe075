package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arnis-go/arnis/pkg/pipeline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the CLI surface lists, generalized from the
// flat cmd/server/main.go flag set into a single generate
// subcommand plus root, matching spf13/cobra's convention for a CLI that
// may grow subcommands later.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use: "arnis",
		Short: "Convert OpenStreetMap bounding-box data into a Minecraft world",
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		bbox string
		file string
		path string
		scale float64
		groundLevel int
		terrain bool
		fillground bool
		interior bool
		roof bool
		debug bool
		preview bool
		timeoutSecs int
		format string
		seed int64
		rotation float64
	)

	cmd := &cobra.Command{
		Use: "generate",
		Short: "Generate a Minecraft world from an OSM bounding box",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

			var fmtKind pipeline.Format
			switch format {
				case "java":
				fmtKind = pipeline.FormatJava
				case "bedrock":
				fmtKind = pipeline.FormatBedrock
				default:
				return fmt.Errorf("unknown --format %q (want java or bedrock)", format)
			}

			cfg := pipeline.Config{
				BBox: bbox,
				OutputPath: path,
				Format: fmtKind,
				Scale: scale,
				GroundLevel: int32(groundLevel),
				Terrain: terrain,
				FillGround: fillground,
				Interior: interior,
				Roof: roof,
				Debug: debug,
				Preview: preview,
				Timeout: secondsToDuration(timeoutSecs),
				RandomSeed: seed,
				Rotation: rotation,
				OSMSource: fileOSMSource{path: file, scale: scale, rotation: rotation},
				ElevationSource: noElevationSource{},
				Logger: logger,
			}
			if terrain {
				logger.Warn().Msg("--terrain requested but no networked elevation source is wired; using flat ground")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			tel, err := pipeline.Run(ctx, cfg)
			if err != nil {
				return err
			}
			logger.Info().
			Int64("elements", tel.ElementsProcessed).
			Int64("blocks", tel.BlocksWritten).
			Int64("regions", tel.RegionsFlushed).
			Msg("generation complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&bbox, "bbox", "", "min_lat,min_lng,max_lat,max_lng (commas or spaces)")
	cmd.Flags().StringVar(&file, "file", "", "read OSM JSON from a local file instead of network")
	cmd.Flags().StringVar(&path, "path", "", "target Minecraft world directory (Java) or archive base path (Bedrock)")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "meters-per-block scale, must be > 0")
	cmd.Flags().IntVar(&groundLevel, "ground-level", 64, "default ground Y when terrain disabled")
	cmd.Flags().BoolVar(&terrain, "terrain", false, "enable elevation lookup")
	cmd.Flags().BoolVar(&fillground, "fillground", false, "fill underground from min Y to ground level with stone")
	cmd.Flags().BoolVar(&interior, "interior", false, "generate building interior pattern")
	cmd.Flags().BoolVar(&roof, "roof", false, "generate peaked building roofs")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump parsed elements to parsed_osm_data.txt")
	cmd.Flags().BoolVar(&preview, "preview", false, "write a top-down preview.png of the finished world")
	cmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "flood-fill deadline in seconds (0 = no deadline)")
	cmd.Flags().StringVar(&format, "format", "java", "output format: java or bedrock")
	cmd.Flags().Int64Var(&seed, "seed", 0, "world seed written to level.dat")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "projection rotation in degrees")

	cmd.MarkFlagRequired("bbox")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("path")

	return cmd
}

func secondsToDuration(secs int) time.Duration {
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
