package pipeline

import (
	"time"

	"github.com/rs/zerolog"
)

// Format selects the on-disk world format Run produces.
type Format int

const (
	FormatJava Format = iota
	FormatBedrock
)

// Config bundles every flag the CLI surface maps onto a run, plus the
// external collaborators and the zerolog.Logger that Run logs through.
type Config struct {
	BBox        string // "min_lat,min_lng,max_lat,max_lng"
	OutputPath  string // world directory (Java) or archive base path (Bedrock)
	Format      Format
	Scale       float64
	GroundLevel int32
	Terrain     bool
	FillGround  bool
	Interior    bool
	Roof        bool
	Debug       bool
	Preview     bool          // write a top-down preview.png (pkg/render) alongside the world
	Timeout     time.Duration // flood-fill deadline

	RandomSeed int64
	Rotation   float64 // degrees; 0 unless a caller wants a rotated projection

	BatchSize int32 // scheduler.Config.BatchSize override; 0 means default
	Workers   int   // scheduler.Config.Workers override; 0 means default

	OSMSource       OSMSource
	ElevationSource ElevationSource

	Logger zerolog.Logger
}
