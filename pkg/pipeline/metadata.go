package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/geo"
)

// Metadata is the unified metadata.json payload written for both output
// formats, matching 's literal camelCase schema. Format and
// ChunkCount are Bedrock-only (omitted for Java via omitempty) — see
// DESIGN.md's Open Question log for why this follows schema
// rather than original_source's snake_case WorldMetadata struct fields.
type Metadata struct {
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

// NewMetadata builds a Metadata record from a run's MC and geographic
// bounding boxes.
func NewMetadata(bbox coords.XZBBox, llbbox geo.LLBBox) Metadata {
	return Metadata{
		MinMCX: bbox.Min().X, MaxMCX: bbox.Max().X,
		MinMCZ: bbox.Min().Z, MaxMCZ: bbox.Max().Z,
		MinGeoLat: llbbox.Min.Lat, MaxGeoLat: llbbox.Max.Lat,
		MinGeoLon: llbbox.Min.Lng, MaxGeoLon: llbbox.Max.Lng,
	}
}

// WriteMetadata marshals m as indented JSON to worldDir/metadata.json.
func WriteMetadata(worldDir string, m Metadata) error {
	data, err := json.MarshalIndent(m, "", " ")
	if err != nil {
		return wrap(IOError, err)
	}
	if err := os.WriteFile(filepath.Join(worldDir, "metadata.json"), data, 0o644); err != nil {
		return wrap(IOError, err)
	}
	return nil
}
