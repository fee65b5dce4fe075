package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/elevation"
	"github.com/arnis-go/arnis/pkg/geo"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/rs/zerolog"
)

func TestDumpElementsFormatsOneLinePerElement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parsed_osm_data.txt")

	elements := []osm.Element{
		{Kind: osm.KindNode, Node: osm.ProcessedNode{ID: 1, Tags: map[string]string{"amenity": "bench"}}},
		{Kind: osm.KindWay, Way: osm.ProcessedWay{ID: 2, Tags: map[string]string{"building": "yes", "height": "6"}}},
	}
	if err := DumpElements(path, elements); err != nil {
		t.Fatalf("DumpElements: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if lines[0] != "1\tnode\tamenity=bench" {
		t.Errorf("unexpected line 0: %q", lines[0])
	}
	if lines[1] != "2\tway\tbuilding=yes,height=6" {
		t.Errorf("unexpected line 1: %q", lines[1])
	}
}

func TestMetadataMarshalsCamelCase(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{X: 1, Z: 2}, coords.XZPoint{X: 3, Z: 4})
	llbbox, err := geo.NewLLBBox(geo.LLPoint{Lat: 9.9, Lng: 54.6}, geo.LLPoint{Lat: 9.95, Lng: 54.65})
	if err != nil {
		t.Fatalf("NewLLBBox: %v", err)
	}
	meta := NewMetadata(bbox, llbbox)
	meta.Format = "bedrock-mcworld"
	meta.ChunkCount = 7

	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"minMcX"`, `"maxMcX"`, `"minMcZ"`, `"maxMcZ"`, `"minGeoLat"`, `"maxGeoLat"`, `"minGeoLon"`, `"maxGeoLon"`, `"format"`, `"chunkCount"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected metadata json to contain %s, got %s", key, data)
		}
	}
	if strings.Contains(string(data), "min_mc_x") {
		t.Errorf("expected camelCase keys, got snake_case leak: %s", data)
	}
}

func TestMetadataOmitsFormatAndChunkCountForJava(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{X: 0, Z: 0}, coords.XZPoint{X: 1, Z: 1})
	llbbox, _ := geo.NewLLBBox(geo.LLPoint{Lat: 0, Lng: 0}, geo.LLPoint{Lat: 1, Lng: 1})
	meta := NewMetadata(bbox, llbbox)

	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "format") || strings.Contains(string(data), "chunkCount") {
		t.Errorf("expected no format/chunkCount for Java metadata, got %s", data)
	}
}

func TestSessionLockContentIsSnowman(t *testing.T) {
	dir := t.TempDir()
	lock, err := AcquireSessionLock(dir)
	if err != nil {
		t.Fatalf("AcquireSessionLock: %v", err)
	}
	defer lock.Close()

	data, err := os.ReadFile(filepath.Join(dir, "session.lock"))
	if err != nil {
		t.Fatalf("read session.lock: %v", err)
	}
	if string(data) != "☃" {
		t.Errorf("expected snowman, got %q (% x)", data, data)
	}
}

func TestSessionLockBusyWhenAlreadyHeld(t *testing.T) {
	dir := t.TempDir()
	first, err := AcquireSessionLock(dir)
	if err != nil {
		t.Fatalf("first AcquireSessionLock: %v", err)
	}
	defer first.Close()

	_, err = AcquireSessionLock(dir)
	if err == nil {
		t.Fatal("expected second AcquireSessionLock to fail")
	}
	var pErr *Error
	if !errors.As(err, &pErr) || pErr.Kind != SessionLockBusy {
		t.Errorf("expected SessionLockBusy, got %v", err)
	}
}

// fakeOSMSource returns a single building way spanning a small square.
type fakeOSMSource struct{ scale float64 }

func (f fakeOSMSource) FetchElements(ctx context.Context, bbox geo.LLBBox) ([]osm.Element, error) {
	tr, _, err := coords.NewTransform(bbox, f.scale, 0)
	if err != nil {
		return nil, err
	}
	corners := []geo.LLPoint{
		{Lat: bbox.Min.Lat + 0.0001, Lng: bbox.Min.Lng + 0.0001},
		{Lat: bbox.Min.Lat + 0.0001, Lng: bbox.Min.Lng + 0.0003},
		{Lat: bbox.Min.Lat + 0.0003, Lng: bbox.Min.Lng + 0.0003},
		{Lat: bbox.Min.Lat + 0.0003, Lng: bbox.Min.Lng + 0.0001},
		{Lat: bbox.Min.Lat + 0.0001, Lng: bbox.Min.Lng + 0.0001},
	}
	nodes := make([]osm.ProcessedNode, len(corners))
	for i, c := range corners {
		xz := tr.Project(c)
		nodes[i] = osm.ProcessedNode{ID: uint64(i + 1), X: xz.X, Z: xz.Z}
	}
	way := osm.ProcessedWay{ID: 1, Nodes: nodes, Tags: map[string]string{"building": "house", "height": "6"}}
	return []osm.Element{{Kind: osm.KindWay, Way: way}}, nil
}

type disabledElevationSource struct{}

func (disabledElevationSource) FetchGrid(ctx context.Context, bbox geo.LLBBox) (*elevation.Grid, error) {
	return nil, ErrElevationDisabled
}

func TestRunProducesJavaWorldDirectory(t *testing.T) {
	dir := t.TempDir()
	worldDir := filepath.Join(dir, "world")

	cfg := Config{
		BBox: "9.9,54.6,9.95,54.65",
		OutputPath: worldDir,
		Format: FormatJava,
		Scale: 1.0,
		GroundLevel: 64,
		OSMSource: fakeOSMSource{scale: 1.0},
		ElevationSource: disabledElevationSource{},
		Logger: zerolog.Nop(),
	}

	tel, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tel.ElementsProcessed != 1 {
		t.Errorf("expected 1 element processed, got %d", tel.ElementsProcessed)
	}

	for _, name := range []string{"level.dat", "icon.png", "metadata.json", "session.lock"} {
		if _, err := os.Stat(filepath.Join(worldDir, name)); err != nil {
			t.Errorf("expected %s in world directory: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(worldDir, "region")); err != nil {
		t.Errorf("expected region directory: %v", err)
	}
}

func TestRunWithPreviewWritesPreviewPNG(t *testing.T) {
	dir := t.TempDir()
	worldDir := filepath.Join(dir, "world")

	// A much smaller bbox than the other Run tests use, so the resulting
	// preview canvas stays well under render.MaxPreviewBlocks.
	cfg := Config{
		BBox: "9.9,54.6,9.9005,54.6005",
		OutputPath: worldDir,
		Format: FormatJava,
		Scale: 1.0,
		GroundLevel: 64,
		Preview: true,
		OSMSource: fakeOSMSource{scale: 1.0},
		ElevationSource: disabledElevationSource{},
		Logger: zerolog.Nop(),
	}

	if _, err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(worldDir, "preview.png")); err != nil {
		t.Errorf("expected preview.png in world directory: %v", err)
	}
}

func TestRunInvalidBBoxAndScale(t *testing.T) {
	dir := t.TempDir()
	base := Config{
		OutputPath: filepath.Join(dir, "world"),
		Format: FormatJava,
		Scale: 1.0,
		OSMSource: fakeOSMSource{scale: 1.0},
		ElevationSource: disabledElevationSource{},
		Logger: zerolog.Nop(),
	}

	badBBox := base
	badBBox.BBox = "not-a-bbox"
	if _, err := Run(context.Background(), badBBox); err == nil {
		t.Fatal("expected InvalidBBox error")
	} else {
		var pErr *Error
		if !errors.As(err, &pErr) || pErr.Kind != InvalidBBox {
			t.Errorf("expected InvalidBBox, got %v", err)
		}
	}

	badScale := base
	badScale.BBox = "9.9,54.6,9.95,54.65"
	badScale.Scale = 0
	if _, err := Run(context.Background(), badScale); err == nil {
		t.Fatal("expected InvalidScale error")
	} else {
		var pErr *Error
		if !errors.As(err, &pErr) || pErr.Kind != InvalidScale {
			t.Errorf("expected InvalidScale, got %v", err)
		}
	}
}
