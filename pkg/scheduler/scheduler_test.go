package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/floodfill"
	"github.com/arnis-go/arnis/pkg/ground"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/processors"
	"github.com/arnis-go/arnis/pkg/voxel"
)

type recordingWriter struct {
	mu sync.Mutex
	calls int
}

func (r *recordingWriter) WriteUnit(ctx context.Context, bounds coords.XZBBox, world *voxel.World) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return nil
}

func TestPartitionCoversBBox(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{1200, 1200})
	units := Partition(bbox, Config{BatchSize: 2})
	if len(units) == 0 {
		t.Fatal("expected at least one unit")
	}
	for _, u := range units {
		if u.RegionMaxX < u.RegionMinX || u.RegionMaxZ < u.RegionMinZ {
			t.Errorf("invalid unit bounds: %+v", u)
		}
	}
}

func TestDistributeAssignsBoundaryElementToBothUnits(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{1200, 600})
	units := Partition(bbox, Config{BatchSize: 1, FetchBuffer: 64})
	way := osm.ProcessedWay{
		ID: 1,
		Tags: map[string]string{"building": "yes"},
		Nodes: []osm.ProcessedNode{
			{X: 500, Z: 300}, {X: 520, Z: 300},
		},
	}
	elements := []osm.Element{{Kind: osm.KindWay, Way: way}}
	assignments := distribute(units, elements)

	hit := 0
	for _, a := range assignments {
		if len(a) > 0 {
			hit++
		}
	}
	if hit != 2 {
		t.Fatalf("expected the element to be assigned to both units either side of x=512, got %d", hit)
	}
}

func TestRunFlushesEveryUnit(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{1200, 600})
	ctx := &processors.Context{
		Ground: ground.NewFlat(64),
		FloodFill: &floodfill.Cache{},
		Variants: blocks.NewVariantCache(16),
	}
	writer := &recordingWriter{}
	units := Partition(bbox, Config{BatchSize: 1})

	err := Run(context.Background(), bbox, nil, ctx, writer, Config{BatchSize: 1, Workers: 2}, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if writer.calls != len(units) {
		t.Errorf("expected %d flushes, got %d", len(units), writer.calls)
	}
}
