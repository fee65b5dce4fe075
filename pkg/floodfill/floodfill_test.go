package floodfill

import (
	"context"
	"testing"
	"time"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
)

func square(size int32) []coords.XZPoint {
	return []coords.XZPoint{{0, 0}, {size, 0}, {size, size}, {0, size}}
}

func TestAreaFillsSquareInterior(t *testing.T) {
	filled := Area(square(10), time.Time{})
	if len(filled) == 0 {
		t.Fatal("expected nonempty fill")
	}
	for _, p := range filled {
		if p.X < 0 || p.X > 10 || p.Z < 0 || p.Z > 10 {
			t.Errorf("fill point %+v outside polygon bbox", p)
		}
	}
}

func TestAreaRejectsDegenerate(t *testing.T) {
	if got := Area([]coords.XZPoint{{0, 0}, {1, 0}}, time.Time{}); got != nil {
		t.Errorf("expected nil for degenerate polygon, got %v", got)
	}
}

func TestAreaRespectsDeadline(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	filled := Area(square(50), past)
	if len(filled) != 0 {
		t.Errorf("expired deadline should return partial (here: empty) result, got %d cells", len(filled))
	}
}

func TestNeedsFill(t *testing.T) {
	cases := []struct {
		tags map[string]string
		want bool
	}{
		{map[string]string{"building": "yes"}, true},
		{map[string]string{"natural": "tree"}, false},
		{map[string]string{"natural": "wood"}, true},
		{map[string]string{"highway": "pedestrian", "area": "yes"}, true},
		{map[string]string{"highway": "residential"}, false},
	}
	for _, c := range cases {
		way := osm.ProcessedWay{Tags: c.tags}
		if got := NeedsFill(way); got != c.want {
			t.Errorf("NeedsFill(%v) = %v, want %v", c.tags, got, c.want)
		}
	}
}

func TestPrecomputeAndGetOrCompute(t *testing.T) {
	way := osm.ProcessedWay{
		ID: 905796139,
		Tags: map[string]string{"building": "yes"},
		Nodes: wayNodes(square(10)),
	}
	elements := []osm.Element{{Kind: osm.KindWay, Way: way}}

	cache := Precompute(context.Background(), elements, time.Time{}, 2)
	if cache.Count() != 1 {
		t.Fatalf("expected 1 cached way, got %d", cache.Count())
	}

	cached := cache.GetOrCompute(way, time.Time{})
	direct := Area(way.Points(), time.Time{})
	if len(cached) != len(direct) {
		t.Errorf("cached fill (%d cells) differs in size from direct fill (%d cells)", len(cached), len(direct))
	}
}

func wayNodes(pts []coords.XZPoint) []osm.ProcessedNode {
	nodes := make([]osm.ProcessedNode, len(pts))
	for i, p := range pts {
		nodes[i] = osm.ProcessedNode{X: p.X, Z: p.Z}
	}
	return nodes
}
