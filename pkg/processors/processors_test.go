package processors

import (
	"testing"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/floodfill"
	"github.com/arnis-go/arnis/pkg/ground"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

func testContext(bbox coords.XZBBox) *Context {
	return &Context{
		Ground: ground.NewFlat(64),
		FloodFill: &floodfill.Cache{},
		Variants: blocks.NewVariantCache(64),
		Bbox: bbox,
		GroundLevel: 64,
		SeaLevel: 62,
	}
}

func squareWay(id uint64, size int32, tags map[string]string) osm.ProcessedWay {
	pts := []coords.XZPoint{{0, 0}, {size, 0}, {size, size}, {0, size}, {0, 0}}
	nodes := make([]osm.ProcessedNode, len(pts))
	for i, p := range pts {
		nodes[i] = osm.ProcessedNode{ID: id*100 + uint64(i), X: p.X, Z: p.Z}
	}
	return osm.ProcessedWay{ID: id, Nodes: nodes, Tags: tags}
}

func TestProcessBuildingDrawsWallsAndFloor(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{20, 20})
	ctx := testContext(bbox)
	way := squareWay(1, 10, map[string]string{"building": "house", "height": "6"})
	w := voxel.NewWorld()

	processBuilding(w, osm.Element{Kind: osm.KindWay, Way: way}, ctx)

	b, ok := w.GetBlock(0, 65, 0)
	if !ok || b == blocks.Air {
		t.Fatal("expected a wall block at the first corner")
	}
}

func TestProcessHighwayStampsSurface(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{50, 50})
	ctx := testContext(bbox)
	way := osm.ProcessedWay{
		ID: 2,
		Tags: map[string]string{"highway": "residential", "surface": "asphalt"},
		Nodes: []osm.ProcessedNode{
			{ID: 21, X: 0, Z: 10},
			{ID: 22, X: 20, Z: 10},
		},
	}
	w := voxel.NewWorld()
	processHighway(w, osm.Element{Kind: osm.KindWay, Way: way}, ctx)

	b, ok := w.GetBlock(10, 64, 10)
	if !ok || b == blocks.Air {
		t.Fatal("expected surface block along the highway centerline")
	}
}

func TestProcessNaturalPlacesTree(t *testing.T) {
	ctx := testContext(coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{10, 10}))
	w := voxel.NewWorld()
	node := osm.ProcessedNode{ID: 42, X: 5, Z: 5, Tags: map[string]string{"natural": "tree"}}
	processNatural(w, osm.Element{Kind: osm.KindNode, Node: node}, ctx)

	b, ok := w.GetBlock(5, 65, 5)
	if !ok || b == blocks.Air {
		t.Fatal("expected a log block above a tree node")
	}
}

func TestSortedOrdersByPriorityThenID(t *testing.T) {
	elements := []osm.Element{
		{Kind: osm.KindWay, Way: osm.ProcessedWay{ID: 5, Tags: map[string]string{"building": "yes"}}},
		{Kind: osm.KindWay, Way: osm.ProcessedWay{ID: 3, Tags: map[string]string{"landuse": "grass"}}},
		{Kind: osm.KindWay, Way: osm.ProcessedWay{ID: 1, Tags: map[string]string{"landuse": "forest"}}},
	}
	sorted := Sorted(elements)
	if sorted[0].ID() != 1 || sorted[1].ID() != 3 {
		t.Errorf("expected landuse elements (ids 1,3) before building (id 5), got order %v", []uint64{sorted[0].ID(), sorted[1].ID(), sorted[2].ID()})
	}
	if sorted[2].ID() != 5 {
		t.Errorf("expected building last, got %d", sorted[2].ID())
	}
}

func TestProcessDispatchesByCategory(t *testing.T) {
	ctx := testContext(coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{10, 10}))
	w := voxel.NewWorld()
	node := osm.ProcessedNode{ID: 7, X: 1, Z: 1, Tags: map[string]string{"amenity": "bench"}}
	Process(w, osm.Element{Kind: osm.KindNode, Node: node}, ctx)

	if _, ok := w.GetBlock(1, 65, 1); !ok {
		t.Error("expected the amenity processor to place a block")
	}
}

func TestProcessBarrierExtrudesWall(t *testing.T) {
	ctx := testContext(coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{20, 20}))
	w := voxel.NewWorld()
	way := osm.ProcessedWay{
		ID: 9,
		Tags: map[string]string{"barrier": "wall"},
		Nodes: []osm.ProcessedNode{
			{ID: 91, X: 0, Z: 5},
			{ID: 92, X: 10, Z: 5},
		},
	}
	processBarrier(w, osm.Element{Kind: osm.KindWay, Way: way}, ctx)

	b, ok := w.GetBlock(5, 65, 5)
	if !ok || b != blocks.StoneBricks {
		t.Errorf("expected stone bricks at wall height, got %v ok=%v", b, ok)
	}
}
