package osm

import (
	"testing"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/geo"
)

func mustTransform(t *testing.T) (*coords.Transform, coords.XZBBox) {
	t.Helper()
	bbox, err := geo.ParseLLBBox("54.6270,9.9279,54.6349,9.9375")
	if err != nil {
		t.Fatal(err)
	}
	tr, rect, err := coords.NewTransform(bbox, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return tr, rect
}

func TestParseBuildingWay(t *testing.T) {
	tr, rect := mustTransform(t)
	doc := []byte(`{
		"elements": [
			{"type":"node","id":1,"lat":54.631,"lon":9.933},
			{"type":"node","id":2,"lat":54.6311,"lon":9.933},
			{"type":"node","id":3,"lat":54.6311,"lon":9.9331},
			{"type":"node","id":4,"lat":54.631,"lon":9.9331},
			{"type":"way","id":100,"nodes":[1,2,3,4,1],"tags":{"building":"yes"}}
		]
	}`)

	elements, err := Parse(doc, tr, rect)
	if err != nil {
		t.Fatal(err)
	}

	var found bool
	for _, e := range elements {
		if e.Kind == KindWay && e.Way.ID == 100 {
			found = true
			if len(e.Way.Nodes) != 5 {
				t.Errorf("way 100 has %d nodes, want 5", len(e.Way.Nodes))
			}
			if !e.Way.Closed() {
				t.Error("way 100 should be closed (first==last)")
			}
			if Classify(e.Tags()) != CategoryBuilding {
				t.Errorf("way 100 classified as %v, want CategoryBuilding", Classify(e.Tags()))
			}
		}
	}
	if !found {
		t.Fatal("way 100 not found in parsed elements")
	}
}

func TestParseDropsNodesOutsideBBox(t *testing.T) {
	tr, rect := mustTransform(t)
	doc := []byte(`{
		"elements": [
			{"type":"node","id":1,"lat":54.631,"lon":9.933},
			{"type":"node","id":2,"lat":10.0,"lon":10.0},
			{"type":"way","id":200,"nodes":[1,2],"tags":{"highway":"residential"}}
		]
	}`)

	elements, err := Parse(doc, tr, rect)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range elements {
		if e.Kind == KindWay && e.Way.ID == 200 {
			if len(e.Way.Nodes) != 1 {
				t.Errorf("way 200 has %d nodes, want 1 (node 2 outside bbox should be clipped)", len(e.Way.Nodes))
			}
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	landuse := Element{Kind: KindWay, Way: ProcessedWay{ID: 1, Tags: map[string]string{"landuse": "forest"}}}
	building := Element{Kind: KindWay, Way: ProcessedWay{ID: 2, Tags: map[string]string{"building": "yes"}}}
	entrance := Element{Kind: KindNode, Node: ProcessedNode{ID: 3, Tags: map[string]string{"entrance": "yes"}}}

	if !Less(landuse, building) {
		t.Error("landuse should sort before building")
	}
	if !Less(building, entrance) {
		t.Error("building should sort before entrance")
	}
}

func TestClassifyBuildingWinsOverLanduse(t *testing.T) {
	tags := map[string]string{"landuse": "residential", "building": "house"}
	if got := Classify(tags); got != CategoryBuilding {
		t.Errorf("Classify = %v, want CategoryBuilding", got)
	}
}

func TestElementBounds(t *testing.T) {
	w := ProcessedWay{Nodes: []ProcessedNode{{X: 0, Z: 0}, {X: 10, Z: 5}, {X: -2, Z: 8}}}
	e := Element{Kind: KindWay, Way: w}
	min, max, ok := e.Bounds()
	if !ok {
		t.Fatal("expected bounds ok")
	}
	if min.X != -2 || min.Z != 0 || max.X != 10 || max.Z != 8 {
		t.Errorf("bounds = %+v .. %+v, want (-2,0)..(10,8)", min, max)
	}
}
