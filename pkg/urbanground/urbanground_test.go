package urbanground

import (
	"testing"

	"github.com/arnis-go/arnis/pkg/coords"
)

func TestNoBuildingsNoUrban(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{1000, 1000})
	d := New(bbox, nil)
	if cells := d.Compute(); len(cells) != 0 {
		t.Errorf("expected no urban cells with zero buildings, got %d", len(cells))
	}
}

func TestDenseGridFormsOneCluster(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{1500, 1500})
	d := New(bbox, nil)
	// A 9x9 grid of centroids spaced 150 blocks apart (scenario 6).
	for i := int32(0); i < 9; i++ {
		for j := int32(0); j < 9; j++ {
			d.AddCentroid(coords.XZPoint{X: i * 150, Z: j * 150})
		}
	}
	cells := d.Compute()
	if len(cells) == 0 {
		t.Fatal("expected a surviving urban cluster")
	}

	filled := FillCells(cells, bbox)
	if len(filled) == 0 {
		t.Fatal("expected nonempty fill coverage")
	}
	for _, p := range filled {
		if !bbox.Contains(p) {
			t.Errorf("filled point %+v outside bbox", p)
		}
	}
}

func TestSparseBuildingsDontClusterAlone(t *testing.T) {
	bbox := coords.NewRect(coords.XZPoint{0, 0}, coords.XZPoint{2000, 2000})
	d := New(bbox, nil)
	// Two isolated single buildings far apart: below min_buildings_for_cluster,
	// and far enough apart that expansion can't bridge them.
	d.AddCentroid(coords.XZPoint{X: 0, Z: 0})
	d.AddCentroid(coords.XZPoint{X: 1900, Z: 1900})
	cells := d.Compute()
	if len(cells) != 0 {
		t.Errorf("two isolated single-building cells should not survive clustering, got %d cells", len(cells))
	}
}

func TestAdaptiveExpansionCapped(t *testing.T) {
	if got := adaptiveExpansion(1, 100, 1); got > maxExpansionCells {
		t.Errorf("expansion %d exceeds cap %d", got, maxExpansionCells)
	}
}
