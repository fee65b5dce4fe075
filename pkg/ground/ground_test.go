package ground

import (
	"testing"

	"github.com/arnis-go/arnis/pkg/coords"
)

func TestFlatGroundConstant(t *testing.T) {
	g := NewFlat(64)
	if g.Level(coords.XZPoint{X: 100, Z: -200}) != 64 {
		t.Error("flat ground should return the fixed constant everywhere")
	}
	if g.Enabled() {
		t.Error("flat ground should report disabled")
	}
}

func TestGridGroundClamps(t *testing.T) {
	heights := [][]int32{
		{10, 20},
		{30, 40},
	}
	g := NewFromGrid(heights, 2, 2, 0)
	if g.Level(coords.XZPoint{X: 0, Z: 0}) != 10 {
		t.Error("expected (0,0) -> 10")
	}
	if g.Level(coords.XZPoint{X: 100, Z: 100}) != 40 {
		t.Error("expected out-of-range coords clamped to (1,1) -> 40")
	}
	if g.Level(coords.XZPoint{X: -5, Z: -5}) != 10 {
		t.Error("expected negative coords clamped to (0,0) -> 10")
	}
}

func TestMinMaxLevel(t *testing.T) {
	heights := [][]int32{{10, 20}, {30, 40}}
	g := NewFromGrid(heights, 2, 2, 0)
	pts := []coords.XZPoint{{X: 0, Z: 0}, {X: 1, Z: 1}}
	if g.MinLevel(pts) != 10 {
		t.Error("expected min 10")
	}
	if g.MaxLevel(pts) != 40 {
		t.Error("expected max 40")
	}
}
