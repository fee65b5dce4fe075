package coords

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(XZPoint{0, 0}, XZPoint{10, 10})
	if !r.Contains(XZPoint{5, 5}) {
		t.Error("expected (5,5) inside rect")
	}
	if r.Contains(XZPoint{11, 5}) {
		t.Error("expected (11,5) outside rect")
	}
	if r.ValidBlockCount() != 100 {
		t.Errorf("ValidBlockCount() = %d, want 100", r.ValidBlockCount())
	}
}

func TestPolyRejectsDegenerate(t *testing.T) {
	_, err := NewPoly([]XZPoint{{0, 0}, {1, 0}})
	if err == nil {
		t.Error("expected error for <3 points")
	}
	_, err = NewPoly([]XZPoint{{0, 0}, {1, 0}, {2, 0}})
	if err == nil {
		t.Error("expected error for zero-area (collinear) polygon")
	}
}

func TestPolySquareContains(t *testing.T) {
	poly, err := NewPoly([]XZPoint{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}
	if !poly.Contains(XZPoint{5, 5}) {
		t.Error("expected (5,5) inside polygon square")
	}
	if poly.Contains(XZPoint{20, 20}) {
		t.Error("expected (20,20) outside polygon square")
	}
	if poly.ValidBlockCount() == 0 {
		t.Error("expected nonzero valid block count")
	}
}

func TestPolyRejectsSelfIntersecting(t *testing.T) {
	// A bowtie/hourglass shape.
	_, err := NewPoly([]XZPoint{{0, 0}, {10, 10}, {10, 0}, {0, 10}})
	if err == nil {
		t.Error("expected error for self-intersecting polygon")
	}
}

func TestClipPolygonToRect(t *testing.T) {
	rect := NewRect(XZPoint{0, 0}, XZPoint{10, 10})
	subject := []XZPoint{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}}

	clipped := ClipPolygonToRect(subject, rect)
	if len(clipped) < 4 {
		t.Fatalf("expected a clipped quad, got %d points: %v", len(clipped), clipped)
	}
	for _, p := range clipped {
		if p.X < 0 || p.X > 10 || p.Z < 0 || p.Z > 10 {
			t.Errorf("clipped point %+v outside rect", p)
		}
	}
}

func TestClipPolygonFullyOutside(t *testing.T) {
	rect := NewRect(XZPoint{0, 0}, XZPoint{10, 10})
	subject := []XZPoint{{100, 100}, {110, 100}, {110, 110}, {100, 110}}
	clipped := ClipPolygonToRect(subject, rect)
	if len(clipped) != 0 {
		t.Errorf("expected empty clip result, got %v", clipped)
	}
}
