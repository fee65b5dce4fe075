package coords

import (
	"math"
	"testing"

	"github.com/arnis-go/arnis/pkg/geo"
)

func mustBBox(t *testing.T, s string) geo.LLBBox {
	t.Helper()
	b, err := geo.ParseLLBBox(s)
	if err != nil {
		t.Fatalf("ParseLLBBox(%q): %v", s, err)
	}
	return b
}

func TestNewTransformInvalidScale(t *testing.T) {
	bbox := mustBBox(t, "54.6270,9.9279,54.6349,9.9375")
	if _, _, err := NewTransform(bbox, 0, 0); err == nil {
		t.Error("expected ErrInvalidScale for scale=0")
	}
	if _, _, err := NewTransform(bbox, -1, 0); err == nil {
		t.Error("expected ErrInvalidScale for negative scale")
	}
}

func TestTransformProjectsCornersToRectBounds(t *testing.T) {
	bbox := mustBBox(t, "54.6270,9.9279,54.6349,9.9375")
	tr, rect, err := NewTransform(bbox, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}

	// Top-left geographic corner (min lng, max lat) projects near (0,0).
	topLeft := tr.Project(geo.LLPoint{Lat: bbox.Max.Lat, Lng: bbox.Min.Lng})
	if topLeft.X < -1 || topLeft.X > 1 || topLeft.Z < -1 || topLeft.Z > 1 {
		t.Errorf("top-left corner projected to %+v, want near origin", topLeft)
	}

	// Bottom-right geographic corner (max lng, min lat) projects near (Lx,Lz).
	bottomRight := tr.Project(geo.LLPoint{Lat: bbox.Min.Lat, Lng: bbox.Max.Lng})
	if abs32(bottomRight.X-rect.Max().X) > 1 || abs32(bottomRight.Z-rect.Max().Z) > 1 {
		t.Errorf("bottom-right corner projected to %+v, want near %+v", bottomRight, rect.Max())
	}
}

func TestRotationComposition(t *testing.T) {
	p := XZPoint{X: 100, Z: 37}
	combined := RotatePoint(p, 95)
	sequential := RotatePoint(RotatePoint(p, 40), 55)

	if abs32(combined.X-sequential.X) > 1 || abs32(combined.Z-sequential.Z) > 1 {
		t.Errorf("rotate(40)+rotate(55) = %+v, rotate(95) = %+v, want equal within 1 block", sequential, combined)
	}
}

func TestRotatePointIdentity(t *testing.T) {
	p := XZPoint{X: 42, Z: -13}
	got := RotatePoint(p, 0)
	if got != p {
		t.Errorf("rotate by 0 degrees changed point: %+v -> %+v", p, got)
	}
	got360 := RotatePoint(p, 360)
	if abs32(got360.X-p.X) > 1 || abs32(got360.Z-p.Z) > 1 {
		t.Errorf("rotate by 360 degrees should be ~identity, got %+v", got360)
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestExpandForRotationContainsOriginal(t *testing.T) {
	rect := NewRect(XZPoint{0, 0}, XZPoint{100, 100})
	expanded := ExpandForRotation(rect, 45)

	diag := math.Hypot(100, 100)
	if float64(expanded.Width()) < diag-2 {
		t.Errorf("expanded width %d too small for 45-degree rotation of a 100x100 rect (diag=%.1f)", expanded.Width(), diag)
	}
}

func TestExpandForRotationNoopAtZero(t *testing.T) {
	rect := NewRect(XZPoint{0, 0}, XZPoint{50, 80})
	expanded := ExpandForRotation(rect, 0)
	if expanded.Min() != rect.Min() || expanded.Max() != rect.Max() {
		t.Errorf("zero-degree rotation should be a no-op, got %+v", expanded)
	}
}

func TestNewTransformRotationExpandsBBox(t *testing.T) {
	bbox := mustBBox(t, "54.6270,9.9279,54.6349,9.9375")
	_, unrotated, err := NewTransform(bbox, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tr, rotated, err := NewTransform(bbox, 1.0, 45)
	if err != nil {
		t.Fatal(err)
	}

	if rotated.Width() <= unrotated.Width() || rotated.Height() <= unrotated.Height() {
		t.Fatalf("expected a 45-degree rotation to expand the bbox, got unrotated=%+v rotated=%+v", unrotated, rotated)
	}

	corners := []geo.LLPoint{
		{Lat: bbox.Max.Lat, Lng: bbox.Min.Lng},
		{Lat: bbox.Max.Lat, Lng: bbox.Max.Lng},
		{Lat: bbox.Min.Lat, Lng: bbox.Min.Lng},
		{Lat: bbox.Min.Lat, Lng: bbox.Max.Lng},
	}
	for _, c := range corners {
		p := tr.Project(c)
		if p.X < rotated.Min().X || p.X > rotated.Max().X || p.Z < rotated.Min().Z || p.Z > rotated.Max().Z {
			t.Errorf("projected corner %+v fell outside returned bbox %+v", p, rotated)
		}
	}
}
