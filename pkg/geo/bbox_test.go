package geo

import "testing"

func TestParseLLBBoxCommaAndSpace(t *testing.T) {
	comma, err := ParseLLBBox("9.927928,54.627053,9.937563,54.634902")
	if err != nil {
		t.Fatalf("comma parse failed: %v", err)
	}
	space, err := ParseLLBBox("9.927928 54.627053 9.937563 54.634902")
	if err != nil {
		t.Fatalf("space parse failed: %v", err)
	}
	if !comma.Equal(space) {
		t.Errorf("comma and space forms parsed to different bboxes: %+v vs %+v", comma, space)
	}
}

func TestParseLLBBoxErrors(t *testing.T) {
	tests := []string{
		"",
		"1,2,3",
		"1,2,3,4,5",
		"abc,2,3,4",
		"10,10,10,10", // empty bbox: min == max
		"50,10,10,20", // min.lat > max.lat
	}
	for _, s := range tests {
		if _, err := ParseLLBBox(s); err == nil {
			t.Errorf("ParseLLBBox(%q) expected error, got none", s)
		}
	}
}

func TestNewLLPointRange(t *testing.T) {
	if _, err := NewLLPoint(91, 0); err == nil {
		t.Error("expected error for lat > 90")
	}
	if _, err := NewLLPoint(0, 181); err == nil {
		t.Error("expected error for lng > 180")
	}
	if _, err := NewLLPoint(-90, -180); err != nil {
		t.Errorf("unexpected error for boundary values: %v", err)
	}
}

func TestCrossesAntimeridian(t *testing.T) {
	b, err := NewLLBBox(LLPoint{Lat: 0, Lng: 170}, LLPoint{Lat: 10, Lng: 179})
	if err != nil {
		t.Fatal(err)
	}
	if b.CrossesAntimeridian() {
		t.Error("normal bbox should not cross antimeridian")
	}
}
