package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// LLBBox is a geographic bounding box: Min is the south-west corner, Max
// the north-east corner. Min.Lat < Max.Lat and Min.Lng < Max.Lng always
// hold for a constructed LLBBox.
type LLBBox struct {
	Min LLPoint
	Max LLPoint
}

// NewLLBBox validates corner ordering and constructs a bounding box.
func NewLLBBox(min, max LLPoint) (LLBBox, error) {
	if min.Lat >= max.Lat || min.Lng >= max.Lng {
		return LLBBox{}, fmt.Errorf("%w: min (%v) must be strictly less than max (%v)", ErrInvalidBBox, min, max)
	}
	return LLBBox{Min: min, Max: max}, nil
}

// ParseLLBBox parses "min_lat,min_lng,max_lat,max_lng", accepting either
// commas or whitespace as the field separator (and a mix of both).
func ParseLLBBox(s string) (LLBBox, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 4 {
		return LLBBox{}, fmt.Errorf("%w: expected 4 fields, got %d in %q", ErrInvalidBBox, len(fields), s)
	}

	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return LLBBox{}, fmt.Errorf("%w: field %d (%q): %v", ErrInvalidBBox, i, f, err)
		}
		vals[i] = v
	}

	min, err := NewLLPoint(vals[0], vals[1])
	if err != nil {
		return LLBBox{}, err
	}
	max, err := NewLLPoint(vals[2], vals[3])
	if err != nil {
		return LLBBox{}, err
	}
	return NewLLBBox(min, max)
}

// CrossesAntimeridian reports whether the bbox straddles the 180° meridian.
// This case is out of scope; callers should reject it.
func (b LLBBox) CrossesAntimeridian() bool {
	return b.Min.Lng > b.Max.Lng
}

// MeanLat returns the mean latitude, used as the reference latitude for
// the east-west Haversine leg in CoordTransform.
func (b LLBBox) MeanLat() float64 {
	return (b.Min.Lat + b.Max.Lat) / 2
}

// Equal compares two bboxes for exact field equality (used by the
// bbox-parsing round-trip test).
func (b LLBBox) Equal(o LLBBox) bool {
	return b.Min == o.Min && b.Max == o.Max
}
