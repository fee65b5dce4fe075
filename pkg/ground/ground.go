// Package ground implements the lazy terrain-Y lookup described in
// : a thin wrapper over an elevation.Grid (when terrain is
// enabled) or a fixed constant (when it isn't), with bounds clamping.
package ground

import "github.com/arnis-go/arnis/pkg/coords"

// Ground answers "what is the terrain Y at this (x,z)?" for every other
// component (processors, UrbanGround, writers' base-chunk fallback).
type Ground struct {
	enabled bool
	groundLevel int32
	heights [][]int32 // [z][x], only used when enabled
	width int
	height int
}

// NewFlat returns a Ground with elevation disabled: every point reports
// groundLevel.
func NewFlat(groundLevel int32) *Ground {
	return &Ground{groundLevel: groundLevel}
}

// NewFromGrid returns a Ground backed by a decoded elevation grid.
func NewFromGrid(heights [][]int32, width, height int, groundLevel int32) *Ground {
	return &Ground{
		enabled: true,
		groundLevel: groundLevel,
		heights: heights,
		width: width,
		height: height,
	}
}

// Level returns the terrain Y at p, clamping into the grid bounds when
// elevation is enabled ("level(XZPoint) -> i32").
func (g *Ground) Level(p coords.XZPoint) int32 {
	if !g.enabled {
		return g.groundLevel
	}
	x := int(p.X)
	z := int(p.Z)
	if x < 0 {
		x = 0
	}
	if x >= g.width {
		x = g.width - 1
	}
	if z < 0 {
		z = 0
	}
	if z >= g.height {
		z = g.height - 1
	}
	return g.heights[z][x]
}

// MinLevel folds Level over points, returning the minimum.
func (g *Ground) MinLevel(points []coords.XZPoint) int32 {
	if len(points) == 0 {
		return g.groundLevel
	}
	min := g.Level(points[0])
	for _, p := range points[1:] {
		if l := g.Level(p); l < min {
			min = l
		}
	}
	return min
}

// MaxLevel folds Level over points, returning the maximum.
func (g *Ground) MaxLevel(points []coords.XZPoint) int32 {
	if len(points) == 0 {
		return g.groundLevel
	}
	max := g.Level(points[0])
	for _, p := range points[1:] {
		if l := g.Level(p); l > max {
			max = l
		}
	}
	return max
}

// Enabled reports whether this Ground is backed by real elevation data.
func (g *Ground) Enabled() bool { return g.enabled }
