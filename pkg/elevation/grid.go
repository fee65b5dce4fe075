// Package elevation decodes Terrarium-format PNG tiles into a Minecraft-Y
// height grid: pixel decode, outlier clamping, Gaussian smoothing, and
// adaptive scaling into [ground_level, 319]. Fetching the
// tiles themselves (HTTP + disk cache) is an external collaborator's job;
// this package only turns already-decoded RGB pixels into a usable height
// grid.
//
// Grounded on original_source/src/elevation_data.rs.
package elevation

import (
	"image"
	"math"
	"sort"
)

// BaseHeightScale and the safety margin mirror the reference's constants
// for converting real-world elevation deltas into block-height deltas.
const (
	baseHeightScale = 0.7
	safetyMargin = 0.9
	terrariumOffset = 32768.0
)

// Grid is a decoded, processed elevation surface in Minecraft Y
// coordinates, indexed [z][x].
type Grid struct {
	Heights [][]int32
	Width int
	Height int
}

// DecodeTerrariumPixel decodes one Terrarium-format RGB pixel into meters:
// R*256 + G + B/256 - 32768.
func DecodeTerrariumPixel(r, g, b uint8) float64 {
	return float64(r)*256 + float64(g) + float64(b)/256 - terrariumOffset
}

// BuildGrid assembles a raw meters-height grid of width*height from a set
// of decoded Terrarium tiles already mosaicked into img by the caller
// (tile fetching/mosaicking is the external collaborator's responsibility;
// this function only requires the final RGB image spanning the bbox at the
// chosen resolution).
func BuildGrid(img image.Image, width, height int) [][]float64 {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	grid := make([][]float64, height)
	for z := 0; z < height; z++ {
		grid[z] = make([]float64, width)
		sy := bounds.Min.Y + z*srcH/height
		for x := 0; x < width; x++ {
			sx := bounds.Min.X + x*srcW/width
			r, g, b, _ := img.At(sx, sy).RGBA()
			grid[z][x] = DecodeTerrariumPixel(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return grid
}

// Process runs the full pipeline from a raw meters-height grid to a
// Minecraft-Y Grid: outlier clamp, Gaussian blur, adaptive scale into
// [groundLevel, 319].
func Process(raw [][]float64, scale float64, groundLevel int32) *Grid {
	height := len(raw)
	width := 0
	if height > 0 {
		width = len(raw[0])
	}

	filterOutliers(raw)
	sigma := blurSigma(width, height)
	blurred := gaussianBlur(raw, sigma)

	minH, maxH := math.MaxFloat64, -math.MaxFloat64
	for _, row := range blurred {
		for _, h := range row {
			if h < minH {
				minH = h
			}
			if h > maxH {
				maxH = h
			}
		}
	}
	heightRange := maxH - minH
	if heightRange == 0 {
		heightRange = 1
	}

	heightScale := baseHeightScale * math.Sqrt(scale)
	scaledRange := heightRange * heightScale

	availableYRange := float64(maxY - groundLevel)
	maxAllowedRange := availableYRange * safetyMargin
	if scaledRange > maxAllowedRange {
		adjustment := maxAllowedRange / scaledRange
		heightScale *= adjustment
		scaledRange = heightRange * heightScale
	}

	heights := make([][]int32, height)
	for z, row := range blurred {
		heights[z] = make([]int32, width)
		for x, h := range row {
			relative := (h - minH) / heightRange
			scaled := relative * scaledRange
			y := int32(math.Round(float64(groundLevel) + scaled))
			if y < groundLevel {
				y = groundLevel
			}
			if y > maxY {
				y = maxY
			}
			heights[z][x] = y
		}
	}

	return &Grid{Heights: heights, Width: width, Height: height}
}

const maxY = 319

// blurSigma reproduces the reference's piecewise linear/logarithmic
// interpolation between two reference (grid size, sigma) points, so small
// bboxes get heavily smoothed terrain and large ones keep more detail.
func blurSigma(width, height int) float64 {
	const (
		smallGridRef = 100.0
		smallSigma = 15.0
		largeGridRef = 1000.0
		largeSigma = 7.0
	)
	gridSize := math.Min(float64(width), float64(height))
	if gridSize < 1 {
		gridSize = 1
	}
	if gridSize <= smallGridRef {
		return smallSigma * (gridSize / smallGridRef)
	}
	t := (math.Log(gridSize) - math.Log(smallGridRef)) / (math.Log(largeGridRef) - math.Log(smallGridRef))
	return smallSigma + t*(largeSigma-smallSigma)
}

// filterOutliers replaces values outside the 1st-99th percentile with the
// nearer percentile bound. The reference implementation describes this as
// interpolating outliers from their neighbors, but its actual code clamps
// to the percentile bound rather than interpolating neighbor-by-neighbor;
// this follows the code, not the description.
func filterOutliers(grid [][]float64) {
	var all []float64
	for _, row := range grid {
		all = append(all, row...)
	}
	if len(all) == 0 {
		return
	}
	sorted := append([]float64(nil), all...)
	sort.Float64s(sorted)
	lo := percentile(sorted, 0.01)
	hi := percentile(sorted, 0.99)

	for _, row := range grid {
		for x, v := range row {
			if v < lo {
				row[x] = lo
			} else if v > hi {
				row[x] = hi
			}
		}
	}
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

// gaussianBlur applies a separable 2-D Gaussian blur (horizontal pass
// then vertical pass), matching the reference's two-pass kernel
// convolution.
func gaussianBlur(heights [][]float64, sigma float64) [][]float64 {
	if sigma <= 0 || len(heights) == 0 {
		return heights
	}
	kernelSize := int(math.Ceil(sigma*3))*2 + 1
	kernel := gaussianKernel(kernelSize, sigma)
	radius := kernelSize / 2

	h := len(heights)
	w := len(heights[0])

	horiz := make([][]float64, h)
	for y := 0; y < h; y++ {
		horiz[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			var sum, wsum float64
			for k := -radius; k <= radius; k++ {
				sx := x + k
				if sx < 0 || sx >= w {
					continue
				}
				wk := kernel[k+radius]
				sum += heights[y][sx] * wk
				wsum += wk
			}
			horiz[y][x] = sum / wsum
		}
	}

	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var sum, wsum float64
			for k := -radius; k <= radius; k++ {
				sy := y + k
				if sy < 0 || sy >= h {
					continue
				}
				wk := kernel[k+radius]
				sum += horiz[sy][x] * wk
				wsum += wk
			}
			out[y][x] = sum / wsum
		}
	}
	return out
}

func gaussianKernel(size int, sigma float64) []float64 {
	kernel := make([]float64, size)
	center := size / 2
	var total float64
	for i := range kernel {
		x := float64(i - center)
		v := math.Exp(-x * x / (2 * sigma * sigma))
		kernel[i] = v
		total += v
	}
	for i := range kernel {
		kernel[i] /= total
	}
	return kernel
}
