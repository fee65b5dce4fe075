// Package render draws a top-down, one-pixel-per-block PNG preview of a
// finished world: the topmost non-transparent block at every (x,z)
// column, colored from a name-keyed palette with a substring-matched
// fallback for anything the palette doesn't name explicitly.
//
// Grounded on original_source/src/map_renderer.rs. That renderer re-opens
// the written .mca files and walks fastanvil's section NBT; this version
// instead walks the already-in-memory voxel.World directly (the
// scheduler's Writer already holds it before flushing), which is both
// simpler and avoids re-parsing the very NBT this module just wrote.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/voxel"
	"golang.org/x/image/draw"
)

// MaxPreviewBlocks caps the rendered area to avoid multi-gigabyte PNGs
// for large runs (original_source/src/map_renderer.rs's background
// render-size ceiling).
const MaxPreviewBlocks = 4096 * 4096

// ThumbnailMaxDim bounds the longer side of the downscaled thumbnail
// RenderTopDown writes alongside the full-resolution PNG.
const ThumbnailMaxDim = 512

// ErrInvalidBounds is returned when bbox describes an empty or inverted
// area.
var ErrInvalidBounds = errors.New("render: invalid bounds")

// ErrTooLarge is returned when bbox spans more than MaxPreviewBlocks
// columns, matching map_renderer.rs's background render-size ceiling.
var ErrTooLarge = errors.New("render: area exceeds MaxPreviewBlocks")

// transparentBlocks are skipped when searching for the topmost visible
// block at a column, matching map_renderer.rs's is_transparent_block.
var transparentBlocks = map[string]bool{
	"air": true, "cave_air": true, "void_air": true,
	"glass": true, "glass_pane": true, "tinted_glass": true,
	"white_stained_glass": true, "gray_stained_glass": true,
	"light_gray_stained_glass": true, "brown_stained_glass": true,
	"barrier": true, "light": true,
	"short_grass": true, "tall_grass": true, "dead_bush": true,
	"poppy": true, "dandelion": true, "blue_orchid": true, "azure_bluet": true,
	"iron_bars": true, "ladder": true, "scaffolding": true,
	"rail": true, "powered_rail": true, "detector_rail": true, "activator_rail": true,
}

// palette names a representative subset of map_renderer.rs's
// get_block_colors table; anything missing falls through to
// fallbackColor's substring matching.
var palette = map[string]color.RGBA{
	"grass_block": {86, 125, 70, 255}, "short_grass": {86, 125, 70, 255},
	"dirt": {139, 90, 43, 255}, "coarse_dirt": {119, 85, 59, 255},
	"podzol": {91, 63, 24, 255}, "mud": {60, 57, 61, 255},
	"stone": {128, 128, 128, 255}, "granite": {149, 108, 91, 255},
	"diorite": {189, 188, 189, 255}, "andesite": {136, 136, 137, 255},
	"deepslate": {72, 72, 73, 255}, "cobblestone": {128, 128, 128, 255},
	"sand": {219, 211, 160, 255}, "red_sand": {190, 102, 33, 255},
	"gravel": {131, 127, 126, 255}, "clay": {160, 166, 179, 255},
	"bedrock": {85, 85, 85, 255},
	"water": {59, 86, 165, 255}, "ice": {145, 183, 253, 255},
	"snow": {249, 254, 254, 255}, "snow_block": {249, 254, 254, 255},
	"oak_log": {109, 85, 50, 255}, "oak_planks": {162, 130, 78, 255},
	"spruce_log": {58, 37, 16, 255}, "spruce_planks": {115, 85, 49, 255},
	"oak_leaves": {55, 95, 36, 255}, "spruce_leaves": {61, 100, 57, 255},
	"white_wool": {234, 236, 237, 255}, "red_wool": {161, 39, 34, 255},
	"brick": {150, 97, 83, 255}, "bricks": {150, 97, 83, 255},
	"farmland": {92, 60, 34, 255},
	"glass_pane": {220, 240, 250, 180},
}

// NewCanvas allocates a white canvas sized exactly to bbox (one pixel
// per block, matching map_renderer.rs's 1:1 scale). Returns ErrTooLarge
// if bbox spans more than MaxPreviewBlocks columns, or ErrInvalidBounds
// if bbox is empty or inverted.
func NewCanvas(bbox coords.XZBBox) (*image.RGBA, error) {
	width := int(bbox.Max().X-bbox.Min().X) + 1
	height := int(bbox.Max().Z-bbox.Min().Z) + 1
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBounds
	}
	if width*height > MaxPreviewBlocks {
		return nil, ErrTooLarge
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, white)
		}
	}
	return img, nil
}

// Accumulate draws every realized chunk in world onto img, an existing
// canvas from NewCanvas. Used by callers (such as pkg/pipeline) that
// render incrementally as the region scheduler flushes units, since each
// unit's voxel.World is released right after its Writer call returns.
func Accumulate(img *image.RGBA, world *voxel.World, bbox coords.XZBBox) {
	for _, region := range world.Regions() {
		for _, chunk := range region.Chunks() {
			renderChunk(img, chunk, bbox)
		}
	}
}

// RenderTopDown draws every realized chunk in world to a PNG at
// outputPath, sized exactly to bbox. Columns with no written block are
// left white, the background color map_renderer.rs initializes its
// canvas with. Returns ErrTooLarge without writing anything if bbox
// spans more than MaxPreviewBlocks columns.
func RenderTopDown(world *voxel.World, bbox coords.XZBBox, outputPath string) error {
	img, err := NewCanvas(bbox)
	if err != nil {
		return err
	}
	Accumulate(img, world, bbox)
	return Encode(img, outputPath)
}

// Encode writes img to outputPath as a PNG, plus a "*-thumb.png" alongside
// it: downscaled when img exceeds ThumbnailMaxDim on either side, an
// unscaled copy otherwise.
func Encode(img *image.RGBA, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}

	return writeThumbnail(img, thumbnailPath(outputPath))
}

// thumbnailPath derives preview-thumb.png alongside outputPath, e.g.
// preview.png -> preview-thumb.png.
func thumbnailPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	base := strings.TrimSuffix(outputPath, ext)
	return base + "-thumb" + ext
}

// writeThumbnail downscales src to fit within ThumbnailMaxDim on its
// longer side using golang.org/x/image/draw's bilinear scaler, matching
// map_renderer.rs's separate low-resolution overview output.
func writeThumbnail(src *image.RGBA, outputPath string) error {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= ThumbnailMaxDim && h <= ThumbnailMaxDim {
		return copyPNG(src, outputPath)
	}

	scale := float64(ThumbnailMaxDim) / float64(w)
	if hScale := float64(ThumbnailMaxDim) / float64(h); hScale < scale {
		scale = hScale
	}
	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return copyPNG(dst, outputPath)
}

func copyPNG(img image.Image, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func renderChunk(img *image.RGBA, chunk *voxel.Chunk, bbox coords.XZBBox) {
	chunkBaseX := chunk.ChunkX * 16
	chunkBaseZ := chunk.ChunkZ * 16

	sections := chunk.SectionIndices()
	sort.Slice(sections, func(i, j int) bool { return sections[i] > sections[j] })
	if len(sections) == 0 {
		return
	}

	for lz := 0; lz < 16; lz++ {
		worldZ := chunkBaseZ + int32(lz)
		if worldZ < bbox.Min().Z || worldZ > bbox.Max().Z {
			continue
		}
		for lx := 0; lx < 16; lx++ {
			worldX := chunkBaseX + int32(lx)
			if worldX < bbox.Min().X || worldX > bbox.Max().X {
				continue
			}
			b, ok := topBlock(chunk, sections, lx, lz)
			if !ok {
				continue
			}
			px := int(worldX - bbox.Min().X)
			py := int(worldZ - bbox.Min().Z)
			img.SetRGBA(px, py, colorFor(b))
		}
	}
}

func topBlock(chunk *voxel.Chunk, sections []int8, lx, lz int) (blocks.Block, bool) {
	for _, sy := range sections {
		sec := chunk.Section(sy)
		if sec == nil {
			continue
		}
		for ly := 15; ly >= 0; ly-- {
			b := sec.Get(lx, ly, lz)
			if b == blocks.Air {
				continue
			}
			if transparentBlocks[blocks.ShortName(b)] {
				continue
			}
			return b, true
		}
	}
	return blocks.Air, false
}

func colorFor(b blocks.Block) color.RGBA {
	name := blocks.ShortName(b)
	if c, ok := palette[name]; ok {
		return c
	}
	return fallbackColor(name)
}

// fallbackColor guesses a color from substrings in the block's name,
// matching map_renderer.rs's get_fallback_color chain.
func fallbackColor(name string) color.RGBA {
	switch {
		case strings.Contains(name, "sand"):
		return color.RGBA{219, 211, 160, 255}
		case strings.Contains(name, "stone") || strings.Contains(name, "cobble") || strings.Contains(name, "andesite"):
		return color.RGBA{128, 128, 128, 255}
		case strings.Contains(name, "dirt") || strings.Contains(name, "mud"):
		return color.RGBA{139, 90, 43, 255}
		case strings.Contains(name, "grass"):
		return color.RGBA{86, 125, 70, 255}
		case strings.Contains(name, "water"):
		return color.RGBA{59, 86, 165, 255}
		case strings.Contains(name, "log") || strings.Contains(name, "wood"):
		return color.RGBA{101, 76, 48, 255}
		case strings.Contains(name, "leaves"):
		return color.RGBA{55, 95, 36, 255}
		case strings.Contains(name, "planks"):
		return color.RGBA{162, 130, 78, 255}
		case strings.Contains(name, "brick"):
		return color.RGBA{150, 97, 83, 255}
		case strings.Contains(name, "concrete"):
		return color.RGBA{128, 128, 128, 255}
		case strings.Contains(name, "wool") || strings.Contains(name, "carpet"):
		return color.RGBA{220, 220, 220, 255}
		case strings.Contains(name, "terracotta"):
		return color.RGBA{152, 94, 67, 255}
		default:
		return color.RGBA{150, 150, 150, 255}
	}
}
