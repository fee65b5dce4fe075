package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/voxel"
)

func TestRenderTopDownWritesPixelPerBlock(t *testing.T) {
	w := voxel.NewWorld()
	w.SetBlock(0, 64, 0, blocks.GrassBlock)
	w.SetBlock(1, 64, 0, blocks.Stone)
	w.CompactSections()

	bbox := coords.NewRect(coords.XZPoint{X: 0, Z: 0}, coords.XZPoint{X: 1, Z: 1})
	dir := t.TempDir()
	path := filepath.Join(dir, "preview.png")

	if err := RenderTopDown(w, bbox, path); err != nil {
		t.Fatalf("RenderTopDown: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open preview: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("expected a 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	want := palette["grass_block"]
	if r>>8 != uint32(want.R) || g>>8 != uint32(want.G) || b>>8 != uint32(want.B) {
		t.Errorf("pixel (0,0) = (%d,%d,%d), want grass_block color %+v", r>>8, g>>8, b>>8, want)
	}
}

func TestRenderTopDownBlankColumnIsWhite(t *testing.T) {
	w := voxel.NewWorld()
	bbox := coords.NewRect(coords.XZPoint{X: 0, Z: 0}, coords.XZPoint{X: 3, Z: 3})
	dir := t.TempDir()
	path := filepath.Join(dir, "preview.png")

	if err := RenderTopDown(w, bbox, path); err != nil {
		t.Fatalf("RenderTopDown: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open preview: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}

	r, g, b, _ := img.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("blank column should render white, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestRenderTopDownTooLarge(t *testing.T) {
	w := voxel.NewWorld()
	bbox := coords.NewRect(coords.XZPoint{X: 0, Z: 0}, coords.XZPoint{X: 5000, Z: 5000})
	dir := t.TempDir()
	path := filepath.Join(dir, "preview.png")

	err := RenderTopDown(w, bbox, path)
	if err != ErrTooLarge {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("expected no file to be written when bbox exceeds MaxPreviewBlocks")
	}
}

func TestFallbackColorSubstringMatch(t *testing.T) {
	cases := map[string][3]uint8{
		"polished_andesite": {128, 128, 128},
		"red_sandstone": {219, 211, 160},
		"mossy_cobblestone": {128, 128, 128},
	}
	for name, want := range cases {
		got := fallbackColor(name)
		if got.R != want[0] || got.G != want[1] || got.B != want[2] {
			t.Errorf("fallbackColor(%q) = %+v, want rgb %v", name, got, want)
		}
	}
}
