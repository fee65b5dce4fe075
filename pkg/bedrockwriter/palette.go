package bedrockwriter

import (
	"fmt"
	"sort"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// bedrockBitsPerBlock returns the narrowest of Bedrock's fixed bit widths
// {1,2,3,4,5,6,8,16} that can index paletteSize distinct entries, per the
// subchunk v9 palette_type encoding.
func bedrockBitsPerBlock(paletteSize int) int {
	for _, bits := range []int{1, 2, 3, 4, 5, 6, 8, 16} {
		if (1 << uint(bits)) >= paletteSize {
			return bits
		}
	}
	return 16
}

// effectiveProperties mirrors javawriter's rule: nil means "use the
// catalog's default compound for this block".
func effectiveProperties(b blocks.Block, p blocks.Properties) blocks.Properties {
	if p != nil {
		return p
	}
	return blocks.Defaults(b)
}

// bedrockPaletteBuilder assigns dense indices to distinct translated
// bedrockBlock entries, always reserving index 0 for air so empty cells
// never need an explicit lookup (subchunk v9's implicit air convention).
type bedrockPaletteBuilder struct {
	order []bedrockBlock
	index map[string]int
}

func newBedrockPaletteBuilder() *bedrockPaletteBuilder {
	pb := &bedrockPaletteBuilder{index: make(map[string]int)}
	pb.order = append(pb.order, simple("air"))
	pb.index[bedrockPaletteKey(simple("air"))] = 0
	return pb
}

func bedrockPaletteKey(bb bedrockBlock) string {
	keys := make([]string, 0, len(bb.states))
	for k := range bb.states {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	key := bb.name + "|"
	for _, k := range keys {
		v := bb.states[k]
		switch v.kind {
			case 's':
			key += fmt.Sprintf("%s=s:%s;", k, v.s)
			case 'b':
			key += fmt.Sprintf("%s=b:%t;", k, v.b)
			case 'i':
			key += fmt.Sprintf("%s=i:%d;", k, v.i)
		}
	}
	return key
}

func (pb *bedrockPaletteBuilder) indexOf(b blocks.Block, p blocks.Properties) int {
	if b == blocks.Air {
		return 0
	}
	bb := toBedrockBlock(b, effectiveProperties(b, p))
	key := bedrockPaletteKey(bb)
	if i, ok := pb.index[key]; ok {
		return i
	}
	i := len(pb.order)
	pb.index[key] = i
	pb.order = append(pb.order, bb)
	return i
}

// encodeBedrockSection builds the dense 4096-entry XZY-ordered index array
// (bedrock_idx = x*256 + z*16 + y, the transpose of Java's y*256+z*16+x)
// and the translated palette for one section, per 's subchunk
// block-storage layout.
func encodeBedrockSection(sec *voxel.Section) (palette []bedrockBlock, indices []int) {
	pb := newBedrockPaletteBuilder()
	indices = make([]int, voxel.SectionBlocks)

	if b, ok := sec.IsUniform(); ok {
		idx := pb.indexOf(b, nil)
		for i := range indices {
			indices[i] = idx
		}
		return pb.order, indices
	}

	for lx := 0; lx < 16; lx++ {
		for lz := 0; lz < 16; lz++ {
			for ly := 0; ly < 16; ly++ {
				b := sec.Get(lx, ly, lz)
				props := sec.Properties(lx, ly, lz)
				bedrockIdx := lx*256 + lz*16 + ly
				indices[bedrockIdx] = pb.indexOf(b, props)
			}
		}
	}
	return pb.order, indices
}
