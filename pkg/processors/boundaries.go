package processors

import (
	"strconv"

	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// processBoundary handles administrative boundaries (admin_level>=8) and
// similar urban-designating tags: the polygon is flood-filled, but only
// painted smooth-stone in cells that pass the urban-density grid check,
// leaving rural pockets inside the polygon untouched.
func processBoundary(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindWay || !isUrbanBoundary(e.Way.Tags) {
		return
	}
	for _, p := range ctx.fillInterior(e.Way) {
		if !ctx.IsUrban(p) {
			continue
		}
		base := ctx.level(p)
		w.SetBlock(p.X, base, p.Z, blocks.SmoothStone)
	}
}

func isUrbanBoundary(tags map[string]string) bool {
	if lvl, ok := tags["admin_level"]; ok {
		if n, err := strconv.Atoi(lvl); err == nil && n >= 8 {
			return true
		}
	}
	return tags["boundary"] == "low_emission_zone"
}
