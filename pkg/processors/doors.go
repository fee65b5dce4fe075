package processors

import (
	"github.com/arnis-go/arnis/pkg/blocks"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// processDoor places a single door block at an `entrance` or `door` node,
// the lowest-priority processor since it decorates whatever another
// processor placed on the wall below it (priority table
// "...>building>entrance").
func processDoor(w *voxel.World, e osm.Element, ctx *Context) {
	if e.Kind != osm.KindNode {
		return
	}
	p := e.Node.Point()
	base := ctx.level(p)
	w.SetBlockWithProperties(p.X, base+1, p.Z, blocks.BlockWithProperties{
			Block: blocks.OakDoor,
			Properties: blocks.Properties{"half": "lower", "facing": "north", "open": "false"},
	})
}
