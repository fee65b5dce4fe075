package processors

import (
	"sort"

	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/voxel"
)

// Process dispatches element to the processor matching its category
//. Unknown categories are silently skipped: an element
// that carries no tag any processor recognizes contributes no blocks.
func Process(w *voxel.World, e osm.Element, ctx *Context) {
	switch osm.Classify(e.Tags()) {
		case osm.CategoryBuilding:
		processBuilding(w, e, ctx)
		case osm.CategoryEntrance, osm.CategoryDoor:
		processDoor(w, e, ctx)
		case osm.CategoryHighway:
		processHighway(w, e, ctx)
		case osm.CategoryRailway:
		processRailway(w, e, ctx)
		case osm.CategoryWaterway:
		processWaterway(w, e, ctx)
		case osm.CategoryWater:
		processWaterArea(w, e, ctx)
		case osm.CategoryNatural:
		processNatural(w, e, ctx)
		case osm.CategoryBarrier:
		processBarrier(w, e, ctx)
		case osm.CategoryPower:
		processPower(w, e, ctx)
		case osm.CategoryLanduse:
		processLanduse(w, e, ctx)
		case osm.CategoryBoundary:
		processBoundary(w, e, ctx)
		case osm.CategoryManMade:
		processManMade(w, e, ctx)
		case osm.CategoryHistoric:
		processHistoric(w, e, ctx)
		case osm.CategoryLeisure:
		processLeisure(w, e, ctx)
		case osm.CategoryAmenity:
		processAmenity(w, e, ctx)
		case osm.CategoryAdvertising:
		processAdvertising(w, e, ctx)
		case osm.CategoryTourism:
		processTourism(w, e, ctx)
	}
}

// Sorted orders elements for deterministic sequential processing within a
// single unit: priority first, element id second.
func Sorted(elements []osm.Element) []osm.Element {
	out := make([]osm.Element, len(elements))
	copy(out, elements)
	sort.SliceStable(out, func(i, j int) bool { return osm.Less(out[i], out[j]) })
	return out
}
