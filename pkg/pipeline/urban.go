package pipeline

import (
	"github.com/aquilax/go-perlin"
	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/osm"
	"github.com/arnis-go/arnis/pkg/urbanground"
)

// computeUrbanCells feeds every building's outline centroid into a
// urbanground.Detector and returns the resulting urban-cell set, shared
// read-only across every scheduler unit ("UrbanGround runs
// once per run, not per unit"). noise smooths the cluster's expansion
// boundary into an organic edge rather than a square Chebyshev dilation.
func computeUrbanCells(bbox coords.XZBBox, elements []osm.Element, noise *perlin.Perlin) map[urbanground.CellKey]bool {
	det := urbanground.New(bbox, noise)
	for _, e := range elements {
		if e.Tags()["building"] == "" {
			continue
		}
		pts := buildingPoints(e)
		if len(pts) == 0 {
			continue
		}
		det.AddCentroid(centroid(pts))
	}
	return det.Compute()
}

func buildingPoints(e osm.Element) []coords.XZPoint {
	switch e.Kind {
		case osm.KindWay:
		return e.Way.Points()
		case osm.KindRelation:
		for _, m := range e.Relation.Members {
			if m.Role == osm.RoleOuter {
				return m.Way.Points()
			}
		}
	}
	return nil
}

func centroid(pts []coords.XZPoint) coords.XZPoint {
	var sx, sz int64
	for _, p := range pts {
		sx += int64(p.X)
		sz += int64(p.Z)
	}
	n := int64(len(pts))
	return coords.XZPoint{X: int32(sx / n), Z: int32(sz / n)}
}
