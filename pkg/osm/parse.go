package osm

import (
	"encoding/json"
	"fmt"

	"github.com/arnis-go/arnis/pkg/coords"
	"github.com/arnis-go/arnis/pkg/geo"
)

// rawElement mirrors one entry of an Overpass-style OSM JSON element array
// ("Input: OSM JSON"). All fields but Type and ID are optional.
type rawElement struct {
	Type string `json:"type"`
	ID uint64 `json:"id"`
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
	Nodes []uint64 `json:"nodes"`
	Members []rawMember `json:"members"`
	Tags map[string]string `json:"tags"`
}

type rawMember struct {
	Type string `json:"type"`
	Ref uint64 `json:"ref"`
	Role string `json:"role"`
}

type rawDocument struct {
	Elements []rawElement `json:"elements"`
}

// Parse decodes Overpass-style OSM JSON, projects every node through tr,
// discards nodes outside the XZBBox (clipping per invariant),
// and assembles ways and relations from the resulting node map. A way
// with no surviving nodes, or a relation with no surviving way members, is
// dropped, exactly as the
// reference parser's "if !nodes.is_empty()" gate does.
func Parse(jsonData []byte, tr *coords.Transform, bbox coords.XZBBox) ([]Element, error) {
	var doc rawDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("osm: decode json: %w", err)
	}

	nodeCoords := make(map[uint64]coords.XZPoint, len(doc.Elements))
	nodeTags := make(map[uint64]map[string]string)

	var elements []Element

	// First pass: project every node; keep those with tags as standalone
	// node elements ("every node lies within the XZBBox").
	for _, re := range doc.Elements {
		if re.Type != "node" || re.Lat == nil || re.Lon == nil {
			continue
		}
		pt, err := geo.NewLLPoint(*re.Lat, *re.Lon)
		if err != nil {
			continue
		}
		xz := tr.Project(pt)
		if !bbox.Contains(xz) {
			continue
		}
		nodeCoords[re.ID] = xz
		if len(re.Tags) > 0 {
			nodeTags[re.ID] = re.Tags
		}
		if len(re.Tags) > 0 {
			elements = append(elements, Element{
					Kind: KindNode,
					Node: ProcessedNode{ID: re.ID, X: xz.X, Z: xz.Z, Tags: re.Tags},
			})
		}
	}

	// Second pass: assemble ways from surviving node coordinates, then
	// relations from already-assembled ways.
	ways := make(map[uint64]ProcessedWay, len(doc.Elements))
	for _, re := range doc.Elements {
		if re.Type != "way" {
			continue
		}
		w := buildWay(re, nodeCoords, nodeTags)
		if len(w.Nodes) == 0 {
			continue
		}
		ways[re.ID] = w
		elements = append(elements, Element{Kind: KindWay, Way: w})
	}

	for _, re := range doc.Elements {
		if re.Type != "relation" {
			continue
		}
		rel := ProcessedRelation{ID: re.ID, Tags: re.Tags}
		for _, m := range re.Members {
			if m.Type != "way" {
				continue
			}
			w, ok := ways[m.Ref]
			if !ok {
				continue
			}
			role := RoleOuter
			if m.Role == "inner" {
				role = RoleInner
			}
			rel.Members = append(rel.Members, Member{Role: role, Way: w})
		}
		if len(rel.Members) == 0 {
			continue
		}
		elements = append(elements, Element{Kind: KindRelation, Relation: rel})
	}

	return elements, nil
}

func buildWay(re rawElement, nodeCoords map[uint64]coords.XZPoint, nodeTags map[uint64]map[string]string) ProcessedWay {
	w := ProcessedWay{ID: re.ID, Tags: re.Tags}
	for _, id := range re.Nodes {
		xz, ok := nodeCoords[id]
		if !ok {
			// Node fell outside the bbox; clipped.
			continue
		}
		w.Nodes = append(w.Nodes, ProcessedNode{ID: id, X: xz.X, Z: xz.Z, Tags: nodeTags[id]})
	}
	return w
}
