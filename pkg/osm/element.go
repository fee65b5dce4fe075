// Package osm holds the processed OSM element model the pipeline operates
// on: nodes, ways, and relations projected into Cartesian block space, a
// tagged Category used for processor dispatch, and the priority table that
// orders processing within a unit.
package osm

import "github.com/arnis-go/arnis/pkg/coords"

// ProcessedNode is an OSM node projected into block space, with its tags
// (empty for nodes that only exist to anchor a way).
type ProcessedNode struct {
	ID uint64
	X, Z int32
	Tags map[string]string
}

// Point returns the node's Cartesian position.
func (n ProcessedNode) Point() coords.XZPoint { return coords.XZPoint{X: n.X, Z: n.Z} }

// ProcessedWay is an ordered sequence of nodes with tags. Node ordering is
// preserved from OSM: directional for highways/railways, orientational for
// polygon outlines.
type ProcessedWay struct {
	ID uint64
	Nodes []ProcessedNode
	Tags map[string]string
}

// Points returns the way's node positions in order.
func (w ProcessedWay) Points() []coords.XZPoint {
	pts := make([]coords.XZPoint, len(w.Nodes))
	for i, n := range w.Nodes {
		pts[i] = n.Point()
	}
	return pts
}

// Closed reports whether the way's first and last nodes coincide, i.e. it
// already forms a closed ring (invariant 6).
func (w ProcessedWay) Closed() bool {
	if len(w.Nodes) < 2 {
		return false
	}
	first, last := w.Nodes[0], w.Nodes[len(w.Nodes)-1]
	return first.X == last.X && first.Z == last.Z
}

// MemberRole tags a relation member as part of the outer or inner ring.
type MemberRole int

const (
	RoleOuter MemberRole = iota
	RoleInner
)

// Member is one way bound into a relation with its ring role.
type Member struct {
	Role MemberRole
	Way ProcessedWay
}

// ProcessedRelation groups member ways (e.g. a multipolygon water area or a
// building with holes) under shared tags.
type ProcessedRelation struct {
	ID uint64
	Tags map[string]string
	Members []Member
}

// ElementKind tags the three concrete shapes an Element can take.
type ElementKind int

const (
	KindNode ElementKind = iota
	KindWay
	KindRelation
)

// Element is the tagged variant Node|Way|Relation that the scheduler and
// processors dispatch on ("ProcessedElement").
type Element struct {
	Kind ElementKind
	Node ProcessedNode
	Way ProcessedWay
	Relation ProcessedRelation
}

// ID returns the underlying OSM element id, used for priority tie-breaking
// and deterministic RNG seeding.
func (e Element) ID() uint64 {
	switch e.Kind {
		case KindNode:
		return e.Node.ID
		case KindWay:
		return e.Way.ID
		default:
		return e.Relation.ID
	}
}

// Tags returns the underlying element's tag map.
func (e Element) Tags() map[string]string {
	switch e.Kind {
		case KindNode:
		return e.Node.Tags
		case KindWay:
		return e.Way.Tags
		default:
		return e.Relation.Tags
	}
}

// Bounds returns the axis-aligned bounding box of every coordinate the
// element touches, used by the scheduler to decide which processing units
// an element must be dispatched to ("element distribution").
func (e Element) Bounds() (min, max coords.XZPoint, ok bool) {
	var pts []coords.XZPoint
	switch e.Kind {
		case KindNode:
		pts = []coords.XZPoint{e.Node.Point()}
		case KindWay:
		pts = e.Way.Points()
		case KindRelation:
		for _, m := range e.Relation.Members {
			pts = append(pts, m.Way.Points()...)
		}
	}
	if len(pts) == 0 {
		return coords.XZPoint{}, coords.XZPoint{}, false
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max, true
}
