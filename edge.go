package voronoi

import "github.com/mikenye/voronoi/point"

// Edge is one boundary shared by the Voronoi cells of LeftFace and RightFace. FirstVertex and
// LastVertex are nil until a vertex event (or finalization) assigns them; an edge that still had
// both nil when finalization ran never received a vertex at all and was extended from its birth
// point in both directions.
type Edge struct {
	LeftFace  *Site
	RightFace *Site

	FirstVertex *point.Point
	LastVertex  *point.Point

	start point.Point // the breakpoint position at the moment this edge was created
	dir   point.Point // direction the breakpoint travels as the sweep advances
}

// newEdge creates the edge traced by the breakpoint between left and right, starting at the
// point where that breakpoint first appears on the beachline.
func newEdge(left, right *Site, start point.Point) *Edge {
	delta := right.P.Sub(left.P)
	return &Edge{
		LeftFace:  left,
		RightFace: right,
		start:     start,
		dir:       point.New(-delta.Y(), delta.X()), // perpendicular to left->right, rotated 90° CCW
	}
}

// assignVertex writes v as this edge's FirstVertex or LastVertex, chosen by the sign of
// [distanceFromPlane] of v against the directed line LeftFace->RightFace (positive ⇒
// FirstVertex). This keeps the assignment stable regardless of which of the edge's two vertex
// events fires first. A second write to an already-filled slot is a
// [DoubleVertexAssignment] and is dropped, unless it is the same point written again (e.g. two
// coincident vertex events on a co-circular set of sites), which is silently tolerated.
func (d *Diagram) assignVertex(e *Edge, v point.Point) {
	first := distanceFromPlane(v, e.LeftFace.P, e.RightFace.P) > 0
	eps := d.epsilonOpt()
	switch {
	case first && e.FirstVertex == nil:
		vv := v
		e.FirstVertex = &vv
	case first && e.FirstVertex.Eq(v, eps):
		return
	case first:
		d.report(DoubleVertexAssignment, "edge %v--%v already has a first vertex, dropping %s", e.LeftFace, e.RightFace, v)
		return
	case e.LastVertex == nil:
		vv := v
		e.LastVertex = &vv
	case e.LastVertex.Eq(v, eps):
		return
	default:
		d.report(DoubleVertexAssignment, "edge %v--%v already has a last vertex, dropping %s", e.LeftFace, e.RightFace, v)
		return
	}
	d.trace.edgeDump(e)
}
