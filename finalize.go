package voronoi

import "github.com/mikenye/voronoi/point"

// finalize extends every edge that never received one or both endpoints to the configured
// far-x envelope, so every edge returned by [Diagram.Edges] has both endpoints set.
//
// An edge with exactly one endpoint already written is extended along its true perpendicular
// bisector via [bisectorY]: the far side is picked by which half-plane (relative to the known
// endpoint) the midpoint of the two faces falls in, per the finalization rule. An edge that
// never received either endpoint (the normal case for an unbounded edge between exactly two
// sites, where no vertex event ever fires) is extended symmetrically from its birth point along
// its birth direction instead, since there is no known endpoint to orient the pick against.
func (d *Diagram) finalize() {
	for _, e := range d.edges {
		switch {
		case e.FirstVertex == nil && e.LastVertex == nil:
			d.report(UnboundEdgeMissingBothVertices, "edge %s--%s never received a vertex, extending from birth point", e.LeftFace, e.RightFace)
			farPos := extendSegment(e.start, e.dir, d.opts.FarX)
			farNeg := extendSegment(e.start, point.New(-e.dir.X(), -e.dir.Y()), d.opts.FarX)
			e.FirstVertex, e.LastVertex = &farNeg, &farPos
		case e.LastVertex == nil:
			e.LastVertex = extendToBisector(e, *e.FirstVertex, d.opts.FarX)
		case e.FirstVertex == nil:
			e.FirstVertex = extendToBisector(e, *e.LastVertex, d.opts.FarX)
		}

		d.trace.edgeDump(e)
	}
}

// extendToBisector computes the missing endpoint of e along its true perpendicular bisector:
// the far-x envelope side is chosen by which side of known (the endpoint e already has) the
// midpoint of the two faces lies on, and the y at that x comes from [bisectorY].
func extendToBisector(e *Edge, known point.Point, farX float64) *point.Point {
	mid := e.LeftFace.P.Midpoint(e.RightFace.P)
	x := -farX
	if mid.X() > known.X() {
		x = farX
	}
	y := bisectorY(e.LeftFace.P, e.RightFace.P, x)
	v := point.New(x, y)
	return &v
}
