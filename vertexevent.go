package voronoi

// handleVertexEvent processes a vertex (circle) event: the arc it predicted has narrowed to
// nothing, producing a Voronoi vertex shared by the two edges that were tracing its boundaries,
// and a new edge begins between what are now directly adjacent neighbors.
func (d *Diagram) handleVertexEvent(ve *vertexEvent) {
	a := ve.arc
	a.event = nil

	left, right := a.prev, a.next
	if left == nil || right == nil {
		// Neighbors changed between scheduling and firing without invalidating this event;
		// treat it as stale rather than panic on a nil edge below.
		d.report(StaleVertexEvent, "vertex event at %s has no surviving neighbor pair", ve.point)
		return
	}

	if left.event != nil {
		left.event.obsolete = true
		d.q.removeVertexEvent(left.event)
		left.event = nil
	}
	if right.event != nil {
		right.event.obsolete = true
		d.q.removeVertexEvent(right.event)
		right.event = nil
	}

	if a.edgeLeft != nil {
		d.assignVertex(a.edgeLeft, ve.vertex)
	}
	if a.edgeRight != nil {
		d.assignVertex(a.edgeRight, ve.vertex)
	}

	d.bl.removeArc(a)

	newEdge := d.newEdgeBetween(left.site, right.site, ve.vertex)
	left.edgeRight = newEdge
	right.edgeLeft = newEdge

	d.checkCircleEvent(left)
	d.checkCircleEvent(right)
}
