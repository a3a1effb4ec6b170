package voronoi

// arc is a node in the doubly linked sequence of parabolic arcs that forms the beachline.
// Arcs are ordered left to right by the x-coordinate of the breakpoints between them, which
// shift continuously as the sweepline advances — the order is never stored as an x-value on
// the arc itself, only as pointer adjacency.
type arc struct {
	site *Site
	prev *arc
	next *arc

	// edgeLeft and edgeRight are the two Voronoi edges currently being traced by the
	// breakpoints immediately to this arc's left and right, respectively. Either may be nil
	// while the arc is new (a freshly split arc has no edges yet on one or both sides).
	edgeLeft  *Edge
	edgeRight *Edge

	// event is the pending vertex (circle) event predicting this arc's disappearance, or nil
	// if no such event is currently queued for this arc.
	event *vertexEvent
}

// insertAfter splices newArc into the beachline immediately after a.
func (a *arc) insertAfter(newArc *arc) {
	newArc.prev = a
	newArc.next = a.next
	if a.next != nil {
		a.next.prev = newArc
	}
	a.next = newArc
}

// unlink removes a from the beachline's linked sequence. It does not touch the active-site
// registry; callers do that separately (see beachline.removeArc).
func (a *arc) unlink() {
	if a.prev != nil {
		a.prev.next = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	}
	a.prev = nil
	a.next = nil
}
