package voronoi

import "github.com/mikenye/voronoi/point"

// checkCircleEvent evaluates whether a, together with its current beachline neighbors, predicts
// a vertex event, and if so schedules it. Any previously scheduled event for a is left alone —
// callers that already invalidated it (see handleSiteEvent, handleVertexEvent) must clear
// a.event themselves first.
func (d *Diagram) checkCircleEvent(a *arc) {
	if a.prev == nil || a.next == nil || a.event != nil {
		return
	}

	if a.prev.site == a.site || a.site == a.next.site || a.prev.site == a.next.site {
		// Two of the three candidate sites are the same object (e.g. the pair of arc copies
		// flanking a freshly split arc, both still owned by the arc that was split) — no circle
		// is defined by a degenerate triple like this.
		return
	}

	p, q, r := a.prev.site.P, a.site.P, a.next.site.P

	// The three arcs only converge to a single point if prev -> a -> next turns clockwise;
	// a counterclockwise or collinear triple is diverging (or the foci are collinear, i.e.
	// a degenerate circle) and will never produce a vertex.
	orient := (q.X()-p.X())*(r.Y()-p.Y()) - (q.Y()-p.Y())*(r.X()-p.X())
	if orient >= 0 {
		return
	}

	center, radius, ok := circumcenter(p, q, r, d.opts)
	if !ok {
		d.report(DegenerateCircle, "sites %s, %s, %s are collinear, no circle event", p, q, r)
		return
	}

	eventPoint := point.New(center.X(), center.Y()-radius)
	ve := &vertexEvent{point: eventPoint, vertex: center, arc: a}
	a.event = ve
	d.q.insertVertexEvent(ve)
}
