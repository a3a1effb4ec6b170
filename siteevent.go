package voronoi

import (
	"math"

	"github.com/mikenye/voronoi/point"
)

// handleSiteEvent processes the arrival of site on the sweepline: it locates the arc currently
// above site's x-coordinate, splits it in three, starts the single new edge traced by both
// resulting breakpoints, and checks the three resulting arcs for circle events.
func (d *Diagram) handleSiteEvent(site *Site) {
	x := site.P.X()
	old := d.bl.locateArc(x, d.sweepY, d.opts)

	if old.event != nil {
		old.event.obsolete = true
		d.q.removeVertexEvent(old.event)
		old.event = nil
	}

	splitY := parabolaY(old.site.P, d.sweepY, x)
	at := point.New(x, splitY)
	if math.IsInf(splitY, 0) {
		// old's focus lies on the sweepline as well (two sites sharing a y-coordinate), so the
		// breakpoint starts on their vertical bisector, midway between the two sites.
		at = point.New((old.site.P.X()+x)/2, splitY)
	}

	left, mid, right := d.bl.splitArc(old, site)

	// Both breakpoints born from this split trace the same bisector (old.site, site): they
	// start at the same point and diverge in opposite directions, so this is one new Edge, not
	// two — shared by all four of the surrounding arc-edge pointers until one side's breakpoint
	// is later retired by a vertex event and replaced with a fresh edge.
	edge := d.newEdgeBetween(old.site, site, at)
	left.edgeRight = edge
	mid.edgeLeft = edge
	mid.edgeRight = edge
	right.edgeLeft = edge

	d.checkCircleEvent(left)
	d.checkCircleEvent(mid)
	d.checkCircleEvent(right)
}
