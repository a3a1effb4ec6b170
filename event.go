package voronoi

import "github.com/mikenye/voronoi/point"

// siteEvent fires when the sweepline reaches a site's y-coordinate: that site joins the
// beachline.
type siteEvent struct {
	site *Site
}

// vertexEvent (a "circle event" in the usual Fortune's-algorithm terminology) predicts that the
// narrowing arc fires a Voronoi vertex once the sweepline reaches point, the lowest point on the
// circle through the three converging sites' centers — used only to order and fire the event at
// the right moment. vertex is the circumcenter itself, the actual Voronoi vertex that gets
// written into edges; it is a different point from point whenever the circumradius is nonzero.
// seq disambiguates events that land on the exact same point (co-circular sites): it is assigned
// once at creation and never reused, so a btree keyed on (point, seq) can remove one specific
// vertex event by identity even when another, unrelated, vertex event shares its coordinates.
type vertexEvent struct {
	point    point.Point
	vertex   point.Point
	arc      *arc
	seq      uint64
	obsolete bool
}

// priority orders events by the rule every event in this engine follows: process the highest
// sweepline y first, breaking ties by the rightmost x. Returns <0 if a precedes b, >0 if a
// follows b, 0 if they are simultaneous.
func priority(a, b point.Point) int {
	switch {
	case a.Y() != b.Y():
		if a.Y() > b.Y() {
			return -1
		}
		return 1
	case a.X() != b.X():
		if a.X() > b.X() {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func siteEventLess(a, b *siteEvent) bool {
	if p := priority(a.site.P, b.site.P); p != 0 {
		return p < 0
	}
	return a.site.id < b.site.id
}

func vertexEventLess(a, b *vertexEvent) bool {
	if p := priority(a.point, b.point); p != 0 {
		return p < 0
	}
	return a.seq < b.seq
}
