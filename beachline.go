package voronoi

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/options"
)

// activeSiteKey orders the active-site registry by site x-coordinate, with site id as a
// tiebreaker for sites that happen to share an x-coordinate.
type activeSiteKey struct {
	x  float64
	id int64
}

func activeSiteComparator(a, b interface{}) int {
	ka, kb := a.(activeSiteKey), b.(activeSiteKey)
	switch {
	case ka.x < kb.x:
		return -1
	case ka.x > kb.x:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

// beachline holds the doubly linked sequence of arcs plus a registry of the sites currently
// represented on it. The registry is a red-black tree (rather than a bare slice or map) keyed by
// site x, so that activeSites lists the sites in a deterministic order. Arc location (see
// locateArc) does not use the registry; it walks the linked sequence of arcs.
type beachline struct {
	head     *arc
	registry *rbt.Tree
}

func newBeachline() *beachline {
	return &beachline{registry: rbt.NewWith(activeSiteComparator)}
}

func (b *beachline) empty() bool {
	return b.head == nil
}

func (b *beachline) registerArc(a *arc) {
	key := activeSiteKey{x: a.site.P.X(), id: a.site.id}
	if existing, found := b.registry.Get(key); found {
		existing.(*activeSite).addArc(a)
		return
	}
	as := &activeSite{site: a.site}
	as.addArc(a)
	b.registry.Put(key, as)
}

func (b *beachline) unregisterArc(a *arc) {
	key := activeSiteKey{x: a.site.P.X(), id: a.site.id}
	existing, found := b.registry.Get(key)
	if !found {
		return
	}
	as := existing.(*activeSite)
	as.removeArc(a)
	if len(as.arcs) == 0 {
		b.registry.Remove(key)
	}
}

// activeSites returns every site currently represented on the beachline, in registry (x) order.
func (b *beachline) activeSites() []*Site {
	sites := make([]*Site, 0, b.registry.Size())
	it := b.registry.Iterator()
	for it.Next() {
		sites = append(sites, it.Value().(*activeSite).site)
	}
	return sites
}

// bootstrap seeds the beachline with the single arc for the first site. Called once, when the
// first site event is popped and the beachline is still empty.
func (b *beachline) bootstrap(site *Site) *arc {
	a := &arc{site: site}
	b.head = a
	b.registerArc(a)
	return a
}

// locateArc returns the arc directly above x at the current sweepline position directrixY.
// It walks the linked sequence from the left and returns the first arc whose right breakpoint
// is at or to the right of x, so in the worst case every breakpoint is evaluated.
func (b *beachline) locateArc(x, directrixY float64, opts options.GeometryOptions) *arc {
	a := b.head
	if a == nil || a.next == nil {
		return a
	}
	for a.next != nil {
		bx := breakpointX(a.site.P, a.next.site.P, directrixY, opts)
		if numeric.FloatLessThanOrEqualTo(x, bx, opts.Epsilon) {
			return a
		}
		a = a.next
	}
	// Fallback: x is to the right of every breakpoint, so it lies above the rightmost arc.
	return a
}

// splitArc replaces old with three arcs: a copy of old, a new arc for site, and another copy of
// old, preserving old's neighbor edges on the outer copies.
func (b *beachline) splitArc(old *arc, site *Site) (leftCopy, newArc, rightCopy *arc) {
	leftCopy = &arc{site: old.site, edgeLeft: old.edgeLeft}
	newArc = &arc{site: site}
	rightCopy = &arc{site: old.site, edgeRight: old.edgeRight}

	prev, next := old.prev, old.next
	if prev != nil {
		prev.next = leftCopy
	} else {
		b.head = leftCopy
	}
	leftCopy.prev = prev
	leftCopy.next = newArc
	newArc.prev = leftCopy
	newArc.next = rightCopy
	rightCopy.prev = newArc
	rightCopy.next = next
	if next != nil {
		next.prev = rightCopy
	}

	b.unregisterArc(old)
	b.registerArc(leftCopy)
	b.registerArc(newArc)
	b.registerArc(rightCopy)
	return leftCopy, newArc, rightCopy
}

// removeArc removes the (now-converged) middle arc of a triple from the beachline, reconnecting
// its former neighbors directly.
func (b *beachline) removeArc(a *arc) {
	wasHead := b.head == a
	next := a.next
	a.unlink()
	b.unregisterArc(a)
	if wasHead {
		b.head = next
	}
}

// toSlice returns the beachline's arcs left to right (test/debug helper).
func (b *beachline) toSlice() []*arc {
	var arcs []*arc
	for a := b.head; a != nil; a = a.next {
		arcs = append(arcs, a)
	}
	return arcs
}
