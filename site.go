package voronoi

import "github.com/mikenye/voronoi/point"

// Site is an input coordinate. Sites are compared by pointer identity, never by value — two
// sites at the same coordinate (a degenerate but legal input) remain distinct.
type Site struct {
	id int64
	P  point.Point
}

func (s *Site) String() string {
	return s.P.String()
}

// activeSite is a site that currently owns one or more arcs on the beachline. A site can own
// more than one arc when its parabola reappears non-contiguously along the sweep.
type activeSite struct {
	site *Site
	arcs []*arc
}

func (a *activeSite) addArc(ar *arc) {
	a.arcs = append(a.arcs, ar)
}

func (a *activeSite) removeArc(ar *arc) {
	for i, existing := range a.arcs {
		if existing == ar {
			a.arcs = append(a.arcs[:i], a.arcs[i+1:]...)
			return
		}
	}
}
