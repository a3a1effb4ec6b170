package voronoi

import "github.com/mikenye/voronoi/point"

// TraceHooks lets a caller observe the sweep without the engine depending on any particular
// logging library. Every field is optional; nil hooks are simply not called.
type TraceHooks struct {
	// OnSiteEvent is called immediately before a site event is processed.
	OnSiteEvent func(site *Site)

	// OnVertexEvent is called immediately before a (still valid) vertex event is processed.
	OnVertexEvent func(at point.Point)

	// OnBeachlineDump is called after every processed event except the first (bootstrap) site
	// event, with the sites that currently own arcs on the beachline, ordered by x-coordinate.
	// Each site appears once, even when it owns several arcs; arc order is not reported.
	OnBeachlineDump func(sites []*Site)

	// OnEdgeDump is called whenever an edge is created or receives a vertex.
	OnEdgeDump func(e *Edge)
}

func (t TraceHooks) siteEvent(site *Site) {
	if t.OnSiteEvent != nil {
		t.OnSiteEvent(site)
	}
}

func (t TraceHooks) vertexEvent(at point.Point) {
	if t.OnVertexEvent != nil {
		t.OnVertexEvent(at)
	}
}

func (t TraceHooks) beachlineDump(sites []*Site) {
	if t.OnBeachlineDump != nil {
		t.OnBeachlineDump(sites)
	}
}

func (t TraceHooks) edgeDump(e *Edge) {
	if t.OnEdgeDump != nil {
		t.OnEdgeDump(e)
	}
}
