// Package voronoi builds the edges of a planar Voronoi diagram for a set of 2D sites using
// Fortune's sweepline algorithm.
//
// A [Diagram] is single-use and single-threaded: construct it with [New], drive it to
// completion with [Diagram.Compute] (or step through it by hand with [Diagram.Step] for
// instrumentation/testing), then read [Diagram.Edges]. It is not safe for concurrent use.
package voronoi

import (
	"errors"
	"fmt"
	"math"

	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/point"
)

// ErrTooFewSites is returned by [New] when fewer than two sites are supplied; a Voronoi diagram
// of 0 or 1 sites has no edges and is not a useful computation to run. New does not check that
// the sites are distinct.
var ErrTooFewSites = errors.New("voronoi: at least two distinct sites are required")

// ErrDegenerateBootstrap is returned by [New] when three or more sites are supplied and the two
// topmost share a y-coordinate (with exactly two sites this is accepted, see New).
// Fortune's algorithm bootstraps the beachline from the single topmost site; with two (or more)
// tied for topmost, which one seeds the beachline is undefined, so this is reported rather than
// silently picking one by scan order.
var ErrDegenerateBootstrap = errors.New("voronoi: two or more topmost sites share a y-coordinate")

// Diagram is the mutable state of an in-progress or completed sweep: the active-site beachline,
// the event queue, and the edges produced so far.
type Diagram struct {
	opts        options.GeometryOptions
	diagnostics DiagnosticsSink
	trace       TraceHooks

	sweepY float64
	bl     *beachline
	q      *queue
	edges  []*Edge
	sites  []*Site

	bootstrapped bool
	done         bool
}

// New constructs a Diagram for the given sites. The computation does not start until
// [Diagram.Step] or [Diagram.Compute] is called.
func New(coords []point.Point, opts ...Option) (*Diagram, error) {
	cfg := diagramConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0, FarX: 0}, cfg.geoOpts...)
	if geoOpts.FarX <= 0 {
		geoOpts.FarX = 100
	}

	sites := make([]*Site, 0, len(coords))
	for i, c := range coords {
		sites = append(sites, &Site{id: int64(i), P: c})
	}
	if len(sites) < 2 {
		return nil, ErrTooFewSites
	}

	topY := math.Inf(-1)
	for _, s := range sites {
		if s.P.Y() > topY {
			topY = s.P.Y()
		}
	}
	// The bootstrap seeds the beachline from a single topmost site; with three or more sites and
	// two or more tied for topmost, which one seeds it is undefined, so this is refused rather
	// than guessed at by scan order. With exactly two sites total there is no such ambiguity: the
	// pair's single edge is symmetric regardless of which site is treated as "first", so this
	// guard does not apply.
	if len(sites) > 2 {
		var first, second *Site
		for _, s := range sites {
			if s.P.Y() == topY {
				if first == nil {
					first = s
				} else if second == nil {
					second = s
				}
			}
		}
		if second != nil {
			return nil, fmt.Errorf("%w: %s and %s", ErrDegenerateBootstrap, first.P, second.P)
		}
	}

	diagnostics := cfg.diagnostics
	if diagnostics == nil {
		diagnostics = nopDiagnostics{}
	}

	return &Diagram{
		opts:        geoOpts,
		diagnostics: diagnostics,
		trace:       cfg.trace,
		sweepY:      topY,
		bl:          newBeachline(),
		q:           newQueue(sites),
		sites:       sites,
	}, nil
}

// Step processes a single event (site or vertex) and returns false once the queue is empty and
// there is nothing left to process. The caller must still call [Diagram.Compute]'s finalization
// step (or call Compute instead of Step in a loop) to extend unbounded edges.
func (d *Diagram) Step() bool {
	if d.done {
		return false
	}

	if !d.bootstrapped {
		se, _ := d.q.next()
		if se == nil {
			d.done = true
			return false
		}
		d.sweepY = se.site.P.Y()
		d.trace.siteEvent(se.site)
		d.bl.bootstrap(se.site)
		d.bootstrapped = true
		return !d.q.empty()
	}

	se, ve := d.q.next()
	switch {
	case se != nil:
		d.sweepY = se.site.P.Y()
		d.trace.siteEvent(se.site)
		d.handleSiteEvent(se.site)
	case ve != nil:
		if ve.obsolete {
			d.report(StaleVertexEvent, "discarding stale vertex event at %s", ve.point)
			break
		}
		d.sweepY = ve.point.Y()
		d.trace.vertexEvent(ve.point)
		d.handleVertexEvent(ve)
	default:
		d.done = true
		return false
	}

	d.trace.beachlineDump(d.bl.activeSites())
	return !d.q.empty()
}

// Compute runs [Diagram.Step] until the event queue is drained, finalizes every edge that still
// lacks one or both endpoints by extending it to the configured far-x envelope, and returns the
// resulting edges.
func (d *Diagram) Compute() []*Edge {
	for d.Step() {
	}
	if !d.done {
		// queue drained on the last Step call without Step itself reporting completion.
		d.done = true
	}
	d.finalize()
	return d.Edges()
}

// Edges returns the edges produced so far. Before [Diagram.Compute] finishes, some edges may
// still be missing one or both vertices.
func (d *Diagram) Edges() []*Edge {
	out := make([]*Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// ActiveSites returns the sites currently represented on the beachline.
func (d *Diagram) ActiveSites() []*Site {
	return d.bl.activeSites()
}

// Sites returns every site this diagram was constructed with, in input order.
func (d *Diagram) Sites() []*Site {
	out := make([]*Site, len(d.sites))
	copy(out, d.sites)
	return out
}

func (d *Diagram) newEdgeBetween(left, right *Site, at point.Point) *Edge {
	e := newEdge(left, right, at)
	d.edges = append(d.edges, e)
	d.trace.edgeDump(e)
	return e
}

func (d *Diagram) debugf(format string, v ...interface{}) {
	logDebugf(format, v...)
}
