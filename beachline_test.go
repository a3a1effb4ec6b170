package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/point"
)

func TestBeachline_BootstrapAndSplit(t *testing.T) {
	bl := newBeachline()
	s1 := &Site{id: 1, P: point.New(0, 10)}
	s2 := &Site{id: 2, P: point.New(5, 8)}

	root := bl.bootstrap(s1)
	assert.Same(t, root, bl.head)
	assert.ElementsMatch(t, []*Site{s1}, bl.activeSites())

	located := bl.locateArc(5, 8, options.GeometryOptions{})
	assert.Same(t, root, located)

	left, mid, right := bl.splitArc(root, s2)

	// I1: link symmetry.
	assert.Same(t, mid, left.next)
	assert.Same(t, left, mid.prev)
	assert.Same(t, right, mid.next)
	assert.Same(t, mid, right.prev)

	// I2: arc-site consistency — s1 now owns two arcs, s2 owns one.
	sites := bl.activeSites()
	assert.ElementsMatch(t, []*Site{s1, s2}, sites)

	bl.removeArc(mid)
	assert.Same(t, right, left.next)
	assert.Same(t, left, right.prev)
}

func TestBeachline_LocateArc_FallsBackToRightmost(t *testing.T) {
	bl := newBeachline()
	s1 := &Site{id: 1, P: point.New(-10, 10)}
	s2 := &Site{id: 2, P: point.New(10, 10)}
	root := bl.bootstrap(s1)
	_, _, right := bl.splitArc(root, s2)

	located := bl.locateArc(1000, 9, options.GeometryOptions{})
	assert.Same(t, right, located)
}
