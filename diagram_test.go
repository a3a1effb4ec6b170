package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/voronoi/point"
)

func TestNew_TooFewSites(t *testing.T) {
	_, err := New([]point.Point{point.New(0, 0)})
	assert.ErrorIs(t, err, ErrTooFewSites)
}

func TestNew_DegenerateBootstrap(t *testing.T) {
	_, err := New([]point.Point{point.New(0, 5), point.New(1, 5), point.New(0, 0)})
	assert.ErrorIs(t, err, ErrDegenerateBootstrap)
}

// B2: two input sites produce exactly one edge, extended at both ends to the far-x envelope.
func TestCompute_TwoSites(t *testing.T) {
	d, err := New([]point.Point{point.New(0, 0), point.New(10, 0)})
	require.NoError(t, err)

	edges := d.Compute()
	require.Len(t, edges, 1)

	e := edges[0]
	require.NotNil(t, e.FirstVertex)
	require.NotNil(t, e.LastVertex)
	assert.InDelta(t, 100, e.FirstVertex.Y(), 1e-6)
	assert.InDelta(t, -100, e.LastVertex.Y(), 1e-6)
}

// B1: three non-collinear sites produce a single vertex shared by (up to) three edges, each
// edge's finite endpoint lying on the perpendicular bisector of its face pair (R2).
func TestCompute_ThreeSites(t *testing.T) {
	d, err := New([]point.Point{point.New(0, 0), point.New(10, 0), point.New(5, 10)})
	require.NoError(t, err)

	edges := d.Compute()
	require.Len(t, edges, 3)

	for _, e := range edges {
		assertOnBisector(t, e)
	}
}

// Seed scenario from the design notes: four sites, the middle two equidistant enough to share
// a beachline boundary with both outer sites.
func TestCompute_FourSites(t *testing.T) {
	d, err := New([]point.Point{
		point.New(3, 3), point.New(12, 3), point.New(8, 5), point.New(10, 5),
	})
	require.NoError(t, err)

	edges := d.Compute()
	require.NotEmpty(t, edges)

	for _, e := range edges {
		assertOnBisector(t, e)
	}

	pairs := make(map[[2]int]bool)
	for _, e := range edges {
		pairs[[2]int{int(e.LeftFace.id), int(e.RightFace.id)}] = true
		pairs[[2]int{int(e.RightFace.id), int(e.LeftFace.id)}] = true
	}
	assert.True(t, pairs[[2]int{2, 3}], "expected an edge between (8,5) and (10,5)")
}

// R3: finalizing an already-finalized diagram is a no-op.
func TestCompute_FinalizeIdempotent(t *testing.T) {
	d, err := New([]point.Point{point.New(0, 0), point.New(10, 0), point.New(5, 10)})
	require.NoError(t, err)

	first := d.Compute()
	second := d.Compute()
	require.Len(t, first, len(second))
	for i := range first {
		assert.Equal(t, *first[i].FirstVertex, *second[i].FirstVertex)
		assert.Equal(t, *first[i].LastVertex, *second[i].LastVertex)
	}
}

func assertOnBisector(t *testing.T, e *Edge) {
	t.Helper()
	for _, v := range []*point.Point{e.FirstVertex, e.LastVertex} {
		require.NotNil(t, v)
		dl := v.DistanceToPoint(e.LeftFace.P)
		dr := v.DistanceToPoint(e.RightFace.P)
		assert.InDelta(t, dl, dr, 1e-6)
	}
}
