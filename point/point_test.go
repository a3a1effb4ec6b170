package point

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikenye/voronoi/options"
)

func TestPoint_Accessors(t *testing.T) {
	p := New(3, 4)
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 4.0, p.Y())
}

func TestPoint_AddSub(t *testing.T) {
	p := New(1, 2)
	q := New(3, 4)
	assert.Equal(t, New(4, 6), p.Add(q))
	assert.Equal(t, New(-2, -2), p.Sub(q))
}

func TestPoint_Midpoint(t *testing.T) {
	p := New(0, 0)
	q := New(4, 2)
	assert.Equal(t, New(2, 1), p.Midpoint(q))
}

func TestPoint_Distance(t *testing.T) {
	p := New(0, 0)
	q := New(3, 4)
	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
}

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		a, b     Point
		opts     []options.GeometryOptionsFunc
		expected bool
	}{
		"exactly equal":         {New(1, 1), New(1, 1), nil, true},
		"not equal, no epsilon": {New(1, 1), New(1.0001, 1), nil, false},
		"not equal, within epsilon": {
			New(1, 1), New(1.0001, 1), []options.GeometryOptionsFunc{options.WithEpsilon(1e-3)}, true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Eq(tt.b, tt.opts...))
		})
	}
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1.000000,2.000000)", New(1, 2).String())
}
