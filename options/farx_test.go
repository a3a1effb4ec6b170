package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFarX(t *testing.T) {
	tests := map[string]struct {
		defaultOptions GeometryOptions
		inputFarX      float64
		expectedFarX   float64
	}{
		"negative value is ignored": {
			defaultOptions: GeometryOptions{FarX: 100},
			inputFarX:      -5,
			expectedFarX:   100,
		},
		"zero value is ignored": {
			defaultOptions: GeometryOptions{FarX: 100},
			inputFarX:      0,
			expectedFarX:   100,
		},
		"positive value overrides default": {
			defaultOptions: GeometryOptions{FarX: 100},
			inputFarX:      250,
			expectedFarX:   250,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			opts := ApplyGeometryOptions(tc.defaultOptions, WithFarX(tc.inputFarX))
			assert.Equal(t, tc.expectedFarX, opts.FarX)
		})
	}
}
