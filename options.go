package voronoi

import (
	"github.com/mikenye/voronoi/options"
)

// Option configures a [Diagram] at construction time, following the same functional-options
// idiom as [options.GeometryOptionsFunc]. Diagram-level concerns (diagnostics, tracing) live
// here rather than in package options, since they depend on types (Site, Edge) that only exist
// in this package.
type Option func(*diagramConfig)

type diagramConfig struct {
	geoOpts     []options.GeometryOptionsFunc
	diagnostics DiagnosticsSink
	trace       TraceHooks
}

// WithEpsilon sets the floating-point tolerance used by the sweep (breakpoint computation and
// arc location, the collinearity check for circle events, edge double-write detection). Event
// ordering compares coordinates exactly and does not use it. See [options.WithEpsilon].
func WithEpsilon(epsilon float64) Option {
	return func(c *diagramConfig) {
		c.geoOpts = append(c.geoOpts, options.WithEpsilon(epsilon))
	}
}

// WithFarX sets the envelope half-width unbounded edges are extended to during finalization.
// See [options.WithFarX]. Default 100.
func WithFarX(farX float64) Option {
	return func(c *diagramConfig) {
		c.geoOpts = append(c.geoOpts, options.WithFarX(farX))
	}
}

// WithDiagnostics installs a sink to receive non-fatal [Diagnostic] reports.
func WithDiagnostics(sink DiagnosticsSink) Option {
	return func(c *diagramConfig) {
		c.diagnostics = sink
	}
}

// WithTrace installs hooks to observe the sweep as it runs.
func WithTrace(hooks TraceHooks) Option {
	return func(c *diagramConfig) {
		c.trace = hooks
	}
}

func (d *Diagram) epsilonOpt() options.GeometryOptionsFunc {
	return options.WithEpsilon(d.opts.Epsilon)
}
