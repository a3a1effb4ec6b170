package voronoi

import "fmt"

// DiagnosticKind enumerates the non-fatal conditions the engine can report while building a
// diagram. None of these stop the sweep; they describe data-dependent edge cases the caller may
// want visibility into.
type DiagnosticKind uint8

const (
	// DegenerateCircle is reported when three sites expected to define a circle event are
	// collinear (or nearly so, within epsilon), so no circumcenter exists.
	DegenerateCircle DiagnosticKind = iota

	// StaleVertexEvent is reported when a popped vertex event no longer corresponds to a live
	// arc triple (its arc was already removed by an earlier event) and is discarded.
	StaleVertexEvent

	// DoubleVertexAssignment is reported when an edge's vertex is written a second time; the
	// second write is ignored rather than overwriting the first.
	DoubleVertexAssignment

	// UnboundEdgeMissingBothVertices is reported during finalization for an edge that never
	// received either endpoint and had to be extended from scratch along its bisector.
	UnboundEdgeMissingBothVertices
)

// String returns the name of the DiagnosticKind.
func (k DiagnosticKind) String() string {
	switch k {
	case DegenerateCircle:
		return "DegenerateCircle"
	case StaleVertexEvent:
		return "StaleVertexEvent"
	case DoubleVertexAssignment:
		return "DoubleVertexAssignment"
	case UnboundEdgeMissingBothVertices:
		return "UnboundEdgeMissingBothVertices"
	default:
		panic(fmt.Sprintf("unsupported DiagnosticKind value: %d", k))
	}
}

// Diagnostic is a single non-fatal event reported by the engine, see [DiagnosticKind].
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

// DiagnosticsSink receives [Diagnostic] reports as the engine runs. Implementations must not
// block; Record is called synchronously from the sweep loop.
type DiagnosticsSink interface {
	Record(d Diagnostic)
}

// nopDiagnostics is installed when the caller supplies no sink, so the hot path never has to
// nil-check before reporting.
type nopDiagnostics struct{}

func (nopDiagnostics) Record(Diagnostic) {}

func (d *Diagram) report(kind DiagnosticKind, format string, v ...interface{}) {
	d.diagnostics.Record(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, v...)})
}
