package options

// WithFarX returns a [GeometryOptionsFunc] that sets the FarX envelope half-width used when
// extending unbounded edges to a finite endpoint.
//
// Parameters:
//   - farX: The half-width of the envelope. Values <= 0 are ignored, leaving FarX at its
//     previous value (callers substitute their own default in that case).
//
// Returns:
//   - A [GeometryOptionsFunc] function that modifies the FarX field in the GeometryOptions struct.
func WithFarX(farX float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if farX <= 0 {
			return
		}
		opts.FarX = farX
	}
}
