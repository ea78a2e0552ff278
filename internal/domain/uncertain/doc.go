// Package uncertain provides Quantity, a measured number together with its
// bound of error.
//
// Reference tables publish measured values in two conventions: an asymmetric
// interval [start, end], and a nominal value with a symmetric tolerance
// (value ± uncertainty). Quantity keeps both as a closed tagged union so that
// exact asymmetric bounds survive construction. Every Quantity answers
// Minimum, Average and Maximum regardless of its kind.
//
// Arithmetic always produces a centered Quantity. Interval operands are first
// reduced to their midpoint and half-width. The propagation rule is the one
// used by the reference tables this package was built for, not conventional
// metrological propagation:
//
//   - Add, Sub, Mul and Div sum the absolute uncertainties of both operands.
//   - AddScalar, SubScalar, MulScalar and DivScalar leave the uncertainty
//     unchanged, even when the value is scaled.
//
// Callers that need relative-error propagation must compute it themselves.
//
// Quantity values are immutable and safe to share between goroutines.
package uncertain
