// Package spline evaluates cubic curves in the plane: cubic Béziers and cubic
// Hermite splines. It converts between the two representations and samples
// any curve into a fixed number of evenly spaced points.
//
// All computation is done in single precision (float32), the precision
// commonly used by renderers and GPUs.
//
// # Curves
//
// [Curve] describes parametrized curves. Curves are conventionally evaluated
// at t ∈ [0, 1] and return a [Vec2], commonly interpreted as a point in a 2D
// Cartesian coordinate system. This package includes the following curves:
//   - [CubicBez], defined by two endpoints and two off-curve control points
//   - [Hermite], defined by two endpoints and the tangents at them
//   - [Line]
//
// [CubicBez] and [Hermite] are two representations of the same family of
// cubic polynomials. [CubicBez.Hermite] and [Hermite.CubicBez] convert
// between them. Conversions preserve endpoints exactly; at other parameters,
// the two evaluations agree up to rounding. The rounding error scales with
// the magnitude of the control points, not with that of the evaluated point,
// so compare with [Vec2.ApproxEqual] and [CubicBez.EvalTolerance].
//
// # Domain
//
// Eval doesn't restrict t. Values outside [0, 1] extrapolate the curve's
// polynomial. [Hermite.EvalStrict] is for callers that must never
// extrapolate: it reports whether t was in [0, 1] instead of returning an
// extrapolated point. Sampling with [Steps] never leaves [0, 1].
//
// # Sampling
//
// [NewSteps] discretizes any curve into n points, evenly spaced in t. The
// resulting [Steps] computes points as they are consumed. It can be pulled
// from with [Steps.Next], ranged over with [Steps.All], or reduced to the
// length of the polyline through the points with [Steps.Arclen]. Use
// [slices.Collect] to turn the points into a slice.
//
// # Tolerances
//
// Two formulas for the same curve rarely round the same way. [ApproxEqual],
// [RelativeEqual] and [ULPsEqual] compare scalars with an absolute, relative
// or representational tolerance; [Vec2] has methods for comparing vectors
// component-wise.
package spline
