package spline

// Curve describes a curve parametrized by a scalar.
//
// Curves are conventionally evaluated for t ∈ [0, 1], with t = 0 at the
// curve's start and t = 1 at its end. Whether other values of t extrapolate
// or are rejected is up to the implementation; every curve in this package
// extrapolates in Eval, and [Hermite.EvalStrict] rejects them.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float32) Vec2
}

var (
	_ Curve = CubicBez{}
	_ Curve = Hermite{}
	_ Curve = Line{}
)

// InDomain reports whether t lies in the closed interval [0, 1]. NaN does
// not.
func InDomain(t float32) bool {
	return t >= 0 && t <= 1
}
