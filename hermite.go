package spline

// Hermite is a cubic Hermite spline segment, defined by its endpoints P0 and
// P1 and the velocities V0 and V1 at those endpoints.
type Hermite struct {
	P0 Vec2
	P1 Vec2
	V0 Vec2
	V1 Vec2
}

func (h Hermite) IsInf() bool {
	return h.P0.IsInf() || h.P1.IsInf() || h.V0.IsInf() || h.V1.IsInf()
}

func (h Hermite) IsNaN() bool {
	return h.P0.IsNaN() || h.P1.IsNaN() || h.V0.IsNaN() || h.V1.IsNaN()
}

// Eval evaluates the spline at t. Values of t outside [0, 1] extrapolate; use
// [Hermite.EvalStrict] to reject them instead.
//
// The polynomial
//
//	(2·P0 + V0 − 2·P1 + V1)·t³ + (−3·P0 + 3·P1 − 2·V0 − V1)·t² + V0·t + P0
//
// is computed as a weighted sum of the Hermite basis functions, all of which
// are exactly 0 or 1 at the endpoints. Eval(0) is thus exactly P0 and Eval(1)
// is exactly P1.
func (h Hermite) Eval(t float32) Vec2 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := 3*t2 - 2*t3
	h11 := t3 - t2
	return h.P0.Mul(h00).
		Add(h.V0.Mul(h10)).
		Add(h.P1.Mul(h01)).
		Add(h.V1.Mul(h11))
}

// EvalStrict is like [Hermite.Eval] but reports false, and no point, if t is
// outside [0, 1] or NaN.
func (h Hermite) EvalStrict(t float32) (Vec2, bool) {
	if !InDomain(t) {
		return Vec2{}, false
	}
	return h.Eval(t), true
}

func (h Hermite) Start() Vec2 {
	return h.P0
}

func (h Hermite) End() Vec2 {
	return h.P1
}

// Tangents returns the derivatives at the start and end of the spline.
func (h Hermite) Tangents() (Vec2, Vec2) {
	return h.V0, h.V1
}

// EvalTolerance is like [CubicBez.EvalTolerance], for the equivalent Bézier.
func (h Hermite) EvalTolerance() float32 {
	return h.CubicBez().EvalTolerance()
}

// CubicBez converts the spline to the equivalent cubic Bézier. The inner
// control points are offset from the endpoints by a third of the tangents.
func (h Hermite) CubicBez() CubicBez {
	return CubicBez{
		P0: h.P0,
		P1: h.P0.Add(h.V0.Div(3)),
		P2: h.P1.Sub(h.V1.Div(3)),
		P3: h.P1,
	}
}
