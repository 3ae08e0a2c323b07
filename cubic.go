package spline

// CubicBez is a cubic Bézier curve. P0 and P3 are the curve's endpoints, P1
// and P2 are off-curve control points.
type CubicBez struct {
	P0 Vec2
	P1 Vec2
	P2 Vec2
	P3 Vec2
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the Bernstein form
//
//	(1-t)³·P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3
//
// at t. Values of t outside [0, 1] extrapolate the polynomial. Eval(0) is
// exactly P0 and Eval(1) is exactly P3.
func (c CubicBez) Eval(t float32) Vec2 {
	mt := 1.0 - t
	a := c.P0.Mul(mt * mt * mt)
	b := c.P1.Mul(mt * mt * 3.0)
	cc := c.P2.Mul(mt * 3.0)
	d := c.P3
	return a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
}

func (c CubicBez) Start() Vec2 {
	return c.P0
}

func (c CubicBez) End() Vec2 {
	return c.P3
}

// Tangents returns the derivatives at the start and end of the curve.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	return c.P1.Sub(c.P0).Mul(3), c.P3.Sub(c.P2).Mul(3)
}

// Hermite converts the Bézier to the equivalent cubic Hermite spline. The
// endpoints carry over unchanged; the tangents are three times the offsets
// of the inner control points from their adjacent endpoints.
//
// The two representations evaluate the same polynomial, but as they do so
// with different arithmetic, results for t outside {0, 1} may differ by up
// to [CubicBez.EvalTolerance].
func (c CubicBez) Hermite() Hermite {
	return Hermite{
		P0: c.P0,
		P1: c.P3,
		V0: c.P1.Sub(c.P0).Mul(3),
		V1: c.P2.Sub(c.P3).Mul(-3),
	}
}

// Magnitude returns the largest absolute coordinate of the control points.
func (c CubicBez) Magnitude() float32 {
	var m float32
	for _, p := range [...]Vec2{c.P0, c.P1, c.P2, c.P3} {
		m = max(m, abs(p.X), abs(p.Y))
	}
	return m
}

// EvalTolerance returns an absolute tolerance for comparing c.Eval(t) with
// the evaluation of the same curve in another representation, such as
// c.Hermite().Eval(t), for t ∈ [0, 1]. Rounding errors in either evaluation
// are proportional to the magnitude of the control points.
func (c CubicBez) EvalTolerance() float32 {
	return 16 * Epsilon * c.Magnitude()
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Add(c.P1).Mul(0.5),
			c.P0.Add(c.P1.Mul(2.0)).Add(c.P2).Mul(0.25),
			pm,
		},
		CubicBez{
			pm,
			c.P1.Add(c.P2.Mul(2.0)).Add(c.P3).Mul(0.25),
			c.P2.Add(c.P3).Mul(0.5),
			c.P3,
		}
}
