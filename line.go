package spline

// Line represents a line segment. It is the degree one [Curve].
type Line struct {
	// The line's start point.
	P0 Vec2
	// The line's end point.
	P1 Vec2
}

// Length returns the length of the line.
func (l Line) Length() float32 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Eval(t float32) Vec2 {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Vec2 { return l.P0 }
func (l Line) End() Vec2   { return l.P1 }

func (l Line) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0)
	return d, d
}

// CubicBez returns the line as a cubic Bézier, with the control points
// placed at a third and two thirds of the way.
func (l Line) CubicBez() CubicBez {
	return CubicBez{
		P0: l.P0,
		P1: l.P0.Lerp(l.P1, 1.0/3.0),
		P2: l.P0.Lerp(l.P1, 2.0/3.0),
		P3: l.P1,
	}
}
