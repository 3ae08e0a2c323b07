package spline

import "iter"

// Steps samples a curve at evenly spaced parameters. A sequence of n steps
// evaluates the curve at t = i/(n-1) for i = 0, ..., n-1, in that order, so
// the first point is at t = 0 and the last one at t = 1.
//
// For n = 1, the only point is at t = 0. For n <= 0, there are no points.
//
// Steps is a cursor: points are computed as they are pulled, and every point
// is produced once. Call [NewSteps] again to start over. A Steps value must
// not be used by multiple goroutines concurrently, but any number of them may
// sample the same curve.
type Steps struct {
	curve Curve
	i     int
	n     int
}

// NewSteps returns a sequence of n points on c.
func NewSteps(c Curve, n int) *Steps {
	return &Steps{
		curve: c,
		n:     max(n, 0),
	}
}

// Len returns the number of points that haven't been pulled yet.
func (s *Steps) Len() int {
	return s.n - s.i
}

func (s *Steps) param(i int) float32 {
	if s.n == 1 {
		return 0
	}
	return float32(i) / float32(s.n-1)
}

// Next returns the next point. It returns false once the sequence has been
// exhausted.
func (s *Steps) Next() (Vec2, bool) {
	if s.i >= s.n {
		return Vec2{}, false
	}
	t := s.param(s.i)
	s.i++
	return s.curve.Eval(t), true
}

// All returns an iterator over the remaining points. Points consumed by the
// iterator are gone from s, including when the loop breaks early: breaking
// after a point leaves s positioned at the following one.
func (s *Steps) All() iter.Seq[Vec2] {
	return func(yield func(Vec2) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Arclen consumes the remaining points and returns the length of the polyline
// through them, which approximates the curve's arc length from below. It
// returns 0 if fewer than two points remain.
func (s *Steps) Arclen() float32 {
	p0, ok := s.Next()
	if !ok {
		return 0
	}
	var ds float32
	for p1 := range s.All() {
		ds += p1.Distance(p0)
		p0 = p1
	}
	return ds
}
