package spline

import (
	"math"
	"testing"
)

func TestLineArclen(t *testing.T) {
	l := Line{Vec(0, 0), Vec(3, 4)}
	want := l.Length()
	if want != 5 {
		t.Fatalf("got length %g, want 5", want)
	}
	const epsilon = 1e-5
	if d := NewSteps(l, 10).Arclen(); !ApproxEqual(d, want, epsilon) {
		t.Errorf("got arc length %g, want %g", d, want)
	}
	if d := NewSteps(l.CubicBez(), 10).Arclen(); !ApproxEqual(d, want, epsilon) {
		t.Errorf("got arc length %g for line as cubic, want %g", d, want)
	}
	if d := NewSteps(l, 2).Arclen(); d != want {
		t.Errorf("got arc length %g for two points, want %g", d, want)
	}
}

func TestLineCubicBez(t *testing.T) {
	l := Line{Vec(-1, 2), Vec(5, -7)}
	c := l.CubicBez()
	if c.Start() != l.Start() || c.End() != l.End() {
		t.Errorf("got endpoints %v and %v, want %v and %v", c.Start(), c.End(), l.Start(), l.End())
	}
	for i := range 11 {
		ts := float32(i) / 10
		if got, want := c.Eval(ts), l.Eval(ts); !got.ApproxEqual(want, 1e-5) {
			t.Errorf("at t=%g: got %v, want %v", ts, got, want)
		}
	}
	v0, v1 := l.Tangents()
	if v0 != Vec(6, -9) || v1 != Vec(6, -9) {
		t.Errorf("got tangents %v and %v, want ⟨6, -9⟩", v0, v1)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Vec(0.0, 0.0), Vec(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Vec(0.0, 0.0), Vec(float32(math.Inf(1)), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Vec(0.0, 0.0), Vec(0.0, float32(math.NaN()))}).IsNaN() {
		t.Errorf("line isn't NaN but should be")
	}
}
