package spline

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the difference between 1 and the next larger float32. It is a
// suitable absolute tolerance for values of magnitude around 1.
const Epsilon = 0x1p-23

// DefaultULPs is a default for the maxULPs argument of [ULPsEqual]. It
// accommodates a few roundings of a value of similar magnitude to its
// operands. It doesn't cover results that suffered cancellation, such as a
// point on a curve that passes near the origin while its control points are
// far from it; see [CubicBez.EvalTolerance] for those.
const DefaultULPs = 4

func abs[F constraints.Float](f F) F {
	if f < 0 {
		return -f
	}
	return f
}

// ApproxEqual reports whether a and b differ by at most epsilon.
func ApproxEqual[F constraints.Float](a, b, epsilon F) bool {
	return abs(a-b) <= epsilon
}

// RelativeEqual reports whether a and b differ by at most maxRelative times
// the larger of their magnitudes. Values closer than epsilon always compare
// equal, which handles comparisons near zero, where relative differences are
// meaningless.
//
// Infinities only compare equal to themselves. NaN is never equal to anything.
func RelativeEqual[F constraints.Float](a, b, epsilon, maxRelative F) bool {
	if a == b {
		return true
	}
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return false
	}
	d := abs(a - b)
	if d <= epsilon {
		return true
	}
	return d <= max(abs(a), abs(b))*maxRelative
}

// ordered maps f to an integer such that the integers of adjacent float32
// values differ by one, across zero as well.
func ordered(f float32) int64 {
	bits := math.Float32bits(f)
	if bits&(1<<31) != 0 {
		return -int64(bits &^ (1 << 31))
	}
	return int64(bits)
}

// ULPs returns the number of representable float32 values between a and b,
// that is, their distance in units in the last place. Positive and negative
// zero are zero ULPs apart. The result is meaningless if either value is NaN.
func ULPs(a, b float32) uint32 {
	d := ordered(a) - ordered(b)
	if d < 0 {
		d = -d
	}
	return uint32(d)
}

// ULPsEqual reports whether a and b are at most maxULPs representable values
// apart. Values closer than epsilon always compare equal.
//
// Unlike [ApproxEqual], the tolerance scales with the magnitude of the
// operands. NaN is never equal to anything.
func ULPsEqual(a, b, epsilon float32, maxULPs uint32) bool {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	if abs(a-b) <= epsilon {
		return true
	}
	return ULPs(a, b) <= maxULPs
}
