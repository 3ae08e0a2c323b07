package spline

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Vec2 is a 2D vector. It doubles as a point; control points, tangents and
// evaluated positions all share this type.
type Vec2 struct {
	X float32
	Y float32
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// VecFromF32 converts an x/image vector to a Vec2.
func VecFromF32(v f32.Vec2) Vec2 {
	return Vec2{X: v[0], Y: v[1]}
}

// F32 returns v as an x/image vector, for handing points to rasterizers and
// other code built on golang.org/x/image.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float32, float32) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude (Euclidean norm) of the vector. It doesn't
// overflow or underflow unless the result does.
func (v Vec2) Hypot() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float32 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between v and o, treated as points.
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Hypot()
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(float64(v.X), 0) || math.IsInf(float64(v.Y), 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// AddScalar adds f to both components.
func (v Vec2) AddScalar(f float32) Vec2 {
	return Vec2{
		X: v.X + f,
		Y: v.Y + f,
	}
}

// SubScalar subtracts f from both components.
func (v Vec2) SubScalar(f float32) Vec2 {
	return Vec2{
		X: v.X - f,
		Y: v.Y - f,
	}
}

// Mul multiplies both components by f. It stands in for both f·v and v·f.
func (v Vec2) Mul(f float32) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Div divides both components by f. Dividing by zero isn't checked and
// produces infinities or NaNs.
func (v Vec2) Div(f float32) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// ApproxEqual reports whether both components of v and o differ by at most
// epsilon.
func (v Vec2) ApproxEqual(o Vec2, epsilon float32) bool {
	return ApproxEqual(v.X, o.X, epsilon) && ApproxEqual(v.Y, o.Y, epsilon)
}

// RelativeEqual reports whether both components of v and o are equal within
// maxRelative of the larger magnitude. See [RelativeEqual].
func (v Vec2) RelativeEqual(o Vec2, epsilon, maxRelative float32) bool {
	return RelativeEqual(v.X, o.X, epsilon, maxRelative) &&
		RelativeEqual(v.Y, o.Y, epsilon, maxRelative)
}

// ULPsEqual reports whether both components of v and o are at most maxULPs
// representable values apart. See [ULPsEqual].
func (v Vec2) ULPsEqual(o Vec2, epsilon float32, maxULPs uint32) bool {
	return ULPsEqual(v.X, o.X, epsilon, maxULPs) &&
		ULPsEqual(v.Y, o.Y, epsilon, maxULPs)
}
