package spline

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// equateULPs returns an option for cmp that treats float32 values as equal
// if they are within maxULPs of each other.
func equateULPs(maxULPs uint32) cmp.Option {
	return cmp.Comparer(func(a, b float32) bool {
		return ULPsEqual(a, b, Epsilon, maxULPs)
	})
}

var (
	testBez = CubicBez{
		P0: Vec(1.0, 1.0),
		P1: Vec(5.0, 4.0),
		P2: Vec(3.0, 5.5),
		P3: Vec(4.0, 1.0),
	}
	testHermite = Hermite{
		P0: Vec(0.0, 0.0),
		P1: Vec(4.0, 1.0),
		V0: Vec(1.0, 1.0),
		V1: Vec(1.0, -1.0),
	}
)

// randVec returns a vector with components uniformly distributed in
// [-scale, scale).
func randVec(r *rand.Rand, scale float32) Vec2 {
	return Vec(
		float32(r.Float64()*2-1)*scale,
		float32(r.Float64()*2-1)*scale,
	)
}
