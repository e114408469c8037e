package calculus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accuracyDelta is the tolerance matching the default three trusted
// digits, with headroom for the fixed-step grid drift.
const accuracyDelta = 0.01

func TestDerivative(t *testing.T) {
	tests := []struct {
		name string
		fx   Func
		x    float64
		want float64
	}{
		{
			name: "square at 3",
			fx:   func(x float64) float64 { return x * x },
			x:    3,
			want: 6,
		},
		{
			name: "square at 0",
			fx:   func(x float64) float64 { return x * x },
			x:    0,
			want: 0,
		},
		{
			name: "sine at 0",
			fx:   math.Sin,
			x:    0,
			want: 1,
		},
		{
			name: "line has constant slope",
			fx:   func(x float64) float64 { return 3*x - 7 },
			x:    42,
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Derivative(tt.fx)
			assert.InDelta(t, tt.want, g(tt.x), accuracyDelta)
		})
	}
}

func TestDerivativeWithLargerKnob(t *testing.T) {
	p := New(1000000)
	g := p.Derivative(func(x float64) float64 { return x * x })
	assert.InDelta(t, 6, g(3), 0.0001)
}

func TestDefiniteIntegral(t *testing.T) {
	identity := func(x float64) float64 { return x }
	one := func(float64) float64 { return 1 }

	tests := []struct {
		name   string
		fx     Func
		lower  float64
		upper  float64
		want   float64
		within float64
	}{
		{
			name:   "triangle area",
			fx:     identity,
			lower:  0,
			upper:  4,
			want:   8,
			within: accuracyDelta,
		},
		{
			name:   "negative upper flips the sign",
			fx:     identity,
			lower:  0,
			upper:  -4,
			want:   -8,
			within: accuracyDelta,
		},
		{
			name:   "unit box",
			fx:     one,
			lower:  0,
			upper:  1,
			want:   1,
			within: accuracyDelta,
		},
		{
			name:   "sine over a full period",
			fx:     math.Sin,
			lower:  0,
			upper:  2 * math.Pi,
			want:   0,
			within: accuracyDelta,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefiniteIntegral(tt.fx, tt.lower, tt.upper)
			assert.InDelta(t, tt.want, got, tt.within)
		})
	}
}

func TestDefiniteIntegralEmptyInterval(t *testing.T) {
	got := DefiniteIntegral(func(x float64) float64 { return x * x }, 2, 2)
	assert.Zero(t, got)
}

func TestIntegralAnchoredAtValidValue(t *testing.T) {
	fx := func(x float64) float64 { return x }
	F := Integral(fx, 0)

	// The antiderivative is exactly zero at its anchor, for any fx.
	require.Zero(t, F(0))

	assert.InDelta(t, 8, F(4), accuracyDelta)

	// Evaluating at negative x rides the sign-flip convention of
	// DefiniteIntegral: the grid [0, |x|] is summed, then negated.
	G := Integral(func(float64) float64 { return 1 }, 0)
	assert.InDelta(t, -3, G(-3), accuracyDelta)
}

func TestIntegralAnchorShiftsByConstant(t *testing.T) {
	one := func(float64) float64 { return 1 }
	F0 := Integral(one, 0)
	F2 := Integral(one, 2)

	// Changing the anchor shifts the antiderivative by a constant.
	assert.InDelta(t, 2, F0(5)-F2(5), accuracyDelta)
}

func TestRoots(t *testing.T) {
	line := func(x float64) float64 { return x - 5 }

	tests := []struct {
		name    string
		initial float64
		iter    int
		want    float64
	}{
		{name: "from zero", initial: 0, iter: 10, want: 5},
		{name: "from far away", initial: 1000, iter: 10, want: 5},
		{name: "from negative", initial: -200, iter: 100, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Roots(line, tt.initial, tt.iter)
			assert.InDelta(t, tt.want, got, accuracyDelta)
		})
	}
}

func TestRootsZeroIterationsReturnsInitial(t *testing.T) {
	got := Roots(func(x float64) float64 { return x * x }, 1.5, 0)
	assert.Equal(t, 1.5, got)
}

func TestRootsQuadratic(t *testing.T) {
	// x^2 - 2 = 0, seeded near the positive root.
	got := Roots(func(x float64) float64 { return x*x - 2 }, 1, DefaultRootIterations)
	assert.InDelta(t, math.Sqrt2, got, accuracyDelta)
}

func TestRootsZeroDerivativePropagatesNonFinite(t *testing.T) {
	// A constant function has a zero Newton denominator everywhere. The
	// non-finite value is returned as-is, never raised as an error.
	got := Roots(func(float64) float64 { return 1 }, 0, 25)
	assert.True(t, math.IsInf(got, 0) || math.IsNaN(got),
		"expected a non-finite result, got %v", got)
}

func TestLambertW(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "zero", value: 0, want: 0},
		{name: "e maps to one", value: math.E, want: 1},
		{name: "2e^2", value: 2 * math.Exp(2), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LambertW(tt.value), accuracyDelta)
		})
	}
}

func TestLambertWInvertsXExpX(t *testing.T) {
	for _, x := range []float64{0.5, 1, 1.5, 3} {
		got := LambertW(x * math.Exp(x))
		assert.InDelta(t, x, got, accuracyDelta, "round trip through x*e^x at %v", x)
	}
}

func TestIterate(t *testing.T) {
	succ := func(x float64) float64 { return x + 1 }
	double := func(x float64) float64 { return 2 * x }

	tests := []struct {
		name  string
		fx    Func
		times float64
		value float64
		want  float64
	}{
		{name: "zero times is identity", fx: double, times: 0, value: 7, want: 7},
		{name: "negative times is identity", fx: double, times: -3, value: 7, want: 7},
		{name: "successor five times", fx: succ, times: 5, value: 0, want: 5},
		{name: "double three times", fx: double, times: 3, value: 1, want: 8},
		// Known quirk: a fractional count decrements by one per step
		// until it drops to or below zero, so 2.5 behaves like 3.
		{name: "fractional times behaves like ceiling", fx: succ, times: 2.5, value: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Iterate(tt.fx, tt.times, tt.value))
		})
	}
}

func TestIterateMatchesRecurrence(t *testing.T) {
	fx := func(x float64) float64 { return 3*x + 1 }
	for n := 1.0; n <= 6; n++ {
		assert.Equal(t, fx(Iterate(fx, n-1, 2)), Iterate(fx, n, 2))
	}
}

func TestIterateLargeCountStaysBounded(t *testing.T) {
	// The loop formulation must survive counts that would blow the stack
	// under naive recursion.
	got := Iterate(func(x float64) float64 { return x + 1 }, 1_000_000, 0)
	assert.Equal(t, float64(1_000_000), got)
}

func TestIterated(t *testing.T) {
	g := Iterated(func(x float64) float64 { return x * x }, 2)
	assert.Equal(t, 16.0, g(2))
	assert.Equal(t, 81.0, g(3))
}
