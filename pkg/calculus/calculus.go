package calculus

import "math"

// Func is a real function: one float64 in, one float64 out. Funcs are
// first-class values; they are constructed, passed, returned, stored and
// composed, and never compared for identity.
type Func func(x float64) float64

// Derivative returns the forward finite-difference approximation of fx:
//
//	g(x) = round((fx(x+Small) - fx(x)) * Large, Accuracy)
//
// Each evaluation of the result calls fx exactly twice. The returned
// Func captures fx by value and is independently reusable.
func (p Precision) Derivative(fx Func) Func {
	return func(x float64) float64 {
		return Round((fx(x+p.Small)-fx(x))*p.Large, p.Accuracy)
	}
}

// DefiniteIntegral approximates the integral of fx from lower to upper
// by a left Riemann sum with step Small.
//
// The accumulation grid always runs upward from lower to |upper|; when
// upper is negative the accumulated sum is negated. Callers integrating
// from a negative lower bound up to a positive upper bound get the
// expected signed area, and an antiderivative evaluated at negative x
// gets a sign flip consistent with orientation reversal. The result is
// rounded to Accuracy digits. When lower == upper the sum is zero.
//
// The step is fixed by contract, not adaptive: accumulation error grows
// with interval length over Small, and that is an accepted trade-off.
func (p Precision) DefiniteIntegral(fx Func, lower, upper float64) float64 {
	if lower == upper {
		return 0
	}
	sum := 0.0
	for x := lower; x <= math.Abs(upper); x += p.Small {
		sum += fx(x) * p.Small
	}
	if upper < 0 {
		sum = -sum
	}
	return Round(sum, p.Accuracy)
}

// Integral returns the antiderivative of fx anchored at validValue:
//
//	F(x) = DefiniteIntegral(fx, validValue, x)
//
// so F(validValue) = 0. validValue is a free constant of integration;
// changing it shifts F by a constant. The returned Func captures fx and
// validValue by value.
func (p Precision) Integral(fx Func, validValue float64) Func {
	return func(x float64) float64 {
		return p.DefiniteIntegral(fx, validValue, x)
	}
}

// Roots approximates a root of fx with Newton's method, running exactly
// iter steps from initial:
//
//	x = x - fx(x)/fx'(x)
//
// with fx' the engine Derivative. There is no convergence or divergence
// check: iter == 0 returns initial unchanged, and a zero derivative
// produces a non-finite value that propagates through the remaining
// steps and is returned as-is. A non-finite result means "no root found
// from this starting point". The loop is explicit, so large iter values
// cost time, not stack.
func (p Precision) Roots(fx Func, initial float64, iter int) float64 {
	x := initial
	df := p.Derivative(fx)
	for i := 0; i < iter; i++ {
		x -= fx(x) / df(x)
	}
	return x
}

// LambertW approximates the Lambert W function, the inverse of x*e^x,
// by solving x*e^x - value = 0 with Roots seeded at value. It inherits
// the failure modes of Roots.
func (p Precision) LambertW(value float64) float64 {
	return p.Roots(func(x float64) float64 {
		return x*math.Exp(x) - value
	}, value, lambertIterations)
}

// Iterate applies fx to value repeatedly, decrementing times by one per
// application until it drops to zero or below, and returns the final
// value. times <= 0 returns value unchanged.
//
// Only integer-valued times are meaningful. A fractional times still
// decrements by one per step, so it behaves like its ceiling; that quirk
// is kept as-is rather than generalized.
func Iterate(fx Func, times, value float64) float64 {
	for t := times; t > 0; t-- {
		value = fx(value)
	}
	return value
}

// Iterated returns the composition fx^times as a reusable Func:
// g(x) = Iterate(fx, times, x).
func Iterated(fx Func, times float64) Func {
	return func(x float64) float64 {
		return Iterate(fx, times, x)
	}
}

// Package-level operations delegating to the Default precision.

// Derivative returns the finite-difference derivative of fx under the
// Default precision.
func Derivative(fx Func) Func { return Default.Derivative(fx) }

// DefiniteIntegral integrates fx from lower to upper under the Default
// precision.
func DefiniteIntegral(fx Func, lower, upper float64) float64 {
	return Default.DefiniteIntegral(fx, lower, upper)
}

// Integral returns the antiderivative of fx anchored at validValue under
// the Default precision.
func Integral(fx Func, validValue float64) Func { return Default.Integral(fx, validValue) }

// Roots runs Newton's method on fx under the Default precision.
func Roots(fx Func, initial float64, iter int) float64 {
	return Default.Roots(fx, initial, iter)
}

// LambertW approximates the Lambert W function under the Default
// precision.
func LambertW(value float64) float64 { return Default.LambertW(value) }
