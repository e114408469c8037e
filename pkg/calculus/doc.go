// Package calculus implements numerical single-variable calculus over
// first-class real functions.
//
// A real function is any Func value: a mapping from one float64 to one
// float64. The package provides finite-difference differentiation,
// fixed-step Riemann integration, a Newton's-method root solver, a
// Lambert-W approximation derived from it, and function iteration.
//
// All operations share one precision policy (Precision): the sampling
// step, the differentiation scale and the number of trusted decimal
// digits are derived from a single knob, so composed operations (a root
// finder built on a derivative, an antiderivative built on the definite
// integral) stay numerically consistent. Results are rounded to the
// trusted digit count before they are returned; noise below the sampling
// resolution never leaks out.
//
// The engine is best effort by design. It raises no errors: a Newton
// step that divides by zero yields a non-finite value that propagates
// through the remaining iterations and is returned as-is. Callers must
// treat a NaN or infinite result as "no answer from this starting
// point".
package calculus
