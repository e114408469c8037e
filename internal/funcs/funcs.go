// Package funcs is the registry of named real functions available to
// the CLI. The calculus and graph packages treat functions as opaque
// values; this registry is how command-line users name them.
package funcs

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/calcplot/calcplot/pkg/calculus"
)

// ErrUnknown is returned by Get for a name not in the registry.
var ErrUnknown = errors.New("unknown function")

// Function is a registry entry: a plottable named function.
type Function struct {
	Name string
	Desc string
	Fn   calculus.Func
}

// Domain edges are the functions' own responsibility: math.Log, Sqrt and
// friends already return NaN or an infinity outside their domain, which
// the engine propagates and the grapher draws as a gap.
var registry = map[string]Function{
	"x":           {Name: "x", Desc: "identity", Fn: func(x float64) float64 { return x }},
	"x^2":         {Name: "x^2", Desc: "square", Fn: func(x float64) float64 { return x * x }},
	"x^3":         {Name: "x^3", Desc: "cube", Fn: func(x float64) float64 { return x * x * x }},
	"x^4-4*x^2":   {Name: "x^4-4*x^2", Desc: "double-well quartic", Fn: func(x float64) float64 { return math.Pow(x, 4) - 4*x*x }},
	"abs(x)":      {Name: "abs(x)", Desc: "absolute value", Fn: math.Abs},
	"sin(x)":      {Name: "sin(x)", Desc: "sine", Fn: math.Sin},
	"cos(x)":      {Name: "cos(x)", Desc: "cosine", Fn: math.Cos},
	"tan(x)":      {Name: "tan(x)", Desc: "tangent", Fn: math.Tan},
	"sin(x)+cos(x)": {Name: "sin(x)+cos(x)", Desc: "sine plus cosine",
		Fn: func(x float64) float64 { return math.Sin(x) + math.Cos(x) }},
	"x*sin(x)": {Name: "x*sin(x)", Desc: "growing oscillation",
		Fn: func(x float64) float64 { return x * math.Sin(x) }},
	"exp(x)": {Name: "exp(x)", Desc: "natural exponential", Fn: math.Exp},
	"exp(-x^2)": {Name: "exp(-x^2)", Desc: "Gaussian bell",
		Fn: func(x float64) float64 { return math.Exp(-x * x) }},
	"x*e^x": {Name: "x*e^x", Desc: "the function Lambert W inverts",
		Fn: func(x float64) float64 { return x * math.Exp(x) }},
	"log(x)":  {Name: "log(x)", Desc: "natural logarithm", Fn: math.Log},
	"sqrt(x)": {Name: "sqrt(x)", Desc: "square root", Fn: math.Sqrt},
	"1/x":     {Name: "1/x", Desc: "reciprocal", Fn: func(x float64) float64 { return 1 / x }},
	"1/(1+x^2)": {Name: "1/(1+x^2)", Desc: "witch of Agnesi",
		Fn: func(x float64) float64 { return 1 / (1 + x*x) }},
}

// Get returns the function registered under name.
func Get(name string) (calculus.Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (run 'calcplot functions' for the list)", ErrUnknown, name)
	}
	return f.Fn, nil
}

// Names returns all registered names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registry entries in name order.
func All() []Function {
	all := make([]Function, 0, len(registry))
	for _, name := range Names() {
		all = append(all, registry[name])
	}
	return all
}
