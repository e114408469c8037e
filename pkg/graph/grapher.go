package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/calcplot/calcplot/pkg/calculus"
)

// DefaultGlyph is the curve character used when AddFunction is given a
// zero glyph.
const DefaultGlyph = '#'

// Defaults for a freshly constructed Grapher.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	DefaultMin    = -10
	DefaultMax    = 10
)

// Render failure modes. Both are programmer errors surfaced fast rather
// than silently garbled output.
var (
	ErrViewport = errors.New("viewport dimensions must be positive")
	ErrInterval = errors.New("domain and range must span a nonzero interval")
)

// noPixel marks "no previous point yet" in a function's column sweep, so
// the first plotted column never triggers interpolation.
const noPixel = math.MinInt

type plotted struct {
	fx    calculus.Func
	glyph rune
}

// Grapher holds the render configuration for a terminal plot. It is
// mutable, owned by a single caller, and not safe for concurrent
// mutation while Render is in progress.
type Grapher struct {
	width     int
	height    int
	xRange    [2]float64
	yRange    [2]float64
	functions []plotted
}

// New returns a Grapher with an 80x24 viewport and domain and range both
// [-10, 10].
func New() *Grapher {
	return &Grapher{
		width:  DefaultWidth,
		height: DefaultHeight,
		xRange: [2]float64{DefaultMin, DefaultMax},
		yRange: [2]float64{DefaultMin, DefaultMax},
	}
}

// SetOutputDimensions sets the viewport size in character cells.
func (g *Grapher) SetOutputDimensions(width, height int) {
	g.width = width
	g.height = height
}

// SetDomain sets the horizontal interval [from, to] mapped across the
// viewport width. Callers are responsible for from < to.
func (g *Grapher) SetDomain(from, to float64) {
	g.xRange[0] = from
	g.xRange[1] = to
}

// SetRange sets the vertical interval [from, to] mapped across the
// viewport height. Callers are responsible for from < to.
func (g *Grapher) SetRange(from, to float64) {
	g.yRange[0] = from
	g.yRange[1] = to
}

// AddFunction appends a function to the draw list. Insertion order is
// draw order; on cell collision the later function wins. A zero glyph
// selects DefaultGlyph.
func (g *Grapher) AddFunction(fx calculus.Func, glyph rune) {
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	g.functions = append(g.functions, plotted{fx: fx, glyph: glyph})
}

// ClearFunctions empties the draw list.
func (g *Grapher) ClearFunctions() {
	g.functions = nil
}

// Render rasterizes the registered functions onto a fresh Buffer.
//
// Axis lines for x = 0 and y = 0 are drawn first when they fall inside
// the viewport, so curves render over them. Each function is swept left
// to right one pixel column at a time; samples outside the range leave a
// gap, and the vertical distance to the previous plotted column is
// filled in so steep curves stay connected.
func (g *Grapher) Render() (*Buffer, error) {
	if g.width <= 0 || g.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrViewport, g.width, g.height)
	}
	if g.xRange[0] == g.xRange[1] || g.yRange[0] == g.yRange[1] {
		return nil, fmt.Errorf("%w: domain [%g,%g] range [%g,%g]",
			ErrInterval, g.xRange[0], g.xRange[1], g.yRange[0], g.yRange[1])
	}

	buf := newBuffer(g.width, g.height)

	// Affine maps between the two coordinate systems. The vertical map
	// is inverted: row 0 is the top of the screen.
	pixelToX := func(col int) float64 {
		return affine(float64(col), 0, float64(g.width-1), g.xRange[0], g.xRange[1])
	}
	xToPixel := func(val float64) int {
		return int(affine(val, g.xRange[0], g.xRange[1], 0, float64(g.width)))
	}
	yToPixel := func(val float64) int {
		return int(affine(val, g.yRange[0], g.yRange[1], float64(g.height), 0))
	}

	if col := xToPixel(0); col >= 0 && col < g.width {
		for row := 0; row < g.height; row++ {
			buf.set(row, col, '|')
		}
	}
	if row := yToPixel(0); row >= 0 && row < g.height {
		for col := 0; col < g.width; col++ {
			buf.set(row, col, '-')
		}
	}

	for _, fn := range g.functions {
		last := noPixel
		for col := 0; col < g.width; col++ {
			result := fn.fx(pixelToX(col))
			if math.IsNaN(result) || result < g.yRange[0] || result > g.yRange[1] {
				continue
			}

			row := yToPixel(result)
			// A sample exactly at the bottom of the range maps one past
			// the last row; pull edge hits back into the buffer.
			if row >= g.height {
				row = g.height - 1
			}
			if row < 0 {
				row = 0
			}

			if last != noPixel && last != row {
				step := 1
				if last > row {
					step = -1
				}
				for j := last; j != row; j += step {
					buf.set(j, col, fn.glyph)
				}
			}
			last = row
			buf.set(row, col, fn.glyph)
		}
	}

	return buf, nil
}

// affine linearly maps value from [lower, upper] to [newLower, newUpper].
func affine(value, lower, upper, newLower, newUpper float64) float64 {
	return (value-lower)*(newUpper-newLower)/(upper-lower) + newLower
}
