package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderZeroFunctionCoincidesWithAxis(t *testing.T) {
	g := New()
	g.AddFunction(func(float64) float64 { return 0 }, '#')

	buf, err := g.Render()
	require.NoError(t, err)
	require.Equal(t, DefaultWidth, buf.Width())
	require.Equal(t, DefaultHeight, buf.Height())

	// y = 0 maps to row 12 and x = 0 to column 40 in the default
	// viewport. The curve overwrites the whole x-axis row.
	for col := 0; col < buf.Width(); col++ {
		assert.Equal(t, '#', buf.At(12, col), "row 12 col %d", col)
	}
	for row := 0; row < buf.Height(); row++ {
		if row == 12 {
			continue
		}
		assert.Equal(t, '|', buf.At(row, 40), "y-axis row %d", row)
	}
	assert.Equal(t, Blank, buf.At(0, 0))
}

func TestRenderFunctionOutsideRangeDrawsOnlyAxes(t *testing.T) {
	g := New()
	g.AddFunction(func(float64) float64 { return 100 }, '#')

	buf, err := g.Render()
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "#")
	for col := 0; col < buf.Width(); col++ {
		assert.Equal(t, '-', buf.At(12, col))
	}
}

func TestRenderIdentityLine(t *testing.T) {
	g := New()
	g.SetOutputDimensions(5, 5)
	g.SetDomain(-2, 2)
	g.SetRange(-2, 2)
	g.AddFunction(func(x float64) float64 { return x }, '#')

	buf, err := g.Render()
	require.NoError(t, err)

	want := strings.Join([]string{
		"  | #",
		"  |##",
		"--##-",
		" ##  ",
		"##|  ",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderSteepCurveHasNoVerticalGaps(t *testing.T) {
	g := New()
	g.AddFunction(func(x float64) float64 { return 5 * x }, '#')

	buf, err := g.Render()
	require.NoError(t, err)

	// Collect the vertical glyph run of every drawn column; consecutive
	// runs must overlap or the curve has a visual gap.
	type span struct{ min, max, col int }
	var spans []span
	for col := 0; col < buf.Width(); col++ {
		min, max := -1, -1
		for row := 0; row < buf.Height(); row++ {
			if buf.At(row, col) != '#' {
				continue
			}
			if min == -1 {
				min = row
			}
			max = row
		}
		if min != -1 {
			spans = append(spans, span{min: min, max: max, col: col})
		}
	}
	require.NotEmpty(t, spans)

	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.col != prev.col+1 {
			continue
		}
		assert.LessOrEqual(t, cur.min, prev.max, "gap between columns %d and %d", prev.col, cur.col)
		assert.GreaterOrEqual(t, cur.max, prev.min, "gap between columns %d and %d", prev.col, cur.col)
	}
}

func TestRenderOutOfRangeSamplesLeaveGaps(t *testing.T) {
	g := New()
	// In range near the edges of the domain, far out of range in the
	// middle.
	g.AddFunction(func(x float64) float64 {
		if x > -5 && x < 5 {
			return 100
		}
		return 0
	}, '#')

	buf, err := g.Render()
	require.NoError(t, err)

	// Leftmost column plots, the middle keeps the bare axis.
	assert.Equal(t, '#', buf.At(12, 0))
	assert.Equal(t, '-', buf.At(12, 40))
}

func TestRenderLaterFunctionWinsOnCollision(t *testing.T) {
	g := New()
	zero := func(float64) float64 { return 0 }
	g.AddFunction(zero, '#')
	g.AddFunction(zero, '*')

	buf, err := g.Render()
	require.NoError(t, err)

	for col := 0; col < buf.Width(); col++ {
		assert.Equal(t, '*', buf.At(12, col))
	}
}

func TestAddFunctionZeroGlyphUsesDefault(t *testing.T) {
	g := New()
	g.AddFunction(func(float64) float64 { return 0 }, 0)

	buf, err := g.Render()
	require.NoError(t, err)
	assert.Equal(t, rune(DefaultGlyph), buf.At(12, 0))
}

func TestClearFunctions(t *testing.T) {
	g := New()
	g.AddFunction(func(float64) float64 { return 0 }, '#')
	g.ClearFunctions()

	buf, err := g.Render()
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "#")
}

func TestRenderFailsFastOnDegenerateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Grapher)
		wantErr error
	}{
		{
			name:    "zero width",
			mutate:  func(g *Grapher) { g.SetOutputDimensions(0, 24) },
			wantErr: ErrViewport,
		},
		{
			name:    "negative height",
			mutate:  func(g *Grapher) { g.SetOutputDimensions(80, -1) },
			wantErr: ErrViewport,
		},
		{
			name:    "empty domain",
			mutate:  func(g *Grapher) { g.SetDomain(3, 3) },
			wantErr: ErrInterval,
		},
		{
			name:    "empty range",
			mutate:  func(g *Grapher) { g.SetRange(-1, -1) },
			wantErr: ErrInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			tt.mutate(g)
			_, err := g.Render()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBufferString(t *testing.T) {
	g := New()
	g.SetOutputDimensions(3, 2)
	g.SetDomain(1, 2) // keep axes out of view
	g.SetRange(1, 2)

	buf, err := g.Render()
	require.NoError(t, err)
	assert.Equal(t, "   \n   \n", buf.String())
	assert.Equal(t, []string{"   ", "   "}, buf.Rows())
}
