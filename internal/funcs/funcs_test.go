package funcs

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "x^2", x: 3, want: 9},
		{name: "x^3", x: -2, want: -8},
		{name: "sin(x)", x: 0, want: 0},
		{name: "exp(x)", x: 1, want: math.E},
		{name: "abs(x)", x: -4.5, want: 4.5},
		{name: "1/(1+x^2)", x: 1, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Get(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, fn(tt.x), 1e-12)
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("x^9000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestDomainEdgesPropagateNonFinite(t *testing.T) {
	log, err := Get("log(x)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(log(-1)))
	assert.True(t, math.IsInf(log(0), -1))

	recip, err := Get("1/x")
	require.NoError(t, err)
	assert.True(t, math.IsInf(recip(0), 1))

	sqrt, err := Get("sqrt(x)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sqrt(-1)))
}

func TestNamesSortedAndResolvable(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		fn, err := Get(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)
	}
}

func TestAllMatchesNames(t *testing.T) {
	all := All()
	names := Names()
	require.Len(t, all, len(names))
	for i, f := range all {
		assert.Equal(t, names[i], f.Name)
		assert.NotEmpty(t, f.Desc, f.Name)
	}
}
