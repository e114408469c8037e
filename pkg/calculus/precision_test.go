package calculus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDerivesPolicy(t *testing.T) {
	tests := []struct {
		name         string
		large        float64
		wantSmall    float64
		wantAccuracy int
	}{
		{
			name:         "default knob",
			large:        10000,
			wantSmall:    0.0001,
			wantAccuracy: 3,
		},
		{
			name:         "historical large knob",
			large:        1000000,
			wantSmall:    0.000001,
			wantAccuracy: 5,
		},
		{
			name:         "coarse knob",
			large:        100,
			wantSmall:    0.01,
			wantAccuracy: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.large)
			assert.Equal(t, tt.large, p.Large)
			assert.Equal(t, tt.wantSmall, p.Small)
			assert.Equal(t, tt.wantAccuracy, p.Accuracy)
		})
	}
}

func TestDefaultIsPinned(t *testing.T) {
	// The toolkit consolidates two historical knobs (10000 and 1000000);
	// the default is pinned so results stay reproducible.
	assert.Equal(t, float64(DefaultLarge), Default.Large)
	assert.Equal(t, 3, Default.Accuracy)
}

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		want   float64
	}{
		{name: "half rounds up", value: 2.345, places: 2, want: 2.35},
		{name: "below half rounds down", value: 2.344, places: 2, want: 2.34},
		{name: "integer half rounds toward positive", value: 2.5, places: 0, want: 3},
		{name: "negative half rounds toward positive", value: -2.5, places: 0, want: -2},
		{name: "negative value", value: -2.6, places: 0, want: -3},
		{name: "zero places", value: 6.0001, places: 0, want: 6},
		{name: "already rounded", value: 1.25, places: 2, want: 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.value, tt.places)
			assert.Equal(t, tt.want, got)

			// Rounding is idempotent.
			assert.Equal(t, got, Round(got, tt.places))
		})
	}
}
