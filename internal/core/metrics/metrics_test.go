package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanRound2(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"two prices", []float64{50.00, 52.00}, 51.00},
		{"repeating fraction", []float64{1, 2}, 1.5},
		{"rounds half up", []float64{0.005, 0.005, 0.005}, 0.01},
		{"single value", []float64{48.0}, 48.0},
		{"empty", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MeanRound2(tc.values))
		})
	}
}

func TestSumRound2_KeepsInputPrecision(t *testing.T) {
	// 0.1+0.2 must come out as exactly 0.3, not 0.30000000000000004.
	require.Equal(t, 0.3, SumRound2([]float64{0.1, 0.2}))
	require.Equal(t, 25.0, SumRound2([]float64{10, 15}))
}

func TestSumTruncated(t *testing.T) {
	require.Equal(t, int64(25), SumTruncated([]float64{10, 15}))
	require.Equal(t, int64(25), SumTruncated([]float64{10.4, 15.5}))
	require.Equal(t, int64(0), SumTruncated(nil))
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"clear winner", []string{"A", "A", "B"}, "A"},
		{"tie breaks on first occurrence", []string{"A", "B"}, "A"},
		{"tie breaks on first occurrence reversed", []string{"B", "A"}, "B"},
		{"later value overtakes", []string{"A", "B", "B"}, "B"},
		{"empty values skipped", []string{"", "Rainy", "", "Rainy", "Sunny"}, "Rainy"},
		{"all empty", []string{"", ""}, ""},
		{"no values", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Mode(tc.values))
		})
	}
}

func TestDistinctSorted(t *testing.T) {
	require.Equal(t, []string{"East", "North", "West"},
		DistinctSorted([]string{"West", "East", "North", "East", ""}))
	require.Empty(t, DistinctSorted([]string{"", ""}))
}

func TestCountDistinct(t *testing.T) {
	require.Equal(t, 2, CountDistinct([]string{"S001", "S002", "S001", ""}))
	require.Equal(t, 0, CountDistinct(nil))
}
