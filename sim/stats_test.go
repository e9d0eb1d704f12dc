package sim

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name string
		data []int
		p    float64
		want float64
	}{
		{"median of odd-length input", []int{1, 2, 3, 4, 5}, 50, 3},
		{"p100 of pair", []int{1, 2}, 100, 2},
		{"p0 of pair", []int{1, 2}, 0, 1},
		{"interpolated median of pair", []int{1, 2}, 50, 1.5},
		{"single element", []int{7}, 90, 7},
		{"p10 interpolation", []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentile(tt.data, tt.p); got != tt.want {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.data, tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentile_UnsortedInput(t *testing.T) {
	// Input order must not matter; a copy is sorted internally.
	data := []int{5, 1, 4, 2, 3}
	if got := Percentile(data, 50); got != 3 {
		t.Errorf("Percentile(unsorted, 50) = %v, want 3", got)
	}
	// Original slice untouched.
	if data[0] != 5 || data[4] != 3 {
		t.Errorf("Percentile mutated its input: %v", data)
	}
}

func TestPercentile_EmptyReturnsNaN(t *testing.T) {
	if got := Percentile([]int{}, 50); !math.IsNaN(got) {
		t.Errorf("Percentile([], 50) = %v, want NaN", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]int{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean([1 2 3 4]) = %v, want 2.5", got)
	}
	if got := Mean([]float64{0.5}); got != 0.5 {
		t.Errorf("Mean([0.5]) = %v, want 0.5", got)
	}
	if got := Mean([]int64{}); !math.IsNaN(got) {
		t.Errorf("Mean([]) = %v, want NaN", got)
	}
}
