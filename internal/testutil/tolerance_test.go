package testutil

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
		eps       float64
		expected  bool
	}{
		{name: "equal", got: 1, want: 1, eps: 0, expected: true},
		{name: "within", got: 1.05, want: 1, eps: 0.1, expected: true},
		{name: "outside", got: 1.2, want: 1, eps: 0.1, expected: false},
		{name: "both NaN", got: math.NaN(), want: math.NaN(), eps: 0, expected: true},
		{name: "one NaN", got: math.NaN(), want: 0, eps: 1, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearlyEqual(tt.got, tt.want, tt.eps); got != tt.expected {
				t.Fatalf("nearlyEqual(%v, %v, %v) = %v, want %v", tt.got, tt.want, tt.eps, got, tt.expected)
			}
		})
	}
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, math.NaN(), 3}, []float64{1, math.NaN(), 3 + 1e-12}, 1e-9)
}

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, "x", 0.30000000000000004, 0.3, 1e-12)
}
