package mathutil

import (
	"math"
	"testing"
)

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"exact match", 10, 10, 1e-9, true},
		{"within tolerance", 10.0000001, 10, 1e-6, true},
		{"outside tolerance", 10.01, 10, 1e-6, false},
		{"negative values", -2.5, -2.5, 1e-9, true},
		{"zero tolerance equal", 3.25, 3.25, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.val1, tt.val2, tt.tolerance); got != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, want %v",
					tt.val1, tt.val2, tt.tolerance, got, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(1e-9, 1e-6) {
		t.Error("expected 1e-9 to be zero within 1e-6")
	}
	if IsZero(0.5, 1e-6) {
		t.Error("expected 0.5 to be nonzero within 1e-6")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(42.0) {
		t.Error("expected 42.0 to be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("expected NaN to be non-finite")
	}
	if IsFinite(math.Inf(1)) {
		t.Error("expected +Inf to be non-finite")
	}
	if IsFinite(math.Inf(-1)) {
		t.Error("expected -Inf to be non-finite")
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]float64{7.5, 2.5}); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
}
