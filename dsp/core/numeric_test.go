package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1.5, min: -1, max: 1, expected: -1},
		{name: "above", value: 2, min: -1, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "pcm-range", value: -1.0000001, min: -1, max: 1, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon for eps <= 0")
	}
	if !NearlyEqual(1e6, 1e6+1e-7, 1e-12) {
		t.Fatal("expected relative comparison for large values")
	}
	if NearlyEqual(-1e-11, 0, 1e-12) {
		t.Fatal("expected difference above eps to fail")
	}
}

func TestFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite classification wrong")
	}

	if idx, ok := AllFinite([]float64{0, 1, 2}); !ok || idx != -1 {
		t.Fatalf("AllFinite(finite) = %d, %v", idx, ok)
	}
	if idx, ok := AllFinite([]float64{0, math.Inf(1), math.NaN()}); ok || idx != 1 {
		t.Fatalf("AllFinite = %d, %v, want 1, false", idx, ok)
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
