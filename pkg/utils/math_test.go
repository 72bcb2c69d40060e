package utils

import (
	"math"
	"testing"
)

func TestMeanEmpty(t *testing.T) {
	if !math.IsNaN(Mean([]float64{})) {
		t.Error("Expected NaN for empty slice")
	}
}

func TestStd(t *testing.T) {
	// выборочное стандартное отклонение (n-1)
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	want := 2.13809
	if got := Std(data); math.Abs(got-want) > 1e-4 {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if !math.IsNaN(Std([]float64{1})) {
		t.Error("Expected NaN for single element")
	}
}

func TestStdP(t *testing.T) {
	// std по совокупности (n): для [1.0, 0.7] отклонения +-0.15
	data := []float64{1.0, 0.7}
	want := 0.15
	if got := StdP(data); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// один элемент: нулевой разброс, а не NaN
	if got := StdP([]float64{1.04}); got != 0 {
		t.Errorf("Expected 0 for single element, got %v", got)
	}

	if !math.IsNaN(StdP([]float64{})) {
		t.Error("Expected NaN for empty slice")
	}
}

func TestDiffInt(t *testing.T) {
	got := DiffInt([]int{260, 520, 780}, 250)
	want := []float64{1.04, 1.04}

	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}

	if len(DiffInt([]int{100}, 250)) != 0 {
		t.Error("Expected empty diff for single index")
	}
}

func TestSafeFloat(t *testing.T) {
	if SafeFloat(math.NaN()) != 0 || SafeFloat(math.Inf(1)) != 0 {
		t.Error("Expected 0 for non-finite values")
	}
	if SafeFloat(1.5) != 1.5 {
		t.Error("Expected passthrough for finite values")
	}
}
