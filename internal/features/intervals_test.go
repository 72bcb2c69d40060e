package features

import (
	"math"
	"testing"
)

func TestMeanIntervalMsEmpty(t *testing.T) {
	// нет пар -> значение отсутствует, а не ноль
	value, ok := MeanIntervalMs([]int{}, []int{}, 250)
	if ok {
		t.Errorf("Expected missing value for empty pairs, got %v", value)
	}
}

func TestMeanIntervalMs(t *testing.T) {
	// пары (100,150) и (500,560) при fs=250:
	// (50/250 + 60/250) / 2 * 1000 = 220 мс
	a := []int{100, 500}
	b := []int{150, 560}

	value, ok := MeanIntervalMs(a, b, 250)
	if !ok {
		t.Fatal("Expected value, got missing")
	}

	want := 220.0
	if math.Abs(value-want) > 1e-9 {
		t.Errorf("Expected %v ms, got %v ms", want, value)
	}
}

func TestMeanIntervalMsAfterPairing(t *testing.T) {
	// сквозной сценарий: сопоставление + оценка интервалов
	a := []int{100, 500, 900}
	b := []int{150, 560, 1500}

	matchedA, matchedB := PairPeaks(a, b, 200)
	value, ok := MeanIntervalMs(matchedA, matchedB, 250)
	if !ok {
		t.Fatal("Expected value, got missing")
	}

	want := 220.0
	if math.Abs(value-want) > 1e-9 {
		t.Errorf("Expected %v ms, got %v ms", want, value)
	}
}

func TestMeanIntervalMsSinglePair(t *testing.T) {
	value, ok := MeanIntervalMs([]int{0}, []int{25}, 250)
	if !ok {
		t.Fatal("Expected value, got missing")
	}
	if math.Abs(value-100.0) > 1e-9 {
		t.Errorf("Expected 100 ms, got %v ms", value)
	}
}
