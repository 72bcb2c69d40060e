package features

import (
	"testing"
)

func TestPairPeaksEmptyInputs(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
	}{
		{"оба пустые", []int{}, []int{}},
		{"пустой A", []int{}, []int{10, 20}},
		{"пустой B", []int{10, 20}, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matchedA, matchedB := PairPeaks(tc.a, tc.b, 200)
			if len(matchedA) != 0 || len(matchedB) != 0 {
				t.Errorf("Expected empty pairs, got %v / %v", matchedA, matchedB)
			}
		})
	}
}

func TestPairPeaksWithinDistance(t *testing.T) {
	// последний элемент A остается без пары: 1500-900=600 > 200
	a := []int{100, 500, 900}
	b := []int{150, 560, 1500}

	matchedA, matchedB := PairPeaks(a, b, 200)

	wantA := []int{100, 500}
	wantB := []int{150, 560}

	if len(matchedA) != len(wantA) {
		t.Fatalf("Expected %d pairs, got %d", len(wantA), len(matchedA))
	}
	for i := range wantA {
		if matchedA[i] != wantA[i] || matchedB[i] != wantB[i] {
			t.Errorf("Pair %d: expected (%d,%d), got (%d,%d)", i, wantA[i], wantB[i], matchedA[i], matchedB[i])
		}
	}
}

func TestPairPeaksBoundaryInclusive(t *testing.T) {
	// расстояние ровно на границе включается
	matchedA, matchedB := PairPeaks([]int{100}, []int{300}, 200)
	if len(matchedA) != 1 || matchedB[0] != 300 {
		t.Errorf("Expected boundary pair (100,300), got %v / %v", matchedA, matchedB)
	}

	matchedA, _ = PairPeaks([]int{100}, []int{301}, 200)
	if len(matchedA) != 0 {
		t.Errorf("Expected no pairs beyond boundary, got %v", matchedA)
	}
}

func TestPairPeaksOrderPreserving(t *testing.T) {
	a := []int{10, 200, 420, 900, 1400}
	b := []int{15, 230, 500, 950, 1450, 2000}

	matchedA, matchedB := PairPeaks(a, b, 100)

	if len(matchedA) != len(matchedB) {
		t.Fatalf("Matched lengths differ: %d vs %d", len(matchedA), len(matchedB))
	}
	if len(matchedA) > len(a) || len(matchedA) > len(b) {
		t.Errorf("More pairs than inputs: %d", len(matchedA))
	}
	for i := 1; i < len(matchedA); i++ {
		if matchedA[i] <= matchedA[i-1] || matchedB[i] <= matchedB[i-1] {
			t.Errorf("Pairs are not order-preserving: %v / %v", matchedA, matchedB)
		}
	}
	for i := range matchedA {
		if matchedB[i] < matchedA[i] {
			t.Errorf("Pair %d violates temporal order: (%d,%d)", i, matchedA[i], matchedB[i])
		}
	}
}

func TestPairPeaksEarlyUnmatched(t *testing.T) {
	// элементы A задолго до начала B остаются без пары
	a := []int{10, 50, 800}
	b := []int{990}

	matchedA, matchedB := PairPeaks(a, b, 200)
	if len(matchedA) != 1 || matchedA[0] != 800 || matchedB[0] != 990 {
		t.Errorf("Expected single pair (800,990), got %v / %v", matchedA, matchedB)
	}
}

func TestPairPeaksEachPeakUsedOnce(t *testing.T) {
	// один B не может достаться двум A
	a := []int{100, 110}
	b := []int{115}

	matchedA, matchedB := PairPeaks(a, b, 200)
	if len(matchedA) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(matchedA))
	}
	if matchedA[0] != 100 || matchedB[0] != 115 {
		t.Errorf("Expected pair (100,115), got (%d,%d)", matchedA[0], matchedB[0])
	}
}
