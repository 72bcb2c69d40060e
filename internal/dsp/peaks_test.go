package dsp

import (
	"testing"
)

func TestFindPeaksEmpty(t *testing.T) {
	if peaks := FindPeaks([]float64{}, 10); len(peaks) != 0 {
		t.Errorf("Expected no peaks, got %v", peaks)
	}
	if peaks := FindPeaks([]float64{1, 2}, 10); len(peaks) != 0 {
		t.Errorf("Expected no peaks for too short signal, got %v", peaks)
	}
}

func TestFindPeaksSimple(t *testing.T) {
	signal := []float64{0, 1, 0, 0, 2, 0, 0, 3, 0}

	peaks := FindPeaks(signal, 2)
	want := []int{1, 4, 7}

	if len(peaks) != len(want) {
		t.Fatalf("Expected %v, got %v", want, peaks)
	}
	for i := range want {
		if peaks[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, peaks)
			break
		}
	}
}

func TestFindPeaksMinDistance(t *testing.T) {
	// из двух близких пиков остается более высокий
	signal := []float64{0, 1, 0, 3, 0, 0, 0, 0, 0, 0, 2, 0}

	peaks := FindPeaks(signal, 5)

	if len(peaks) != 2 {
		t.Fatalf("Expected 2 peaks, got %v", peaks)
	}
	if peaks[0] != 3 || peaks[1] != 10 {
		t.Errorf("Expected peaks at 3 and 10, got %v", peaks)
	}
}

func TestFindPeaksSorted(t *testing.T) {
	signal := []float64{0, 5, 0, 1, 0, 4, 0, 2, 0, 3, 0}

	peaks := FindPeaks(signal, 1)
	for i := 1; i < len(peaks); i++ {
		if peaks[i] <= peaks[i-1] {
			t.Errorf("Expected sorted peak indices, got %v", peaks)
		}
	}
}
