package dsp

import (
	"sort"
)

// FindPeaks находит локальные максимумы сигнала с минимальным расстоянием
// между пиками в семплах. При конфликте остается более высокий пик.
// Используется только для отрисовки R-пиков во вьювере, не для делинеации.
func FindPeaks(signal []float64, minDistance int) []int {
	if len(signal) < 3 {
		return []int{}
	}
	if minDistance < 1 {
		minDistance = 1
	}

	candidates := make([]int, 0)
	for i := 1; i < len(signal)-1; i++ {
		if signal[i] > signal[i-1] && signal[i] >= signal[i+1] {
			candidates = append(candidates, i)
		}
	}

	// сортируем кандидатов по убыванию амплитуды и оставляем
	// только те, рядом с которыми еще нет принятого пика
	sort.Slice(candidates, func(i, j int) bool {
		return signal[candidates[i]] > signal[candidates[j]]
	})

	accepted := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		ok := true
		for _, kept := range accepted {
			if abs(idx-kept) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, idx)
		}
	}

	sort.Ints(accepted)
	return accepted
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
