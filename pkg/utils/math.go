package utils

import (
	"math"
)

// SafeFloat заменяет NaN и Inf на 0.0
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	return v
}

// Mean вычисляет среднее значение
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Std вычисляет стандартное отклонение
func Std(data []float64) float64 {
	if len(data) <= 1 {
		return math.NaN()
	}

	mean := Mean(data)
	sumSquares := 0.0

	for _, v := range data {
		diff := v - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(data)-1))
}

// Min находит минимальное значение
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max находит максимальное значение
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// StdP вычисляет стандартное отклонение по всей совокупности (делитель n).
// Для коротких рядов вроде RR-интервалов выборочная оценка (n-1) заметно
// завышает разброс: при двух интервалах в sqrt(2) раза.
func StdP(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	mean := Mean(data)
	sumSquares := 0.0

	for _, v := range data {
		diff := v - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(data)))
}

// DiffInt вычисляет разности соседних индексов в секундах
func DiffInt(indices []int, fs float64) []float64 {
	if len(indices) <= 1 {
		return []float64{}
	}

	result := make([]float64, len(indices)-1)
	for i := 1; i < len(indices); i++ {
		result[i-1] = float64(indices[i]-indices[i-1]) / fs
	}
	return result
}
