package features

// MeanIntervalMs вычисляет среднюю длительность сопоставленных интервалов
// в миллисекундах. Для пустого набора пар возвращает ok=false: среднее
// по пустому множеству не определено и не должно читаться как ноль.
func MeanIntervalMs(matchedA, matchedB []int, fs float64) (float64, bool) {
	if len(matchedA) == 0 || len(matchedA) != len(matchedB) {
		return 0, false
	}

	sum := 0.0
	for i := range matchedA {
		sum += float64(matchedB[i]-matchedA[i]) / fs * 1000.0
	}

	return sum / float64(len(matchedA)), true
}
