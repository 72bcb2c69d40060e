// Package features реализует пайплайн извлечения временных признаков ЭКГ:
// сопоставление пиков, оценку интервалов, проверку качества сигнала,
// классификацию синусового ритма и их оркестрацию.
package features

// PairPeaks сопоставляет два строго возрастающих набора индексов пиков
// одного сигнала методом двух указателей: для каждого элемента A берется
// первый элемент B, не меньший его, если расстояние не превышает maxDistance
// (граница включительно). Каждый пик участвует максимум в одной паре,
// порядок сохраняется, сложность O(|A|+|B|).
func PairPeaks(peaksA, peaksB []int, maxDistance int) (matchedA, matchedB []int) {
	matchedA = make([]int, 0)
	matchedB = make([]int, 0)

	j := 0
	for i := 0; i < len(peaksA); i++ {
		for j < len(peaksB) && peaksB[j] < peaksA[i] {
			j++
		}
		if j < len(peaksB) && absInt(peaksB[j]-peaksA[i]) <= maxDistance {
			matchedA = append(matchedA, peaksA[i])
			matchedB = append(matchedB, peaksB[j])
			j++
		}
	}

	return matchedA, matchedB
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
