package features

import (
	"ecg-postprocessing/pkg/utils"
)

// IsSinusRhythm классифицирует синусовый ритм по регулярности RR-интервалов
// и наличию P-волны перед каждым R-пиком. Это эвристика проводимости
// P-перед-QRS, а не полноценный электрофизиологический диагноз.
//
// Требуется минимум по 3 пика P и R. Ритм считается нерегулярным, если
// стандартное отклонение RR-интервалов (в секундах) превышает rrThreshold.
// R-пик считается сопоставленным, если ближайший предшествующий P-пик
// отстоит меньше чем на 0.2*fs семплов (200 мс); синусовый ритм
// подтверждается, когда сопоставлено больше 80% R-пиков.
func IsSinusRhythm(pPeaks, rPeaks []int, fs, rrThreshold float64) bool {
	if len(pPeaks) < 3 || len(rPeaks) < 3 {
		return false
	}

	// std по совокупности: при минимальных 3 R-пиках интервалов всего два,
	// и выборочная оценка забраковала бы пограничный регулярный ритм
	rrIntervals := utils.DiffInt(rPeaks, fs)
	if utils.StdP(rrIntervals) > rrThreshold {
		return false
	}

	window := fs * 0.2
	matched := 0
	for _, r := range rPeaks {
		p, ok := lastPeakBefore(pPeaks, r)
		if ok && float64(r-p) < window {
			matched++
		}
	}

	return float64(matched)/float64(len(rPeaks)) > 0.8
}

// lastPeakBefore возвращает последний пик строго раньше индекса r
func lastPeakBefore(peaks []int, r int) (int, bool) {
	found := -1
	for _, p := range peaks {
		if p >= r {
			break
		}
		found = p
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}
