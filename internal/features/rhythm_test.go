package features

import (
	"testing"
)

func TestIsSinusRhythmTooFewPeaks(t *testing.T) {
	cases := []struct {
		name string
		p, r []int
	}{
		{"мало P-пиков", []int{100, 200}, []int{150, 400, 650, 900}},
		{"мало R-пиков", []int{100, 350, 600}, []int{150, 400}},
		{"пустые наборы", []int{}, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if IsSinusRhythm(tc.p, tc.r, 250, 0.2) {
				t.Error("Expected false with insufficient peaks")
			}
		})
	}
}

func TestIsSinusRhythmRegular(t *testing.T) {
	// регулярные RR (260 семплов = 1.04 c, std 0) и P-волна за 40 семплов
	// (160 мс) перед каждым R при окне 0.2*250=50 семплов
	p := []int{220, 480, 740}
	r := []int{260, 520, 780}

	if !IsSinusRhythm(p, r, 250, 0.2) {
		t.Error("Expected sinus rhythm for regular RR with preceding P-waves")
	}
}

func TestIsSinusRhythmBorderlineRR(t *testing.T) {
	// минимум пиков: два RR-интервала 1.0 c и 0.7 c.
	// std по совокупности = 0.15 <= 0.2, выборочная оценка дала бы
	// 0.15*sqrt(2) ~= 0.212 и ошибочно забраковала бы ритм
	p := []int{60, 310, 485}
	r := []int{100, 350, 525}

	if !IsSinusRhythm(p, r, 250, 0.2) {
		t.Error("Expected sinus rhythm for borderline-regular RR intervals")
	}
}

func TestIsSinusRhythmIrregularRR(t *testing.T) {
	// P-волны на месте, но RR-интервалы сильно плавают:
	// diffs = 1.04 c, 5.6 c, 0.6 c -> std выше порога 0.2 c
	p := []int{220, 480, 1880, 2030}
	r := []int{260, 520, 1920, 2070}

	if IsSinusRhythm(p, r, 250, 0.2) {
		t.Error("Expected false for irregular RR intervals")
	}
}

func TestIsSinusRhythmNoPrecedingP(t *testing.T) {
	// ритм регулярный, но P-волны слишком далеко от R (гораздо больше окна)
	p := []int{50, 300, 600}
	r := []int{260, 520, 780}

	if IsSinusRhythm(p, r, 250, 0.2) {
		t.Error("Expected false when P-waves are outside the 0.2*fs window")
	}
}

func TestIsSinusRhythmWindowBoundary(t *testing.T) {
	// граница окна строгая: ровно 50 семплов при окне 50 не считается
	p := []int{210, 470, 730}
	r := []int{260, 520, 780}

	if IsSinusRhythm(p, r, 250, 0.2) {
		t.Error("Expected false at exact window boundary (strict comparison)")
	}
}
