// Package delineation определяет границу с внешним сервисом делинеации ЭКГ:
// пайплайн работает против интерфейса, конкретная реализация
// (классический алгоритм или ML модель) подставляется снаружи.
package delineation

import (
	"context"
)

// Result содержит индексы характерных волн одного сигнала.
// Каждая последовательность строго возрастает и не модифицируется после создания.
type Result struct {
	PPeaks   []int   `json:"p_peaks"`   // пики P-волн
	QPeaks   []int   `json:"q_peaks"`   // пики Q-волн
	RPeaks   []int   `json:"r_peaks"`   // пики R-волн
	SPeaks   []int   `json:"s_peaks"`   // пики S-волн
	TOffsets []int   `json:"t_offsets"` // окончания T-волн
	RateMean float64 `json:"rate_mean"` // средний пульс по оценке делинеатора, уд/мин
}

// Oracle локализует характерные волны ЭКГ в сигнале
type Oracle interface {
	Delineate(ctx context.Context, signal []float64, fs float64) (*Result, error)
}
