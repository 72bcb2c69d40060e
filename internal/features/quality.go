package features

import (
	"context"
	"log/slog"

	"ecg-postprocessing/internal/delineation"
	"ecg-postprocessing/pkg/utils"
)

// QualityChecker решает, пригоден ли отфильтрованный сигнал для делинеации
type QualityChecker struct {
	oracle    delineation.Oracle
	minRPeaks int
	minStd    float64
}

// NewQualityChecker создает проверку качества сигнала
func NewQualityChecker(oracle delineation.Oracle, minRPeaks int, minStd float64) *QualityChecker {
	return &QualityChecker{
		oracle:    oracle,
		minRPeaks: minRPeaks,
		minStd:    minStd,
	}
}

// Check возвращает true, если сигнал содержит достаточно R-пиков и не
// близок к плоской линии. Любая ошибка делинеации трактуется как отказ:
// проверка качества никогда не возвращает ошибку наружу.
func (qc *QualityChecker) Check(ctx context.Context, signal []float64, fs float64) bool {
	result, err := qc.oracle.Delineate(ctx, signal, fs)
	if err != nil {
		slog.Warn("Проверка качества сигнала не удалась", "error", err)
		return false
	}

	signalStd := utils.Std(signal)
	return len(result.RPeaks) >= qc.minRPeaks && signalStd >= qc.minStd
}
