package features

import (
	"context"
	"log/slog"
	"math"

	"ecg-postprocessing/config"
	"ecg-postprocessing/internal/delineation"
	"ecg-postprocessing/internal/dsp"
	"ecg-postprocessing/internal/models"
)

// FeatureExtractor оркестрирует пайплайн извлечения признаков:
// фильтрация -> проверка качества -> делинеация -> интервалы и ритм.
// Любой сбой на любом этапе деградирует до частично заполненной записи,
// но наружу всегда возвращается структурно корректный результат.
type FeatureExtractor struct {
	cfg     config.PipelineConfig
	oracle  delineation.Oracle
	quality *QualityChecker
}

// NewFeatureExtractor создает экстрактор признаков
func NewFeatureExtractor(cfg config.PipelineConfig, oracle delineation.Oracle) *FeatureExtractor {
	return &FeatureExtractor{
		cfg:     cfg,
		oracle:  oracle,
		quality: NewQualityChecker(oracle, cfg.QualityMinRPeaks, cfg.QualityMinStd),
	}
}

// Extract вычисляет признаки одного сигнала.
// Состояния: Start -> Filtered -> QualityChecked -> {Rejected | Delineated} -> Assembled.
func (fe *FeatureExtractor) Extract(ctx context.Context, signal []float64) models.FeatureSummary {
	summary := models.NewRejectedSummary()
	fs := fe.cfg.SampleRate

	// Шаг 1: фильтрация. Ошибка фильтра означает запись по умолчанию,
	// батч при этом не прерывается.
	filtered, err := dsp.BandpassFilter(signal, fs, fe.cfg.FilterLowCut, fe.cfg.FilterHighCut, fe.cfg.FilterOrder)
	if err != nil {
		slog.Warn("Ошибка фильтрации сигнала", "error", err)
		return summary
	}

	// Шаг 2: проверка качества
	if !fe.quality.Check(ctx, filtered, fs) {
		return summary
	}
	summary.QualityOK = true

	// Шаг 3: делинеация. Отказ оракула после успешной проверки качества
	// оставляет уже вычисленные поля, остальные остаются отсутствующими.
	result, err := fe.oracle.Delineate(ctx, filtered, fs)
	if err != nil {
		slog.Warn("Ошибка делинеации сигнала", "error", err)
		return summary
	}

	// Шаг 4: средний пульс берем из оценки делинеатора, не пересчитываем
	if !math.IsNaN(result.RateMean) && !math.IsInf(result.RateMean, 0) {
		summary.HeartRateMean = models.ValidFloat(result.RateMean)
	}

	// Шаг 5: интервалы через сопоставление пиков
	maxDist := fe.cfg.PairMaxDistance

	qMatched, sMatched := PairPeaks(result.QPeaks, result.SPeaks, maxDist)
	if qrs, ok := MeanIntervalMs(qMatched, sMatched, fs); ok {
		summary.QRSDurationMs = models.ValidFloat(qrs)
	}

	pMatched, qMatched2 := PairPeaks(result.PPeaks, result.QPeaks, maxDist)
	if pr, ok := MeanIntervalMs(pMatched, qMatched2, fs); ok {
		summary.PRIntervalMs = models.ValidFloat(pr)
	}

	qMatched3, tMatched := PairPeaks(result.QPeaks, result.TOffsets, maxDist)
	if qt, ok := MeanIntervalMs(qMatched3, tMatched, fs); ok {
		summary.QTIntervalMs = models.ValidFloat(qt)
	}

	// Шаг 6: синусовый ритм
	summary.SinusRhythm = IsSinusRhythm(result.PPeaks, result.RPeaks, fs, fe.cfg.RhythmRRThreshold)

	return summary
}
